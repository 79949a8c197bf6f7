package services

import (
  "context"
  "fmt"
  "testing"
  "time"

  "github.com/google/uuid"

  "github.com/thinkly-edu/thinkly-backend/internal/types"
)

func TestMemoryStoreKeepsInsertionOrderOnTimestampTies(t *testing.T) {
  store := NewMemoryConversationStore()
  convo, err := store.CreateConversation(context.Background(), uuid.New(), "Ties")
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }

  // Identical timestamps on every turn, the way a fast append burst lands.
  now := time.Now()
  for i := 0; i < 5; i++ {
    _, err := store.AppendMessage(context.Background(), &types.Message{
      ConversationID: convo.ID,
      Role:           types.MessageRoleAssistant,
      Model:          types.ModelChatGPT,
      Content:        fmt.Sprintf("turn %d", i),
      CreatedAt:      now,
    })
    if err != nil {
      t.Fatalf("unexpected error: %v", err)
    }
  }

  messages, err := store.ListMessages(context.Background(), convo.ID)
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  if len(messages) != 5 {
    t.Fatalf("expected 5 messages, got %d", len(messages))
  }
  for i, msg := range messages {
    if msg.Content != fmt.Sprintf("turn %d", i) {
      t.Fatalf("messages out of insertion order at %d: %q", i, msg.Content)
    }
  }
  for i := 1; i < len(messages); i++ {
    if messages[i].Seq <= messages[i-1].Seq {
      t.Fatalf("seq should grow with insertion order, got %d then %d", messages[i-1].Seq, messages[i].Seq)
    }
  }
}
