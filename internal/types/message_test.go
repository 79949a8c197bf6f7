package types

import (
  "encoding/json"
  "testing"

  "github.com/google/uuid"
)

func TestMessageJSONShape(t *testing.T) {
  msg := Message{
    ID:             uuid.New(),
    Seq:            7,
    ConversationID: uuid.New(),
    Role:           MessageRoleAssistant,
    Model:          ModelGemini,
    Content:        "Photosynthesis converts light into chemical energy.",
  }
  raw, err := json.Marshal(msg)
  if err != nil {
    t.Fatalf("failed to marshal message: %v", err)
  }
  var decoded map[string]interface{}
  if err := json.Unmarshal(raw, &decoded); err != nil {
    t.Fatalf("failed to unmarshal message: %v", err)
  }
  if decoded["role"] != "assistant" {
    t.Fatalf("unexpected role: %v", decoded["role"])
  }
  if decoded["model"] != "gemini" {
    t.Fatalf("unexpected model: %v", decoded["model"])
  }
  if _, ok := decoded["seq"]; ok {
    t.Fatal("seq is internal ordering state and must not serialize")
  }
  if _, ok := decoded["Seq"]; ok {
    t.Fatal("seq is internal ordering state and must not serialize")
  }
}
