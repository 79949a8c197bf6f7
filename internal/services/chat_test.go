package services

import (
  "context"
  "errors"
  "strings"
  "testing"

  "github.com/google/uuid"

  "github.com/thinkly-edu/thinkly-backend/internal/logger"
  "github.com/thinkly-edu/thinkly-backend/internal/providers"
  "github.com/thinkly-edu/thinkly-backend/internal/types"
)

type fakeProvider struct {
  name      types.ModelName
  reply     string
  err       error
  started   chan struct{}
  release   chan struct{}
}

func (f *fakeProvider) Name() types.ModelName {
  return f.name
}

func (f *fakeProvider) Complete(ctx context.Context, messages []providers.Message) (providers.Reply, error) {
  if f.started != nil {
    close(f.started)
    f.started = nil
  }
  if f.release != nil {
    <-f.release
  }
  if f.err != nil {
    return providers.Reply{}, f.err
  }
  return providers.Reply{Content: f.reply, Model: f.name}, nil
}

func testLogger(t *testing.T) *logger.Logger {
  t.Helper()
  log, err := logger.New("development")
  if err != nil {
    t.Fatalf("failed to build logger: %v", err)
  }
  return log
}

func newDemoService(t *testing.T) (ChatService, ConversationStore) {
  t.Helper()
  store := NewMemoryConversationStore()
  svc := NewChatService(testLogger(t), store, nil, true, false)
  return svc, store
}

func startConvo(t *testing.T, svc ChatService, userID uuid.UUID) *types.Conversation {
  t.Helper()
  convo, err := svc.StartConversation(context.Background(), userID, "Algebra", "")
  if err != nil {
    t.Fatalf("failed to start conversation: %v", err)
  }
  return convo
}

func TestSendMessageDemoMath(t *testing.T) {
  svc, _ := newDemoService(t)
  userID := uuid.New()
  convo := startConvo(t, svc, userID)

  appended, err := svc.SendMessage(context.Background(), userID, convo.ID, "what is 2+2", types.ModelChatGPT)
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  if len(appended) != 2 {
    t.Fatalf("expected chatgpt and gemini turns, got %d", len(appended))
  }

  transcript, err := svc.GetTranscript(context.Background(), convo.ID)
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  if len(transcript) != 3 {
    t.Fatalf("expected user + 2 assistant turns, got %d", len(transcript))
  }
  if transcript[0].Role != types.MessageRoleUser || transcript[0].Content != "what is 2+2" {
    t.Fatalf("first turn should be the user message, got %+v", transcript[0])
  }
  if transcript[1].Model != types.ModelChatGPT || !strings.HasPrefix(transcript[1].Content, "[ChatGPT Solution]") {
    t.Fatalf("second turn should be the chatgpt solution, got %+v", transcript[1])
  }
  if transcript[2].Model != types.ModelGemini || !strings.HasPrefix(transcript[2].Content, "[Gemini Verification]") {
    t.Fatalf("third turn should be the gemini verification, got %+v", transcript[2])
  }
  if !strings.Contains(transcript[1].Content, "Final Answer: 4") {
    t.Fatalf("solution missing final answer: %q", transcript[1].Content)
  }
}

func TestSendMessageDemoCanned(t *testing.T) {
  svc, _ := newDemoService(t)
  userID := uuid.New()
  convo := startConvo(t, svc, userID)

  appended, err := svc.SendMessage(context.Background(), userID, convo.ID, "help me with fractions", types.ModelGemini)
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  if len(appended) != 2 {
    t.Fatalf("expected 2 assistant turns, got %d", len(appended))
  }
  if !strings.HasPrefix(appended[0].Content, "[ChatGPT Explanation]") {
    t.Fatalf("unexpected first reply: %q", appended[0].Content)
  }
  if !strings.HasPrefix(appended[1].Content, "[Gemini Additional Insights]") {
    t.Fatalf("unexpected second reply: %q", appended[1].Content)
  }
}

func TestSendMessageDemoGeneralQuotes(t *testing.T) {
  svc, _ := newDemoService(t)
  userID := uuid.New()
  convo := startConvo(t, svc, userID)

  appended, err := svc.SendMessage(context.Background(), userID, convo.ID, "photosynthesis", types.ModelChatGPT)
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  if !strings.Contains(appended[0].Content, `"photosynthesis"`) {
    t.Fatalf("general reply should quote the message: %q", appended[0].Content)
  }
}

func TestSendMessageConnected(t *testing.T) {
  store := NewMemoryConversationStore()
  backend := &fakeProvider{name: types.ModelChatGPT, reply: "A fraction is part of a whole."}
  svc := NewChatService(testLogger(t), store, []providers.Provider{backend}, false, false)
  userID := uuid.New()
  convo := startConvo(t, svc, userID)

  appended, err := svc.SendMessage(context.Background(), userID, convo.ID, "explain fractions", types.ModelChatGPT)
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  if len(appended) != 1 {
    t.Fatalf("connected mode should append a single assistant turn, got %d", len(appended))
  }
  if appended[0].Content != "A fraction is part of a whole." {
    t.Fatalf("unexpected content: %q", appended[0].Content)
  }

  transcript, _ := svc.GetTranscript(context.Background(), convo.ID)
  if len(transcript) != 2 {
    t.Fatalf("expected user + assistant, got %d", len(transcript))
  }
}

func TestSendMessageConnectedDualFanOut(t *testing.T) {
  store := NewMemoryConversationStore()
  chatgpt := &fakeProvider{name: types.ModelChatGPT, reply: "primary"}
  gemini := &fakeProvider{name: types.ModelGemini, reply: "secondary"}
  svc := NewChatService(testLogger(t), store, []providers.Provider{chatgpt, gemini}, false, true)
  userID := uuid.New()
  convo := startConvo(t, svc, userID)

  appended, err := svc.SendMessage(context.Background(), userID, convo.ID, "explain fractions", types.ModelGemini)
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  if len(appended) != 2 {
    t.Fatalf("fan-out should append both backends, got %d", len(appended))
  }
  if appended[0].Model != types.ModelChatGPT || appended[1].Model != types.ModelGemini {
    t.Fatalf("fan-out order should be chatgpt then gemini, got %v then %v", appended[0].Model, appended[1].Model)
  }
}

func TestSendMessageBackendFailureLeavesNoAssistantTurn(t *testing.T) {
  store := NewMemoryConversationStore()
  backend := &fakeProvider{name: types.ModelGemini, err: providers.ErrUpstream}
  svc := NewChatService(testLogger(t), store, []providers.Provider{backend}, false, false)
  userID := uuid.New()
  convo := startConvo(t, svc, userID)

  _, err := svc.SendMessage(context.Background(), userID, convo.ID, "explain fractions", types.ModelGemini)
  if !errors.Is(err, providers.ErrUpstream) {
    t.Fatalf("expected upstream error, got %v", err)
  }

  transcript, _ := svc.GetTranscript(context.Background(), convo.ID)
  if len(transcript) != 1 || transcript[0].Role != types.MessageRoleUser {
    t.Fatalf("only the user turn should remain, got %d messages", len(transcript))
  }
}

func TestSendMessageValidation(t *testing.T) {
  svc, _ := newDemoService(t)
  userID := uuid.New()
  convo := startConvo(t, svc, userID)

  if _, err := svc.SendMessage(context.Background(), userID, convo.ID, "   ", types.ModelChatGPT); !errors.Is(err, ErrValidation) {
    t.Fatalf("empty message should fail validation, got %v", err)
  }
  if _, err := svc.SendMessage(context.Background(), userID, convo.ID, "hi", types.ModelName("claude")); !errors.Is(err, ErrValidation) {
    t.Fatalf("unknown model should fail validation, got %v", err)
  }
}

func TestSendMessageStartsConversationWhenNoneSelected(t *testing.T) {
  svc, _ := newDemoService(t)
  userID := uuid.New()

  appended, err := svc.SendMessage(context.Background(), userID, uuid.Nil, "what is 2+2", types.ModelChatGPT)
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  if len(appended) != 2 {
    t.Fatalf("expected chatgpt and gemini turns, got %d", len(appended))
  }

  convos, err := svc.ListConversations(context.Background(), userID)
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  if len(convos) != 1 {
    t.Fatalf("expected one auto-started conversation, got %d", len(convos))
  }
  if convos[0].Title != "New Conversation" {
    t.Fatalf("auto-started conversation should use the default title, got %q", convos[0].Title)
  }
  if appended[0].ConversationID != convos[0].ID {
    t.Fatalf("replies should land in the new conversation")
  }

  transcript, _ := svc.GetTranscript(context.Background(), convos[0].ID)
  if len(transcript) != 3 {
    t.Fatalf("expected user + 2 assistant turns, got %d", len(transcript))
  }
}

func TestSendMessageBusyConversation(t *testing.T) {
  store := NewMemoryConversationStore()
  started := make(chan struct{})
  release := make(chan struct{})
  backend := &fakeProvider{name: types.ModelChatGPT, reply: "slow", started: started, release: release}
  svc := NewChatService(testLogger(t), store, []providers.Provider{backend}, false, false)
  userID := uuid.New()
  convo := startConvo(t, svc, userID)

  done := make(chan error, 1)
  go func() {
    _, err := svc.SendMessage(context.Background(), userID, convo.ID, "first", types.ModelChatGPT)
    done <- err
  }()
  <-started

  _, err := svc.SendMessage(context.Background(), userID, convo.ID, "second", types.ModelChatGPT)
  if !errors.Is(err, ErrConversationBusy) {
    t.Fatalf("expected busy rejection, got %v", err)
  }

  close(release)
  if err := <-done; err != nil {
    t.Fatalf("first submission should finish cleanly, got %v", err)
  }

  // The busy submission must not have appended anything.
  transcript, _ := svc.GetTranscript(context.Background(), convo.ID)
  if len(transcript) != 2 {
    t.Fatalf("expected user + assistant from the first submission only, got %d", len(transcript))
  }
}

func TestStartConversationGreeting(t *testing.T) {
  svc, _ := newDemoService(t)
  userID := uuid.New()

  convo, err := svc.StartConversation(context.Background(), userID, "Classroom MATH101", "Welcome to Classroom MATH101! How can I help you today?")
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  transcript, _ := svc.GetTranscript(context.Background(), convo.ID)
  if len(transcript) != 1 {
    t.Fatalf("expected a single greeting, got %d", len(transcript))
  }
  if transcript[0].Role != types.MessageRoleAssistant || transcript[0].Model != types.ModelChatGPT {
    t.Fatalf("greeting should be a chatgpt-tagged assistant turn, got %+v", transcript[0])
  }
}

func TestStartConversationDefaultTitle(t *testing.T) {
  svc, _ := newDemoService(t)
  convo, err := svc.StartConversation(context.Background(), uuid.New(), "  ", "")
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  if convo.Title != "New Conversation" {
    t.Fatalf("expected default title, got %q", convo.Title)
  }
}

func TestListConversationsNewestFirst(t *testing.T) {
  svc, _ := newDemoService(t)
  userID := uuid.New()
  first := startConvo(t, svc, userID)
  second := startConvo(t, svc, userID)

  convos, err := svc.ListConversations(context.Background(), userID)
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  if len(convos) != 2 {
    t.Fatalf("expected 2 conversations, got %d", len(convos))
  }
  if convos[0].ID != second.ID || convos[1].ID != first.ID {
    t.Fatalf("conversations should list newest first")
  }
}
