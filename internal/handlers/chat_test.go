package handlers

import (
  "context"
  "encoding/json"
  "net/http"
  "net/http/httptest"
  "strings"
  "testing"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/thinkly-edu/thinkly-backend/internal/services"
  "github.com/thinkly-edu/thinkly-backend/internal/types"
)

type fakeChatService struct {
  replies   []*types.Message
  err       error
  conversations []*types.Conversation
}

func (f *fakeChatService) StartConversation(ctx context.Context, userID uuid.UUID, title, greeting string) (*types.Conversation, error) {
  if f.err != nil {
    return nil, f.err
  }
  if title == "" {
    title = "New Conversation"
  }
  return &types.Conversation{ID: uuid.New(), UserID: userID, Title: title}, nil
}

func (f *fakeChatService) ListConversations(ctx context.Context, userID uuid.UUID) ([]*types.Conversation, error) {
  return f.conversations, f.err
}

func (f *fakeChatService) GetTranscript(ctx context.Context, conversationID uuid.UUID) ([]*types.Message, error) {
  return f.replies, f.err
}

func (f *fakeChatService) SendMessage(ctx context.Context, userID, conversationID uuid.UUID, content string, preferred types.ModelName) ([]*types.Message, error) {
  if f.err != nil {
    return nil, f.err
  }
  return f.replies, nil
}

func (f *fakeChatService) SetBroadcaster(b services.Broadcaster) {}

type fakeSession struct {
  user *types.User
}

func (f *fakeSession) CurrentUser(ctx context.Context) (*types.User, error) {
  return f.user, nil
}

func chatRouter(svc services.ChatService) *gin.Engine {
  gin.SetMode(gin.TestMode)
  router := gin.New()
  router.HandleMethodNotAllowed = true
  ch := NewChatHandler(svc, &fakeSession{user: &types.User{ID: uuid.New()}})
  api := router.Group("/api")
  api.POST("/chat", ch.SendChat)
  api.POST("/conversations", ch.CreateConversation)
  api.GET("/conversations", ch.ListConversations)
  api.GET("/conversations/:id/messages", ch.GetMessages)
  return router
}

func postChat(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
  t.Helper()
  req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
  req.Header.Set("Content-Type", "application/json")
  rec := httptest.NewRecorder()
  router.ServeHTTP(rec, req)
  return rec
}

func TestSendChatMethodNotAllowed(t *testing.T) {
  router := chatRouter(&fakeChatService{})

  req := httptest.NewRequest(http.MethodGet, "/api/chat", nil)
  rec := httptest.NewRecorder()
  router.ServeHTTP(rec, req)

  if rec.Code != http.StatusMethodNotAllowed {
    t.Fatalf("expected 405, got %d", rec.Code)
  }
}

func TestSendChatMissingFields(t *testing.T) {
  router := chatRouter(&fakeChatService{})

  cases := []struct {
    name string
    body string
  }{
    {"missing message", `{"model":"chatgpt","conversationId":"` + uuid.NewString() + `"}`},
    {"missing model", `{"message":"hi","conversationId":"` + uuid.NewString() + `"}`},
    {"missing conversation", `{"message":"hi","model":"chatgpt"}`},
  }
  for _, tc := range cases {
    t.Run(tc.name, func(t *testing.T) {
      rec := postChat(t, router, tc.body)
      if rec.Code != http.StatusBadRequest {
        t.Fatalf("expected 400, got %d", rec.Code)
      }
    })
  }
}

func TestSendChatReturnsPreferredModelReply(t *testing.T) {
  convoID := uuid.New()
  svc := &fakeChatService{
    replies: []*types.Message{
      {ConversationID: convoID, Role: types.MessageRoleAssistant, Model: types.ModelChatGPT, Content: "chatgpt answer"},
      {ConversationID: convoID, Role: types.MessageRoleAssistant, Model: types.ModelGemini, Content: "gemini answer"},
    },
  }
  router := chatRouter(svc)

  rec := postChat(t, router, `{"message":"2+2","model":"gemini","conversationId":"`+convoID.String()+`"}`)
  if rec.Code != http.StatusOK {
    t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
  }
  var resp struct {
    Content string `json:"content"`
    Model   string `json:"model"`
  }
  if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
    t.Fatalf("failed to decode response: %v", err)
  }
  if resp.Model != "gemini" || resp.Content != "gemini answer" {
    t.Fatalf("expected the gemini reply, got %+v", resp)
  }
}

func TestSendChatConversationBusy(t *testing.T) {
  router := chatRouter(&fakeChatService{err: services.ErrConversationBusy})

  rec := postChat(t, router, `{"message":"hi","model":"chatgpt","conversationId":"`+uuid.NewString()+`"}`)
  if rec.Code != http.StatusConflict {
    t.Fatalf("expected 409, got %d", rec.Code)
  }
}

func TestSendChatConversationNotFound(t *testing.T) {
  router := chatRouter(&fakeChatService{err: gorm.ErrRecordNotFound})

  rec := postChat(t, router, `{"message":"hi","model":"chatgpt","conversationId":"`+uuid.NewString()+`"}`)
  if rec.Code != http.StatusNotFound {
    t.Fatalf("expected 404, got %d", rec.Code)
  }
}

func TestGetMessagesInvalidID(t *testing.T) {
  router := chatRouter(&fakeChatService{})

  req := httptest.NewRequest(http.MethodGet, "/api/conversations/not-a-uuid/messages", nil)
  rec := httptest.NewRecorder()
  router.ServeHTTP(rec, req)

  if rec.Code != http.StatusBadRequest {
    t.Fatalf("expected 400, got %d", rec.Code)
  }
}
