package handlers

import (
  "errors"
  "net/http"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/thinkly-edu/thinkly-backend/internal/errordata"
  "github.com/thinkly-edu/thinkly-backend/internal/providers"
  "github.com/thinkly-edu/thinkly-backend/internal/services"
  "github.com/thinkly-edu/thinkly-backend/internal/types"
)

type ChatHandler struct {
  chatService       services.ChatService
  sessionProvider   services.SessionProvider
}

func NewChatHandler(chatService services.ChatService, sessionProvider services.SessionProvider) *ChatHandler {
  return &ChatHandler{chatService: chatService, sessionProvider: sessionProvider}
}

type chatRequest struct {
  Message         string    `json:"message"`
  Model           string    `json:"model"`
  ConversationID  string    `json:"conversationId"`
}

// SendChat relays one user turn. The reply body carries the turn answered by
// the requested model; any additional turns ride along in messages.
func (ch *ChatHandler) SendChat(c *gin.Context) {
  var req chatRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  if req.Message == "" || req.Model == "" || req.ConversationID == "" {
    c.JSON(http.StatusBadRequest, gin.H{"error": "message, model and conversationId are required"})
    return
  }
  conversationID, err := uuid.Parse(req.ConversationID)
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "conversationId is not a valid id"})
    return
  }
  ctx := c.Request.Context()
  user, err := ch.sessionProvider.CurrentUser(ctx)
  if err != nil {
    c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
    return
  }
  replies, err := ch.chatService.SendMessage(ctx, user.ID, conversationID, req.Message, types.ModelName(req.Model))
  if err != nil {
    ch.renderChatError(c, err)
    return
  }
  if len(replies) == 0 {
    c.JSON(http.StatusInternalServerError, gin.H{"error": "no reply produced"})
    return
  }
  preferred := replies[0]
  for _, reply := range replies {
    if reply.Model == types.ModelName(req.Model) {
      preferred = reply
      break
    }
  }
  c.JSON(http.StatusOK, gin.H{
    "content":  preferred.Content,
    "model":    string(preferred.Model),
    "messages": replies,
  })
}

func (ch *ChatHandler) renderChatError(c *gin.Context, err error) {
  switch {
  case errors.Is(err, services.ErrValidation):
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
  case errors.Is(err, services.ErrConversationBusy):
    c.JSON(http.StatusConflict, gin.H{"error": "a reply is already in flight for this conversation"})
  case errors.Is(err, gorm.ErrRecordNotFound):
    c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
  case errors.Is(err, providers.ErrUpstream):
    detail := err.Error()
    if ed := errordata.GetErrorData(c.Request.Context()); ed != nil && ed.HasDetail() {
      detail = ed.Detail
    }
    c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get response from AI model", "details": detail})
  default:
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
  }
}

func (ch *ChatHandler) CreateConversation(c *gin.Context) {
  var req struct {
    Title     string    `json:"title,omitempty"`
    Greeting  string    `json:"greeting,omitempty"`
  }
  if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  ctx := c.Request.Context()
  user, err := ch.sessionProvider.CurrentUser(ctx)
  if err != nil {
    c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
    return
  }
  convo, err := ch.chatService.StartConversation(ctx, user.ID, req.Title, req.Greeting)
  if err != nil {
    ch.renderChatError(c, err)
    return
  }
  c.JSON(http.StatusOK, convo)
}

func (ch *ChatHandler) ListConversations(c *gin.Context) {
  ctx := c.Request.Context()
  user, err := ch.sessionProvider.CurrentUser(ctx)
  if err != nil {
    c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
    return
  }
  conversations, err := ch.chatService.ListConversations(ctx, user.ID)
  if err != nil {
    ch.renderChatError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"conversations": conversations})
}

func (ch *ChatHandler) GetMessages(c *gin.Context) {
  conversationID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "conversation id is not a valid id"})
    return
  }
  messages, err := ch.chatService.GetTranscript(c.Request.Context(), conversationID)
  if err != nil {
    ch.renderChatError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"messages": messages})
}
