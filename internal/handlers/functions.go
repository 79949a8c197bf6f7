package handlers

import (
  "errors"
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/thinkly-edu/thinkly-backend/internal/providers"
  "github.com/thinkly-edu/thinkly-backend/internal/services"
)

// FunctionsHandler exposes the standalone tutoring endpoints. They are
// deliberately unauthenticated and answer their own CORS preflights so they
// can be called straight from a browser.
type FunctionsHandler struct {
  tutorChatService  services.TutorChatService
  essayService      services.EssayService
}

func NewFunctionsHandler(tutorChatService services.TutorChatService, essayService services.EssayService) *FunctionsHandler {
  return &FunctionsHandler{tutorChatService: tutorChatService, essayService: essayService}
}

func setFunctionCORS(c *gin.Context) {
  c.Header("Access-Control-Allow-Origin", "*")
  c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
  c.Header("Access-Control-Allow-Headers", "Content-Type")
}

func (fh *FunctionsHandler) Options(c *gin.Context) {
  setFunctionCORS(c)
  c.Status(http.StatusNoContent)
}

func (fh *FunctionsHandler) TutorChat(c *gin.Context) {
  setFunctionCORS(c)
  var req struct {
    Messages []providers.Message `json:"messages"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  content, err := fh.tutorChatService.Respond(c.Request.Context(), req.Messages)
  if err != nil {
    if errors.Is(err, services.ErrValidation) {
      c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
      return
    }
    c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get response from AI model", "details": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"response": content})
}

func (fh *FunctionsHandler) EssayFeedback(c *gin.Context) {
  setFunctionCORS(c)
  var req struct {
    Essay string `json:"essay"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  feedback, err := fh.essayService.Analyze(c.Request.Context(), req.Essay)
  if err != nil {
    if errors.Is(err, services.ErrValidation) {
      c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
      return
    }
    c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze essay", "details": err.Error()})
    return
  }
  c.JSON(http.StatusOK, feedback)
}
