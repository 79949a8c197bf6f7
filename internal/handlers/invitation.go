package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/thinkly-edu/thinkly-backend/internal/services"
  "github.com/thinkly-edu/thinkly-backend/internal/types"
)

type InvitationHandler struct {
  invitationService services.InvitationService
}

func NewInvitationHandler(invitationService services.InvitationService) *InvitationHandler {
  return &InvitationHandler{invitationService: invitationService}
}

type InvitationSendRequest struct {
  Email           string                `json:"email,omitempty"`
  PhoneNumber     string                `json:"phone_number,omitempty"`
  InvitationType  types.InvitationType  `json:"invitation_type"`
  StudentID       string                `json:"student_id,omitempty"`
}

func (ih *InvitationHandler) SendInvitation(c *gin.Context) {
  var req InvitationSendRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
    return
  }
  invitation := &types.Invitation{
    Email:          &req.Email,
    PhoneNumber:    &req.PhoneNumber,
    InvitationType: req.InvitationType,
  }
  if req.StudentID != "" {
    studentID, err := uuid.Parse(req.StudentID)
    if err != nil {
      c.JSON(http.StatusBadRequest, gin.H{"error": "student_id is not a valid id"})
      return
    }
    invitation.StudentID = &studentID
  }
  if err := ih.invitationService.SendInvitation(c.Request.Context(), invitation); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"message": "Invitation sent successfully"})
}

func (ih *InvitationHandler) CancelInvitation(c *gin.Context) {
  invID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invitation id is not a valid id"})
    return
  }
  if err := ih.invitationService.CancelInvitation(c.Request.Context(), invID); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"message": "Invitation canceled"})
}
