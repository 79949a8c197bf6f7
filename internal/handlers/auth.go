package handlers

import (
  "net/http"
  "strings"

  "github.com/gin-gonic/gin"

  "github.com/thinkly-edu/thinkly-backend/internal/types"
  "github.com/thinkly-edu/thinkly-backend/internal/services"
)

type AuthHandler struct {
  authService         services.AuthService
  invitationService   services.InvitationService
}

func NewAuthHandler(authService services.AuthService, invitationService services.InvitationService) *AuthHandler {
  return &AuthHandler{authService: authService, invitationService: invitationService}
}

func (ah *AuthHandler) Register(c *gin.Context) {
  var req struct {
    Email             string    `json:"email"`
    PhoneNumber       string    `json:"phone_number,omitempty"`
    FirstName         string    `json:"first_name"`
    LastName          string    `json:"last_name"`
    Password          string    `json:"password"`
    Role              string    `json:"role"`
    NewClassroomName  string    `json:"new_classroom_name,omitempty"`
    JoinCode          string    `json:"join_code,omitempty"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  user := types.User{
    Email:       req.Email,
    PhoneNumber: &req.PhoneNumber,
    FirstName:   req.FirstName,
    LastName:    req.LastName,
    Password:    req.Password,
    Role:        types.UserRole(req.Role),
  }
  err := ah.authService.RegisterUser(c.Request.Context(), &user, req.NewClassroomName, req.JoinCode)
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"success": true})
}

func (ah *AuthHandler) RegisterWithInvitation(c *gin.Context) {
  var req struct {
    Token         string    `json:"token"`
    Email         string    `json:"email,omitempty"`
    PhoneNumber   string    `json:"phone_number,omitempty"`
    FirstName     string    `json:"first_name"`
    LastName      string    `json:"last_name"`
    Password      string    `json:"password"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  if strings.TrimSpace(req.Token) == "" {
    c.JSON(http.StatusBadRequest, gin.H{"error": "missing invitation token"})
    return
  }
  ctx := c.Request.Context()
  inv, err := ah.invitationService.AcceptInvitation(ctx, req.Token)
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  user := types.User{
    Email:       req.Email,
    PhoneNumber: &req.PhoneNumber,
    FirstName:   req.FirstName,
    LastName:    req.LastName,
    Password:    req.Password,
  }
  switch inv.InvitationType {
  case types.InvitationTypeJoinClassroomAsStudent:
    user.Role = types.UserRoleStudent
  case types.InvitationTypeJoinClassroomAsTeacher:
    user.Role = types.UserRoleTeacher
  case types.InvitationTypeTrackStudentAsParent:
    user.Role = types.UserRoleParent
  }
  if inv.ClassroomID != nil {
    user.ClassroomID = inv.ClassroomID
  }
  if user.Email == "" && inv.Email != nil {
    user.Email = *inv.Email
  }
  if err := ah.authService.RegisterUser(ctx, &user, "", ""); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"message": "User successfully registered via invitation"})
}

func (ah *AuthHandler) Login(c *gin.Context) {
  var req struct {
    Email     string    `json:"email"`
    Password  string    `json:"password"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  accessToken, refreshToken, err := ah.authService.Login(c.Request.Context(), req.Email, req.Password)
  if err != nil {
    c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
    return
  }
  accessTTL := ah.authService.GetAccessTTL()
  expiresIn := int(accessTTL.Seconds())

  c.JSON(http.StatusOK, gin.H{"access_token": accessToken, "refresh_token": refreshToken, "expires_in": expiresIn})
}

func (ah *AuthHandler) Refresh(c *gin.Context) {
  accessToken, refreshToken, err := ah.authService.Refresh(c.Request.Context())
  if err != nil {
    c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
    return
  }
  accessTTL := ah.authService.GetAccessTTL()
  expiresIn := int(accessTTL.Seconds())

  c.JSON(http.StatusOK, gin.H{"access_token": accessToken, "refresh_token": refreshToken, "expires_in": expiresIn})
}

func (ah *AuthHandler) Logout(c *gin.Context) {
  err := ah.authService.Logout(c.Request.Context())
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
}
