package middleware

import (
  "net/http"
  "strings"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/thinkly-edu/thinkly-backend/internal/errordata"
  "github.com/thinkly-edu/thinkly-backend/internal/logger"
  "github.com/thinkly-edu/thinkly-backend/internal/requestdata"
  "github.com/thinkly-edu/thinkly-backend/internal/services"
)

type AuthMiddleware struct {
  log           *logger.Logger
  authService   services.AuthService
}

func NewAuthMiddleware(log *logger.Logger, authService services.AuthService) *AuthMiddleware {
  middlewareLogger := log.With("Middleware", "AuthMiddleware")
  return &AuthMiddleware{log: middlewareLogger, authService: authService}
}

func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
  return func(c *gin.Context) {
    if !am.authenticate(c) {
      return
    }
    c.Next()
  }
}

func (am *AuthMiddleware) RequireRole(role string) gin.HandlerFunc {
  return func(c *gin.Context) {
    if !am.authenticate(c) {
      return
    }
    rd := requestdata.GetRequestData(c.Request.Context())
    if rd == nil || rd.UserRole != role {
      c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
      return
    }
    c.Next()
  }
}

// authenticate resolves the token into request data on the context. It aborts
// the request itself on failure so callers only need the boolean.
func (am *AuthMiddleware) authenticate(c *gin.Context) bool {
  tokenString := extractTokenFromAll(c)
  if tokenString == "" {
    c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
    return false
  }
  ctx, err := am.authService.SetContextFromToken(c.Request.Context(), tokenString)
  if err != nil {
    c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
    return false
  }
  ctx = errordata.WithErrorData(ctx)
  c.Request = c.Request.WithContext(ctx)
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden - invalid user id"})
    return false
  }
  return true
}

func extractTokenFromAll(c *gin.Context) string {
  if qToken := c.Query("token"); qToken != "" {
    return qToken
  }
  authHeader := c.GetHeader("Authorization")
  if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
    return authHeader[7:]
  }
  return ""
}
