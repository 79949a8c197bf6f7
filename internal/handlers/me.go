package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/thinkly-edu/thinkly-backend/internal/services"
)

type MeHandler struct {
  meService services.MeService
}

func NewMeHandler(meService services.MeService) *MeHandler {
  return &MeHandler{meService: meService}
}

func (mh *MeHandler) GetMe(c *gin.Context) {
  user, err := mh.meService.GetMe(c.Request.Context(), nil)
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"user": user})
}

func (mh *MeHandler) GetMyClassroom(c *gin.Context) {
  classroom, err := mh.meService.GetMyClassroom(c.Request.Context(), nil)
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"classroom": classroom})
}

func (mh *MeHandler) GetMyClassmates(c *gin.Context) {
  classmates, err := mh.meService.GetMyClassmates(c.Request.Context(), nil)
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"classmates": classmates})
}
