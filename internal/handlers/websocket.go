package handlers

import (
  "context"
  "net/http"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/gorilla/websocket"

  "github.com/thinkly-edu/thinkly-backend/internal/logger"
  "github.com/thinkly-edu/thinkly-backend/internal/requestdata"
  "github.com/thinkly-edu/thinkly-backend/internal/socket"
)

var upgrader = websocket.Upgrader{
  CheckOrigin: func(r *http.Request) bool {
    return true
  },
}

func WsHandler(hub *socket.Hub, log *logger.Logger) gin.HandlerFunc {
  return func(c *gin.Context) {
    rd := requestdata.GetRequestData(c.Request.Context())
    if rd == nil || rd.UserID == uuid.Nil {
      c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
      return
    }
    conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
    if err != nil {
      log.Warn("Failed to upgrade to websocket", "error", err)
      return
    }

    // The socket outlives the HTTP request, so it gets its own context.
    ctx, cancel := context.WithCancel(context.Background())
    client := socket.NewClient(conn, hub, rd.UserID, cancel, log)

    channels := []string{"user:" + rd.UserID.String()}
    if rd.ClassroomID != uuid.Nil {
      channels = append(channels, "classroom:"+rd.ClassroomID.String())
    }
    hub.Subscribe(client, channels)

    go client.ReadLoop(ctx)
    go client.WriteLoop(ctx)
  }
}
