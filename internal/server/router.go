package server

import (
  "github.com/gin-gonic/gin"
  "github.com/gin-contrib/cors"

  "github.com/thinkly-edu/thinkly-backend/internal/handlers"
  "github.com/thinkly-edu/thinkly-backend/internal/middleware"
)

type RouterConfig struct {
  AuthHandler         *handlers.AuthHandler
  AuthMiddleware      *middleware.AuthMiddleware
  ChatHandler         *handlers.ChatHandler
  FunctionsHandler    *handlers.FunctionsHandler
  MeHandler           *handlers.MeHandler
  InvitationHandler   *handlers.InvitationHandler
  WsHandler           gin.HandlerFunc

  // DemoMode opens the chat routes without authentication; every request
  // acts as the seeded demo student.
  DemoMode            bool
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()
  router.HandleMethodNotAllowed = true

  //-----------------------------------------
  // Cors Setup
  //-----------------------------------------
  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:3000",
      "http://thinkly.app",
      "https://thinkly.app",
      "https://www.thinkly.app",
    },
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

  //-----------------------------------------
  // Health Routes
  //-----------------------------------------
  router.GET("/healthz", handlers.Healthz)

  //-----------------------------------------
  // Standalone Function Routes
  //-----------------------------------------
  functions := router.Group("/functions")
  {
    functions.OPTIONS("/tutor-chat", cfg.FunctionsHandler.Options)
    functions.POST("/tutor-chat", cfg.FunctionsHandler.TutorChat)
    functions.OPTIONS("/essay-feedback", cfg.FunctionsHandler.Options)
    functions.POST("/essay-feedback", cfg.FunctionsHandler.EssayFeedback)
  }

  //-----------------------------------------
  // Public Routes
  //-----------------------------------------
  api := router.Group("/api")
  {
    api.POST("/register", cfg.AuthHandler.Register)
    api.POST("/register/invitation", cfg.AuthHandler.RegisterWithInvitation)
    api.POST("/login", cfg.AuthHandler.Login)
  }

  //------------------------------------------
  // Chat Routes (public in demo mode)
  //------------------------------------------
  chat := api.Group("/")
  if !cfg.DemoMode {
    chat.Use(cfg.AuthMiddleware.RequireAuth())
  }
  chat.POST("/chat", cfg.ChatHandler.SendChat)
  chat.POST("/conversations", cfg.ChatHandler.CreateConversation)
  chat.GET("/conversations", cfg.ChatHandler.ListConversations)
  chat.GET("/conversations/:id/messages", cfg.ChatHandler.GetMessages)

  //------------------------------------------
  // Protected Routes
  //------------------------------------------
  protected := api.Group("/")
  protected.Use(cfg.AuthMiddleware.RequireAuth())
  protected.POST("/refresh", cfg.AuthHandler.Refresh)
  protected.POST("/logout", cfg.AuthHandler.Logout)
  protected.GET("/ws", cfg.WsHandler)

  //ME
  protected.GET("/me", cfg.MeHandler.GetMe)
  protected.GET("/myclassroom", cfg.MeHandler.GetMyClassroom)
  protected.GET("/myclassroom/users", cfg.MeHandler.GetMyClassmates)

  //Invitations
  invitations := protected.Group("/invitations")
  invitations.Use(cfg.AuthMiddleware.RequireRole("teacher"))
  invitations.POST("/", cfg.InvitationHandler.SendInvitation)
  invitations.POST("/:id/cancel", cfg.InvitationHandler.CancelInvitation)

  return router
}
