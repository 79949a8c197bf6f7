package main

import (
  "context"
  "fmt"
  "os"
  "time"

  "github.com/google/uuid"

  "github.com/thinkly-edu/thinkly-backend/internal/logger"
  "github.com/thinkly-edu/thinkly-backend/internal/utils"
  "github.com/thinkly-edu/thinkly-backend/internal/db"
  "github.com/thinkly-edu/thinkly-backend/internal/providers"
  "github.com/thinkly-edu/thinkly-backend/internal/seed"
  "github.com/thinkly-edu/thinkly-backend/internal/repos"
  "github.com/thinkly-edu/thinkly-backend/internal/services"
  "github.com/thinkly-edu/thinkly-backend/internal/socket"
  "github.com/thinkly-edu/thinkly-backend/internal/types"
  "github.com/thinkly-edu/thinkly-backend/internal/handlers"
  "github.com/thinkly-edu/thinkly-backend/internal/middleware"
  "github.com/thinkly-edu/thinkly-backend/internal/server"
)

func main() {
  // Logger Setup
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Environment Variables
  log.Info("Attempting to load environment variables for Main now...")
  jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
  accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
  refreshTokenTTL := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)
  redisAddress := utils.GetEnv("REDIS_ADDRESS", "localhost:6379", log)
  redisPassword := utils.GetEnv("REDIS_PASSWORD", "", log)
  demoMode := utils.GetEnvAsBool("DEMO_MODE", false, log)
  dualFanOut := utils.GetEnvAsBool("TUTOR_DUAL_FANOUT", false, log)
  log.Info("Environment variables loaded for Main :)")

  // Postgres Setup
  log.Info("Setting Up Postgres from Main now...")
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("Fatal error: Cannot init Postgres", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Warn("Postgres auto migration failed", "error", err)
  }
  thePG := postgresService.DB()
  log.Info("Postgres Setup From Main Successful :)")

  // Repositories Setup
  log.Info("Setting Up Repositories from Main now...")
  userRepo := repos.NewUserRepo(thePG, log)
  classroomRepo := repos.NewClassroomRepo(thePG, log)
  conversationRepo := repos.NewConversationRepo(thePG, log)
  messageRepo := repos.NewMessageRepo(thePG, log)
  userTokenRepo := repos.NewUserTokenRepo(thePG, log)
  invitationRepo := repos.NewInvitationRepo(thePG, log)
  log.Info("Repositories Set Up From Main Successful :)")

  // Seed Setup
  log.Info("Attempting to Seed The Postgres From Main now...")
  demoUser, err := seed.SeedAll(thePG, userRepo)
  if err != nil {
    log.Warn("Failed to seed data :(", "error", err)
    demoUser = &types.User{
      ID:        uuid.New(),
      Email:     "demo@thinkly.app",
      FirstName: "Demo",
      LastName:  "Student",
      Role:      types.UserRoleStudent,
    }
  }
  log.Info("Seeding of Postgres From Main Successful :)")

  // Websocket Setup
  log.Info("Setting Up Websocket Hub From Main Now :)")
  wsHub := socket.NewHub(log)
  log.Info("Websocket Hub Set Up From Main Successful :)")

  // Redis PubSub
  log.Info("Setting Up Redis PubSub From Main Now :)")
  redisChanName := "thinkly_hub_broadcast"
  redisPubSub, err := socket.NewRedisPubSub(log, redisAddress, redisPassword, redisChanName)
  if err != nil {
    log.Warn("Failed to init redis pubsub", "error", err)
  } else {
    if err := redisPubSub.StartSubscriber(wsHub); err != nil {
      log.Warn("Failed to subscribe to Redis pub/sub", "error", err)
    } else {
      wsHub.SetRedisPubSub(redisPubSub)
      log.Info("Redis pubsub is active!")
    }
  }
  log.Info("Successfully Set up Redis Pub Sub From Main :)")

  // Model Backend Setup
  log.Info("Setting Up Model Backends from Main now...")
  openAIClient, err := providers.NewOpenAIClient(log)
  if err != nil {
    log.Error("Fatal error: Cannot init OpenAI client", "error", err)
    os.Exit(1)
  }
  var backends []providers.Provider
  backends = append(backends, providers.NewChatGPTProvider(log, openAIClient))
  geminiProvider, err := providers.NewGeminiProvider(context.Background(), log)
  if err != nil {
    log.Warn("Could not init Gemini provider; gemini requests will be rejected", "error", err)
  } else {
    backends = append(backends, geminiProvider)
  }
  log.Info("Model Backends Set Up From Main Successful :)")

  // Services Setup
  log.Info("Setting up Services from Main now...")
  emailService, err := services.NewEmailService(log)
  if err != nil {
    log.Warn("Could not init EmailService", "error", err)
  }
  textService, err := services.NewTextService(log)
  if err != nil {
    log.Warn("Could not init TextService", "error", err)
  }
  bucketService, err := services.NewBucketService(log)
  if err != nil {
    // AvatarService uploads through the bucket on every registration, so a
    // missing bucket is fatal, not degraded.
    log.Error("Fatal error: Cannot init BucketService", "error", err)
    os.Exit(1)
  }
  avatarService, err := services.NewAvatarService(thePG, log, bucketService)
  if err != nil {
    log.Error("Fatal error: Cannot init AvatarService", "error", err)
    os.Exit(1)
  }

  var store services.ConversationStore
  if demoMode {
    store = services.NewMemoryConversationStore()
  } else {
    store = services.NewGormConversationStore(log, conversationRepo, messageRepo)
  }
  chatService := services.NewChatService(log, store, backends, demoMode, dualFanOut)
  chatService.SetBroadcaster(wsHub)

  var sessionProvider services.SessionProvider
  if demoMode {
    sessionProvider = services.NewEphemeralSession(demoUser)
  } else {
    sessionProvider = services.NewPersistedSession(log, userRepo)
  }

  tutorChatService := services.NewTutorChatService(log, openAIClient)
  essayService := services.NewEssayService(log, openAIClient)
  authService := services.NewAuthService(thePG, log, userRepo, classroomRepo, userTokenRepo, avatarService, chatService, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second, time.Duration(refreshTokenTTL)*time.Second)
  meService := services.NewMeService(thePG, log, userRepo, classroomRepo)
  invitationService := services.NewInvitationService(thePG, log, invitationRepo, userRepo, classroomRepo, textService, emailService)
  log.Info("Services Set Up From Main Successful :)")

  // Handler Setup
  log.Info("Setting Up Handlers from Main now...")
  authHandler := handlers.NewAuthHandler(authService, invitationService)
  chatHandler := handlers.NewChatHandler(chatService, sessionProvider)
  functionsHandler := handlers.NewFunctionsHandler(tutorChatService, essayService)
  meHandler := handlers.NewMeHandler(meService)
  invitationHandler := handlers.NewInvitationHandler(invitationService)
  wsHandler := handlers.WsHandler(wsHub, log)
  log.Info("Handlers Set Up From Main Successful :)")

  // MiddleWare Setup
  log.Info("Setting Up Middleware from Main now...")
  authMiddleware := middleware.NewAuthMiddleware(log, authService)
  log.Info("Middleware Set Up From Main Successful :)")

  // Router Setup
  log.Info("Setting Up Router from Main now...")
  router := server.NewRouter(server.RouterConfig{
    AuthHandler:       authHandler,
    AuthMiddleware:    authMiddleware,
    ChatHandler:       chatHandler,
    FunctionsHandler:  functionsHandler,
    MeHandler:         meHandler,
    InvitationHandler: invitationHandler,
    WsHandler:         wsHandler,
    DemoMode:          demoMode,
  })
  log.Info("Router Set Up From Main Successful :)")

  port := utils.GetEnv("PORT", "8080", log)
  fmt.Printf("Server listening on :%s\n", port)
  if err := router.Run(":" + port); err != nil {
    log.Warn("Server failed", "error", err)
  }

  // On Shutdown
  if redisPubSub != nil {
    redisPubSub.Stop()
  }
}
