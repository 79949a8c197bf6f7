package db

import (
  "fmt"

  "gorm.io/driver/postgres"
  "gorm.io/gorm"

  "github.com/thinkly-edu/thinkly-backend/internal/types"
  "github.com/thinkly-edu/thinkly-backend/internal/utils"
  "github.com/thinkly-edu/thinkly-backend/internal/logger"
)

type PostgresService struct {
  db *gorm.DB
  log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
  serviceLog := log.With("service", "PostgresService")

  //1) Get and Set Environment Variables
  log.Info("Attempting to load environment variables for Postgres now...")
  postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
  postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
  postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
  postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
  postgresName := utils.GetEnv("POSTGRES_NAME", "thinkly", log)
  log.Info("Environment variables loaded for Postgres :)")

  //2) Construct DSN From Environment Variables
  dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

  //3) Attempt DB Connection
  log.Info("Attempting to connect to Postgres DB now...")
  db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
    DisableForeignKeyConstraintWhenMigrating: true,
  })
  if err != nil {
    log.Error("Failed to connect to Postgres DB", "error", err)
    return nil, fmt.Errorf("Failed to connect to Postgres DB: %w", err)
  }
  log.Info("Successfully Connected to Postgres DB :)")

  //4) Enable uuid-ossp Extension
  if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
    log.Error("Failed to enable uuid-ossp extension :(", "error", err)
    return nil, fmt.Errorf("failed to enable uuid-ossp extension: %w", err)
  }
  log.Info("uuid-ossp extension enabled or already exists :)")

  return &PostgresService{db: db, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
  s.log.Info("Starting AutoMigrateAll for all GORM models now...")

  err := s.db.AutoMigrate(
    &types.User{},
    &types.Classroom{},
    &types.Conversation{},
    &types.Message{},
    &types.UserToken{},
    &types.Invitation{},
  )
  if err != nil {
    s.log.Error("AutoMigrateAll failed for Base Tables :(", "error", err)
    return err
  }
  s.log.Info("AutoMigrateAll completed successfully for Base Tables :)")

  s.log.Info("Configuring Foreign Key Relationships for Base Tables now...")
  // -- User.classroom_id => classroom.id (ON DELETE SET NULL)
  if err := s.db.Exec(`
      ALTER TABLE "user"
      ADD CONSTRAINT "fk_user_classroom_id"
      FOREIGN KEY ("classroom_id")
      REFERENCES "classroom"("id")
      ON DELETE SET NULL
  `).Error; err != nil {
    return fmt.Errorf("failed to add fk_user_classroom_id: %w", err)
  }
  // -- Classroom.owner_id => user.id (ON DELETE SET NULL)
  if err := s.db.Exec(`
      ALTER TABLE "classroom"
      ADD CONSTRAINT "fk_classroom_owner_id"
      FOREIGN KEY ("owner_id")
      REFERENCES "user"("id")
      ON DELETE SET NULL
  `).Error; err != nil {
    return fmt.Errorf("failed to add fk_classroom_owner_id: %w", err)
  }
  // -- Conversation.user_id => user.id (ON DELETE CASCADE)
  if err := s.db.Exec(`
      ALTER TABLE "conversation"
      ADD CONSTRAINT "fk_conversation_user_id"
      FOREIGN KEY ("user_id")
      REFERENCES "user"("id")
      ON DELETE CASCADE
  `).Error; err != nil {
    return fmt.Errorf("failed to add fk_conversation_user_id: %w", err)
  }
  // -- Message.conversation_id => conversation.id (ON DELETE CASCADE)
  if err := s.db.Exec(`
      ALTER TABLE "message"
      ADD CONSTRAINT "fk_message_conversation_id"
      FOREIGN KEY ("conversation_id")
      REFERENCES "conversation"("id")
      ON DELETE CASCADE
  `).Error; err != nil {
    return fmt.Errorf("failed to add fk_message_conversation_id: %w", err)
  }
  // -- Message.user_id => user.id (ON DELETE SET NULL)
  if err := s.db.Exec(`
      ALTER TABLE "message"
      ADD CONSTRAINT "fk_message_user_id"
      FOREIGN KEY ("user_id")
      REFERENCES "user"("id")
      ON DELETE SET NULL
  `).Error; err != nil {
    return fmt.Errorf("failed to add fk_message_user_id: %w", err)
  }
  // -- UserToken.user_id => user.id (ON DELETE CASCADE)
  if err := s.db.Exec(`
      ALTER TABLE "user_token"
      ADD CONSTRAINT "fk_user_token_user_id"
      FOREIGN KEY ("user_id")
      REFERENCES "user"("id")
      ON DELETE CASCADE
  `).Error; err != nil {
    return fmt.Errorf("failed to add fk_user_token_user_id: %w", err)
  }
  // -- Invitation.invite_user_id => user.id (ON DELETE SET NULL)
  if err := s.db.Exec(`
      ALTER TABLE "invitation"
      ADD CONSTRAINT "fk_invitation_invite_user_id"
      FOREIGN KEY ("invite_user_id")
      REFERENCES "user"("id")
      ON DELETE SET NULL
  `).Error; err != nil {
    return fmt.Errorf("failed to add fk_invitation_invite_user_id: %w", err)
  }
  // -- Invitation.classroom_id => classroom.id (ON DELETE CASCADE)
  if err := s.db.Exec(`
      ALTER TABLE "invitation"
      ADD CONSTRAINT "fk_invitation_classroom_id"
      FOREIGN KEY ("classroom_id")
      REFERENCES "classroom"("id")
      ON DELETE CASCADE
  `).Error; err != nil {
    return fmt.Errorf("failed to add fk_invitation_classroom_id: %w", err)
  }
  s.log.Info("Successfully Added Foreign Key Relationships to Base Tables :)")

  return nil
}

func (s *PostgresService) DB() *gorm.DB {
  return s.db
}
