package types

import (
  "time"

  "github.com/google/uuid"
)

type MessageRole string

const (
  MessageRoleUser       MessageRole = "user"
  MessageRoleAssistant  MessageRole = "assistant"
)

type ModelName string

const (
  ModelChatGPT  ModelName = "chatgpt"
  ModelGemini   ModelName = "gemini"
)

type Message struct {
  ID               uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  // Seq breaks created_at ties so transcripts always replay in insertion order.
  Seq              uint64          `gorm:"autoIncrement;uniqueIndex" json:"-"`
  ConversationID   uuid.UUID       `gorm:"index" json:"conversationID"`
  UserID           *uuid.UUID      `gorm:"index;null" json:"userID,omitempty"`
  Role             MessageRole     `gorm:"type:varchar(50);column:role" json:"role"`
  Model            ModelName       `gorm:"type:varchar(50);column:model" json:"model,omitempty"`
  Content          string          `gorm:"column:content" json:"content"`
  CreatedAt        time.Time       `gorm:"not null;default:now()" json:"createdAt"`
  UpdatedAt        time.Time       `gorm:"not null;default:now()" json:"updatedAt"`
}

func (Message) TableName() string {
  return "message"
}
