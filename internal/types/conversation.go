package types

import (
  "time"

  "gorm.io/gorm"
  "github.com/google/uuid"
)

type Conversation struct {
  gorm.Model

  ID          uuid.UUID         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  UserID      uuid.UUID         `gorm:"index" json:"userID"`
  Title       string            `gorm:"column:title" json:"title"`
  CreatedAt   time.Time         `gorm:"not null;default:now()" json:"createdAt"`
  UpdatedAt   time.Time         `gorm:"not null;default:now()" json:"updatedAt"`
}

func (Conversation) TableName() string {
  return "conversation"
}
