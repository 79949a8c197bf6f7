package types

import (
  "time"

  "gorm.io/gorm"
  "github.com/google/uuid"
)

type Classroom struct {
  gorm.Model
  ID                  uuid.UUID                 `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  Name                string                    `gorm:"not null;column:name" json:"name"`
  JoinCode            string                    `gorm:"uniqueIndex;not null;column:join_code" json:"joinCode"`
  OwnerID             *uuid.UUID                `gorm:"index" json:"ownerID,omitempty"`
  Owner               *User                     `gorm:"constraint:OnDelete:SET NULL;foreignKey:OwnerID;references:ID" json:"owner,omitempty"`
  AvatarBucketKey     string                    `gorm:"column:avatar_bucket_key" json:"avatarBucketKey"`
  AvatarURL           string                    `gorm:"column:avatar_url" json:"avatarURL"`

  CreatedAt           time.Time                 `gorm:"not null;default:now()" json:"createdAt"`
  UpdatedAt           time.Time                 `gorm:"not null;default:now()" json:"updatedAt"`
}

func (Classroom) TableName() string {
  return "classroom"
}
