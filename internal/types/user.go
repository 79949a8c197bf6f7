package types

import (
  "time"

  "gorm.io/gorm"
  "github.com/google/uuid"
)

type UserRole string

const (
  UserRoleStudent   UserRole = "student"
  UserRoleTeacher   UserRole = "teacher"
  UserRoleParent    UserRole = "parent"
)

type User struct {
  gorm.Model
  ID                  uuid.UUID                 `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  Role                UserRole                  `gorm:"type:varchar(50);not null;column:role" json:"role"`
  ClassroomID         *uuid.UUID                `gorm:"index" json:"classroomID,omitempty"`
  Classroom           *Classroom                `gorm:"constraint:OnDelete:SET NULL;foreignKey:ClassroomID;references:ID" json:"classroom,omitempty"`

  Email               string                    `gorm:"uniqueIndex;not null;column:email" json:"email"`
  PhoneNumber         *string                   `gorm:"column:phone_number" json:"phoneNumber,omitempty"`
  Password            string                    `gorm:"not null;column:password" json:"-"`
  FirstName           string                    `gorm:"not null;column:first_name" json:"firstName"`
  LastName            string                    `gorm:"not null;column:last_name" json:"lastName"`
  AvatarBucketKey     string                    `gorm:"column:avatar_bucket_key" json:"avatarBucketKey"`
  AvatarURL           string                    `gorm:"column:avatar_url" json:"avatarURL"`

  CreatedAt           time.Time                 `gorm:"not null;default:now()" json:"createdAt"`
  UpdatedAt           time.Time                 `gorm:"not null;default:now()" json:"updatedAt"`
}

func (User) TableName() string {
  return "user"
}
