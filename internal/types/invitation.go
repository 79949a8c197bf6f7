package types

import (
  "time"

  "gorm.io/gorm"
  "github.com/google/uuid"
)

type InvitationStatus string

const (
  InvitationStatusPending   InvitationStatus = "pending"
  InvitationStatusAccepted  InvitationStatus = "accepted"
  InvitationStatusCanceled  InvitationStatus = "canceled"
  InvitationStatusExpired   InvitationStatus = "expired"
)

type InvitationType string

const (
  InvitationTypeJoinClassroomAsStudent    InvitationType = "join_classroom_as_student"
  InvitationTypeJoinClassroomAsTeacher    InvitationType = "join_classroom_as_teacher"
  InvitationTypeTrackStudentAsParent      InvitationType = "track_student_as_parent"
)

type Invitation struct {
  gorm.Model
  ID                  uuid.UUID                 `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
  InviteUserID        uuid.UUID                 `gorm:"index"`
  InviteUser          *User                     `gorm:"constraint:OnDelete:SET NULL;foreignKey:InviteUserID;references:ID"`
  ClassroomID         *uuid.UUID                `gorm:"index"`
  Classroom           *Classroom                `gorm:"constraint:OnDelete:CASCADE;foreignKey:ClassroomID;references:ID"`
  StudentID           *uuid.UUID                `gorm:"index"`
  Student             *User                     `gorm:"constraint:OnDelete:CASCADE;foreignKey:StudentID;references:ID"`

  Token               string                    `gorm:"uniqueIndex;not null"`
  InvitationType      InvitationType            `gorm:"type:varchar(50);not null"`
  Status              InvitationStatus          `gorm:"type:varchar(50);not null;default:'pending'"`
  Email               *string                   `gorm:"column:email"`
  PhoneNumber         *string                   `gorm:"column:phone_number"`
  ExpiresAt           time.Time                 `gorm:"column:expires_at"`

  AcceptedAt          time.Time
  CanceledAt          time.Time

  CreatedAt           time.Time                 `gorm:"not null;default:now()"`
  UpdatedAt           time.Time                 `gorm:"not null;default:now()"`
}

func (Invitation) TableName() string {
  return "invitation"
}
