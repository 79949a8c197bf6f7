package repos

import (
    "context"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/thinkly-edu/thinkly-backend/internal/logger"
    "github.com/thinkly-edu/thinkly-backend/internal/types"
)

type InvitationRepo interface {
    Create(ctx context.Context, tx *gorm.DB, invitation *types.Invitation) (*types.Invitation, error)
    GetByToken(ctx context.Context, tx *gorm.DB, token string) (*types.Invitation, error)
    UpdateStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, status types.InvitationStatus) error
}

type invitationRepo struct {
    db  *gorm.DB
    log *logger.Logger
}

func NewInvitationRepo(db *gorm.DB, baseLog *logger.Logger) InvitationRepo {
    return &invitationRepo{db: db, log: baseLog.With("repo", "InvitationRepo")}
}

func (ir *invitationRepo) Create(ctx context.Context, tx *gorm.DB, invitation *types.Invitation) (*types.Invitation, error) {
    if tx == nil {
        tx = ir.db
    }
    if invitation.ID == uuid.Nil {
        invitation.ID = uuid.New()
    }
    if err := tx.WithContext(ctx).Create(invitation).Error; err != nil {
        ir.log.Error("failed to create invitation", "error", err)
        return nil, err
    }
    return invitation, nil
}

func (ir *invitationRepo) GetByToken(ctx context.Context, tx *gorm.DB, token string) (*types.Invitation, error) {
    if tx == nil {
        tx = ir.db
    }
    var inv types.Invitation
    if err := tx.WithContext(ctx).
        Where("token = ?", token).
        First(&inv).Error; err != nil {
        return nil, err
    }
    return &inv, nil
}

func (ir *invitationRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, status types.InvitationStatus) error {
    if tx == nil {
        tx = ir.db
    }
    if err := tx.WithContext(ctx).
        Model(&types.Invitation{}).
        Where("id = ?", id).
        Update("status", status).Error; err != nil {
        ir.log.Error("failed to update invitation status", "error", err, "invitationID", id)
        return err
    }
    return nil
}
