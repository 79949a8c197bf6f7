package repos

import (
    "context"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/thinkly-edu/thinkly-backend/internal/logger"
    "github.com/thinkly-edu/thinkly-backend/internal/types"
)

// ConversationRepo is append-and-list only. Transcripts are immutable once
// written, so there is no update or delete.
type ConversationRepo interface {
    Create(ctx context.Context, tx *gorm.DB, convo *types.Conversation) (*types.Conversation, error)
    GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Conversation, error)
    GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Conversation, error)
}

type conversationRepo struct {
    db      *gorm.DB
    log     *logger.Logger
}

func NewConversationRepo(db *gorm.DB, baseLog *logger.Logger) ConversationRepo {
    return &conversationRepo{
        db: db,
        log: baseLog.With("repo", "ConversationRepo"),
    }
}

func (cr *conversationRepo) Create(ctx context.Context, tx *gorm.DB, convo *types.Conversation) (*types.Conversation, error) {
    if tx == nil {
        tx = cr.db
    }
    if convo.ID == uuid.Nil {
        convo.ID = uuid.New()
    }
    if err := tx.WithContext(ctx).Create(convo).Error; err != nil {
        cr.log.Error("failed to create conversation", "error", err)
        return nil, err
    }
    return convo, nil
}

func (cr *conversationRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Conversation, error) {
    if tx == nil {
        tx = cr.db
    }
    var c types.Conversation
    if err := tx.WithContext(ctx).
        Where("id = ?", id).
        First(&c).Error; err != nil {
        return nil, err
    }
    return &c, nil
}

func (cr *conversationRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Conversation, error) {
    if tx == nil {
        tx = cr.db
    }
    var convos []*types.Conversation
    if err := tx.WithContext(ctx).
        Where("user_id = ?", userID).
        Order("created_at DESC").
        Find(&convos).Error; err != nil {
        return nil, err
    }
    return convos, nil
}
