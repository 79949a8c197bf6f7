package repos

import (
    "context"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/thinkly-edu/thinkly-backend/internal/logger"
    "github.com/thinkly-edu/thinkly-backend/internal/types"
)

type MessageRepo interface {
    Create(ctx context.Context, tx *gorm.DB, message *types.Message) (*types.Message, error)
    GetByConversationID(ctx context.Context, tx *gorm.DB, conversationID uuid.UUID) ([]*types.Message, error)
}

type messageRepo struct {
    db      *gorm.DB
    log     *logger.Logger
}

func NewMessageRepo(db *gorm.DB, baseLog *logger.Logger) MessageRepo {
    return &messageRepo{
        db: db,
        log: baseLog.With("repo", "MessageRepo"),
    }
}

func (mr *messageRepo) Create(ctx context.Context, tx *gorm.DB, message *types.Message) (*types.Message, error) {
    if tx == nil {
        tx = mr.db
    }
    if message.ID == uuid.Nil {
        message.ID = uuid.New()
    }
    if err := tx.WithContext(ctx).Create(message).Error; err != nil {
        mr.log.Error("failed to create message", "error", err)
        return nil, err
    }
    return message, nil
}

// GetByConversationID returns the transcript in insertion order.
func (mr *messageRepo) GetByConversationID(ctx context.Context, tx *gorm.DB, conversationID uuid.UUID) ([]*types.Message, error) {
    if tx == nil {
        tx = mr.db
    }
    var messages []*types.Message
    if err := tx.WithContext(ctx).
        Where("conversation_id = ?", conversationID).
        Order("created_at ASC, seq ASC").
        Find(&messages).Error; err != nil {
        return nil, err
    }
    return messages, nil
}
