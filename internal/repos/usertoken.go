package repos

import (
    "context"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/thinkly-edu/thinkly-backend/internal/logger"
    "github.com/thinkly-edu/thinkly-backend/internal/types"
)

type UserTokenRepo interface {
    Create(ctx context.Context, tx *gorm.DB, token *types.UserToken) (*types.UserToken, error)
    GetByRefreshToken(ctx context.Context, tx *gorm.DB, refreshToken string) (*types.UserToken, error)
    GetByAccessToken(ctx context.Context, tx *gorm.DB, accessToken string) (*types.UserToken, error)
    DeleteByAccessToken(ctx context.Context, tx *gorm.DB, accessToken string) error
    DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
}

type userTokenRepo struct {
    db  *gorm.DB
    log *logger.Logger
}

func NewUserTokenRepo(db *gorm.DB, baseLog *logger.Logger) UserTokenRepo {
    return &userTokenRepo{db: db, log: baseLog.With("repo", "UserTokenRepo")}
}

func (utr *userTokenRepo) Create(ctx context.Context, tx *gorm.DB, token *types.UserToken) (*types.UserToken, error) {
    if tx == nil {
        tx = utr.db
    }
    if token.ID == uuid.Nil {
        token.ID = uuid.New()
    }
    if err := tx.WithContext(ctx).Create(token).Error; err != nil {
        utr.log.Error("failed to create user token", "error", err)
        return nil, err
    }
    return token, nil
}

func (utr *userTokenRepo) GetByRefreshToken(ctx context.Context, tx *gorm.DB, refreshToken string) (*types.UserToken, error) {
    if tx == nil {
        tx = utr.db
    }
    var t types.UserToken
    if err := tx.WithContext(ctx).
        Where("refresh_token = ?", refreshToken).
        First(&t).Error; err != nil {
        return nil, err
    }
    return &t, nil
}

func (utr *userTokenRepo) GetByAccessToken(ctx context.Context, tx *gorm.DB, accessToken string) (*types.UserToken, error) {
    if tx == nil {
        tx = utr.db
    }
    var t types.UserToken
    if err := tx.WithContext(ctx).
        Where("access_token = ?", accessToken).
        First(&t).Error; err != nil {
        return nil, err
    }
    return &t, nil
}

func (utr *userTokenRepo) DeleteByAccessToken(ctx context.Context, tx *gorm.DB, accessToken string) error {
    if tx == nil {
        tx = utr.db
    }
    if err := tx.WithContext(ctx).
        Where("access_token = ?", accessToken).
        Delete(&types.UserToken{}).Error; err != nil {
        utr.log.Error("failed to delete user token by access token", "error", err)
        return err
    }
    return nil
}

func (utr *userTokenRepo) DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
    if tx == nil {
        tx = utr.db
    }
    if err := tx.WithContext(ctx).
        Where("user_id = ?", userID).
        Delete(&types.UserToken{}).Error; err != nil {
        utr.log.Error("failed to delete user tokens by user id", "error", err, "userID", userID)
        return err
    }
    return nil
}
