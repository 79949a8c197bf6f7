package repos

import (
    "context"
    "fmt"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/thinkly-edu/thinkly-backend/internal/logger"
    "github.com/thinkly-edu/thinkly-backend/internal/requestdata"
    "github.com/thinkly-edu/thinkly-backend/internal/types"
)

type UserRepo interface {
    Create(ctx context.Context, tx *gorm.DB, user *types.User) (*types.User, error)
    GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.User, error)
    GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.User, error)
    EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error)
    GetByClassroomID(ctx context.Context, tx *gorm.DB, classroomID uuid.UUID) ([]*types.User, error)
    UpdateClassroom(ctx context.Context, tx *gorm.DB, userID uuid.UUID, classroomID uuid.UUID) error
    UpdateAvatar(ctx context.Context, tx *gorm.DB, userID uuid.UUID, bucketKey, url string) error
    GetMe(ctx context.Context, tx *gorm.DB) (*types.User, error)
}

type userRepo struct {
    db  *gorm.DB
    log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
    return &userRepo{db: db, log: baseLog.With("repo", "UserRepo")}
}

func (ur *userRepo) Create(ctx context.Context, tx *gorm.DB, user *types.User) (*types.User, error) {
    if tx == nil {
        tx = ur.db
    }
    if user.ID == uuid.Nil {
        user.ID = uuid.New()
    }
    if err := tx.WithContext(ctx).Create(user).Error; err != nil {
        ur.log.Error("failed to create user", "error", err)
        return nil, err
    }
    return user, nil
}

func (ur *userRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.User, error) {
    if tx == nil {
        tx = ur.db
    }
    var u types.User
    if err := tx.WithContext(ctx).
        Where("id = ?", id).
        First(&u).Error; err != nil {
        return nil, err
    }
    return &u, nil
}

func (ur *userRepo) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.User, error) {
    if tx == nil {
        tx = ur.db
    }
    var u types.User
    if err := tx.WithContext(ctx).
        Where("email = ?", email).
        First(&u).Error; err != nil {
        return nil, err
    }
    return &u, nil
}

func (ur *userRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
    if tx == nil {
        tx = ur.db
    }
    var count int64
    if err := tx.WithContext(ctx).
        Model(&types.User{}).
        Where("email = ?", email).
        Count(&count).Error; err != nil {
        return false, err
    }
    return count > 0, nil
}

func (ur *userRepo) GetByClassroomID(ctx context.Context, tx *gorm.DB, classroomID uuid.UUID) ([]*types.User, error) {
    if tx == nil {
        tx = ur.db
    }
    var users []*types.User
    if err := tx.WithContext(ctx).
        Where("classroom_id = ?", classroomID).
        Find(&users).Error; err != nil {
        return nil, err
    }
    return users, nil
}

func (ur *userRepo) UpdateClassroom(ctx context.Context, tx *gorm.DB, userID uuid.UUID, classroomID uuid.UUID) error {
    if tx == nil {
        tx = ur.db
    }
    if err := tx.WithContext(ctx).
        Model(&types.User{}).
        Where("id = ?", userID).
        Update("classroom_id", classroomID).Error; err != nil {
        ur.log.Error("failed to update user classroom", "error", err, "userID", userID)
        return err
    }
    return nil
}

func (ur *userRepo) UpdateAvatar(ctx context.Context, tx *gorm.DB, userID uuid.UUID, bucketKey, url string) error {
    if tx == nil {
        tx = ur.db
    }
    if err := tx.WithContext(ctx).
        Model(&types.User{}).
        Where("id = ?", userID).
        Updates(map[string]interface{}{
            "avatar_bucket_key": bucketKey,
            "avatar_url":        url,
        }).Error; err != nil {
        ur.log.Error("failed to update user avatar", "error", err, "userID", userID)
        return err
    }
    return nil
}

// GetMe resolves the authenticated user out of the request data that the auth
// middleware stashed on the context.
func (ur *userRepo) GetMe(ctx context.Context, tx *gorm.DB) (*types.User, error) {
    rd := requestdata.GetRequestData(ctx)
    if rd == nil || rd.UserID == uuid.Nil {
        return nil, fmt.Errorf("no authenticated user on context")
    }
    return ur.GetByID(ctx, tx, rd.UserID)
}
