package repos

import (
    "context"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/thinkly-edu/thinkly-backend/internal/logger"
    "github.com/thinkly-edu/thinkly-backend/internal/types"
)

type ClassroomRepo interface {
    Create(ctx context.Context, tx *gorm.DB, classroom *types.Classroom) (*types.Classroom, error)
    GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Classroom, error)
    GetByJoinCode(ctx context.Context, tx *gorm.DB, joinCode string) (*types.Classroom, error)
    JoinCodeExists(ctx context.Context, tx *gorm.DB, joinCode string) (bool, error)
    UpdateAvatar(ctx context.Context, tx *gorm.DB, classroomID uuid.UUID, bucketKey, url string) error
}

type classroomRepo struct {
    db  *gorm.DB
    log *logger.Logger
}

func NewClassroomRepo(db *gorm.DB, baseLog *logger.Logger) ClassroomRepo {
    return &classroomRepo{db: db, log: baseLog.With("repo", "ClassroomRepo")}
}

func (clr *classroomRepo) Create(ctx context.Context, tx *gorm.DB, classroom *types.Classroom) (*types.Classroom, error) {
    if tx == nil {
        tx = clr.db
    }
    if classroom.ID == uuid.Nil {
        classroom.ID = uuid.New()
    }
    if err := tx.WithContext(ctx).Create(classroom).Error; err != nil {
        clr.log.Error("failed to create classroom", "error", err)
        return nil, err
    }
    return classroom, nil
}

func (clr *classroomRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Classroom, error) {
    if tx == nil {
        tx = clr.db
    }
    var c types.Classroom
    if err := tx.WithContext(ctx).
        Where("id = ?", id).
        First(&c).Error; err != nil {
        return nil, err
    }
    return &c, nil
}

func (clr *classroomRepo) GetByJoinCode(ctx context.Context, tx *gorm.DB, joinCode string) (*types.Classroom, error) {
    if tx == nil {
        tx = clr.db
    }
    var c types.Classroom
    if err := tx.WithContext(ctx).
        Where("join_code = ?", joinCode).
        First(&c).Error; err != nil {
        return nil, err
    }
    return &c, nil
}

func (clr *classroomRepo) JoinCodeExists(ctx context.Context, tx *gorm.DB, joinCode string) (bool, error) {
    if tx == nil {
        tx = clr.db
    }
    var count int64
    if err := tx.WithContext(ctx).
        Model(&types.Classroom{}).
        Where("join_code = ?", joinCode).
        Count(&count).Error; err != nil {
        return false, err
    }
    return count > 0, nil
}

func (clr *classroomRepo) UpdateAvatar(ctx context.Context, tx *gorm.DB, classroomID uuid.UUID, bucketKey, url string) error {
    if tx == nil {
        tx = clr.db
    }
    if err := tx.WithContext(ctx).
        Model(&types.Classroom{}).
        Where("id = ?", classroomID).
        Updates(map[string]interface{}{
            "avatar_bucket_key": bucketKey,
            "avatar_url":        url,
        }).Error; err != nil {
        clr.log.Error("failed to update classroom avatar", "error", err, "classroomID", classroomID)
        return err
    }
    return nil
}
