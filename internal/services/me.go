package services

import (
  "context"
  "fmt"

  "gorm.io/gorm"
  "github.com/google/uuid"

  "github.com/thinkly-edu/thinkly-backend/internal/logger"
  "github.com/thinkly-edu/thinkly-backend/internal/requestdata"
  "github.com/thinkly-edu/thinkly-backend/internal/types"
  "github.com/thinkly-edu/thinkly-backend/internal/repos"
)

type MeService interface {
  GetMe(ctx context.Context, tx *gorm.DB) (types.User, error)
  GetMyClassroom(ctx context.Context, tx *gorm.DB) (types.Classroom, error)
  GetMyClassmates(ctx context.Context, tx *gorm.DB) ([]*types.User, error)
}

type meService struct {
  db            *gorm.DB
  log           *logger.Logger
  userRepo      repos.UserRepo
  classroomRepo repos.ClassroomRepo
}

func NewMeService(
  db *gorm.DB,
  log *logger.Logger,
  userRepo repos.UserRepo,
  classroomRepo repos.ClassroomRepo,
) MeService {
  serviceLog := log.With("service", "MeService")
  return &meService{
    db: db,
    log: serviceLog,
    userRepo: userRepo,
    classroomRepo: classroomRepo,
  }
}

func (ms *meService) GetMe(ctx context.Context, tx *gorm.DB) (types.User, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil {
    ms.log.Warn("Request Data is not set in context.")
    return types.User{}, fmt.Errorf("request data is not set in context")
  }
  if rd.UserID == uuid.Nil {
    ms.log.Warn("User ID not set in Request Data.")
    return types.User{}, fmt.Errorf("user id not set in request data")
  }

  foundUser, fErr := ms.userRepo.GetByID(ctx, tx, rd.UserID)
  if fErr != nil {
    ms.log.Warn("Error fetching user in GetMe:", "error", fErr)
    return types.User{}, fmt.Errorf("error fetching user: %w", fErr)
  }
  return *foundUser, nil
}

func (ms *meService) GetMyClassroom(ctx context.Context, tx *gorm.DB) (types.Classroom, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil {
    return types.Classroom{}, fmt.Errorf("request data not set in context")
  }
  if rd.ClassroomID == uuid.Nil {
    return types.Classroom{}, fmt.Errorf("user does not belong to any classroom")
  }

  foundClassroom, cErr := ms.classroomRepo.GetByID(ctx, tx, rd.ClassroomID)
  if cErr != nil {
    ms.log.Warn("Error fetching classroom in GetMyClassroom:", "error", cErr)
    return types.Classroom{}, cErr
  }
  return *foundClassroom, nil
}

func (ms *meService) GetMyClassmates(ctx context.Context, tx *gorm.DB) ([]*types.User, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil {
    return nil, fmt.Errorf("request data not set in context")
  }
  if rd.ClassroomID == uuid.Nil {
    return nil, fmt.Errorf("user does not belong to any classroom")
  }
  return ms.userRepo.GetByClassroomID(ctx, tx, rd.ClassroomID)
}
