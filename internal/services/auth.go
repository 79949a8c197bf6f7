package services

import (
  "context"
  "fmt"
  "math/rand"
  "time"

  "golang.org/x/crypto/bcrypt"
  "gorm.io/gorm"

  "github.com/golang-jwt/jwt/v5"
  "github.com/google/uuid"

  "github.com/thinkly-edu/thinkly-backend/internal/logger"
  "github.com/thinkly-edu/thinkly-backend/internal/normalization"
  "github.com/thinkly-edu/thinkly-backend/internal/repos"
  "github.com/thinkly-edu/thinkly-backend/internal/requestdata"
  "github.com/thinkly-edu/thinkly-backend/internal/types"
  "github.com/thinkly-edu/thinkly-backend/internal/utils"
)

type JWTClaims struct {
  jwt.RegisteredClaims
  Role          string      `json:"role,omitempty"`
  ClassroomID   string      `json:"classroom_id,omitempty"`
}

type AuthService interface {
  RegisterUser(ctx context.Context, user *types.User, newClassroomName, joinCode string) error
  Login(ctx context.Context, email, password string) (string, string, error)
  Refresh(ctx context.Context) (string, string, error)
  Logout(ctx context.Context) error

  SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)

  GetAccessTTL() time.Duration
}

type authService struct {
  db              *gorm.DB
  log             *logger.Logger
  userRepo        repos.UserRepo
  classroomRepo   repos.ClassroomRepo
  userTokenRepo   repos.UserTokenRepo
  avatarService   AvatarService
  chatService     ChatService
  jwtSecretKey    string
  accessTTL       time.Duration
  refreshTTL      time.Duration
}

func NewAuthService(
  db              *gorm.DB,
  log             *logger.Logger,
  userRepo        repos.UserRepo,
  classroomRepo   repos.ClassroomRepo,
  userTokenRepo   repos.UserTokenRepo,
  avatarService   AvatarService,
  chatService     ChatService,
  jwtSecretKey    string,
  accessTTL       time.Duration,
  refreshTTL      time.Duration,
) AuthService {
  serviceLog := log.With("service", "AuthService")
  return &authService{
    db:            db,
    log:           serviceLog,
    userRepo:      userRepo,
    classroomRepo: classroomRepo,
    userTokenRepo: userTokenRepo,
    avatarService: avatarService,
    chatService:   chatService,
    jwtSecretKey:  jwtSecretKey,
    accessTTL:     accessTTL,
    refreshTTL:    refreshTTL,
  }
}

// RegisterUser creates the user plus their role-specific attachments: a
// teacher gets a fresh classroom with a join code, a student joins an
// existing classroom by code and gets a welcome conversation.
func (as *authService) RegisterUser(ctx context.Context, user *types.User, newClassroomName, joinCode string) error {
  as.log.Info("Starting Register User now...")

  //1) Normalize User Fields
  utils.NormalizeUserFields(ctx, user)

  //2) Checks on user fields
  if vErr := utils.RegisterInputValidation(ctx, as.userRepo, as.log, user); vErr != nil {
    return fmt.Errorf("%w: %v", ErrValidation, vErr)
  }

  //3) Hash Password
  if hErr := utils.HashPassword(ctx, as.log, user); hErr != nil {
    return hErr
  }

  //4) Transaction Body
  var joinedClassroom *types.Classroom
  err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    switch user.Role {
    case types.UserRoleTeacher:
      if err := as.handleTeacherRegistration(ctx, tx, user, newClassroomName); err != nil {
        return err
      }
    case types.UserRoleStudent:
      classroom, err := as.handleStudentRegistration(ctx, tx, user, joinCode)
      if err != nil {
        return err
      }
      joinedClassroom = classroom
    case types.UserRoleParent:
      // Parents attach to students through invitations later.
    }

    //5) Create Final User
    if err := as.createFinalUser(ctx, tx, user); err != nil {
      return err
    }

    //6) Attach teacher ownership
    if user.Role == types.UserRoleTeacher && user.ClassroomID != nil {
      if err := tx.WithContext(ctx).
        Model(&types.Classroom{}).
        Where("id = ?", *user.ClassroomID).
        Update("owner_id", user.ID).Error; err != nil {
        as.log.Warn("Failed to set classroom owner, Cannot proceed. Returning error.", "error", err)
        return fmt.Errorf("failed to set classroom owner: %w", err)
      }
    }
    return nil
  })
  if err != nil {
    return err
  }

  //7) Post-transaction greeting so the welcome conversation references a
  // committed user row
  if joinedClassroom != nil {
    greeting := fmt.Sprintf("Welcome to Classroom %s! How can I help you today?", joinedClassroom.JoinCode)
    title := fmt.Sprintf("Classroom %s", joinedClassroom.JoinCode)
    if _, cErr := as.chatService.StartConversation(ctx, user.ID, title, greeting); cErr != nil {
      as.log.Warn("Failed to start welcome conversation for new student", "error", cErr)
    }
  }
  return nil
}

func (as *authService) handleTeacherRegistration(ctx context.Context, tx *gorm.DB, user *types.User, newClassroomName string) error {
  if newClassroomName == "" {
    as.log.Warn("Teachers must name a new classroom for registration, cannot proceed further. Returning error.")
    return fmt.Errorf("%w: teachers must name a new classroom to register", ErrValidation)
  }
  code, err := as.generateJoinCode(ctx, tx)
  if err != nil {
    return err
  }
  classroom := &types.Classroom{
    ID:       uuid.New(),
    Name:     normalization.ParseInputString(newClassroomName),
    JoinCode: code,
  }
  if avatarErr := as.avatarService.CreateAndUploadClassroomAvatar(ctx, tx, classroom); avatarErr != nil {
    as.log.Warn("Failure to create and upload avatar for new classroom, cannot proceed further. Returning error", "error", avatarErr)
    return fmt.Errorf("failure to create and upload avatar for new classroom: %w", avatarErr)
  }
  created, cErr := as.classroomRepo.Create(ctx, tx, classroom)
  if cErr != nil {
    as.log.Warn("Failed to create new classroom, Cannot proceed further. Returning error.", "error", cErr)
    return fmt.Errorf("failed to create new classroom: %w", cErr)
  }
  user.ClassroomID = &created.ID
  return nil
}

func (as *authService) handleStudentRegistration(ctx context.Context, tx *gorm.DB, user *types.User, joinCode string) (*types.Classroom, error) {
  if joinCode == "" {
    // Students without a code register unattached and join later.
    return nil, nil
  }
  classroom, err := as.classroomRepo.GetByJoinCode(ctx, tx, normalization.ParseInputString(joinCode))
  if err != nil {
    as.log.Warn("Failed to find classroom by join code, Cannot proceed further. Returning error.", "error", err, "joinCode", joinCode)
    return nil, fmt.Errorf("%w: no classroom with join code '%s'", ErrValidation, joinCode)
  }
  user.ClassroomID = &classroom.ID
  return classroom, nil
}

func (as *authService) createFinalUser(ctx context.Context, tx *gorm.DB, user *types.User) error {
  user.ID = uuid.New()
  if err := as.avatarService.CreateAndUploadUserAvatar(ctx, tx, user); err != nil {
    as.log.Warn("Failure from AuthService -> AvatarService to create and upload user avatar", "error", err)
    return fmt.Errorf("failure to create and upload user avatar: %w", err)
  }
  if _, err := as.userRepo.Create(ctx, tx, user); err != nil {
    as.log.Warn("Failure from AuthService -> UserRepo to create final user", "error", err)
    return fmt.Errorf("failure to create user: %w", err)
  }
  return nil
}

func (as *authService) Login(ctx context.Context, userEmail, userPassword string) (string, string, error) {
  //1) Normalize Input
  email := normalization.ParseInputString(userEmail)
  password := normalization.ParseInputString(userPassword)

  //2) Input Validations
  if vErr := utils.LoginInputValidation(ctx, as.log, email, password); vErr != nil {
    return "", "", fmt.Errorf("%w: %v", ErrValidation, vErr)
  }

  //3) Find User By Email
  user, uErr := as.userRepo.GetByEmail(ctx, nil, email)
  if uErr != nil {
    as.log.Warn("Failure to retrieve user by email, Cannot proceed. Returning error.", "error", uErr)
    return "", "", fmt.Errorf("error retrieving user by email: %w", uErr)
  }
  if hErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); hErr != nil {
    as.log.Warn("Invalid password, user password and hash dont match, Cannot proceed. Returning error.", "error", hErr)
    return "", "", fmt.Errorf("invalid password, user password and hash dont match: %w", hErr)
  }

  //4) Issue Tokens
  var accessToken string
  var refreshToken string
  if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if dErr := as.userTokenRepo.DeleteByUserID(ctx, tx, user.ID); dErr != nil {
      as.log.Warn("Failed to clear previous user tokens, Cannot proceed. Returning error.", "error", dErr)
      return fmt.Errorf("failed to clear previous user tokens: %w", dErr)
    }
    tok, genErr := as.generateAccessToken(ctx, tx, user)
    if genErr != nil {
      as.log.Warn("Generate Access Token Error, Cannot proceed. Returning error.", "error", genErr)
      return fmt.Errorf("generate access token error: %w", genErr)
    }
    accessToken = tok
    refreshToken = uuid.New().String()
    userToken := types.UserToken{
      ID:           uuid.New(),
      UserID:       user.ID,
      AccessToken:  accessToken,
      RefreshToken: refreshToken,
      ExpiresAt:    time.Now().Add(as.refreshTTL),
    }
    if _, cErr := as.userTokenRepo.Create(ctx, tx, &userToken); cErr != nil {
      as.log.Warn("Create User Token Error, Cannot proceed. Returning error.", "error", cErr)
      return fmt.Errorf("create user token error: %w", cErr)
    }
    return nil
  }); err != nil {
    return "", "", err
  }
  return accessToken, refreshToken, nil
}

func (as *authService) Refresh(ctx context.Context) (string, string, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil {
    as.log.Warn("No Request Data found in context, Cannot proceed", "requestdata", rd)
    return "", "", fmt.Errorf("no request data found in context")
  }
  if rd.RefreshToken == "" {
    as.log.Warn("RefreshToken in Request Data in context is an empty string, Cannot proceed")
    return "", "", fmt.Errorf("refresh token in request data in context is an empty string")
  }

  var accessToken string
  var newRefreshTokenStr string
  err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    existingToken, fTErr := as.userTokenRepo.GetByRefreshToken(ctx, tx, rd.RefreshToken)
    if fTErr != nil {
      as.log.Warn("Error fetching refresh token, Cannot proceed. Returning error.", "error", fTErr)
      return fmt.Errorf("error fetching refresh token: %w", fTErr)
    }
    if existingToken.ExpiresAt.Before(time.Now()) {
      if dTErr := as.userTokenRepo.DeleteByUserID(ctx, tx, existingToken.UserID); dTErr != nil {
        as.log.Warn("Refresh token expired, error deleting expired refresh token, Cannot proceed. Returning error.", "error", dTErr)
        return fmt.Errorf("refresh token expired, error deleting: %w", dTErr)
      }
      as.log.Warn("Refresh Token Expired, Cannot proceed.")
      return fmt.Errorf("refresh token expired")
    }
    user, uErr := as.userRepo.GetByID(ctx, tx, existingToken.UserID)
    if uErr != nil {
      as.log.Warn("Failed to load user for refresh, Cannot proceed. Returning error.", "error", uErr)
      return fmt.Errorf("failed to load user for refresh: %w", uErr)
    }
    tok, genErr := as.generateAccessToken(ctx, tx, user)
    if genErr != nil {
      as.log.Warn("Failed to generate new access token, Cannot proceed. Returning error.", "error", genErr)
      return fmt.Errorf("failed to generate new access token: %w", genErr)
    }
    accessToken = tok
    newRefreshTokenStr = uuid.New().String()
    newUserToken := types.UserToken{
      ID:           uuid.New(),
      UserID:       user.ID,
      AccessToken:  tok,
      RefreshToken: newRefreshTokenStr,
      ExpiresAt:    time.Now().Add(as.refreshTTL),
    }
    if _, cErr := as.userTokenRepo.Create(ctx, tx, &newUserToken); cErr != nil {
      as.log.Warn("Failed to create new user token, Cannot proceed. Returning error.", "error", cErr)
      return fmt.Errorf("failed to create new user token: %w", cErr)
    }
    if dErr := as.userTokenRepo.DeleteByAccessToken(ctx, tx, existingToken.AccessToken); dErr != nil {
      as.log.Warn("Failed to remove old refresh token, Cannot proceed. Returning error.", "error", dErr)
      return fmt.Errorf("failed to remove old refresh token: %w", dErr)
    }
    return nil
  })
  if err != nil {
    return "", "", err
  }
  return accessToken, newRefreshTokenStr, nil
}

func (as *authService) Logout(ctx context.Context) error {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil {
    as.log.Warn("No Request Data found in context, Cannot proceed.", "requestdata", rd)
    return fmt.Errorf("no request data found in context")
  }
  if rd.TokenString == "" {
    as.log.Warn("TokenString in Request Data is an empty string, Cannot proceed.")
    return fmt.Errorf("token string in request data is an empty string")
  }
  return as.userTokenRepo.DeleteByAccessToken(ctx, nil, rd.TokenString)
}

func (as *authService) generateAccessToken(ctx context.Context, tx *gorm.DB, user *types.User) (string, error) {
  var classroomID string
  if user.ClassroomID != nil && *user.ClassroomID != uuid.Nil {
    classroomID = (*user.ClassroomID).String()
  }
  claims := JWTClaims{
    RegisteredClaims: jwt.RegisteredClaims{
      Subject:   user.ID.String(),
      ExpiresAt: jwt.NewNumericDate(time.Now().Add(as.accessTTL)),
      IssuedAt:  jwt.NewNumericDate(time.Now()),
    },
    Role:        string(user.Role),
    ClassroomID: classroomID,
  }
  token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
  return token.SignedString([]byte(as.jwtSecretKey))
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
  if tokenString == "" {
    return ctx, nil
  }
  parsedToken, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
    return []byte(as.jwtSecretKey), nil
  })
  if err != nil {
    return ctx, fmt.Errorf("failed to parse token: %w", err)
  }
  claims, ok := parsedToken.Claims.(*JWTClaims)
  if !ok || !parsedToken.Valid {
    return ctx, fmt.Errorf("invalid or expired JWT token")
  }
  userID, err := uuid.Parse(claims.Subject)
  if err != nil {
    return ctx, fmt.Errorf("invalid user ID in token: %w", err)
  }
  var classroomID uuid.UUID
  if claims.ClassroomID != "" {
    classroomID, err = uuid.Parse(claims.ClassroomID)
    if err != nil {
      return ctx, fmt.Errorf("invalid Classroom ID in token: %w", err)
    }
  }
  var refreshTokenStr string
  if foundToken, fTErr := as.userTokenRepo.GetByAccessToken(ctx, nil, tokenString); fTErr == nil {
    refreshTokenStr = foundToken.RefreshToken
  }
  rd := &requestdata.RequestData{
    TokenString:  tokenString,
    RefreshToken: refreshTokenStr,
    UserRole:     claims.Role,
    UserID:       userID,
    ClassroomID:  classroomID,
  }
  ctx = requestdata.WithRequestData(ctx, rd)
  return ctx, nil
}

func (as *authService) GetAccessTTL() time.Duration {
  return as.accessTTL
}

const joinCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func (as *authService) generateJoinCode(ctx context.Context, tx *gorm.DB) (string, error) {
  for attempt := 0; attempt < 10; attempt++ {
    code := make([]byte, 6)
    for i := range code {
      code[i] = joinCodeAlphabet[rand.Intn(len(joinCodeAlphabet))]
    }
    exists, err := as.classroomRepo.JoinCodeExists(ctx, tx, string(code))
    if err != nil {
      return "", fmt.Errorf("failed to check join code uniqueness: %w", err)
    }
    if !exists {
      return string(code), nil
    }
  }
  return "", fmt.Errorf("could not generate a unique classroom join code")
}
