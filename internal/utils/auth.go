package utils

import (
  "context"
  "fmt"
  "strings"

  "golang.org/x/crypto/bcrypt"

  "github.com/thinkly-edu/thinkly-backend/internal/logger"
  "github.com/thinkly-edu/thinkly-backend/internal/normalization"
  "github.com/thinkly-edu/thinkly-backend/internal/repos"
  "github.com/thinkly-edu/thinkly-backend/internal/types"
)

func RegisterInputValidation(ctx context.Context, userRepo repos.UserRepo, log *logger.Logger, user *types.User) error {
  if user == nil {
    log.Warn("User is nil, cannot proceed further. Returning error", "user", user)
    return fmt.Errorf("no user given, cannot proceed any further")
  }
  if user.Email == "" {
    log.Warn("Email is nil, cannot proceed further. Returning error", "email", user.Email)
    return fmt.Errorf("an email is required to register")
  }
  emailExists, err := userRepo.EmailExists(ctx, nil, user.Email)
  if err != nil {
    log.Warn("Failed to check if user email exists, error from UserRepo. Returning an error.", "error", err)
    return fmt.Errorf("failed checking user email '%s' existence: %w", user.Email, err)
  }
  if emailExists {
    log.Warn("Email is already in use, cannot continue. Returning an error.", "emailExists", emailExists)
    return fmt.Errorf("email is already in use")
  }
  if user.Password == "" {
    log.Warn("Password is nil, cannot proceed further. Returning error")
    return fmt.Errorf("a password is required to register")
  }
  if user.FirstName == "" {
    log.Warn("First Name is nil, cannot proceed further. Returning error", "firstName", user.FirstName)
    return fmt.Errorf("a first name is required to register")
  }
  if user.LastName == "" {
    log.Warn("Last Name is nil, cannot proceed further. Returning error", "lastName", user.LastName)
    return fmt.Errorf("a last name is required to register")
  }
  switch user.Role {
  case types.UserRoleStudent, types.UserRoleTeacher, types.UserRoleParent:
  case "":
    log.Warn("Role is nil, cannot proceed further. Returning error", "role", user.Role)
    return fmt.Errorf("a role is required to register")
  default:
    log.Warn("Role must be 'student', 'teacher' or 'parent' to proceed further. Returning error", "role", user.Role)
    return fmt.Errorf("role is set incorrectly (must be 'student', 'teacher' or 'parent'): '%s'", user.Role)
  }
  return nil
}

func LoginInputValidation(ctx context.Context, log *logger.Logger, email, password string) error {
  if email == "" {
    log.Warn("Email is an empty string, Cannot proceed.", "email", email)
    return fmt.Errorf("email is an empty string, cannot proceed")
  }
  if password == "" {
    log.Warn("Password is an empty string, Cannot proceed.")
    return fmt.Errorf("password is an empty string, cannot proceed")
  }
  return nil
}

func HashPassword(ctx context.Context, log *logger.Logger, user *types.User) error {
  hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
  if err != nil {
    log.Warn("Failure to hash password for user. Returning error", "error", err)
    return fmt.Errorf("failed to hash password for user")
  }
  user.Password = string(hashedPassword)
  return nil
}

func NormalizeUserFields(ctx context.Context, user *types.User) {
  user.Role = types.UserRole(strings.ToLower(normalization.ParseInputString(string(user.Role))))
  user.Email = strings.ToLower(normalization.ParseInputString(user.Email))
  user.PhoneNumber = normalization.ParseInputStringPtr(user.PhoneNumber)
  user.Password = normalization.ParseInputString(user.Password)
  user.FirstName = normalization.ParseInputString(user.FirstName)
  user.LastName = normalization.ParseInputString(user.LastName)
}
