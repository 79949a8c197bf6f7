package services

import (
  "context"
  "encoding/base64"
  "fmt"
  "io/ioutil"
  "os"
  "path/filepath"
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/thinkly-edu/thinkly-backend/internal/logger"
  "github.com/thinkly-edu/thinkly-backend/internal/repos"
  "github.com/thinkly-edu/thinkly-backend/internal/requestdata"
  "github.com/thinkly-edu/thinkly-backend/internal/types"
)

type InvitationService interface {
  SendInvitation(ctx context.Context, inv *types.Invitation) error
  AcceptInvitation(ctx context.Context, token string) (*types.Invitation, error)
  CancelInvitation(ctx context.Context, invID uuid.UUID) error
}

type invitationService struct {
  db              *gorm.DB
  log             *logger.Logger
  invitationRepo  repos.InvitationRepo
  userRepo        repos.UserRepo
  classroomRepo   repos.ClassroomRepo
  textService     TextService
  emailService    EmailService
  brandLogoPath   string
  frontEndURL     string
}

func NewInvitationService(
  db              *gorm.DB,
  log             *logger.Logger,
  invitationRepo  repos.InvitationRepo,
  userRepo        repos.UserRepo,
  classroomRepo   repos.ClassroomRepo,
  textService     TextService,
  emailService    EmailService,
) InvitationService {
  serviceLog := log.With("service", "InvitationService")
  rawLogoPath := os.Getenv("THINKLY_BRAND_LOGO_PATH")
  var finalLogoBase64 string
  if rawLogoPath != "" {
    base64Logo, err := readFileAsBase64(rawLogoPath)
    if err != nil {
      serviceLog.Warn("Failed to read or encode brand logo from THINKLY_BRAND_LOGO_PATH; using fallback HTTP link", "error", err)
      finalLogoBase64 = "https://thinkly.app/thinkly-logo.png"
    } else {
      finalLogoBase64 = base64Logo
      serviceLog.Debug("Using base64-encoded brand logo from THINKLY_BRAND_LOGO_PATH")
    }
  } else {
    serviceLog.Warn("THINKLY_BRAND_LOGO_PATH not set; using fallback HTTP link.")
    finalLogoBase64 = "https://thinkly.app/thinkly-logo.png"
  }
  frontEndURL := os.Getenv("THINKLY_FRONT_END_URL")
  if frontEndURL == "" {
    frontEndURL = "http://localhost:3000"
    serviceLog.Warn("THINKLY_FRONT_END_URL not set; using fallback front end URL.")
  }
  return &invitationService{
    db:             db,
    log:            serviceLog,
    invitationRepo: invitationRepo,
    userRepo:       userRepo,
    classroomRepo:  classroomRepo,
    textService:    textService,
    emailService:   emailService,
    brandLogoPath:  finalLogoBase64,
    frontEndURL:    frontEndURL,
  }
}

func (is *invitationService) SendInvitation(ctx context.Context, inv *types.Invitation) error {
  if inv == nil {
    return fmt.Errorf("%w: invitation is nil", ErrValidation)
  }
  rd := requestdata.GetRequestData(ctx)
  if rd == nil {
    is.log.Warn("Request Data not set in context, Cannot proceed.")
    return fmt.Errorf("request data not set in context")
  }
  if rd.UserID == uuid.Nil {
    is.log.Warn("UserID not set in request data, Cannot proceed.")
    return fmt.Errorf("user id not set in request data")
  }

  //1) Get the inviting user and ensure their role may send this invitation
  user, uErr := is.userRepo.GetByID(ctx, nil, rd.UserID)
  if uErr != nil {
    is.log.Warn("Error fetching user by ID", "error", uErr)
    return fmt.Errorf("failed to fetch user by ID: %w", uErr)
  }
  if user.Role != types.UserRoleTeacher {
    is.log.Warn("Only teachers may send invitations.", "role", user.Role)
    return fmt.Errorf("%w: only teachers may send invitations", ErrValidation)
  }

  //2) Determine whether inviting via phone or email. Exactly one must be set.
  var inviteMethod string
  if inv.Email != nil && *inv.Email != "" && inv.PhoneNumber != nil && *inv.PhoneNumber != "" {
    return fmt.Errorf("%w: cannot have both email and phone number set for an invitation", ErrValidation)
  } else if (inv.Email == nil || *inv.Email == "") && (inv.PhoneNumber == nil || *inv.PhoneNumber == "") {
    return fmt.Errorf("%w: must provide either an email or phone number for invitation", ErrValidation)
  } else if inv.Email != nil && *inv.Email != "" {
    inviteMethod = "email"
  } else {
    inviteMethod = "phone"
  }

  //3) Validate InvitationType and attach the teacher's classroom
  switch inv.InvitationType {
  case types.InvitationTypeJoinClassroomAsStudent, types.InvitationTypeJoinClassroomAsTeacher:
    if user.ClassroomID == nil || *user.ClassroomID == uuid.Nil {
      return fmt.Errorf("%w: teacher has no classroom to invite into", ErrValidation)
    }
    inv.ClassroomID = user.ClassroomID
  case types.InvitationTypeTrackStudentAsParent:
    if inv.StudentID == nil || *inv.StudentID == uuid.Nil {
      return fmt.Errorf("%w: a student must be named for a parent tracking invitation", ErrValidation)
    }
  default:
    return fmt.Errorf("%w: unknown invitation type: %s", ErrValidation, inv.InvitationType)
  }

  //4) Transaction to check duplicates and create the invitation row
  err := is.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if inviteMethod == "email" {
      emailExists, eErr := is.userRepo.EmailExists(ctx, tx, *inv.Email)
      if eErr != nil {
        is.log.Warn("Error checking email existence", "error", eErr)
        return fmt.Errorf("failed checking email existence: %w", eErr)
      }
      if emailExists && inv.InvitationType != types.InvitationTypeTrackStudentAsParent {
        return fmt.Errorf("%w: that email is already in use", ErrValidation)
      }
    }
    inv.InviteUserID = user.ID
    inv.Status = types.InvitationStatusPending
    if inv.Token == "" {
      inv.Token = uuid.NewString()
    }
    if inv.ExpiresAt.IsZero() {
      inv.ExpiresAt = time.Now().Add(48 * time.Hour)
    }
    if _, cErr := is.invitationRepo.Create(ctx, tx, inv); cErr != nil {
      return fmt.Errorf("failed to create invitation: %w", cErr)
    }
    return nil
  })
  if err != nil {
    return err
  }

  //5) Post-transaction send (so the DB changes are not rolled back if sending fails)
  linkURL := fmt.Sprintf("%s/register?token=%s", is.frontEndURL, inv.Token)
  if inviteMethod == "email" {
    var classroomName string
    var classroomAvatarURL string
    if inv.ClassroomID != nil && *inv.ClassroomID != uuid.Nil {
      if classroom, cErr := is.classroomRepo.GetByID(ctx, nil, *inv.ClassroomID); cErr == nil {
        classroomName = classroom.Name
        classroomAvatarURL = classroom.AvatarURL
      }
    }
    htmlContent := is.renderInvitationHTML(inv.InvitationType, linkURL, classroomName, classroomAvatarURL)
    plainText := fmt.Sprintf("You have been invited to join Thinkly! Click here: %s", linkURL)
    subject := "You've Been Invited to Thinkly!"

    if err := is.emailService.SendEmail(ctx, *inv.Email, subject, plainText, htmlContent, "invitation"); err != nil {
      is.log.Warn("Failed to send invitation email", "error", err)
      return err
    }
  } else {
    textBody := fmt.Sprintf("Thinkly invitation! Click here: %s", linkURL)
    if err := is.textService.SendText(ctx, *inv.PhoneNumber, textBody); err != nil {
      is.log.Warn("Failed to send invitation text", "error", err)
      return err
    }
  }
  return nil
}

func (is *invitationService) AcceptInvitation(ctx context.Context, token string) (*types.Invitation, error) {
  if token == "" {
    return nil, fmt.Errorf("%w: invitation token is empty", ErrValidation)
  }
  var out *types.Invitation
  err := is.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    inv, gErr := is.invitationRepo.GetByToken(ctx, tx, token)
    if gErr != nil {
      is.log.Warn("No invitation found for token", "error", gErr)
      return fmt.Errorf("no invitation found for token: %w", gErr)
    }
    if inv.Status != types.InvitationStatusPending {
      return fmt.Errorf("%w: invitation is not pending, status: %s", ErrValidation, inv.Status)
    }
    if inv.ExpiresAt.Before(time.Now()) {
      if uErr := is.invitationRepo.UpdateStatus(ctx, tx, inv.ID, types.InvitationStatusExpired); uErr != nil {
        return fmt.Errorf("failed to mark invitation expired: %w", uErr)
      }
      return fmt.Errorf("%w: invitation has expired", ErrValidation)
    }
    if uErr := is.invitationRepo.UpdateStatus(ctx, tx, inv.ID, types.InvitationStatusAccepted); uErr != nil {
      return fmt.Errorf("failed to mark invitation accepted: %w", uErr)
    }
    inv.Status = types.InvitationStatusAccepted
    inv.AcceptedAt = time.Now()
    out = inv
    return nil
  })
  if err != nil {
    return nil, err
  }
  return out, nil
}

func (is *invitationService) CancelInvitation(ctx context.Context, invID uuid.UUID) error {
  if invID == uuid.Nil {
    return fmt.Errorf("%w: invalid invitation id", ErrValidation)
  }
  return is.invitationRepo.UpdateStatus(ctx, nil, invID, types.InvitationStatusCanceled)
}

func (is *invitationService) renderInvitationHTML(invType types.InvitationType, linkURL, classroomName, classroomAvatarURL string) string {
  headline := "You've been invited to Thinkly!"
  switch invType {
  case types.InvitationTypeJoinClassroomAsStudent:
    headline = fmt.Sprintf("You've been invited to join %s as a student!", classroomName)
  case types.InvitationTypeJoinClassroomAsTeacher:
    headline = fmt.Sprintf("You've been invited to co-teach %s!", classroomName)
  case types.InvitationTypeTrackStudentAsParent:
    headline = "You've been invited to follow your student's progress on Thinkly!"
  }
  avatarImg := ""
  if classroomAvatarURL != "" {
    avatarImg = fmt.Sprintf(`<img src="%s" alt="classroom" width="64" height="64" style="border-radius:50%%;"/>`, classroomAvatarURL)
  }
  return fmt.Sprintf(`
<div style="font-family:sans-serif;max-width:480px;margin:0 auto;text-align:center;">
  <img src="%s" alt="Thinkly" width="120"/>
  %s
  <h2>%s</h2>
  <p>Click the button below to create your account and get started.</p>
  <a href="%s" style="display:inline-block;padding:12px 24px;background:#4f46e5;color:#fff;border-radius:6px;text-decoration:none;">Accept Invitation</a>
</div>`, is.brandLogoPath, avatarImg, headline, linkURL)
}

func readFileAsBase64(path string) (string, error) {
  data, err := ioutil.ReadFile(path)
  if err != nil {
    return "", err
  }
  ext := filepath.Ext(path)
  var mimeType string
  switch ext {
  case ".png":
    mimeType = "image/png"
  case ".jpg", ".jpeg":
    mimeType = "image/jpeg"
  case ".svg":
    mimeType = "image/svg+xml"
  default:
    mimeType = "image/png"
  }
  encoded := base64.StdEncoding.EncodeToString(data)
  return "data:" + mimeType + ";base64," + encoded, nil
}
