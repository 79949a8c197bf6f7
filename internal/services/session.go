package services

import (
  "context"

  "github.com/thinkly-edu/thinkly-backend/internal/logger"
  "github.com/thinkly-edu/thinkly-backend/internal/repos"
  "github.com/thinkly-edu/thinkly-backend/internal/types"
)

// SessionProvider resolves the user a request acts for. The persisted flavor
// reads the JWT-derived request data; the ephemeral flavor pins everything to
// the seeded demo user so the relay can run without signing in.
type SessionProvider interface {
  CurrentUser(ctx context.Context) (*types.User, error)
}

type persistedSession struct {
  log       *logger.Logger
  userRepo  repos.UserRepo
}

func NewPersistedSession(log *logger.Logger, userRepo repos.UserRepo) SessionProvider {
  return &persistedSession{
    log:      log.With("service", "SessionProvider"),
    userRepo: userRepo,
  }
}

func (ps *persistedSession) CurrentUser(ctx context.Context) (*types.User, error) {
  return ps.userRepo.GetMe(ctx, nil)
}

type ephemeralSession struct {
  user *types.User
}

func NewEphemeralSession(user *types.User) SessionProvider {
  return &ephemeralSession{user: user}
}

func (es *ephemeralSession) CurrentUser(ctx context.Context) (*types.User, error) {
  return es.user, nil
}
