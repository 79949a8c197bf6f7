package seed

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/thinkly-edu/thinkly-backend/internal/repos"
	"github.com/thinkly-edu/thinkly-backend/internal/types"
	"github.com/thinkly-edu/thinkly-backend/internal/utils"
)

// SeedAll makes sure the demo student exists and returns it. Ephemeral
// sessions pin every unauthenticated request to this user.
func SeedAll(db *gorm.DB, userRepo repos.UserRepo) (*types.User, error) {
	ctx := context.Background()
	demoEmail := utils.GetEnv("DEMO_USER_EMAIL", "demo@thinkly.app", nil)
	fmt.Println("Running SeedAll... seeding demo user")

	existing, err := userRepo.GetByEmail(ctx, nil, demoEmail)
	if err == nil {
		fmt.Println("SeedAll Complete!")
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up demo user: %w", err)
	}

	demoPassword := utils.GetEnv("DEMO_USER_PASSWORD", "demo-password", nil)
	hashed, hErr := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if hErr != nil {
		return nil, fmt.Errorf("failed to hash demo user password: %w", hErr)
	}
	demoUser := &types.User{
		Email:     demoEmail,
		FirstName: "Demo",
		LastName:  "Student",
		Password:  string(hashed),
		Role:      types.UserRoleStudent,
	}
	created, cErr := userRepo.Create(ctx, nil, demoUser)
	if cErr != nil {
		return nil, fmt.Errorf("failed to create demo user: %w", cErr)
	}
	fmt.Println("SeedAll Complete!")
	return created, nil
}
