package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/noteshare/noteshare-server/internal/logger"
	"github.com/noteshare/noteshare-server/internal/model"
)

// SeedAccount is one default account ensured at startup.
type SeedAccount struct {
	Username string
	Password string
	Role     model.Role
}

// Seeder ensures the default accounts exist. It runs once at process start
// and is idempotent: existing accounts are left untouched.
type Seeder struct {
	userStore model.UserStore
	accounts  []SeedAccount
	logger    *logger.Logger
}

func NewSeeder(userStore model.UserStore, accounts []SeedAccount, logger *logger.Logger) *Seeder {
	return &Seeder{
		userStore: userStore,
		accounts:  accounts,
		logger:    logger,
	}
}

// Seed creates every missing default account. Individual failures are
// collected and returned, but one account failing does not stop the rest;
// the caller logs the result and continues startup either way.
func (s *Seeder) Seed(ctx context.Context) error {
	var errs []error
	for _, account := range s.accounts {
		if err := s.ensure(ctx, account); err != nil {
			s.logger.Error("Seeder: failed to ensure account",
				"username", account.Username,
				"error", err.Error())
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Seeder) ensure(ctx context.Context, account SeedAccount) error {
	_, err := s.userStore.GetByUsername(ctx, account.Username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to get user by username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(account.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	_, err = s.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		Username:     account.Username,
		PasswordHash: string(hash),
		Role:         account.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	// Another instance may have seeded the account between the lookup and
	// the insert; the unique constraint makes that outcome fine.
	if errors.Is(err, model.ErrAlreadyExists) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("Seeder: created default account",
		"username", account.Username,
		"role", string(account.Role))

	return nil
}
