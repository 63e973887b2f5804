package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/noteshare/noteshare-server/internal/model"
	"github.com/noteshare/noteshare-server/internal/testutil"
)

func defaultAccounts() []SeedAccount {
	return []SeedAccount{
		{Username: "admin", Password: "admin123", Role: model.RoleAdmin},
		{Username: "student", Password: "student123", Role: model.RoleStudent},
	}
}

func TestSeeder_Seed_CreatesMissingAccounts(t *testing.T) {
	ctx := context.Background()
	userStore := &MockUserStore{}
	s := NewSeeder(userStore, defaultAccounts(), testutil.MakeNoopLogger())

	userStore.On("GetByUsername", ctx, "admin").Return(model.User{}, model.ErrNotFound)
	userStore.On("GetByUsername", ctx, "student").Return(model.User{}, model.ErrNotFound)

	var createdUsers []model.User
	userStore.On("Create", ctx, mock.AnythingOfType("model.User")).
		Run(func(args mock.Arguments) {
			createdUsers = append(createdUsers, args.Get(1).(model.User))
		}).
		Return(model.User{}, nil)

	require.NoError(t, s.Seed(ctx))
	require.Len(t, createdUsers, 2)

	admin, student := createdUsers[0], createdUsers[1]
	assert.Equal(t, "admin", admin.Username)
	assert.Equal(t, model.RoleAdmin, admin.Role)
	assert.Equal(t, "student", student.Username)
	assert.Equal(t, model.RoleStudent, student.Role)

	// Passwords are stored hashed, never verbatim.
	assert.NotEqual(t, "admin123", admin.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))
}

func TestSeeder_Seed_Idempotent(t *testing.T) {
	ctx := context.Background()
	userStore := &MockUserStore{}
	s := NewSeeder(userStore, defaultAccounts(), testutil.MakeNoopLogger())

	userStore.On("GetByUsername", ctx, "admin").Return(model.User{Username: "admin", Role: model.RoleAdmin}, nil)
	userStore.On("GetByUsername", ctx, "student").Return(model.User{Username: "student", Role: model.RoleStudent}, nil)

	require.NoError(t, s.Seed(ctx))
	require.NoError(t, s.Seed(ctx))

	userStore.AssertNotCalled(t, "Create")
}

func TestSeeder_Seed_ToleratesConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	userStore := &MockUserStore{}
	s := NewSeeder(userStore, defaultAccounts()[:1], testutil.MakeNoopLogger())

	userStore.On("GetByUsername", ctx, "admin").Return(model.User{}, model.ErrNotFound)
	userStore.On("Create", ctx, mock.AnythingOfType("model.User")).Return(model.User{}, model.ErrAlreadyExists)

	assert.NoError(t, s.Seed(ctx))
}

func TestSeeder_Seed_CollectsFailures(t *testing.T) {
	ctx := context.Background()
	userStore := &MockUserStore{}
	s := NewSeeder(userStore, defaultAccounts(), testutil.MakeNoopLogger())

	userStore.On("GetByUsername", ctx, "admin").Return(model.User{}, errors.New("connection refused"))
	userStore.On("GetByUsername", ctx, "student").Return(model.User{}, model.ErrNotFound)
	userStore.On("Create", ctx, mock.AnythingOfType("model.User")).Return(model.User{}, nil)

	// The admin failure is reported, but the student account still gets
	// created.
	err := s.Seed(ctx)
	assert.Error(t, err)
	userStore.AssertNumberOfCalls(t, "Create", 1)
}
