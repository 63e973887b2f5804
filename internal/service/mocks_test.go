package service

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/noteshare/noteshare-server/internal/model"
)

// MockUserStore mocks the UserStore interface
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (model.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

// MockSessionStore mocks the SessionStore interface
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Create(ctx context.Context, session model.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionStore) GetBySID(ctx context.Context, sid string) (model.Session, error) {
	args := m.Called(ctx, sid)
	return args.Get(0).(model.Session), args.Error(1)
}

func (m *MockSessionStore) RevokeBySID(ctx context.Context, sid string) error {
	args := m.Called(ctx, sid)
	return args.Error(0)
}

// MockNoteStore mocks the NoteStore interface
type MockNoteStore struct {
	mock.Mock
}

func (m *MockNoteStore) Create(ctx context.Context, note model.Note) (model.Note, error) {
	args := m.Called(ctx, note)
	return args.Get(0).(model.Note), args.Error(1)
}

func (m *MockNoteStore) GetByClassNumber(ctx context.Context, classNumber int) ([]model.Note, error) {
	args := m.Called(ctx, classNumber)
	return args.Get(0).([]model.Note), args.Error(1)
}

// MockFileStore mocks the FileStore interface
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Upload(ctx context.Context, key string, reader io.Reader, size int64) (string, error) {
	args := m.Called(ctx, key, reader, size)
	return args.String(0), args.Error(1)
}

func (m *MockFileStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
