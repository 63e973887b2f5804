package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSessionRepository(t *testing.T) {
	db := &Connection{}
	repo := NewSessionRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestSessionRepository_Structure(t *testing.T) {
	repo := &SessionRepository{
		db: nil,
	}

	assert.NotNil(t, repo)
	assert.Nil(t, repo.db)
}
