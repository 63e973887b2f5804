package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noteshare/noteshare-server/internal/model"
)

func TestNewNoteRepository(t *testing.T) {
	db := &Connection{}
	repo := NewNoteRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestNoteRepository_Create_RejectsBadInput(t *testing.T) {
	// Validation runs before any query, so no connection is needed.
	repo := NewNoteRepository(nil)
	ctx := context.Background()

	_, err := repo.Create(ctx, model.Note{ClassNumber: 0, FileReference: "key.pdf"})
	require.ErrorIs(t, err, model.ErrValidation)

	_, err = repo.Create(ctx, model.Note{ClassNumber: 5, FileReference: ""})
	require.ErrorIs(t, err, model.ErrValidation)
}
