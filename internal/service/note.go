package service

import (
	"context"
	"fmt"

	"github.com/noteshare/noteshare-server/internal/logger"
	"github.com/noteshare/noteshare-server/internal/model"
)

// Note serves note metadata queries.
type Note struct {
	noteStore model.NoteStore
	logger    *logger.Logger
}

func NewNote(noteStore model.NoteStore, logger *logger.Logger) *Note {
	return &Note{
		noteStore: noteStore,
		logger:    logger,
	}
}

// ListByClass returns notes for the class in insertion order. A class with
// no notes yields an empty slice.
func (s *Note) ListByClass(ctx context.Context, classNumber int) ([]model.Note, error) {
	if classNumber <= 0 {
		return nil, fmt.Errorf("%w: class number must be positive", model.ErrValidation)
	}

	notes, err := s.noteStore.GetByClassNumber(ctx, classNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get notes by class number: %w", err)
	}

	return notes, nil
}
