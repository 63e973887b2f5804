package postgres

import (
	"context"
	"fmt"

	"github.com/noteshare/noteshare-server/internal/model"
)

var _ model.NoteStore = (*NoteRepository)(nil)

type NoteRepository struct {
	db *Connection
}

func NewNoteRepository(db *Connection) *NoteRepository {
	return &NoteRepository{db: db}
}

// Create persists a note in a single INSERT, so it is either fully visible
// to subsequent queries or not persisted at all. Input invariants are also
// enforced here because the repository is the last writer before the row.
func (r *NoteRepository) Create(ctx context.Context, note model.Note) (model.Note, error) {
	if note.ClassNumber <= 0 {
		return model.Note{}, fmt.Errorf("%w: class number must be positive", model.ErrValidation)
	}
	if note.FileReference == "" {
		return model.Note{}, fmt.Errorf("%w: file reference must not be empty", model.ErrValidation)
	}

	const query = `
        INSERT INTO notes (class_number, file_name, file_reference)
        VALUES ($1, $2, $3)
        RETURNING id, class_number, file_name, file_reference, created_at
    `

	var saved model.Note
	err := r.db.QueryRow(ctx, query, note.ClassNumber, note.FileName, note.FileReference).Scan(
		&saved.ID, &saved.ClassNumber, &saved.FileName, &saved.FileReference, &saved.CreatedAt,
	)
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to create note: %w", err)
	}

	return saved, nil
}

// GetByClassNumber returns notes in insertion order. No rows is an empty
// slice, not an error.
func (r *NoteRepository) GetByClassNumber(ctx context.Context, classNumber int) ([]model.Note, error) {
	const query = `
        SELECT id, class_number, file_name, file_reference, created_at
        FROM notes WHERE class_number = $1
        ORDER BY id
    `

	rows, err := r.db.Query(ctx, query, classNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes by class number: %w", err)
	}
	defer rows.Close()

	notes := make([]model.Note, 0)
	for rows.Next() {
		var n model.Note
		if err := rows.Scan(&n.ID, &n.ClassNumber, &n.FileName, &n.FileReference, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read notes: %w", err)
	}

	return notes, nil
}
