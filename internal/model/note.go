package model

import (
	"context"
	"time"
)

// NoteStore defines persistence operations for note metadata.
type NoteStore interface {
	Create(ctx context.Context, note Note) (Note, error)
	GetByClassNumber(ctx context.Context, classNumber int) ([]Note, error)
}

// Note is the metadata record for one uploaded PDF. ClassNumber is a
// free-form grouping tag, not a reference to a class entity. FileReference
// is either a relative filename (disk backend) or a public URL (object
// store backend); FileName keeps the sanitized client name for display.
type Note struct {
	ID            int64
	ClassNumber   int
	FileName      string
	FileReference string
	CreatedAt     time.Time
}
