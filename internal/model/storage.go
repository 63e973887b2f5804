package model

import (
	"context"
	"io"
)

// FileStore is a pluggable backend for uploaded file bytes. Upload returns
// the file reference to record in note metadata: the stored key for local
// backends, a public URL for remote ones.
type FileStore interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64) (string, error)
	Delete(ctx context.Context, key string) error
}
