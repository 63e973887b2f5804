package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/noteshare/noteshare-server/internal/filex"
	"github.com/noteshare/noteshare-server/internal/logger"
	"github.com/noteshare/noteshare-server/internal/model"
)

// storeRetryDelay is the pause before the single retry of a failed
// backend store call.
const storeRetryDelay = 500 * time.Millisecond

// UploadParams describes one received upload.
type UploadParams struct {
	ClassNumber int
	FileName    string
	Size        int64
	Reader      io.Reader
}

// Upload runs the upload pipeline: validate the request, sanitize the
// filename, persist the bytes to the configured backend, and record the
// note metadata. Stored objects are keyed by a generated ID, never by the
// client-supplied name; the sanitized name is kept as display metadata.
type Upload struct {
	noteStore    model.NoteStore
	fileStore    model.FileStore
	maxSize      int64
	storeTimeout time.Duration
	logger       *logger.Logger
}

func NewUpload(
	noteStore model.NoteStore,
	fileStore model.FileStore,
	maxSize int64,
	storeTimeout time.Duration,
	logger *logger.Logger,
) *Upload {
	return &Upload{
		noteStore:    noteStore,
		fileStore:    fileStore,
		maxSize:      maxSize,
		storeTimeout: storeTimeout,
		logger:       logger,
	}
}

// Process takes a received upload to its terminal state and returns the
// recorded note. Rejections come back as the sentinel errors in model;
// backend failures come back wrapped in model.ErrStoreFailed after one
// retry.
func (s *Upload) Process(ctx context.Context, params UploadParams) (model.Note, error) {
	name, data, err := s.validate(params)
	if err != nil {
		s.logger.Info("Upload service: upload rejected",
			"file_name", params.FileName,
			"class_number", params.ClassNumber,
			"reason", err.Error())
		return model.Note{}, err
	}

	key := uuid.NewString() + ".pdf"

	ref, err := s.store(ctx, key, data)
	if err != nil {
		s.logger.Error("Upload service: store failed",
			"key", key,
			"error", err.Error())
		return model.Note{}, fmt.Errorf("%w: %w", model.ErrStoreFailed, err)
	}

	note, err := s.noteStore.Create(ctx, model.Note{
		ClassNumber:   params.ClassNumber,
		FileName:      name,
		FileReference: ref,
	})
	if err != nil {
		// Compensate so the stored bytes do not become an orphan.
		if delErr := s.fileStore.Delete(ctx, key); delErr != nil {
			s.logger.Error("Upload service: failed to delete stored file after record failure",
				"key", key,
				"error", delErr.Error())
		}
		return model.Note{}, fmt.Errorf("failed to record note: %w", err)
	}

	s.logger.Info("Upload service: upload recorded",
		"note_id", note.ID,
		"class_number", note.ClassNumber,
		"file_name", note.FileName)

	return note, nil
}

// validate covers the Received and Validated stages. It returns the
// sanitized display name and the full payload.
func (s *Upload) validate(params UploadParams) (string, []byte, error) {
	if params.Reader == nil || params.FileName == "" {
		return "", nil, model.ErrMissingFile
	}
	if params.ClassNumber <= 0 {
		return "", nil, model.ErrMissingClassNumber
	}
	if params.Size > s.maxSize {
		return "", nil, model.ErrFileTooLarge
	}

	// The declared size is client-supplied; count the actual bytes too.
	data, err := io.ReadAll(io.LimitReader(params.Reader, s.maxSize+1))
	if err != nil {
		return "", nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > s.maxSize {
		return "", nil, model.ErrFileTooLarge
	}
	if len(data) == 0 {
		return "", nil, model.ErrMissingFile
	}

	name := filex.Sanitize(params.FileName)
	if name == "" || !filex.HasExtension(name, ".pdf") {
		return "", nil, model.ErrInvalidExtension
	}

	return name, data, nil
}

// store persists the payload with a bounded timeout and a single retry.
func (s *Upload) store(ctx context.Context, key string, data []byte) (string, error) {
	ref, err := s.storeOnce(ctx, key, data)
	if err == nil {
		return ref, nil
	}

	s.logger.Info("Upload service: retrying store",
		"key", key,
		"error", err.Error())

	select {
	case <-time.After(storeRetryDelay):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	return s.storeOnce(ctx, key, data)
}

func (s *Upload) storeOnce(ctx context.Context, key string, data []byte) (string, error) {
	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	return s.fileStore.Upload(storeCtx, key, bytes.NewReader(data), int64(len(data)))
}
