package model

import "errors"

var (
	// ErrNotFound is returned by stores when no matching row exists.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned on unique-constraint violations.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidCredentials covers both unknown username and wrong
	// password; callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthenticated denies access to anonymous requests.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden denies access to authenticated requests lacking the role.
	ErrForbidden = errors.New("access denied")

	// ErrValidation rejects malformed note metadata.
	ErrValidation = errors.New("validation failed")

	// Upload pipeline rejections. Each is user-visible with its specific reason.
	ErrMissingFile        = errors.New("no file provided")
	ErrMissingClassNumber = errors.New("class number must be a positive integer")
	ErrFileTooLarge       = errors.New("file exceeds maximum allowed size")
	ErrInvalidExtension   = errors.New("only .pdf files are allowed")

	// ErrStoreFailed wraps storage backend failures. The backend diagnostic
	// is logged server-side; clients see only a generic message.
	ErrStoreFailed = errors.New("file storage failed")
)
