package service

import "github.com/noteshare/noteshare-server/internal/model"

// Action is a capability a request may ask for.
type Action string

const (
	// ActionViewNotes lists notes for a class. Any authenticated identity.
	ActionViewNotes Action = "view_notes"
	// ActionManageUploads uploads new notes. Admin only.
	ActionManageUploads Action = "manage_uploads"
)

// Authorize decides whether the identity may perform the action. It is a
// pure function: nil identity means unauthenticated, everything else is
// decided from the role alone.
func Authorize(identity *model.Identity, action Action) error {
	if identity == nil {
		return model.ErrUnauthenticated
	}

	switch action {
	case ActionViewNotes:
		return nil
	case ActionManageUploads:
		if identity.Role != model.RoleAdmin {
			return model.ErrForbidden
		}
		return nil
	default:
		return model.ErrForbidden
	}
}
