package sessions

import "context"

// CurrentSessionKey is the stable key the session document is stored under.
const CurrentSessionKey = "current_session"

// Repository persists the current-session document as raw bytes. Keeping the
// payload opaque lets the manager treat a corrupt document as absence rather
// than a hard failure.
type Repository interface {
	// Get returns the stored document, or common.ErrNotFound.
	Get(ctx context.Context) ([]byte, error)

	// Put stores the document, replacing any previous one.
	Put(ctx context.Context, data []byte) error

	// Delete removes the document. Deleting an absent document is not an
	// error.
	Delete(ctx context.Context) error
}
