package credentials

import (
	"context"
)

// Repository describes persistence for credential records. Implementations
// are backed by SQLite or PostgreSQL and perform per-record inserts rather
// than whole-store rewrites.
type Repository interface {
	// Create inserts a new credential record.
	Create(ctx context.Context, cred *UserCredential) error

	// GetByEmail returns the record for email, or common.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*UserCredential, error)
}
