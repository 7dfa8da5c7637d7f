package articles

import "context"

// Repository persists per-user saved-article sequences. For a given user the
// article ids are unique and insertion order is preserved.
type Repository interface {
	// ListByUser returns the user's articles in insertion order. Unknown
	// users yield an empty slice, never an error.
	ListByUser(ctx context.Context, userID string) ([]Article, error)

	// Save appends the article to the user's sequence. Saving an article id
	// the user already holds is a no-op.
	Save(ctx context.Context, userID string, article *Article) error

	// Remove deletes one article and reports whether anything was removed.
	Remove(ctx context.Context, userID, articleID string) (bool, error)
}
