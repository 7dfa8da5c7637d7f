package audit

import "context"

// Repository persists login records. Append-only: there is no update or
// delete operation.
type Repository interface {
	// Append stores one record.
	Append(ctx context.Context, rec *LoginRecord) error

	// List returns all records in append order.
	List(ctx context.Context) ([]LoginRecord, error)
}
