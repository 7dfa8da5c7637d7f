// Package credentials implements the credential store: the record of all
// registered identities, keyed by email.
package credentials

import "time"

// Role is the capability level attached to a credential.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// UserCredential is a registered identity. Records are created on signup and
// never updated in place or deleted. Each email maps to at most one record.
type UserCredential struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
