// Package sessions implements the session manager: the client-side record of
// which identity is currently authenticated. At most one session is active
// per running instance; it is persisted as a single JSON document under a
// stable key so it survives restarts.
package sessions

import "github.com/avoronov/newshub/internal/credentials"

// Session is the snapshot of the authenticated identity. It is derived from
// a credential record at login/signup time and not re-validated afterwards;
// a later credential change does not invalidate it.
type Session struct {
	ID    string           `json:"id"`
	Email string           `json:"email"`
	Name  string           `json:"name"`
	Role  credentials.Role `json:"role"`
}

// IsAdmin reports whether the session carries the admin role.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == credentials.RoleAdmin
}
