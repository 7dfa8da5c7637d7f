// Package authz holds the authorization policy: pure decisions over a
// session snapshot, with no knowledge of transport or storage. The HTTP
// layer maps decisions to responses.
package authz

import "github.com/avoronov/newshub/internal/sessions"

// Decision is the outcome of a policy check.
type Decision int

const (
	// Allow grants access to the protected capability.
	Allow Decision = iota
	// RedirectLogin sends the caller to the login page.
	RedirectLogin
	// RedirectHome sends an authenticated but under-privileged caller home.
	RedirectHome
)

// RequireAuthenticated admits any caller with a session.
func RequireAuthenticated(s *sessions.Session) Decision {
	if s == nil {
		return RedirectLogin
	}
	return Allow
}

// RequireAdmin admits only admin sessions. The no-session check runs before
// the role check: an unauthenticated caller lands on login, an authenticated
// non-admin lands on home.
func RequireAdmin(s *sessions.Session) Decision {
	if s == nil {
		return RedirectLogin
	}
	if !s.IsAdmin() {
		return RedirectHome
	}
	return Allow
}
