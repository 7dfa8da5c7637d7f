package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avoronov/newshub/internal/credentials"
	"github.com/avoronov/newshub/internal/sessions"
)

func TestRequireAuthenticated(t *testing.T) {
	tests := []struct {
		name    string
		session *sessions.Session
		want    Decision
	}{
		{name: "no session", session: nil, want: RedirectLogin},
		{name: "user session", session: &sessions.Session{ID: "u1", Role: credentials.RoleUser}, want: Allow},
		{name: "admin session", session: &sessions.Session{ID: "a1", Role: credentials.RoleAdmin}, want: Allow},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RequireAuthenticated(tc.session))
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name    string
		session *sessions.Session
		want    Decision
	}{
		{name: "no session redirects to login", session: nil, want: RedirectLogin},
		{name: "user session redirects to home", session: &sessions.Session{ID: "u1", Role: credentials.RoleUser}, want: RedirectHome},
		{name: "admin session is allowed", session: &sessions.Session{ID: "a1", Role: credentials.RoleAdmin}, want: Allow},
		{name: "unknown role redirects to home", session: &sessions.Session{ID: "x1", Role: "superuser"}, want: RedirectHome},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RequireAdmin(tc.session))
		})
	}
}
