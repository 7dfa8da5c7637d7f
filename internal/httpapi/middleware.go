package httpapi

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/avoronov/newshub/internal/auth"
	"github.com/avoronov/newshub/internal/authz"
	"github.com/avoronov/newshub/internal/sessions"
)

const sessionLocalKey = "session"

// sessionFromRequest resolves the caller's session: a valid bearer token
// whose user id matches the current session. Anything else counts as
// unauthenticated.
func (s *Server) sessionFromRequest(c fiber.Ctx) *sessions.Session {
	header := c.Get(fiber.HeaderAuthorization)

	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return nil
	}

	userID, err := auth.GetUserIDFromToken(header[len(prefix):], s.jwtSecret)
	if err != nil {
		return nil
	}

	current := s.sessions.Current()
	if current == nil || current.ID != userID {
		return nil
	}

	return current
}

func (s *Server) requireAuthenticated(c fiber.Ctx) error {
	sess := s.sessionFromRequest(c)

	if authz.RequireAuthenticated(sess) == authz.RedirectLogin {
		return c.Redirect().Status(fiber.StatusFound).To("/login")
	}

	c.Locals(sessionLocalKey, sess)
	return c.Next()
}

func (s *Server) requireAdmin(c fiber.Ctx) error {
	sess := s.sessionFromRequest(c)

	switch authz.RequireAdmin(sess) {
	case authz.RedirectLogin:
		return c.Redirect().Status(fiber.StatusFound).To("/login")
	case authz.RedirectHome:
		return c.Redirect().Status(fiber.StatusFound).To("/")
	}

	c.Locals(sessionLocalKey, sess)
	return c.Next()
}

// sessionFromLocals returns the session stored by the guards.
func sessionFromLocals(c fiber.Ctx) *sessions.Session {
	sess, _ := c.Locals(sessionLocalKey).(*sessions.Session)
	return sess
}
