package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/avoronov/newshub/internal/articles"
	"github.com/avoronov/newshub/internal/auth"
	"github.com/avoronov/newshub/internal/common"
	"github.com/avoronov/newshub/internal/credentials"
	"github.com/avoronov/newshub/internal/providers/news"
	"github.com/avoronov/newshub/internal/sessions"
	"github.com/avoronov/newshub/internal/usersave"
)

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token   string            `json:"token"`
	Session *sessions.Session `json:"session"`
}

func (s *Server) handleSignup(c fiber.Ctx) error {
	var req signupRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name, email and password are required"})
	}

	session, err := s.sessions.Signup(c.Context(), req.Name, req.Email, req.Password, credentialsRole(req.Role))
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already in use"})
		}
		s.logger.Error(c.Context(), "signup failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return s.respondWithToken(c, fiber.StatusCreated, session)
}

func (s *Server) handleLogin(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	session, err := s.sessions.Login(c.Context(), req.Email, req.Password, c.IP())
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
		}
		s.logger.Error(c.Context(), "login failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return s.respondWithToken(c, fiber.StatusOK, session)
}

func (s *Server) handleLogout(c fiber.Ctx) error {
	if err := s.sessions.Logout(c.Context()); err != nil {
		s.logger.Error(c.Context(), "logout failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	return c.JSON(fiber.Map{"message": "logged out"})
}

func (s *Server) handleCurrentSession(c fiber.Ctx) error {
	session := s.sessions.Current()
	if session == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(session)
}

func (s *Server) handleSearchNews(c fiber.Ctx) error {
	resp := s.news.Search(c.Context(), news.Query{
		Q:        c.Query("q"),
		Country:  c.Query("country"),
		Language: c.Query("language"),
		Page:     c.Query("page"),
	})
	return c.JSON(resp)
}

func (s *Server) handleBreakingNews(c fiber.Ctx) error {
	return c.JSON(s.news.Breaking(c.Context()))
}

func (s *Server) handleWeather(c fiber.Ctx) error {
	city := c.Query("city", s.defaultCity)

	report := s.weather.Current(c.Context(), city)
	if report == nil {
		// degraded: the client simply shows no weather
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(report)
}

func (s *Server) handleListSaved(c fiber.Ctx) error {
	sess := sessionFromLocals(c)

	list, err := s.articles.List(c.Context(), sess.ID)
	if err != nil {
		s.logger.Error(c.Context(), "listing saved articles failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	return c.JSON(list)
}

func (s *Server) handleSaveArticle(c fiber.Ctx) error {
	sess := sessionFromLocals(c)

	var article articles.Article
	if err := c.Bind().Body(&article); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := s.articles.Save(c.Context(), sess.ID, &article); err != nil {
		s.logger.Error(c.Context(), "saving article failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"saved": true})
}

func (s *Server) handleRemoveSaved(c fiber.Ctx) error {
	sess := sessionFromLocals(c)

	removed, err := s.articles.Remove(c.Context(), sess.ID, c.Params("articleID"))
	if err != nil {
		s.logger.Error(c.Context(), "removing article failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.JSON(fiber.Map{"removed": removed})
}

func (s *Server) handleComposeArticle(c fiber.Ctx) error {
	sess := sessionFromLocals(c)

	var draft articles.Article
	if err := c.Bind().Body(&draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	article, err := s.articles.Compose(c.Context(), sess.ID, &draft)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(article)
}

func (s *Server) handleListLogins(c fiber.Ctx) error {
	records, err := s.audit.List(c.Context())
	if err != nil {
		s.logger.Error(c.Context(), "listing login records failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	return c.JSON(fiber.Map{"users": records})
}

func (s *Server) handleSaveUser(c fiber.Ctx) error {
	var rec usersave.UserRecord
	if err := c.Bind().Body(&rec); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}

	if err := s.userSave.Append(rec); err != nil {
		s.logger.Error(c.Context(), "save-user failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Write error"})
	}

	return c.JSON(fiber.Map{"message": "User saved successfully"})
}

// credentialsRole maps the submitted role string to a known role, falling
// back to the plain user role for anything unrecognized.
func credentialsRole(role string) credentials.Role {
	if r := credentials.Role(role); r.Valid() {
		return r
	}
	return credentials.RoleUser
}

func (s *Server) respondWithToken(c fiber.Ctx, status int, session *sessions.Session) error {
	token, err := auth.GenerateToken(session.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		s.logger.Error(c.Context(), "token generation failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.Status(status).JSON(authResponse{Token: token, Session: session})
}
