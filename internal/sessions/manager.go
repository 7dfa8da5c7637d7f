package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/avoronov/newshub/internal/audit"
	"github.com/avoronov/newshub/internal/common"
	"github.com/avoronov/newshub/internal/credentials"
	"github.com/avoronov/newshub/internal/logging"
)

// Manager owns the current session. Login and signup establish it, logout
// clears it, and Restore brings it back from storage on startup.
//
// Login appends a login audit record; signup deliberately does not, matching
// the historical behavior where only explicit logins are audited.
type Manager struct {
	creds  *credentials.Service
	repo   Repository
	audit  *audit.Service
	logger logging.Logger

	mu      sync.RWMutex
	current *Session
}

func NewManager(creds *credentials.Service, repo Repository, auditSvc *audit.Service, logger logging.Logger) *Manager {
	return &Manager{creds: creds, repo: repo, audit: auditSvc, logger: logger}
}

// Login authenticates against the credential store and, on success, makes
// the resulting session current, persists it, and records a login event.
// On failure no session is created and nothing is recorded; the returned
// error is common.ErrInvalidCredentials for bad credentials.
func (m *Manager) Login(ctx context.Context, email, password, ip string) (*Session, error) {
	cred, err := m.creds.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	session := sessionFromCredential(cred)
	if err := m.persist(ctx, session); err != nil {
		return nil, err
	}

	// The audit log is a side effect of login, never a reason to fail it.
	if err := m.audit.Record(ctx, session.ID, session.Email, ip); err != nil {
		m.logger.Warn(ctx, "failed to record login event", "error", err)
	}

	return session, nil
}

// Signup registers a new credential and immediately establishes a session
// for it; no separate login step and no audit entry.
func (m *Manager) Signup(ctx context.Context, name, email, password string, role credentials.Role) (*Session, error) {
	cred, err := m.creds.Register(ctx, email, name, password, role)
	if err != nil {
		return nil, err
	}

	session := sessionFromCredential(cred)
	if err := m.persist(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// Restore loads the persisted session, typically once at startup. A missing
// document yields (nil, nil). A document that fails to decode is discarded
// and also yields (nil, nil): the worst case is behaving as if nobody was
// logged in.
func (m *Manager) Restore(ctx context.Context) (*Session, error) {
	data, err := m.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		m.logger.Warn(ctx, "discarding malformed session document", "error", err)
		if err := m.repo.Delete(ctx); err != nil {
			m.logger.Warn(ctx, "failed to clear malformed session", "error", err)
		}
		return nil, nil
	}

	if session.Role == "" {
		session.Role = credentials.RoleUser
	}

	m.mu.Lock()
	m.current = &session
	m.mu.Unlock()

	return &session, nil
}

// Logout clears the current session. Safe to call with no active session.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()

	return m.repo.Delete(ctx)
}

// Current returns the active session, or nil.
func (m *Manager) Current() *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// IsAdmin reports whether a session exists and carries the admin role.
func (m *Manager) IsAdmin() bool {
	return m.Current().IsAdmin()
}

func (m *Manager) persist(ctx context.Context, session *Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := m.repo.Put(ctx, data); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	m.mu.Lock()
	m.current = session
	m.mu.Unlock()

	return nil
}

func sessionFromCredential(cred *credentials.UserCredential) *Session {
	role := cred.Role
	if role == "" {
		role = credentials.RoleUser
	}
	return &Session{
		ID:    cred.ID,
		Email: cred.Email,
		Name:  cred.Name,
		Role:  role,
	}
}
