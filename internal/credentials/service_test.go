package credentials

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoronov/newshub/internal/common"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE credentials (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL DEFAULT 'user',
  created_at TIMESTAMP NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func TestRegister_ThenAuthenticate(t *testing.T) {
	s := NewService(NewSQLiteRepository(setupDB(t)))
	ctx := context.Background()

	cred, err := s.Register(ctx, "alice@example.com", "Alice", "s3cret", RoleUser)
	require.NoError(t, err)
	assert.NotEmpty(t, cred.ID)
	assert.Equal(t, RoleUser, cred.Role)
	assert.NotEqual(t, "s3cret", cred.PasswordHash, "password must not be stored in the clear")

	got, err := s.Authenticate(ctx, "alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, cred.ID, got.ID)
	assert.Equal(t, "Alice", got.Name)
}

func TestRegister_DuplicateEmailLeavesRecordUnchanged(t *testing.T) {
	db := setupDB(t)
	s := NewService(NewSQLiteRepository(db))
	ctx := context.Background()

	first, err := s.Register(ctx, "bob@example.com", "Bob", "pw1", RoleUser)
	require.NoError(t, err)

	_, err = s.Register(ctx, "bob@example.com", "Imposter", "pw2", RoleAdmin)
	require.ErrorIs(t, err, common.ErrAlreadyExists)

	got, err := s.Authenticate(ctx, "bob@example.com", "pw1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "Bob", got.Name)
	assert.Equal(t, RoleUser, got.Role)
}

func TestAuthenticate_Failures(t *testing.T) {
	s := NewService(NewSQLiteRepository(setupDB(t)))
	ctx := context.Background()

	_, err := s.Register(ctx, "carol@example.com", "Carol", "correct", RoleAdmin)
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "wrong password", email: "carol@example.com", password: "wrong"},
		{name: "unknown email", email: "nobody@example.com", password: "correct"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Authenticate(ctx, tc.email, tc.password)
			assert.ErrorIs(t, err, common.ErrInvalidCredentials)
		})
	}
}

func TestRegister_UnknownRoleFallsBackToUser(t *testing.T) {
	s := NewService(NewSQLiteRepository(setupDB(t)))

	cred, err := s.Register(context.Background(), "dave@example.com", "Dave", "pw", Role("superuser"))
	require.NoError(t, err)
	assert.Equal(t, RoleUser, cred.Role)
}

func TestSQLiteRepository_GetByEmail_NotFound(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	_, err := r.GetByEmail(context.Background(), "missing@example.com")
	assert.ErrorIs(t, err, common.ErrNotFound)
}
