package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRepositoryManager_SQLite(t *testing.T) {
	dsn := "sqlite:" + filepath.Join(t.TempDir(), "newshub.db")

	m, err := NewRepositoryManager(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })

	require.NotNil(t, m.Conn())
	assert.NotNil(t, m.Credentials())
	assert.NotNil(t, m.Sessions())
	assert.NotNil(t, m.SavedArticles())
	assert.NotNil(t, m.LoginRecords())

	for _, table := range []string{"credentials", "kv", "saved_articles", "login_records"} {
		var n int
		err := m.Conn().QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&n)
		require.NoError(t, err)
		assert.Equal(t, 1, n, "expected table %s to exist", table)
	}
}

func TestNewRepositoryManager_UnsupportedScheme(t *testing.T) {
	_, err := NewRepositoryManager(context.Background(), "mysql://root@localhost/newshub")
	require.Error(t, err)
}

func TestNewRepositoryManager_BadDSN(t *testing.T) {
	_, err := NewRepositoryManager(context.Background(), "://not-a-dsn")
	require.Error(t, err)
}
