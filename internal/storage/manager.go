// Package storage wires repositories to a concrete database backend,
// selected by DSN scheme, and runs the embedded schema migrations.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/xo/dburl"

	"github.com/avoronov/newshub/internal/articles"
	"github.com/avoronov/newshub/internal/audit"
	"github.com/avoronov/newshub/internal/credentials"
	"github.com/avoronov/newshub/internal/sessions"
	"github.com/avoronov/newshub/internal/storage/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// RepositoryManager hands out the repositories backing the domain services.
type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Conn() *sql.DB
	Close() error
	Credentials() credentials.Repository
	Sessions() sessions.Repository
	SavedArticles() articles.Repository
	LoginRecords() audit.Repository
}

type manager struct {
	db      *sql.DB
	dialect string

	credentials credentials.Repository
	sessions    sessions.Repository
	articles    articles.Repository
	audit       audit.Repository
}

// NewRepositoryManager opens the database named by dsn, runs migrations, and
// builds the repository set. Supported schemes: "sqlite:<path>" (embedded)
// and "postgres://...".
func NewRepositoryManager(ctx context.Context, dsn string) (RepositoryManager, error) {
	u, err := dburl.Parse(dsn)
	if err != nil {
		return nil, fmt.Errorf("dsn parse error: %w", err)
	}

	m := &manager{}

	switch u.Driver {
	case "sqlite3":
		m.dialect = "sqlite3"
		m.db, err = sql.Open("sqlite", u.DSN)
	case "postgres":
		m.dialect = "postgres"
		m.db, err = sql.Open("pgx", dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", u.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := m.RunMigrations(ctx); err != nil {
		_ = m.db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	if m.dialect == "postgres" {
		m.credentials = credentials.NewPostgresRepository(m.db)
		m.sessions = sessions.NewPostgresRepository(m.db)
		m.articles = articles.NewPostgresRepository(m.db)
		m.audit = audit.NewPostgresRepository(m.db)
	} else {
		m.credentials = credentials.NewSQLiteRepository(m.db)
		m.sessions = sessions.NewSQLiteRepository(m.db)
		m.articles = articles.NewSQLiteRepository(m.db)
		m.audit = audit.NewSQLiteRepository(m.db)
	}

	return m, nil
}

func (m *manager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect(m.dialect); err != nil {
		return err
	}

	dir := "sqlite"
	if m.dialect == "postgres" {
		dir = "postgres"
	}

	return goose.UpContext(ctx, m.db, dir)
}

func (m *manager) Conn() *sql.DB { return m.db }

func (m *manager) Close() error { return m.db.Close() }

func (m *manager) Credentials() credentials.Repository { return m.credentials }

func (m *manager) Sessions() sessions.Repository { return m.sessions }

func (m *manager) SavedArticles() articles.Repository { return m.articles }

func (m *manager) LoginRecords() audit.Repository { return m.audit }
