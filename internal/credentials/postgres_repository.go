package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avoronov/newshub/internal/common"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, cred *UserCredential) error {
	query := `INSERT INTO credentials (id, email, name, password_hash, role, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		cred.ID, cred.Email, cred.Name, cred.PasswordHash, string(cred.Role), cred.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert credential: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*UserCredential, error) {
	query := `SELECT id, email, name, password_hash, role, created_at FROM credentials
	          WHERE email = $1`

	cred := &UserCredential{}
	var role string
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&cred.ID, &cred.Email, &cred.Name, &cred.PasswordHash, &role, &cred.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select credential: %w", err)
	}
	cred.Role = Role(role)

	return cred, nil
}
