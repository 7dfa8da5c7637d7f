package audit

import (
	"context"
	"database/sql"
	"fmt"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Append(ctx context.Context, rec *LoginRecord) error {
	query := `INSERT INTO login_records (user_id, email, ts, ip_address)
	          VALUES ($1, $2, $3, $4)`

	_, err := r.db.ExecContext(ctx, query, rec.UserID, rec.Email, rec.Timestamp, rec.IPAddress)
	if err != nil {
		return fmt.Errorf("failed to insert login record: %w", err)
	}

	return nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]LoginRecord, error) {
	query := `SELECT user_id, email, ts, ip_address FROM login_records ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select login records: %w", err)
	}
	defer rows.Close()

	var result []LoginRecord
	for rows.Next() {
		var rec LoginRecord
		if err := rows.Scan(&rec.UserID, &rec.Email, &rec.Timestamp, &rec.IPAddress); err != nil {
			return nil, err
		}
		result = append(result, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
