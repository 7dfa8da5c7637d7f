package audit

import (
	"context"
	"database/sql"
	"fmt"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Append(ctx context.Context, rec *LoginRecord) error {
	query := `INSERT INTO login_records (user_id, email, ts, ip_address)
	          VALUES (?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, rec.UserID, rec.Email, rec.Timestamp, rec.IPAddress)
	if err != nil {
		return fmt.Errorf("failed to insert login record: %w", err)
	}

	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]LoginRecord, error) {
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
