package articles

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/avoronov/newshub/internal/dbx"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) ListByUser(ctx context.Context, userID string) ([]Article, error) {
	query := `SELECT payload FROM saved_articles WHERE user_id = ? ORDER BY position`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select saved articles: %w", err)
	}
	defer rows.Close()

	result := []Article{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var a Article
		if err := json.Unmarshal(payload, &a); err != nil {
			return nil, fmt.Errorf("failed to decode saved article: %w", err)
		}
		result = append(result, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// Save checks for an existing (user, article) pair and appends at the next
// position inside one transaction, so the uniqueness and ordering invariants
// hold even though two statements are involved.
func (r *SQLiteRepository) Save(ctx context.Context, userID string, article *Article) error {
	payload, err := json.Marshal(article)
	if err != nil {
		return fmt.Errorf("failed to encode article: %w", err)
	}

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var exists int
		err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM saved_articles WHERE user_id = ? AND article_id = ?`,
			userID, article.ArticleID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check saved article: %w", err)
		}
		if exists > 0 {
			return nil
		}

		var next int64
		err = tx.QueryRowContext(ctx,
			`SELECT COALESCE(MAX(position), 0) + 1 FROM saved_articles WHERE user_id = ?`,
			userID).Scan(&next)
		if err != nil {
			return fmt.Errorf("failed to compute position: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO saved_articles (user_id, article_id, position, payload) VALUES (?, ?, ?, ?)`,
			userID, article.ArticleID, next, string(payload))
		if err != nil {
			return fmt.Errorf("failed to insert saved article: %w", err)
		}

		return nil
	})
}

func (r *SQLiteRepository) Remove(ctx context.Context, userID, articleID string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM saved_articles WHERE user_id = ? AND article_id = ?`,
		userID, articleID)
	if err != nil {
		return false, fmt.Errorf("failed to delete saved article: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}
