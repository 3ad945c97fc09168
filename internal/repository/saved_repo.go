package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/ubclaunchpad/foodies/internal/models"
	"github.com/ubclaunchpad/foodies/pkg/db"
)

type SavedRepo struct {
	db *sql.DB
}

func NewSavedRepo(db *sql.DB) *SavedRepo {
	return &SavedRepo{db: db}
}

// Save records that userID saved promotionID. Saving twice keeps the first
// date_saved.
func (r *SavedRepo) Save(ctx context.Context, tx DBTX, userID, promotionID string) error {
	insert := `
		INSERT INTO saved_promotion (user_id, promotion_id, date_saved)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, promotion_id) DO NOTHING
	`
	if _, err := tx.ExecContext(ctx, insert, userID, promotionID); err != nil {
		if db.IsForeignKeyViolation(err) {
			return models.NotFound("promotion", promotionID)
		}
		return fmt.Errorf("save promotion: %w", err)
	}
	return nil
}

// Unsave is a no-op when nothing was saved.
func (r *SavedRepo) Unsave(ctx context.Context, tx DBTX, userID, promotionID string) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM saved_promotion WHERE user_id = $1 AND promotion_id = $2`, userID, promotionID)
	if err != nil {
		return fmt.Errorf("unsave promotion: %w", err)
	}
	return nil
}

// SavedAmong returns which of promotionIDs userID has saved.
func (r *SavedRepo) SavedAmong(ctx context.Context, userID string, promotionIDs []string) (map[string]bool, error) {
	saved := make(map[string]bool)
	if len(promotionIDs) == 0 {
		return saved, nil
	}

	q := `SELECT promotion_id FROM saved_promotion WHERE user_id = $1 AND promotion_id = ANY($2::uuid[])`
	rows, err := r.db.QueryContext(ctx, q, userID, pq.Array(promotionIDs))
	if err != nil {
		return nil, fmt.Errorf("query saved: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		saved[id] = true
	}
	return saved, rows.Err()
}
