package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/ubclaunchpad/foodies/internal/models"
	"github.com/ubclaunchpad/foodies/pkg/db"
)

type VoteRepo struct {
	db *sql.DB
}

func NewVoteRepo(db *sql.DB) *VoteRepo {
	return &VoteRepo{db: db}
}

// GetAndLock returns the user's vote on a promotion, creating an INIT record
// if there is none, and locks the record for the rest of tx.
func (r *VoteRepo) GetAndLock(ctx context.Context, tx DBTX, userID, promotionID string) (models.VoteState, error) {
	insert := `
		INSERT INTO vote_record (user_id, promotion_id, vote_state)
		VALUES ($1, $2, 0)
		ON CONFLICT (user_id, promotion_id) DO NOTHING
	`
	if _, err := tx.ExecContext(ctx, insert, userID, promotionID); err != nil {
		if db.IsForeignKeyViolation(err) {
			return models.VoteInit, models.NotFound("promotion", promotionID)
		}
		return models.VoteInit, fmt.Errorf("insert vote record: %w", err)
	}

	query := `
		SELECT vote_state
		FROM vote_record
		WHERE user_id = $1 AND promotion_id = $2
		FOR UPDATE
	`
	var state models.VoteState
	if err := tx.QueryRowContext(ctx, query, userID, promotionID).Scan(&state); err != nil {
		return models.VoteInit, fmt.Errorf("lock vote record: %w", err)
	}
	return state, nil
}

func (r *VoteRepo) SetState(ctx context.Context, tx DBTX, userID, promotionID string, state models.VoteState) error {
	update := `UPDATE vote_record SET vote_state = $3 WHERE user_id = $1 AND promotion_id = $2`
	if _, err := tx.ExecContext(ctx, update, userID, promotionID, int(state)); err != nil {
		return fmt.Errorf("update vote record: %w", err)
	}
	return nil
}

// StatesAmong returns the user's recorded vote on each of promotionIDs.
// Promotions without a record are absent from the map.
func (r *VoteRepo) StatesAmong(ctx context.Context, userID string, promotionIDs []string) (map[string]models.VoteState, error) {
	states := make(map[string]models.VoteState)
	if len(promotionIDs) == 0 {
		return states, nil
	}

	q := `SELECT promotion_id, vote_state FROM vote_record WHERE user_id = $1 AND promotion_id = ANY($2::uuid[])`
	rows, err := r.db.QueryContext(ctx, q, userID, pq.Array(promotionIDs))
	if err != nil {
		return nil, fmt.Errorf("query votes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var state models.VoteState
		if err := rows.Scan(&id, &state); err != nil {
			return nil, err
		}
		states[id] = state
	}
	return states, rows.Err()
}
