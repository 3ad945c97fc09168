package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ubclaunchpad/foodies/internal/models"
	"github.com/ubclaunchpad/foodies/pkg/db"
)

var ErrUserTaken = errors.New("username or email already taken")

// UserRepo only covers what promotions need from user_profile: existence
// checks and seeding.
type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Exists(ctx context.Context, tx DBTX, id string) (bool, error) {
	var exists bool
	err := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM user_profile WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check user: %w", err)
	}
	return exists, nil
}

func (r *UserRepo) Create(ctx context.Context, u models.User) error {
	insert := `
		INSERT INTO user_profile (id, username, email, first_name, last_name)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.db.ExecContext(ctx, insert, u.ID, u.Username, u.Email, u.FirstName, u.LastName); err != nil {
		if db.IsUniqueViolation(err) {
			return ErrUserTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}
