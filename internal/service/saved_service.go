package service

import (
	"context"
	"database/sql"

	"github.com/ubclaunchpad/foodies/internal/models"
	"github.com/ubclaunchpad/foodies/internal/repository"
)

type SavedRepo interface {
	Save(ctx context.Context, tx repository.DBTX, userID, promotionID string) error
	Unsave(ctx context.Context, tx repository.DBTX, userID, promotionID string) error
}

type SavedService struct {
	db         *sql.DB
	saved      SavedRepo
	promotions PromotionRepo
	users      UserRepo
}

func NewSavedService(db *sql.DB, sRepo SavedRepo, pRepo PromotionRepo, uRepo UserRepo) *SavedService {
	return &SavedService{db: db, saved: sRepo, promotions: pRepo, users: uRepo}
}

// Save bookmarks a promotion for userID. Saving again is a no-op.
func (s *SavedService) Save(ctx context.Context, userID, promotionID string) error {
	return withTx(ctx, s.db, func(tx *sql.Tx) error {
		ok, err := s.users.Exists(ctx, tx, userID)
		if err != nil {
			return err
		}
		if !ok {
			return models.NotFound("user", userID)
		}
		ok, err = s.promotions.Exists(ctx, tx, promotionID)
		if err != nil {
			return err
		}
		if !ok {
			return models.NotFound("promotion", promotionID)
		}
		return s.saved.Save(ctx, tx, userID, promotionID)
	})
}

// Unsave removes a bookmark; removing one that does not exist succeeds.
func (s *SavedService) Unsave(ctx context.Context, userID, promotionID string) error {
	return withTx(ctx, s.db, func(tx *sql.Tx) error {
		return s.saved.Unsave(ctx, tx, userID, promotionID)
	})
}
