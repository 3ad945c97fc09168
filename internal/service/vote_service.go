package service

import (
	"context"
	"database/sql"

	"github.com/sirupsen/logrus"

	"github.com/ubclaunchpad/foodies/internal/models"
	"github.com/ubclaunchpad/foodies/internal/repository"
)

type VoteRepo interface {
	GetAndLock(ctx context.Context, tx repository.DBTX, userID, promotionID string) (models.VoteState, error)
	SetState(ctx context.Context, tx repository.DBTX, userID, promotionID string, state models.VoteState) error
}

// VoteResult is the promotion's state after a vote.
type VoteResult struct {
	PromotionID string           `json:"promotionId"`
	Votes       int              `json:"votes"`
	VoteState   models.VoteState `json:"voteState"`
}

type VoteService struct {
	db         *sql.DB
	votes      VoteRepo
	promotions PromotionRepo
	users      UserRepo
}

func NewVoteService(db *sql.DB, vRepo VoteRepo, pRepo PromotionRepo, uRepo UserRepo) *VoteService {
	return &VoteService{db: db, votes: vRepo, promotions: pRepo, users: uRepo}
}

// Vote applies one up or down vote by userID. The vote record and the
// promotion's counter change in the same transaction, with the record row
// locked so one user's concurrent votes on a promotion serialise.
func (s *VoteService) Vote(ctx context.Context, userID, promotionID string, dir models.VoteDirection) (VoteResult, error) {
	res := VoteResult{PromotionID: promotionID}

	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
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

		prev, err := s.votes.GetAndLock(ctx, tx, userID, promotionID)
		if err != nil {
			return err
		}
		next, delta := prev.Apply(dir)
		if err := s.votes.SetState(ctx, tx, userID, promotionID, next); err != nil {
			return err
		}
		votes, err := s.promotions.AddVotes(ctx, tx, promotionID, delta)
		if err != nil {
			return err
		}

		res.Votes = votes
		res.VoteState = next
		logrus.WithFields(logrus.Fields{
			"promotion_id": promotionID,
			"user_id":      userID,
			"from":         prev.String(),
			"to":           next.String(),
		}).Debug("vote applied")
		return nil
	})
	if err != nil {
		return VoteResult{}, err
	}
	return res, nil
}
