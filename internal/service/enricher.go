package service

import (
	"context"

	"github.com/ubclaunchpad/foodies/internal/concurrency"
	"github.com/ubclaunchpad/foodies/internal/models"
)

type SavedLookup interface {
	SavedAmong(ctx context.Context, userID string, promotionIDs []string) (map[string]bool, error)
}

type VoteLookup interface {
	StatesAmong(ctx context.Context, userID string, promotionIDs []string) (map[string]models.VoteState, error)
}

// Enricher annotates promotions with one user's saved flag and vote state.
type Enricher struct {
	saved SavedLookup
	votes VoteLookup
}

func NewEnricher(saved SavedLookup, votes VoteLookup) *Enricher {
	return &Enricher{saved: saved, votes: votes}
}

// Enrich sets IsSavedByUser and VoteState on every element of ps in place.
// Both lookups are issued concurrently, one query each for the whole set.
// Callers pass copies, never cached rows.
func (e *Enricher) Enrich(ctx context.Context, userID string, ps []models.Promotion) error {
	if len(ps) == 0 {
		return nil
	}
	ids := make([]string, len(ps))
	for i, p := range ps {
		ids[i] = p.ID
	}

	var (
		saved  map[string]bool
		states map[string]models.VoteState
	)
	err := concurrency.Run(ctx, 2,
		func(ctx context.Context) error {
			var err error
			saved, err = e.saved.SavedAmong(ctx, userID, ids)
			return err
		},
		func(ctx context.Context) error {
			var err error
			states, err = e.votes.StatesAmong(ctx, userID, ids)
			return err
		},
	)
	if err != nil {
		return err
	}

	for i := range ps {
		isSaved := saved[ps[i].ID]
		state, ok := states[ps[i].ID]
		if !ok {
			state = models.VoteInit
		}
		ps[i].IsSavedByUser = &isSaved
		ps[i].VoteState = &state
	}
	return nil
}
