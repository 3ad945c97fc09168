package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/ubclaunchpad/foodies/internal/models"
	"github.com/ubclaunchpad/foodies/internal/query"
	"github.com/ubclaunchpad/foodies/internal/repository"
)

// Repos required by the services (interfaces so tests can fake them).
type PromotionRepo interface {
	Find(ctx context.Context, stmt query.Statement) ([]models.Promotion, error)
	Get(ctx context.Context, id string) (*models.Promotion, error)
	Create(ctx context.Context, tx repository.DBTX, p *models.Promotion) error
	LockOwner(ctx context.Context, tx repository.DBTX, id string) (string, error)
	Delete(ctx context.Context, tx repository.DBTX, id string) error
	Exists(ctx context.Context, tx repository.DBTX, id string) (bool, error)
	AddVotes(ctx context.Context, tx repository.DBTX, id string, delta int) (int, error)
}

type RestaurantRepo interface {
	FindOrCreate(ctx context.Context, tx repository.DBTX, placeID string, lat, lon float64) (models.Restaurant, error)
	Exists(ctx context.Context, tx repository.DBTX, id string) (bool, error)
}

type UserRepo interface {
	Exists(ctx context.Context, tx repository.DBTX, id string) (bool, error)
}

type PromotionService struct {
	db          *sql.DB
	promotions  PromotionRepo
	restaurants RestaurantRepo
	users       UserRepo
	enricher    *Enricher
}

func NewPromotionService(db *sql.DB, pRepo PromotionRepo, rRepo RestaurantRepo, uRepo UserRepo, enricher *Enricher) *PromotionService {
	return &PromotionService{
		db:          db,
		promotions:  pRepo,
		restaurants: rRepo,
		users:       uRepo,
		enricher:    enricher,
	}
}

// List returns the promotions matching c, ordered by search rank or by the
// requested sort. With c.UserID set each result carries that user's saved
// flag and vote state.
func (s *PromotionService) List(ctx context.Context, c models.Criteria) ([]models.Promotion, error) {
	stmt := query.All()
	if !c.IsEmpty() {
		stmt = query.Compose(c)
	}

	ps, err := s.promotions.Find(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("list promotions: %w", err)
	}
	if c.UserID != nil {
		if err := s.enricher.Enrich(ctx, *c.UserID, ps); err != nil {
			return nil, fmt.Errorf("enrich promotions: %w", err)
		}
	}
	return ps, nil
}

// Get returns one promotion. userID may be empty.
func (s *PromotionService) Get(ctx context.Context, id, userID string) (*models.Promotion, error) {
	p, err := s.promotions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if userID != "" {
		one := []models.Promotion{*p}
		if err := s.enricher.Enrich(ctx, userID, one); err != nil {
			return nil, fmt.Errorf("enrich promotion: %w", err)
		}
		p = &one[0]
	}
	return p, nil
}

// ByRestaurant lists a restaurant's promotions, newest first.
func (s *PromotionService) ByRestaurant(ctx context.Context, restaurantID, userID string) ([]models.Promotion, error) {
	ok, err := s.restaurants.Exists(ctx, s.db, restaurantID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, models.NotFound("restaurant", restaurantID)
	}
	return s.findFor(ctx, query.ByRestaurant(restaurantID), userID)
}

// SavedBy lists the promotions userID saved, most recently saved first.
func (s *PromotionService) SavedBy(ctx context.Context, userID string) ([]models.Promotion, error) {
	if err := s.requireUser(ctx, s.db, userID); err != nil {
		return nil, err
	}
	return s.findFor(ctx, query.SavedBy(userID), userID)
}

// UploadedBy lists the promotions userID uploaded, newest first.
func (s *PromotionService) UploadedBy(ctx context.Context, userID string) ([]models.Promotion, error) {
	if err := s.requireUser(ctx, s.db, userID); err != nil {
		return nil, err
	}
	return s.findFor(ctx, query.ByUploader(userID), userID)
}

func (s *PromotionService) findFor(ctx context.Context, stmt query.Statement, userID string) ([]models.Promotion, error) {
	ps, err := s.promotions.Find(ctx, stmt)
	if err != nil {
		return nil, err
	}
	if userID != "" {
		if err := s.enricher.Enrich(ctx, userID, ps); err != nil {
			return nil, fmt.Errorf("enrich promotions: %w", err)
		}
	}
	return ps, nil
}

// Create stores a validated payload as a new promotion uploaded by userID.
// The restaurant is looked up by placeId and created on first use.
func (s *PromotionService) Create(ctx context.Context, userID string, np models.NewPromotion) (*models.Promotion, error) {
	p := models.Promotion{
		ID:             uuid.NewString(),
		PlaceID:        np.PlaceID,
		UserID:         userID,
		PromotionType:  np.PromotionType,
		Cuisine:        np.Cuisine,
		Name:           np.Name,
		Description:    np.Description,
		StartDate:      np.StartDate.UTC(),
		ExpirationDate: np.ExpirationDate.UTC(),
		Discount: models.Discount{
			ID:   uuid.NewString(),
			Type: np.Discount.DiscountType,
		},
		Schedules: make([]models.Schedule, 0, len(np.Schedules)),
	}
	if np.Discount.DiscountValue != nil {
		v := decimal.NewFromFloat(*np.Discount.DiscountValue).Round(2)
		p.Discount.Value = &v
	}
	for _, ns := range np.Schedules {
		p.Schedules = append(p.Schedules, models.Schedule{
			ID:        uuid.NewString(),
			DayOfWeek: ns.DayOfWeek,
			StartTime: ns.StartTime,
			EndTime:   ns.EndTime,
		})
	}

	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := s.requireUser(ctx, tx, userID); err != nil {
			return err
		}
		rest, err := s.restaurants.FindOrCreate(ctx, tx, np.PlaceID, *np.Lat, *np.Lon)
		if err != nil {
			return err
		}
		p.RestaurantID = rest.ID
		p.Restaurant = rest
		return s.promotions.Create(ctx, tx, &p)
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"promotion_id":  p.ID,
		"user_id":       userID,
		"restaurant_id": p.RestaurantID,
	}).Info("promotion created")
	return &p, nil
}

// Delete removes a promotion on behalf of userID. Deleting a promotion that
// does not exist is a no-op; deleting someone else's is ErrForbidden.
func (s *PromotionService) Delete(ctx context.Context, userID, id string) error {
	deleted := false
	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		owner, err := s.promotions.LockOwner(ctx, tx, id)
		if err != nil {
			var nf *models.NotFoundError
			if errors.As(err, &nf) {
				return nil
			}
			return err
		}
		if owner != userID {
			return models.ErrForbidden
		}
		deleted = true
		return s.promotions.Delete(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	if deleted {
		logrus.WithFields(logrus.Fields{"promotion_id": id, "user_id": userID}).Info("promotion deleted")
	}
	return nil
}

func (s *PromotionService) requireUser(ctx context.Context, tx repository.DBTX, userID string) error {
	ok, err := s.users.Exists(ctx, tx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return models.NotFound("user", userID)
	}
	return nil
}
