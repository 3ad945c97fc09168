package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ubclaunchpad/foodies/internal/models"
)

// RestaurantRepo runs every statement on the DBTX it is handed, so
// restaurant lookups join the caller's transaction.
type RestaurantRepo struct{}

func NewRestaurantRepo() *RestaurantRepo {
	return &RestaurantRepo{}
}

// FindOrCreate returns the restaurant with placeID, inserting it with the
// given coordinates if none exists. An existing restaurant keeps its own
// coordinates.
func (r *RestaurantRepo) FindOrCreate(ctx context.Context, tx DBTX, placeID string, lat, lon float64) (models.Restaurant, error) {
	insert := `
		INSERT INTO restaurant (id, place_id, lat, lon)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (place_id) DO NOTHING
	`
	if _, err := tx.ExecContext(ctx, insert, uuid.NewString(), placeID, lat, lon); err != nil {
		return models.Restaurant{}, fmt.Errorf("insert restaurant: %w", err)
	}

	var rest models.Restaurant
	err := tx.QueryRowContext(ctx, `SELECT id, place_id, lat, lon FROM restaurant WHERE place_id = $1`, placeID).
		Scan(&rest.ID, &rest.PlaceID, &rest.Lat, &rest.Lon)
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("load restaurant: %w", err)
	}
	return rest, nil
}

func (r *RestaurantRepo) Exists(ctx context.Context, tx DBTX, id string) (bool, error) {
	var exists bool
	err := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM restaurant WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check restaurant: %w", err)
	}
	return exists, nil
}
