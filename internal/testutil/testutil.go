// Package testutil starts a throwaway Postgres for integration tests and
// seeds it.
package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/ubclaunchpad/foodies/internal/models"
	"github.com/ubclaunchpad/foodies/internal/repository"
	"github.com/ubclaunchpad/foodies/pkg/db"
)

// SetupTestDB starts a Postgres container with the migrations applied. The
// test is skipped under -short.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("foodies_test"),
		postgres.WithUsername("test_user"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "start postgres container")
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	conn, err := db.Open(connStr)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.Migrate(conn))
	return conn
}

func CreateTestUser(t *testing.T, conn *sql.DB) models.User {
	t.Helper()
	id := uuid.NewString()
	u := models.User{
		ID:        id,
		Username:  "user-" + id[:8],
		Email:     id[:8] + "@example.com",
		FirstName: "Test",
		LastName:  "User",
	}
	require.NoError(t, repository.NewUserRepo(conn).Create(context.Background(), u))
	return u
}

func CreateTestRestaurant(t *testing.T, conn *sql.DB, lat, lon float64) models.Restaurant {
	t.Helper()
	r := models.Restaurant{ID: uuid.NewString(), PlaceID: "place-" + uuid.NewString(), Lat: lat, Lon: lon}
	_, err := conn.Exec(`INSERT INTO restaurant (id, place_id, lat, lon) VALUES ($1, $2, $3, $4)`,
		r.ID, r.PlaceID, r.Lat, r.Lon)
	require.NoError(t, err)
	return r
}

// PromotionSeed describes a promotion to insert. Zero fields get defaults.
type PromotionSeed struct {
	UserID         string
	Restaurant     models.Restaurant
	PromotionType  models.PromotionType
	Cuisine        models.Cuisine
	Name           string
	Description    string
	DateAdded      time.Time
	ExpirationDate time.Time
	DiscountType   *models.DiscountType
	DiscountValue  string
	Days           []models.Day
}

// CreateTestPromotion inserts a promotion with its discount and one 11:00 to
// 14:00 schedule per entry in Days, returning its id.
func CreateTestPromotion(t *testing.T, conn *sql.DB, s PromotionSeed) string {
	t.Helper()
	if s.PromotionType == "" {
		s.PromotionType = models.PromotionTypeOther
	}
	if s.Cuisine == "" {
		s.Cuisine = models.CuisineOther
	}
	if s.Name == "" {
		s.Name = "Promotion"
	}
	if s.Description == "" {
		s.Description = "A promotion"
	}
	if s.DateAdded.IsZero() {
		s.DateAdded = time.Now()
	}
	if s.ExpirationDate.IsZero() {
		s.ExpirationDate = time.Now().AddDate(0, 1, 0)
	}

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO promotion
		(id, place_id, restaurant_id, user_id, promotion_type, cuisine, name, description, date_added, start_date, expiration_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9, $10)`,
		id, s.Restaurant.PlaceID, s.Restaurant.ID, s.UserID, s.PromotionType, s.Cuisine,
		s.Name, s.Description, s.DateAdded, s.ExpirationDate)
	require.NoError(t, err)

	var value decimal.NullDecimal
	if s.DiscountValue != "" {
		value = decimal.NullDecimal{Decimal: decimal.RequireFromString(s.DiscountValue), Valid: true}
	}
	_, err = conn.Exec(`INSERT INTO discount (id, promotion_id, discount_type, discount_value) VALUES ($1, $2, $3, $4)`,
		uuid.NewString(), id, s.DiscountType, value)
	require.NoError(t, err)

	for _, d := range s.Days {
		_, err = conn.Exec(`INSERT INTO schedule (id, promotion_id, day_of_week, start_time, end_time) VALUES ($1, $2, $3, '11:00', '14:00')`,
			uuid.NewString(), id, d)
		require.NoError(t, err)
	}
	return id
}

// SaveTestPromotionAt records a save with an explicit date.
func SaveTestPromotionAt(t *testing.T, conn *sql.DB, userID, promotionID string, at time.Time) {
	t.Helper()
	_, err := conn.Exec(`INSERT INTO saved_promotion (user_id, promotion_id, date_saved) VALUES ($1, $2, $3)`,
		userID, promotionID, at)
	require.NoError(t, err)
}

func DiscountTypePtr(t models.DiscountType) *models.DiscountType { return &t }
