package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/ubclaunchpad/foodies/internal/cache"
	"github.com/ubclaunchpad/foodies/internal/models"
	"github.com/ubclaunchpad/foodies/internal/query"
)

type PromotionRepo struct {
	db    *sql.DB
	cache *cache.TTLCache[[]models.Promotion]
}

// NewPromotionRepo returns a repository whose listing reads go through c.
// A nil cache disables caching.
func NewPromotionRepo(db *sql.DB, c *cache.TTLCache[[]models.Promotion]) *PromotionRepo {
	if c == nil {
		c = cache.NewTTLCache[[]models.Promotion](0)
	}
	return &PromotionRepo{db: db, cache: c}
}

// Find runs a listing statement, serving repeats from the read cache. The
// returned promotions are copies the caller may modify.
func (r *PromotionRepo) Find(ctx context.Context, stmt query.Statement) ([]models.Promotion, error) {
	rows, err := r.cache.GetOrLoad(ctx, stmt.Key(), func(ctx context.Context) ([]models.Promotion, error) {
		return r.load(ctx, stmt)
	})
	if err != nil {
		return nil, err
	}
	return models.ClonePromotions(rows), nil
}

// Get fetches one promotion with its schedules, bypassing the cache.
func (r *PromotionRepo) Get(ctx context.Context, id string) (*models.Promotion, error) {
	ps, err := r.load(ctx, query.ByID(id))
	if err != nil {
		return nil, err
	}
	if len(ps) == 0 {
		return nil, models.NotFound("promotion", id)
	}
	return &ps[0], nil
}

func (r *PromotionRepo) load(ctx context.Context, stmt query.Statement) ([]models.Promotion, error) {
	rows, err := r.db.QueryContext(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, fmt.Errorf("query promotions: %w", err)
	}
	defer rows.Close()

	promotions := []models.Promotion{}
	for rows.Next() {
		p, err := scanPromotion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan promotion: %w", err)
		}
		promotions = append(promotions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate promotions: %w", err)
	}

	if err := r.attachSchedules(ctx, promotions); err != nil {
		return nil, err
	}
	return promotions, nil
}

func scanPromotion(rows *sql.Rows) (models.Promotion, error) {
	var (
		p               models.Promotion
		discountType    sql.NullString
		discountValue   decimal.NullDecimal
		rank            sql.NullFloat64
		boldName        sql.NullString
		boldDescription sql.NullString
		distance        sql.NullFloat64
		popularity      sql.NullInt64
	)

	err := rows.Scan(
		&p.ID,
		&p.PlaceID,
		&p.RestaurantID,
		&p.UserID,
		&p.PromotionType,
		&p.Cuisine,
		&p.Name,
		&p.Description,
		&p.DateAdded,
		&p.StartDate,
		&p.ExpirationDate,
		&p.Votes,
		&p.Discount.ID,
		&discountType,
		&discountValue,
		&p.Restaurant.ID,
		&p.Restaurant.PlaceID,
		&p.Restaurant.Lat,
		&p.Restaurant.Lon,
		&rank,
		&boldName,
		&boldDescription,
		&distance,
		&popularity,
	)
	if err != nil {
		return p, err
	}

	if discountType.Valid {
		t := models.DiscountType(discountType.String)
		p.Discount.Type = &t
	}
	if discountValue.Valid {
		v := discountValue.Decimal
		p.Discount.Value = &v
	}
	if rank.Valid {
		p.Rank = &rank.Float64
	}
	if boldName.Valid {
		p.BoldName = &boldName.String
	}
	if boldDescription.Valid {
		p.BoldDescription = &boldDescription.String
	}
	if distance.Valid {
		p.Distance = &distance.Float64
	}
	if popularity.Valid {
		n := int(popularity.Int64)
		p.Popularity = &n
	}
	p.Schedules = []models.Schedule{}
	return p, nil
}

func (r *PromotionRepo) attachSchedules(ctx context.Context, promotions []models.Promotion) error {
	if len(promotions) == 0 {
		return nil
	}
	index := make(map[string]int, len(promotions))
	ids := make([]string, len(promotions))
	for i, p := range promotions {
		index[p.ID] = i
		ids[i] = p.ID
	}

	rows, err := r.db.QueryContext(ctx, query.SchedulesFor, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("query schedules: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s models.Schedule
		var promotionID string
		if err := rows.Scan(&s.ID, &promotionID, &s.DayOfWeek, &s.StartTime, &s.EndTime); err != nil {
			return fmt.Errorf("scan schedule: %w", err)
		}
		if i, ok := index[promotionID]; ok {
			promotions[i].Schedules = append(promotions[i].Schedules, s)
		}
	}
	return rows.Err()
}

// Create inserts p with its discount and schedules. ID fields must already be
// set; DateAdded and Votes are filled from the store.
func (r *PromotionRepo) Create(ctx context.Context, tx DBTX, p *models.Promotion) error {
	insertPromotion := `
		INSERT INTO promotion
		(id, place_id, restaurant_id, user_id, promotion_type, cuisine, name, description, start_date, expiration_date)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING date_added, votes
	`
	err := tx.QueryRowContext(ctx, insertPromotion,
		p.ID,
		p.PlaceID,
		p.RestaurantID,
		p.UserID,
		p.PromotionType,
		p.Cuisine,
		p.Name,
		p.Description,
		p.StartDate,
		p.ExpirationDate,
	).Scan(&p.DateAdded, &p.Votes)
	if err != nil {
		return fmt.Errorf("insert promotion: %w", err)
	}

	var discountValue decimal.NullDecimal
	if p.Discount.Value != nil {
		discountValue = decimal.NullDecimal{Decimal: *p.Discount.Value, Valid: true}
	}
	insertDiscount := `INSERT INTO discount (id, promotion_id, discount_type, discount_value) VALUES ($1, $2, $3, $4)`
	if _, err := tx.ExecContext(ctx, insertDiscount, p.Discount.ID, p.ID, p.Discount.Type, discountValue); err != nil {
		return fmt.Errorf("insert discount: %w", err)
	}

	insertSchedule := `INSERT INTO schedule (id, promotion_id, day_of_week, start_time, end_time) VALUES ($1, $2, $3, $4, $5)`
	for _, s := range p.Schedules {
		if _, err := tx.ExecContext(ctx, insertSchedule, s.ID, p.ID, s.DayOfWeek, s.StartTime, s.EndTime); err != nil {
			return fmt.Errorf("insert schedule: %w", err)
		}
	}
	return nil
}

// LockOwner returns the uploader of a promotion and locks its row for the
// rest of tx.
func (r *PromotionRepo) LockOwner(ctx context.Context, tx DBTX, id string) (string, error) {
	var owner string
	err := tx.QueryRowContext(ctx, `SELECT user_id FROM promotion WHERE id = $1 FOR UPDATE`, id).Scan(&owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", models.NotFound("promotion", id)
		}
		return "", fmt.Errorf("lock promotion: %w", err)
	}
	return owner, nil
}

// Delete removes a promotion. Discount, schedules, saves and votes go with
// it through the foreign keys.
func (r *PromotionRepo) Delete(ctx context.Context, tx DBTX, id string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM promotion WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete promotion: %w", err)
	}
	return nil
}

func (r *PromotionRepo) Exists(ctx context.Context, tx DBTX, id string) (bool, error) {
	var exists bool
	err := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM promotion WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check promotion: %w", err)
	}
	return exists, nil
}

// AddVotes shifts the vote counter by delta and returns the new total.
func (r *PromotionRepo) AddVotes(ctx context.Context, tx DBTX, id string, delta int) (int, error) {
	var votes int
	err := tx.QueryRowContext(ctx, `UPDATE promotion SET votes = votes + $2 WHERE id = $1 RETURNING votes`, id, delta).Scan(&votes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, models.NotFound("promotion", id)
		}
		return 0, fmt.Errorf("update votes: %w", err)
	}
	return votes, nil
}
