package query

import (
	"database/sql/driver"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ubclaunchpad/foodies/internal/models"
)

func ptr[T any](v T) *T { return &v }

func TestCompose_EmptyCriteriaMatchesAll(t *testing.T) {
	all := All()

	assert.Equal(t, all, Compose(models.Criteria{}))
	assert.NotContains(t, all.SQL, "WHERE")
	assert.NotContains(t, all.SQL, "ORDER BY")
	assert.Empty(t, all.Args)
}

func TestCompose_ConjunctionOfFilters(t *testing.T) {
	exp := time.Date(2024, 3, 1, 0, 0, 0, 0, time.FixedZone("PST", -8*3600))
	c := models.Criteria{
		PromotionType:  ptr(models.PromotionTypeHappyHour),
		Cuisines:       []models.Cuisine{models.CuisineJapanese},
		DiscountType:   ptr(models.DiscountTypePercentage),
		DiscountValue:  ptr(decimal.RequireFromString("10.5")),
		ExpirationDate: &exp,
		DayOfWeek:      ptr(models.Friday),
	}

	stmt := Compose(c)

	assert.Contains(t, stmt.SQL, "p.promotion_type = $1")
	assert.Contains(t, stmt.SQL, "p.cuisine = $2")
	assert.Contains(t, stmt.SQL, "d.discount_type = $3")
	assert.Contains(t, stmt.SQL, "d.discount_value >= $4")
	assert.Contains(t, stmt.SQL, "(p.expiration_date AT TIME ZONE 'UTC') >= ($5::timestamptz AT TIME ZONE 'UTC')")
	assert.Contains(t, stmt.SQL, "p.id IN (SELECT s.promotion_id FROM schedule s WHERE s.day_of_week = $6)")
	assert.Equal(t, 5, strings.Count(stmt.SQL, "\n\tAND "))

	require.Len(t, stmt.Args, 6)
	assert.Equal(t, "Happy Hour", stmt.Args[0])
	assert.Equal(t, "Japanese", stmt.Args[1])
	assert.Equal(t, "%", stmt.Args[2])
	assert.True(t, decimal.RequireFromString("10.5").Equal(stmt.Args[3].(decimal.Decimal)))
	assert.Equal(t, exp.UTC(), stmt.Args[4])
	assert.Equal(t, "Friday", stmt.Args[5])
}

func TestCompose_Cuisines(t *testing.T) {
	t.Run("empty list adds no predicate", func(t *testing.T) {
		stmt := Compose(models.Criteria{Cuisines: []models.Cuisine{}})
		assert.NotContains(t, stmt.SQL, "p.cuisine")
		assert.Empty(t, stmt.Args)
	})

	t.Run("several values use ANY", func(t *testing.T) {
		stmt := Compose(models.Criteria{Cuisines: []models.Cuisine{models.CuisineJapanese, models.CuisineKorean}})
		assert.Contains(t, stmt.SQL, "p.cuisine = ANY($1)")
		require.Len(t, stmt.Args, 1)
		valuer, ok := stmt.Args[0].(driver.Valuer)
		require.True(t, ok)
		v, err := valuer.Value()
		require.NoError(t, err)
		assert.Equal(t, `{"Japanese","Korean"}`, v)
	})
}

func TestCompose_DiscountValueNeedsType(t *testing.T) {
	stmt := Compose(models.Criteria{DiscountValue: ptr(decimal.NewFromInt(5))})

	assert.NotContains(t, stmt.SQL, "discount_value >=")
	assert.Empty(t, stmt.Args)
}

func TestCompose_SearchTakesOverOrdering(t *testing.T) {
	c := models.Criteria{
		SearchQuery:   ptr("cheap sushi"),
		Sort:          ptr(models.SortRecency),
		PromotionType: ptr(models.PromotionTypeOther),
	}

	stmt := Compose(c)

	assert.Contains(t, stmt.SQL, "replace(plainto_tsquery('english', $1)::text, '&', '|')::tsquery")
	assert.Contains(t, stmt.SQL, "ts_rank_cd(sp.tsvector, q.query) AS rank")
	assert.Contains(t, stmt.SQL, "'HighlightAll=true'")
	assert.Contains(t, stmt.SQL, "'MaxFragments=3'")
	assert.Contains(t, stmt.SQL, "p.promotion_type = $2")
	assert.True(t, strings.HasSuffix(stmt.SQL, "ORDER BY s.rank DESC, p.id"))
	assert.NotContains(t, stmt.SQL, "date_added DESC")
	assert.Equal(t, []interface{}{"cheap sushi", "Other"}, stmt.Args)
}

func TestCompose_BlankSearchIsIgnored(t *testing.T) {
	stmt := Compose(models.Criteria{SearchQuery: ptr("")})

	assert.NotContains(t, stmt.SQL, "tsquery")
	assert.Equal(t, All().SQL, stmt.SQL)
}

func TestCompose_Sorts(t *testing.T) {
	t.Run("distance with origin", func(t *testing.T) {
		stmt := Compose(models.Criteria{
			Sort:   ptr(models.SortDistance),
			Origin: &models.Coordinate{Lat: 49.282, Lon: -123.1171},
		})
		assert.Contains(t, stmt.SQL, "(point(r.lon, r.lat) <@> point($1, $2)) AS distance")
		assert.True(t, strings.HasSuffix(stmt.SQL, "ORDER BY distance ASC, p.id"))
		assert.Equal(t, []interface{}{-123.1171, 49.282}, stmt.Args)
	})

	t.Run("distance without origin is skipped", func(t *testing.T) {
		stmt := Compose(models.Criteria{Sort: ptr(models.SortDistance)})
		assert.NotContains(t, stmt.SQL, "<@>")
		assert.NotContains(t, stmt.SQL, "ORDER BY")
	})

	t.Run("popularity", func(t *testing.T) {
		stmt := Compose(models.Criteria{Sort: ptr(models.SortPopularity)})
		assert.Contains(t, stmt.SQL, "FROM saved_promotion sv WHERE sv.promotion_id = p.id), 0)::int AS popularity")
		assert.True(t, strings.HasSuffix(stmt.SQL, "ORDER BY popularity DESC, p.date_added DESC, p.id"))
	})

	t.Run("recency", func(t *testing.T) {
		stmt := Compose(models.Criteria{Sort: ptr(models.SortRecency)})
		assert.True(t, strings.HasSuffix(stmt.SQL, "ORDER BY p.date_added DESC, p.id"))
	})
}

func TestStatementKey(t *testing.T) {
	a := Compose(models.Criteria{Cuisines: []models.Cuisine{models.CuisineJapanese, models.CuisineKorean}})
	b := Compose(models.Criteria{Cuisines: []models.Cuisine{models.CuisineJapanese, models.CuisineKorean}})
	c := Compose(models.Criteria{Cuisines: []models.Cuisine{models.CuisineJapanese, models.CuisineThai}})

	assert.Equal(t, a.Key(), b.Key(), "equal filters share a key")
	assert.NotEqual(t, a.Key(), c.Key())

	when := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	sameInstant := when.In(time.FixedZone("PST", -8*3600))
	assert.Equal(t,
		Compose(models.Criteria{ExpirationDate: &when}).Key(),
		Compose(models.Criteria{ExpirationDate: &sameInstant}).Key())

	assert.NotEqual(t,
		Statement{SQL: "x", Args: []interface{}{"1"}}.Key(),
		Statement{SQL: "x", Args: []interface{}{1}}.Key())
}

func TestStatementKey_ResolvesValuers(t *testing.T) {
	a := Statement{SQL: "x", Args: []interface{}{pq.Array([]string{"a"})}}
	b := Statement{SQL: "x", Args: []interface{}{pq.Array([]string{"a"})}}
	assert.Equal(t, a.Key(), b.Key())
}

func TestListingsByOwner(t *testing.T) {
	id := "4c1a4d38-0f43-4a4e-9df8-7f2ab1a4c9e7"

	saved := SavedBy(id)
	assert.Contains(t, saved.SQL, "JOIN saved_promotion sp ON sp.promotion_id = p.id")
	assert.Contains(t, saved.SQL, "WHERE sp.user_id = $1")
	assert.True(t, strings.HasSuffix(saved.SQL, "ORDER BY sp.date_saved DESC"))
	assert.Equal(t, []interface{}{id}, saved.Args)

	assert.Contains(t, ByUploader(id).SQL, "WHERE p.user_id = $1")
	assert.Contains(t, ByRestaurant(id).SQL, "WHERE p.restaurant_id = $1")

	byID := ByID(id)
	assert.Contains(t, byID.SQL, "WHERE p.id = $1")
	assert.NotContains(t, byID.SQL, "ORDER BY")
}
