// Package query composes the single SQL statement behind promotion listing:
// structural filters, full-text search, and one sort strategy.
package query

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/ubclaunchpad/foodies/internal/models"
)

// Columns selected by every promotion statement, in scan order. The last
// five are projections that are NULL unless search or a sort fills them.
const selectColumns = `p.id, p.place_id, p.restaurant_id, p.user_id, p.promotion_type, p.cuisine,
	p.name, p.description, p.date_added, p.start_date, p.expiration_date, p.votes,
	d.id, d.discount_type, d.discount_value,
	r.id, r.place_id, r.lat, r.lon`

const baseFrom = `FROM promotion p
	JOIN discount d ON d.promotion_id = p.id
	JOIN restaurant r ON r.id = p.restaurant_id`

// Statement is a compiled query plus its parameters.
type Statement struct {
	SQL  string
	Args []interface{}
}

// Key identifies the statement for caching. Two statements with the same
// SQL and parameter values share a key.
func (s Statement) Key() string {
	var b strings.Builder
	b.WriteString(s.SQL)
	for _, a := range s.Args {
		b.WriteString("\x00")
		b.WriteString(argKey(a))
	}
	return b.String()
}

func argKey(a interface{}) string {
	if v, ok := a.(driver.Valuer); ok {
		if dv, err := v.Value(); err == nil {
			a = dv
		}
	}
	switch v := a.(type) {
	case time.Time:
		return v.UTC().Format(time.RFC3339Nano)
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%T:%v", v, v)
	}
}

// projections holds the optional computed columns.
type projections struct {
	rank, boldName, boldDescription, distance, popularity string
}

func nullProjections() projections {
	return projections{
		rank:            "NULL::float8",
		boldName:        "NULL::text",
		boldDescription: "NULL::text",
		distance:        "NULL::float8",
		popularity:      "NULL::int",
	}
}

// All returns the statement for the unfiltered listing.
func All() Statement {
	return Compose(models.Criteria{})
}

// Compose builds the listing statement for c. A search term takes over
// ordering; otherwise the requested sort, if applicable, is applied.
func Compose(c models.Criteria) Statement {
	args := &Args{}
	proj := nullProjections()
	from := baseFrom
	var orderBy string

	if c.HasSearch() {
		join, p, order := searchClause(*c.SearchQuery, args)
		from += "\n\t" + join
		proj.rank, proj.boldName, proj.boldDescription = p.rank, p.boldName, p.boldDescription
		orderBy = order
	} else if c.Sort != nil {
		orderBy = applySort(*c.Sort, c.Origin, args, &proj)
	}

	var where []string
	for _, p := range Predicates(c) {
		where = append(where, p.SQL(args))
	}

	var b strings.Builder
	b.WriteString(selectClause(proj))
	b.WriteString(from)
	if len(where) > 0 {
		b.WriteString("\nWHERE ")
		b.WriteString(strings.Join(where, "\n\tAND "))
	}
	if orderBy != "" {
		b.WriteString("\nORDER BY ")
		b.WriteString(orderBy)
	}

	return Statement{SQL: b.String(), Args: args.Values()}
}

// ByRestaurant lists the promotions of one restaurant.
func ByRestaurant(restaurantID string) Statement {
	return filtered("p.restaurant_id = $1", restaurantID, "p.date_added DESC")
}

// ByUploader lists the promotions a user uploaded.
func ByUploader(userID string) Statement {
	return filtered("p.user_id = $1", userID, "p.date_added DESC")
}

// SavedBy lists the promotions a user saved, most recently saved first.
func SavedBy(userID string) Statement {
	return Statement{
		SQL: buildSelect(baseFrom+"\n\tJOIN saved_promotion sp ON sp.promotion_id = p.id",
			"sp.user_id = $1", "sp.date_saved DESC"),
		Args: []interface{}{userID},
	}
}

// ByID fetches a single promotion.
func ByID(id string) Statement {
	return filtered("p.id = $1", id, "")
}

func filtered(where string, arg interface{}, orderBy string) Statement {
	return Statement{SQL: buildSelect(baseFrom, where, orderBy), Args: []interface{}{arg}}
}

func selectClause(p projections) string {
	return fmt.Sprintf("SELECT %s,\n\t%s AS rank, %s AS bold_name, %s AS bold_description, %s AS distance, %s AS popularity\n",
		selectColumns, p.rank, p.boldName, p.boldDescription, p.distance, p.popularity)
}

func buildSelect(from, where, orderBy string) string {
	s := selectClause(nullProjections()) + from + "\nWHERE " + where
	if orderBy != "" {
		s += "\nORDER BY " + orderBy
	}
	return s
}

// SchedulesFor loads the schedules of a set of promotions in one round trip.
const SchedulesFor = `SELECT id, promotion_id, day_of_week, start_time::text, end_time::text
	FROM schedule
	WHERE promotion_id = ANY($1::uuid[])
	ORDER BY promotion_id, array_position(ARRAY['Monday','Tuesday','Wednesday','Thursday','Friday','Saturday','Sunday'], day_of_week), start_time`
