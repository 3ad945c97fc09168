package query

import (
	"fmt"
	"strings"
	"time"
)

// PopularityBand awards Points to a save made within the last Months
// months. Bands are contiguous and checked newest first; anything older than
// the last band earns OlderSavePoints.
type PopularityBand struct {
	Months int
	Points int
}

var PopularityBands = []PopularityBand{
	{Months: 1, Points: 5},
	{Months: 3, Points: 4},
	{Months: 6, Points: 3},
	{Months: 12, Points: 2},
}

const OlderSavePoints = 1

// SaveWeight is the score one save contributes at time now, using the same
// band cutoffs as the SQL CASE expression.
func SaveWeight(saved, now time.Time) int {
	for _, b := range PopularityBands {
		if !saved.Before(monthsBefore(now, b.Months)) {
			return b.Points
		}
	}
	return OlderSavePoints
}

// monthsBefore subtracts n calendar months from t, clamping the day to the
// end of the target month as Postgres interval arithmetic does (Mar 31 minus
// one month is Feb 29, not Mar 2).
func monthsBefore(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m-time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if last := first.AddDate(0, 1, -1).Day(); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// popularityScore is a correlated sub-query summing SaveWeight over the
// promotion's saves. Unsaved promotions score 0.
func popularityScore() string {
	var b strings.Builder
	b.WriteString("COALESCE((SELECT SUM(CASE")
	for _, band := range PopularityBands {
		fmt.Fprintf(&b, " WHEN sv.date_saved >= NOW() - INTERVAL '%d months' THEN %d", band.Months, band.Points)
	}
	fmt.Fprintf(&b, " ELSE %d END) FROM saved_promotion sv WHERE sv.promotion_id = p.id), 0)::int", OlderSavePoints)
	return b.String()
}
