package query

import "github.com/ubclaunchpad/foodies/internal/models"

// applySort fills the projection for the chosen sort and returns the ORDER
// BY clause. Distance without an origin is skipped and returns "".
func applySort(sort models.SortOption, origin *models.Coordinate, args *Args, proj *projections) string {
	switch sort {
	case models.SortDistance:
		if origin == nil {
			return ""
		}
		// point(x, y) is (lon, lat); <@> yields statute miles.
		proj.distance = "(point(r.lon, r.lat) <@> point(" + args.Add(origin.Lon) + ", " + args.Add(origin.Lat) + "))"
		return "distance ASC, p.id"
	case models.SortPopularity:
		proj.popularity = popularityScore()
		return "popularity DESC, p.date_added DESC, p.id"
	case models.SortRecency:
		return "p.date_added DESC, p.id"
	default:
		return ""
	}
}
