package query

import (
	"strconv"

	"github.com/lib/pq"

	"github.com/ubclaunchpad/foodies/internal/models"
)

// Args collects positional parameters and hands out their placeholders.
type Args struct {
	values []interface{}
}

// Add appends v and returns its placeholder ("$1", "$2", ...).
func (a *Args) Add(v interface{}) string {
	a.values = append(a.values, v)
	return "$" + strconv.Itoa(len(a.values))
}

func (a *Args) Values() []interface{} { return a.values }

// Predicate renders one boolean SQL condition, registering its parameters
// on args.
type Predicate interface {
	SQL(args *Args) string
}

type PredicateFunc func(args *Args) string

func (f PredicateFunc) SQL(args *Args) string { return f(args) }

// Predicates returns one builder per filter present in c. Absent fields
// contribute nothing; the caller ANDs the result.
func Predicates(c models.Criteria) []Predicate {
	builders := []func(models.Criteria) Predicate{
		promotionTypePredicate,
		cuisinePredicate,
		discountTypePredicate,
		discountValuePredicate,
		expirationPredicate,
		dayOfWeekPredicate,
	}
	var out []Predicate
	for _, build := range builders {
		if p := build(c); p != nil {
			out = append(out, p)
		}
	}
	return out
}

func promotionTypePredicate(c models.Criteria) Predicate {
	if c.PromotionType == nil {
		return nil
	}
	t := string(*c.PromotionType)
	return PredicateFunc(func(args *Args) string {
		return "p.promotion_type = " + args.Add(t)
	})
}

// An empty cuisine list adds no constraint rather than matching nothing.
func cuisinePredicate(c models.Criteria) Predicate {
	switch len(c.Cuisines) {
	case 0:
		return nil
	case 1:
		v := string(c.Cuisines[0])
		return PredicateFunc(func(args *Args) string {
			return "p.cuisine = " + args.Add(v)
		})
	default:
		vs := make([]string, len(c.Cuisines))
		for i, cu := range c.Cuisines {
			vs[i] = string(cu)
		}
		return PredicateFunc(func(args *Args) string {
			return "p.cuisine = ANY(" + args.Add(pq.Array(vs)) + ")"
		})
	}
}

func discountTypePredicate(c models.Criteria) Predicate {
	if c.DiscountType == nil {
		return nil
	}
	t := string(*c.DiscountType)
	return PredicateFunc(func(args *Args) string {
		return "d.discount_type = " + args.Add(t)
	})
}

// discountValue is a minimum, and only meaningful together with a type.
func discountValuePredicate(c models.Criteria) Predicate {
	if c.DiscountType == nil || c.DiscountValue == nil {
		return nil
	}
	v := *c.DiscountValue
	return PredicateFunc(func(args *Args) string {
		return "d.discount_value >= " + args.Add(v)
	})
}

// Both sides are normalised to UTC so stored offsets cannot shift the
// comparison by a day.
func expirationPredicate(c models.Criteria) Predicate {
	if c.ExpirationDate == nil {
		return nil
	}
	t := c.ExpirationDate.UTC()
	return PredicateFunc(func(args *Args) string {
		return "(p.expiration_date AT TIME ZONE 'UTC') >= (" + args.Add(t) + "::timestamptz AT TIME ZONE 'UTC')"
	})
}

// A sub-query keeps every schedule of a matching promotion in the result.
func dayOfWeekPredicate(c models.Criteria) Predicate {
	if c.DayOfWeek == nil {
		return nil
	}
	d := string(*c.DayOfWeek)
	return PredicateFunc(func(args *Args) string {
		return "p.id IN (SELECT s.promotion_id FROM schedule s WHERE s.day_of_week = " + args.Add(d) + ")"
	})
}
