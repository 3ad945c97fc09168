package models

type PromotionType string

const (
	PromotionTypeHappyHour     PromotionType = "Happy Hour"
	PromotionTypeDailySpecial  PromotionType = "Daily Special"
	PromotionTypeLunchSpecial  PromotionType = "Lunch Special"
	PromotionTypeDinnerSpecial PromotionType = "Dinner Special"
	PromotionTypeBogo          PromotionType = "BOGO"
	PromotionTypeOther         PromotionType = "Other"
)

var promotionTypes = []PromotionType{
	PromotionTypeHappyHour,
	PromotionTypeDailySpecial,
	PromotionTypeLunchSpecial,
	PromotionTypeDinnerSpecial,
	PromotionTypeBogo,
	PromotionTypeOther,
}

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "%"
	DiscountTypeAmount     DiscountType = "$"
	DiscountTypeOther      DiscountType = "Other"
)

var discountTypes = []DiscountType{DiscountTypePercentage, DiscountTypeAmount, DiscountTypeOther}

type Day string

const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
	Saturday  Day = "Saturday"
	Sunday    Day = "Sunday"
)

var days = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// SortOption selects the ordering applied when no search term is present.
type SortOption string

const (
	SortDistance   SortOption = "Distance"
	SortPopularity SortOption = "Popularity"
	SortRecency    SortOption = "Recency"
)

var sortOptions = []SortOption{SortDistance, SortPopularity, SortRecency}

func (t PromotionType) Valid() bool { return contains(promotionTypes, t) }
func (c Cuisine) Valid() bool       { return contains(cuisines, c) }
func (t DiscountType) Valid() bool  { return contains(discountTypes, t) }
func (d Day) Valid() bool           { return contains(days, d) }
func (s SortOption) Valid() bool    { return contains(sortOptions, s) }

// EnumValues maps the public enum names to their allowed values, in
// declaration order.
func EnumValues() map[string][]string {
	return map[string][]string{
		"PromotionType": toStrings(promotionTypes),
		"CuisineType":   toStrings(cuisines),
		"DiscountType":  toStrings(discountTypes),
		"Day":           toStrings(days),
		"SortOptions":   toStrings(sortOptions),
	}
}

func contains[T comparable](values []T, v T) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func toStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
