package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PromotionQuery is the raw list/search input as it arrives from the HTTP
// layer. Every field is optional. It becomes a Criteria only after
// validation.
type PromotionQuery struct {
	PromotionType  *string  `json:"promotionType" validate:"omitempty,promotiontype"`
	Cuisine        []string `json:"cuisine" validate:"omitempty,dive,cuisine"`
	DiscountType   *string  `json:"discountType" validate:"omitempty,discounttype"`
	DiscountValue  *float64 `json:"discountValue" validate:"omitempty,gt=0"`
	ExpirationDate *string  `json:"expirationDate" validate:"omitempty,flexdate"`
	DayOfWeek      *string  `json:"dayOfWeek" validate:"omitempty,day"`
	SearchQuery    *string  `json:"searchQuery" validate:"omitempty,max=200"`
	Sort           *string  `json:"sort" validate:"omitempty,sortoption"`
	Lat            *float64 `json:"lat" validate:"omitempty,latitude"`
	Lon            *float64 `json:"lon" validate:"omitempty,longitude"`
	UserID         *string  `json:"userId" validate:"omitempty,guid"`
}

// Coordinate is a requester position in degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Criteria is the validated filter set handed to the query engine. Nil
// pointers and empty slices mean "no constraint".
type Criteria struct {
	PromotionType  *PromotionType
	Cuisines       []Cuisine
	DiscountType   *DiscountType
	DiscountValue  *decimal.Decimal
	ExpirationDate *time.Time
	DayOfWeek      *Day
	SearchQuery    *string
	Sort           *SortOption
	Origin         *Coordinate
	UserID         *string
}

// IsEmpty reports whether no field at all was supplied.
func (c Criteria) IsEmpty() bool {
	return c.PromotionType == nil &&
		len(c.Cuisines) == 0 &&
		c.DiscountType == nil &&
		c.DiscountValue == nil &&
		c.ExpirationDate == nil &&
		c.DayOfWeek == nil &&
		c.SearchQuery == nil &&
		c.Sort == nil &&
		c.Origin == nil &&
		c.UserID == nil
}

// HasSearch reports whether a non-blank search term is present.
func (c Criteria) HasSearch() bool {
	return c.SearchQuery != nil && *c.SearchQuery != ""
}
