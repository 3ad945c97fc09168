package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Promotion struct {
	ID             string        `json:"id"`
	PlaceID        string        `json:"placeId"`
	RestaurantID   string        `json:"restaurantId"`
	UserID         string        `json:"userId"`
	PromotionType  PromotionType `json:"promotionType"`
	Cuisine        Cuisine       `json:"cuisine"`
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	DateAdded      time.Time     `json:"dateAdded"`
	StartDate      time.Time     `json:"startDate"`
	ExpirationDate time.Time     `json:"expirationDate"`
	Votes          int           `json:"votes"`

	Discount   Discount   `json:"discount"`
	Restaurant Restaurant `json:"restaurant"`
	Schedules  []Schedule `json:"schedules"`

	// Set only for a requesting user.
	IsSavedByUser *bool      `json:"isSavedByUser,omitempty"`
	VoteState     *VoteState `json:"voteState,omitempty"`

	// Set only by search / sort.
	Rank            *float64 `json:"rank,omitempty"`
	BoldName        *string  `json:"boldName,omitempty"`
	BoldDescription *string  `json:"boldDescription,omitempty"`
	Distance        *float64 `json:"distance,omitempty"`
	Popularity      *int     `json:"popularity,omitempty"`
}

// Discount is owned by exactly one promotion. Type and Value are either both
// set or both nil.
type Discount struct {
	ID    string           `json:"id"`
	Type  *DiscountType    `json:"discountType"`
	Value *decimal.Decimal `json:"discountValue"`
}

type Schedule struct {
	ID        string `json:"id"`
	DayOfWeek Day    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type Restaurant struct {
	ID      string  `json:"id"`
	PlaceID string  `json:"placeId"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

type SavedPromotion struct {
	UserID      string    `json:"userId"`
	PromotionID string    `json:"promotionId"`
	DateSaved   time.Time `json:"dateSaved"`
}

type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Clone returns a copy that shares no slices or pointers with p, so callers
// can annotate it without touching cached rows.
func (p Promotion) Clone() Promotion {
	c := p
	if p.Schedules != nil {
		c.Schedules = append([]Schedule(nil), p.Schedules...)
	}
	c.IsSavedByUser = clonePtr(p.IsSavedByUser)
	c.VoteState = clonePtr(p.VoteState)
	c.Rank = clonePtr(p.Rank)
	c.BoldName = clonePtr(p.BoldName)
	c.BoldDescription = clonePtr(p.BoldDescription)
	c.Distance = clonePtr(p.Distance)
	c.Popularity = clonePtr(p.Popularity)
	c.Discount.Type = clonePtr(p.Discount.Type)
	c.Discount.Value = clonePtr(p.Discount.Value)
	return c
}

func ClonePromotions(ps []Promotion) []Promotion {
	out := make([]Promotion, len(ps))
	for i := range ps {
		out[i] = ps[i].Clone()
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// NewPromotion is the create payload. UserID comes from the caller identity,
// not the body.
type NewPromotion struct {
	PlaceID        string        `json:"placeId" validate:"required"`
	Lat            *float64      `json:"lat" validate:"required,latitude"`
	Lon            *float64      `json:"lon" validate:"required,longitude"`
	PromotionType  PromotionType `json:"promotionType" validate:"required,promotiontype"`
	Cuisine        Cuisine       `json:"cuisine" validate:"required,cuisine"`
	Name           string        `json:"name" validate:"required,max=200"`
	Description    string        `json:"description" validate:"required"`
	StartDate      time.Time     `json:"startDate" validate:"required"`
	ExpirationDate time.Time     `json:"expirationDate" validate:"required,gtefield=StartDate"`
	Discount       NewDiscount   `json:"discount"`
	Schedules      []NewSchedule `json:"schedules" validate:"dive"`
}

type NewDiscount struct {
	DiscountType  *DiscountType `json:"discountType" validate:"omitempty,discounttype"`
	DiscountValue *float64      `json:"discountValue" validate:"omitempty,gte=0"`
}

type NewSchedule struct {
	DayOfWeek Day    `json:"dayOfWeek" validate:"required,day"`
	StartTime string `json:"startTime" validate:"required,clocktime"`
	EndTime   string `json:"endTime" validate:"required,clocktime"`
}
