package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ubclaunchpad/foodies/internal/api/middleware"
	"github.com/ubclaunchpad/foodies/internal/models"
	"github.com/ubclaunchpad/foodies/internal/service"
	"github.com/ubclaunchpad/foodies/internal/validation"
)

type PromotionService interface {
	List(ctx context.Context, c models.Criteria) ([]models.Promotion, error)
	Get(ctx context.Context, id, userID string) (*models.Promotion, error)
	ByRestaurant(ctx context.Context, restaurantID, userID string) ([]models.Promotion, error)
	SavedBy(ctx context.Context, userID string) ([]models.Promotion, error)
	UploadedBy(ctx context.Context, userID string) ([]models.Promotion, error)
	Create(ctx context.Context, userID string, np models.NewPromotion) (*models.Promotion, error)
	Delete(ctx context.Context, userID, id string) error
}

type VoteService interface {
	Vote(ctx context.Context, userID, promotionID string, dir models.VoteDirection) (service.VoteResult, error)
}

type PromotionHandler struct {
	promotions PromotionService
	votes      VoteService
	validator  *validation.Validator
}

func NewPromotionHandler(promotions PromotionService, votes VoteService, v *validation.Validator) *PromotionHandler {
	return &PromotionHandler{promotions: promotions, votes: votes, validator: v}
}

// List handles GET /promotions
func (h *PromotionHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := parsePromotionQuery(r.URL.Query())
	if err != nil {
		writeError(w, "ListPromotions", err)
		return
	}
	if q.UserID == nil {
		if id, ok := middleware.UserID(r.Context()); ok {
			q.UserID = &id
		}
	}

	c, err := h.validator.Criteria(q)
	if err != nil {
		writeError(w, "ListPromotions", err)
		return
	}

	ps, err := h.promotions.List(r.Context(), c)
	if err != nil {
		writeError(w, "ListPromotions", err)
		return
	}
	writeJSON(w, http.StatusOK, ps)
}

// Get handles GET /promotions/{id}
func (h *PromotionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ID("id", chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "GetPromotion", err)
		return
	}
	userID, _ := middleware.UserID(r.Context())
	if v := r.URL.Query().Get("userId"); v != "" {
		uid, err := validation.ID("userId", v)
		if err != nil {
			writeError(w, "GetPromotion", err)
			return
		}
		userID = uid
	}

	p, err := h.promotions.Get(r.Context(), id, userID)
	if err != nil {
		writeError(w, "GetPromotion", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Create handles POST /promotions
func (h *PromotionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var np models.NewPromotion
	if err := json.NewDecoder(r.Body).Decode(&np); err != nil {
		writeError(w, "CreatePromotion", models.NewValidationError("request body must be a valid promotion: "+err.Error()))
		return
	}
	if err := h.validator.NewPromotion(np); err != nil {
		writeError(w, "CreatePromotion", err)
		return
	}

	p, err := h.promotions.Create(r.Context(), userID, np)
	if err != nil {
		writeError(w, "CreatePromotion", err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// Delete handles DELETE /promotions/{id}
func (h *PromotionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ID("id", chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "DeletePromotion", err)
		return
	}
	userID, _ := middleware.UserID(r.Context())

	if err := h.promotions.Delete(r.Context(), userID, id); err != nil {
		writeError(w, "DeletePromotion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpVote handles POST /promotions/{id}/upVote
func (h *PromotionHandler) UpVote(w http.ResponseWriter, r *http.Request) {
	h.vote(w, r, models.DirectionUp)
}

// DownVote handles POST /promotions/{id}/downVote
func (h *PromotionHandler) DownVote(w http.ResponseWriter, r *http.Request) {
	h.vote(w, r, models.DirectionDown)
}

func (h *PromotionHandler) vote(w http.ResponseWriter, r *http.Request, dir models.VoteDirection) {
	id, err := validation.ID("id", chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "VotePromotion", err)
		return
	}
	userID, _ := middleware.UserID(r.Context())

	res, err := h.votes.Vote(r.Context(), userID, id, dir)
	if err != nil {
		writeError(w, "VotePromotion", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// RestaurantPromotions handles GET /restaurants/{id}/promotions
func (h *PromotionHandler) RestaurantPromotions(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ID("id", chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "RestaurantPromotions", err)
		return
	}
	userID, _ := middleware.UserID(r.Context())

	ps, err := h.promotions.ByRestaurant(r.Context(), id, userID)
	if err != nil {
		writeError(w, "RestaurantPromotions", err)
		return
	}
	writeJSON(w, http.StatusOK, ps)
}

// parsePromotionQuery reads the listing parameters. Only numeric parsing
// happens here; everything else is left to the validator.
func parsePromotionQuery(v url.Values) (models.PromotionQuery, error) {
	var (
		q    models.PromotionQuery
		msgs []string
	)
	str := func(key string) *string {
		if _, ok := v[key]; !ok {
			return nil
		}
		s := v.Get(key)
		return &s
	}
	num := func(key string) *float64 {
		s := v.Get(key)
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			msgs = append(msgs, fmt.Sprintf("%q must be a number", key))
			return nil
		}
		return &f
	}

	q.PromotionType = str("promotionType")
	q.Cuisine = v["cuisine"]
	q.DiscountType = str("discountType")
	q.DiscountValue = num("discountValue")
	q.ExpirationDate = str("expirationDate")
	q.DayOfWeek = str("dayOfWeek")
	q.SearchQuery = str("searchQuery")
	q.Sort = str("sort")
	q.Lat = num("lat")
	q.Lon = num("lon")
	q.UserID = str("userId")

	if len(msgs) > 0 {
		return q, models.NewValidationError(msgs...)
	}
	return q, nil
}
