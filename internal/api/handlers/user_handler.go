package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ubclaunchpad/foodies/internal/api/middleware"
	"github.com/ubclaunchpad/foodies/internal/models"
	"github.com/ubclaunchpad/foodies/internal/validation"
)

type SavedService interface {
	Save(ctx context.Context, userID, promotionID string) error
	Unsave(ctx context.Context, userID, promotionID string) error
}

// UserHandler serves the per-user promotion collections.
type UserHandler struct {
	promotions PromotionService
	saved      SavedService
}

func NewUserHandler(promotions PromotionService, saved SavedService) *UserHandler {
	return &UserHandler{promotions: promotions, saved: saved}
}

// SavedPromotions handles GET /users/{id}/savedPromotions
func (h *UserHandler) SavedPromotions(w http.ResponseWriter, r *http.Request) {
	userID, err := validation.ID("id", chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "SavedPromotions", err)
		return
	}

	ps, err := h.promotions.SavedBy(r.Context(), userID)
	if err != nil {
		writeError(w, "SavedPromotions", err)
		return
	}
	writeJSON(w, http.StatusOK, ps)
}

// UploadedPromotions handles GET /users/{id}/uploadedPromotions
func (h *UserHandler) UploadedPromotions(w http.ResponseWriter, r *http.Request) {
	userID, err := validation.ID("id", chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "UploadedPromotions", err)
		return
	}

	ps, err := h.promotions.UploadedBy(r.Context(), userID)
	if err != nil {
		writeError(w, "UploadedPromotions", err)
		return
	}
	writeJSON(w, http.StatusOK, ps)
}

// SavePromotion handles POST /users/{id}/savedPromotions/{pid}
func (h *UserHandler) SavePromotion(w http.ResponseWriter, r *http.Request) {
	userID, promotionID, ok := h.ownPathIDs(w, r, "SavePromotion")
	if !ok {
		return
	}
	if err := h.saved.Save(r.Context(), userID, promotionID); err != nil {
		writeError(w, "SavePromotion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UnsavePromotion handles DELETE /users/{id}/savedPromotions/{pid}
func (h *UserHandler) UnsavePromotion(w http.ResponseWriter, r *http.Request) {
	userID, promotionID, ok := h.ownPathIDs(w, r, "UnsavePromotion")
	if !ok {
		return
	}
	if err := h.saved.Unsave(r.Context(), userID, promotionID); err != nil {
		writeError(w, "UnsavePromotion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ownPathIDs validates {id} and {pid} and checks that {id} is the caller.
func (h *UserHandler) ownPathIDs(w http.ResponseWriter, r *http.Request, op string) (string, string, bool) {
	var msgs []string
	userID, err := validation.ID("id", chi.URLParam(r, "id"))
	if err != nil {
		msgs = append(msgs, err.(*models.ValidationError).Messages...)
	}
	promotionID, err := validation.ID("pid", chi.URLParam(r, "pid"))
	if err != nil {
		msgs = append(msgs, err.(*models.ValidationError).Messages...)
	}
	if len(msgs) > 0 {
		writeError(w, op, models.NewValidationError(msgs...))
		return "", "", false
	}

	caller, _ := middleware.UserID(r.Context())
	if caller != userID {
		writeError(w, op, models.ErrForbidden)
		return "", "", false
	}
	return userID, promotionID, true
}
