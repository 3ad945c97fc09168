package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ubclaunchpad/foodies/internal/models"
)

// Enum handles GET /enums/{name}
func Enum(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	values, ok := models.EnumValues()[name]
	if !ok {
		writeError(w, "GetEnum", models.NotFound("enum", name))
		return
	}
	writeJSON(w, http.StatusOK, values)
}
