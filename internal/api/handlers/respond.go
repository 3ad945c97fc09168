package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/ubclaunchpad/foodies/internal/models"
)

// errorBody is the error shape clients already parse.
type errorBody struct {
	ErrorCode string   `json:"errorCode"`
	Message   []string `json:"message"`
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors to status codes. Anything unrecognised is
// logged and reported as a 500 without details.
func writeError(w http.ResponseWriter, op string, err error) {
	var (
		ve *models.ValidationError
		nf *models.NotFoundError
	)
	switch {
	case errors.As(err, &ve):
		logrus.WithField("errors", ve.Messages).Warn(op + ": Invalid request")
		writeJSON(w, http.StatusBadRequest, errorBody{ErrorCode: "ValidationError", Message: ve.Messages})
	case errors.As(err, &nf):
		logrus.WithField("entity", nf.Entity).WithField("id", nf.ID).Warn(op + ": Not found")
		writeJSON(w, http.StatusNotFound, errorBody{ErrorCode: "NotFoundError", Message: []string{nf.Error()}})
	case errors.Is(err, models.ErrForbidden):
		logrus.Warn(op + ": Forbidden")
		writeJSON(w, http.StatusForbidden, errorBody{ErrorCode: "ForbiddenError", Message: []string{err.Error()}})
	default:
		logrus.WithError(err).Error(op + ": Failed")
		writeJSON(w, http.StatusInternalServerError, errorBody{ErrorCode: "InternalServerError", Message: []string{"internal server error"}})
	}
}
