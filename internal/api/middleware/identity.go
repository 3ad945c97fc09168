package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

// UserIDHeader carries the caller's user id, set by the upstream auth
// gateway.
const UserIDHeader = "X-User-ID"

type ctxKey int

const userIDKey ctxKey = iota

// Identity stores a well-formed X-User-ID in the request context in canonical
// lower-case form. Requests without one pass through anonymous; a malformed
// one is rejected.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(UserIDHeader)
		if id == "" {
			next.ServeHTTP(w, r)
			return
		}
		uid, err := uuid.Parse(id)
		if err != nil {
			reject(w, http.StatusBadRequest, "ValidationError", `"`+UserIDHeader+`" must be a valid GUID`)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), uid.String())))
	})
}

// RequireUser rejects anonymous requests with 401.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserID(r.Context()); !ok {
			reject(w, http.StatusUnauthorized, "UnauthorizedError", "missing "+UserIDHeader+" header")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserID returns the caller identity placed by Identity.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

func reject(w http.ResponseWriter, code int, errorCode, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"errorCode": errorCode,
		"message":   []string{msg},
	})
}
