package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testUser = "4c1a4d38-0f43-4a4e-9df8-7f2ab1a4c9e7"

func echoUser() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := UserID(r.Context())
		w.Write([]byte(id))
	})
}

func TestIdentity(t *testing.T) {
	h := Identity(echoUser())

	t.Run("anonymous passes through", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("header is stored", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(UserIDHeader, testUser)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Equal(t, testUser, rr.Body.String())
	})

	t.Run("header is canonicalised", func(t *testing.T) {
		for _, spelling := range []string{
			strings.ToUpper(testUser),
			"{" + testUser + "}",
			"urn:uuid:" + testUser,
		} {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(UserIDHeader, spelling)
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			assert.Equal(t, testUser, rr.Body.String(), spelling)
		}
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(UserIDHeader, "alice")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"errorCode":"ValidationError","message":["\"X-User-ID\" must be a valid GUID"]}`, rr.Body.String())
	})
}

func TestRequireUser(t *testing.T) {
	h := Identity(RequireUser(echoUser()))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(UserIDHeader, testUser)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(0.001, 2)
	h := Identity(rl.Handler(echoUser()))

	do := func(user string) int {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set(UserIDHeader, user)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, do(testUser))
	assert.Equal(t, http.StatusOK, do(testUser))
	assert.Equal(t, http.StatusTooManyRequests, do(testUser))

	// Buckets are per user.
	assert.Equal(t, http.StatusOK, do("9b2f8a5e-1c1e-4f4e-8d52-3f0c0f7e2a10"))
}

func TestRateLimiter_SweepsIdleCallersPeriodically(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.lastSweep = start.Add(5 * time.Minute)

	rl.allow("a", start)
	rl.allow("b", start)

	// a and b are now idle, but the next sweep is not due yet.
	rl.allow("c", start.Add(rl.idle+time.Second))
	rl.allow("b", start.Add(rl.idle+2*time.Second))
	assert.Len(t, rl.limiters, 3)

	sweepAt := start.Add(rl.idle + 5*time.Minute)
	rl.allow("c", sweepAt)
	assert.Len(t, rl.limiters, 2)
	assert.NotContains(t, rl.limiters, "a")
	assert.Contains(t, rl.limiters, "b")
	assert.Equal(t, sweepAt, rl.lastSweep)
}

func TestLogger_PassesThrough(t *testing.T) {
	h := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusTeapot, rr.Code)
}
