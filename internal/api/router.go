package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ubclaunchpad/foodies/internal/api/handlers"
	"github.com/ubclaunchpad/foodies/internal/api/middleware"
	"github.com/ubclaunchpad/foodies/internal/cache"
	"github.com/ubclaunchpad/foodies/internal/models"
	"github.com/ubclaunchpad/foodies/internal/repository"
	"github.com/ubclaunchpad/foodies/internal/service"
	"github.com/ubclaunchpad/foodies/internal/validation"
)

// Services are the application services behind the HTTP surface.
type Services struct {
	Promotions handlers.PromotionService
	Votes      handlers.VoteService
	Saved      handlers.SavedService
}

// NewServices wires repositories and services over db. Listing reads are
// cached for cacheTTL.
func NewServices(db *sql.DB, cacheTTL time.Duration) Services {
	pRepo := repository.NewPromotionRepo(db, cache.NewTTLCache[[]models.Promotion](cacheTTL))
	rRepo := repository.NewRestaurantRepo()
	uRepo := repository.NewUserRepo(db)
	sRepo := repository.NewSavedRepo(db)
	vRepo := repository.NewVoteRepo(db)

	enricher := service.NewEnricher(sRepo, vRepo)

	return Services{
		Promotions: service.NewPromotionService(db, pRepo, rRepo, uRepo, enricher),
		Votes:      service.NewVoteService(db, vRepo, pRepo, uRepo),
		Saved:      service.NewSavedService(db, sRepo, pRepo, uRepo),
	}
}

// NewRouter builds the HTTP router for the promotion service. voteLimiter
// throttles the vote endpoints; nil disables throttling.
func NewRouter(svc Services, voteLimiter *middleware.RateLimiter) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Identity)

	promotionHandler := handlers.NewPromotionHandler(svc.Promotions, svc.Votes, validation.New())
	userHandler := handlers.NewUserHandler(svc.Promotions, svc.Saved)

	throttle := func(next http.Handler) http.Handler { return next }
	if voteLimiter != nil {
		throttle = voteLimiter.Handler
	}

	r.Route("/promotions", func(r chi.Router) {
		r.Get("/", promotionHandler.List)
		r.With(middleware.RequireUser).Post("/", promotionHandler.Create)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", promotionHandler.Get)
			r.With(middleware.RequireUser).Delete("/", promotionHandler.Delete)
			r.With(middleware.RequireUser, throttle).Post("/upVote", promotionHandler.UpVote)
			r.With(middleware.RequireUser, throttle).Post("/downVote", promotionHandler.DownVote)
		})
	})

	r.Get("/restaurants/{id}/promotions", promotionHandler.RestaurantPromotions)

	r.Route("/users/{id}", func(r chi.Router) {
		r.Get("/savedPromotions", userHandler.SavedPromotions)
		r.Get("/uploadedPromotions", userHandler.UploadedPromotions)
		r.With(middleware.RequireUser).Post("/savedPromotions/{pid}", userHandler.SavePromotion)
		r.With(middleware.RequireUser).Delete("/savedPromotions/{pid}", userHandler.UnsavePromotion)
	})

	r.Get("/enums/{name}", handlers.Enum)

	// health
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}
