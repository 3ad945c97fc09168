package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/ubclaunchpad/foodies/internal/api"
	"github.com/ubclaunchpad/foodies/internal/api/middleware"
	"github.com/ubclaunchpad/foodies/internal/config"
	"github.com/ubclaunchpad/foodies/pkg/db"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("config")
	}
	logrus.SetLevel(cfg.LogLevel)

	dbCfg, err := db.LoadPostgresConfig()
	if err != nil {
		logrus.WithError(err).Fatal("db config")
	}

	conn, err := db.NewPostgresConnection(dbCfg)
	if err != nil {
		logrus.WithError(err).Fatal("db connect")
	}
	defer conn.Close()

	if err := db.Migrate(conn); err != nil {
		logrus.WithError(err).Fatal("db migrate")
	}

	services := api.NewServices(conn, cfg.QueryCacheTTL)
	voteLimiter := middleware.NewRateLimiter(cfg.VoteRateLimit, cfg.VoteRateBurst)
	handler := api.NewRouter(services, voteLimiter)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)
	r.Mount("/", handler)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logrus.WithError(err).Error("HTTP server Shutdown")
		}
		close(idleConnsClosed)
	}()

	logrus.WithField("addr", srv.Addr).Info("starting promotion-service")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logrus.WithError(err).Fatal("listen")
	}

	<-idleConnsClosed
	logrus.Info("server stopped")
}
