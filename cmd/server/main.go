package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"saira_acad/internal/auth"
	"saira_acad/internal/config"
	"saira_acad/internal/controllers"
	"saira_acad/internal/logger"
	"saira_acad/internal/middleware"
	"saira_acad/internal/routes"
	"saira_acad/internal/seed"
	"saira_acad/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	// Initialize structured logging
	accessLog := logger.Setup(cfg.Log)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.OpenDB(cfg.Database, logger.GormLogger())
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	hasher := auth.NewHasher(cfg.Auth.BcryptCost)
	tokens, err := auth.NewTokenService(auth.TokenConfig{
		Secret:     cfg.Auth.JWTSecret,
		UserTTL:    cfg.Auth.UserTokenTTL,
		AdminTTL:   cfg.Auth.AdminTokenTTL,
		PartnerTTL: cfg.Auth.PartnerTokenTTL,
	})
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize token service")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := seed.DefaultAdmin(ctx, db, hasher, cfg.Auth.DefaultAdminUsername, cfg.Auth.DefaultAdminPassword); err != nil {
		logrus.WithError(err).Fatal("Failed to seed default admin")
	}

	files, err := storage.NewLocalStorage(cfg.Uploads.Dir, cfg.Uploads.MaxBytes())
	if err != nil {
		logrus.WithError(err).Fatal("Failed to prepare upload directory")
	}

	r := routes.SetupRouter(routes.Options{
		Deps: controllers.Deps{
			DB:           db,
			Auth:         auth.NewService(hasher, tokens),
			Storage:      files,
			Debug:        cfg.Debug,
			DefaultAdmin: cfg.Auth.DefaultAdminUsername,
		},
		RequireProfileAuth: cfg.HTTP.RequireProfileAuth,
		AccessLog:          accessLog,
		UploadDir:          cfg.Uploads.Dir,
	})

	// Wrap with CORS
	srv := &http.Server{
		Addr:              cfg.HTTP.ListenAddr(),
		Handler:           middleware.EnableCORS(r, cfg.HTTP.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.WithFields(logrus.Fields{"addr": srv.Addr, "env": cfg.Env}).Info("Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("Server failed")
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Graceful shutdown failed")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logrus.Info("Server stopped")
}
