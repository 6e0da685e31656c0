package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Kyz7/corporate-site/internal/auth"
	"github.com/Kyz7/corporate-site/internal/config"
	"github.com/Kyz7/corporate-site/internal/database"
	"github.com/Kyz7/corporate-site/internal/logger"
	"github.com/Kyz7/corporate-site/internal/mail"
	"github.com/Kyz7/corporate-site/internal/public"
	"github.com/Kyz7/corporate-site/internal/server"
	"github.com/Kyz7/corporate-site/internal/storage"
	"github.com/Kyz7/corporate-site/internal/submission"
	"github.com/Kyz7/corporate-site/internal/user"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration: ", err)
	}

	if err := logger.Init(cfg.Env); err != nil {
		log.Fatal("failed to build logger: ", err)
	}
	defer logger.Sync()

	if cfg.IsProduction() {
		if err := auth.ValidateJWTSecret(cfg.JWTSecret); err != nil {
			logger.Log.Fatal("JWT configuration error", zap.Error(err))
		}
	}
	auth.Configure(cfg.JWTSecret)
	auth.ConfigureGoogle(cfg.Google)

	// ========== DATABASE SETUP ==========
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Log.Fatal("database connection failed", zap.Error(err))
	}

	if err := database.Migrate(db); err != nil {
		logger.Log.Fatal("migration failed", zap.Error(err))
	}
	if err := database.RunMigrations(db); err != nil {
		logger.Log.Warn("SQL migrations failed, listing indexes may be missing", zap.Error(err))
	}

	if err := user.SeedAdmin(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logger.Log.Error("failed to seed admin account", zap.Error(err))
	}

	// ========== STORAGE SETUP ==========
	if _, err := storage.Init(cfg.Storage); err != nil {
		logger.Log.Fatal("failed to initialize storage", zap.Error(err))
	}
	logger.SLog.Infow("storage ready", "s3", cfg.Storage.UseS3)

	// ========== MAIL ==========
	sender, err := mail.New(cfg.Mail)
	if err != nil {
		logger.Log.Fatal("failed to configure mail", zap.Error(err))
	}
	dispatcher := mail.NewDispatcher(sender, cfg.Mail.QueueSize)
	submission.Init(dispatcher, cfg.Mail.Admin)

	// ========== START SERVER ==========
	public.Init(cfg.SiteURL)
	app := server.New()

	go func() {
		logger.SLog.Infow("server starting", "addr", cfg.ServerAddr, "env", cfg.Env)
		if err := app.Listen(cfg.ServerAddr); err != nil {
			logger.Log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Log.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Log.Error("shutdown failed", zap.Error(err))
	}
	dispatcher.Close()
}
