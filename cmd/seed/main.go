package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/BruksfildServices01/service-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/service-booking/internal/db"
	infraRepo "github.com/BruksfildServices01/service-booking/internal/infra/repository"
	"github.com/BruksfildServices01/service-booking/internal/seed"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		logger.Error("database connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbpkg.Close(db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store := infraRepo.NewGormStore(db)
	s := seed.New(store, store, logger)

	if _, err := s.Services(ctx, seed.DefaultServices); err != nil {
		logger.Error("catalog seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := s.Admin(ctx, seed.Admin{
		Name:     cfg.AdminName,
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
		Phone:    cfg.AdminPhone,
	}); err != nil {
		logger.Error("admin seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seed completed")
}
