package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/magno-tech/exercise-tracker/internal/api"
	"github.com/magno-tech/exercise-tracker/internal/api/handlers"
	"github.com/magno-tech/exercise-tracker/internal/config"
	"github.com/magno-tech/exercise-tracker/internal/logger"
	"github.com/magno-tech/exercise-tracker/internal/repositories"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := repositories.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Log.Fatalw("connect database", "error", err)
	}

	h := handlers.New(
		repositories.NewUserRepository(db),
		repositories.NewExerciseRepository(db),
	)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: api.NewRouter(h, cfg.CorsOptions()),
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	logger.Log.Infow("starting exercise tracker", "port", cfg.Port, "env", cfg.Environment)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Log.Fatalw("server stopped", "error", err)
	}
}
