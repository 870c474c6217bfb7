package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/lernapp/backend/internal/api"
	"github.com/lernapp/backend/internal/dataset"
	"github.com/lernapp/backend/internal/infrastructure/config"
	"github.com/lernapp/backend/internal/quiz"
	"github.com/lernapp/backend/internal/repository"
	"github.com/lernapp/backend/internal/scheduler"
	"github.com/lernapp/backend/internal/service"
	"github.com/lernapp/backend/internal/store"

	_ "github.com/lernapp/backend/docs" // swagger docs
)

// @title           Lernapp API
// @version         1.0
// @description     Single-user quiz trainer — log in, pick a subject, answer questions, collect points.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.ProgressDB)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ds, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		// The app still runs without a dataset, there is just nothing
		// to practice until one is provided.
		logger.Warn("failed to load dataset, starting empty", "path", cfg.DatasetPath, "error", err)
		ds = dataset.Empty()
	}

	repo := repository.NewProgress(db, ds.Users, ds.Config, repository.RenameReject, logger)
	engine := quiz.NewEngine(ds.Questions)
	controller := service.NewSessionController(repo, engine, scheduler.TimerScheduler{}, service.Config{
		DefaultSubject: cfg.DefaultSubject,
		AdvanceDelay:   cfg.AdvanceDelay,
	}, logger)
	handler := api.NewHandler(controller, repo, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
