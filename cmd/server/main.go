package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/remaimber-it/trivia/internal/api"
	"github.com/remaimber-it/trivia/internal/catalog"
	"github.com/remaimber-it/trivia/internal/domain/attempt"
	"github.com/remaimber-it/trivia/internal/infrastructure/config"
	"github.com/remaimber-it/trivia/internal/logger"
	"github.com/remaimber-it/trivia/internal/service"
	"github.com/remaimber-it/trivia/internal/store"

	_ "github.com/remaimber-it/trivia/docs" // generated swagger docs
)

// @title           Trivia progress API
// @version         1.0
// @description     Local trivia engine: question selection, answer recording, mastery, streaks, session replay and statistics.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	policy, err := attempt.PolicyByName(cfg.MasteryPolicy)
	if err != nil {
		log.Fatal("invalid mastery policy", "policy", cfg.MasteryPolicy, "error", err)
	}

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal("failed to open database", "path", cfg.DBPath, "error", err)
	}
	defer db.Close()

	if cfg.CatalogSeed != "" {
		seed(db, cfg, log)
	}

	engine := service.NewEngine(db, log, service.Options{
		SessionSize: cfg.SessionSize,
		Policy:      policy,
		Location:    cfg.Location,
	})
	handler := api.NewHandler(engine, db, log.With("component", "api"), cfg.Locale)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()
	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(log)(api.CORS(mux))

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

		log.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			log.Error("server forced to shutdown", "error", err)
		}
	}()

	log.Info("starting server",
		"address", cfg.ServerAddress,
		"db", cfg.DBPath,
		"locale", cfg.Locale,
		"timezone", cfg.Location.String(),
		"mastery_policy", cfg.MasteryPolicy,
	)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("server failed to start", "error", err)
	}
}

// seed imports the catalog file named by CATALOG_SEED. A broken seed file is
// logged and the server starts with whatever catalog the database has.
func seed(db *store.SQLiteStore, cfg *config.Config, log *logger.Logger) {
	data, err := catalog.Load(cfg.CatalogSeed)
	if err != nil {
		log.Error("failed to load catalog seed", "path", cfg.CatalogSeed, "error", err)
		return
	}
	if _, err := catalog.Import(context.Background(), db, data, cfg.Locale, log.With("component", "catalog")); err != nil {
		log.Error("failed to import catalog seed", "path", cfg.CatalogSeed, "error", err)
	}
}
