// Command simulate plays a simulated learner against a catalog and prints
// the resulting progress. It writes to its own database file.
package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/remaimber-it/trivia/internal/catalog"
	"github.com/remaimber-it/trivia/internal/infrastructure/config"
	"github.com/remaimber-it/trivia/internal/logger"
	"github.com/remaimber-it/trivia/internal/simulation"
	"github.com/remaimber-it/trivia/internal/store"
)

func main() {
	cfg := config.Load()

	var (
		catalogPath = flag.String("catalog", cfg.CatalogSeed, "catalog JSON file")
		dbPath      = flag.String("db", "", "database file (default: a temporary file)")
		days        = flag.Int("days", 30, "days to simulate")
		facts       = flag.Int("facts", 5, "facts shown per day")
		games       = flag.Int("games", 2, "mixed/category games per day")
		skip        = flag.Int("skip-every", 0, "skip the daily quiz every n-th day")
		skill       = flag.Float64("skill", 0.7, "probability of a correct answer")
		workers     = flag.Int("workers", 4, "concurrent games")
		seed        = flag.Int64("seed", time.Now().UnixNano(), "random seed")
	)
	flag.Parse()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if *catalogPath == "" {
		log.Fatal("no catalog given, use -catalog or CATALOG_SEED")
	}
	path := *dbPath
	if path == "" {
		dir, err := os.MkdirTemp("", "trivia-sim")
		if err != nil {
			log.Fatal("failed to create temp dir", "error", err)
		}
		defer os.RemoveAll(dir)
		path = filepath.Join(dir, "sim.db")
	}

	db, err := store.NewSQLite(path)
	if err != nil {
		log.Fatal("failed to open database", "path", path, "error", err)
	}
	defer db.Close()

	ctx := context.Background()
	data, err := catalog.Load(*catalogPath)
	if err != nil {
		log.Fatal("failed to load catalog", "path", *catalogPath, "error", err)
	}
	if _, err := catalog.Import(ctx, db, data, cfg.Locale, log); err != nil {
		log.Fatal("failed to import catalog", "error", err)
	}

	locale := data.Locale
	if locale == "" {
		locale = cfg.Locale
	}
	report, err := simulation.Run(ctx, db, log, simulation.Config{
		Days:        *days,
		FactsPerDay: *facts,
		GamesPerDay: *games,
		SkipEvery:   *skip,
		Skill:       *skill,
		Workers:     *workers,
		Locale:      locale,
		Start:       time.Now().AddDate(0, 0, -*days+1),
		Seed:        *seed,
	})
	if err != nil {
		log.Fatal("simulation failed", "error", err)
	}

	log.Info("simulation finished",
		"days", report.Days,
		"games", report.Games,
		"empty_pools", report.EmptyPools,
		"answers", report.Answers,
		"accuracy", report.Overall.Accuracy(),
		"mastered", report.Overall.TotalMastered,
		"current_streak", report.CurrentStreak,
		"best_streak", report.BestStreak,
		"seed", *seed,
	)
}
