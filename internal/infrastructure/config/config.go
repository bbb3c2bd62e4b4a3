package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration
	DBPath          string
	LogMode         string // "dev" or "prod"

	// Trivia engine
	Locale        string         // default catalog locale, e.g. "en"
	Location      *time.Location // calendar used for "today" and streaks
	SessionSize   int            // question cap per quiz
	MasteryPolicy string         // see attempt.PolicyByName
	CatalogSeed   string         // optional JSON catalog loaded at startup
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:   getenvDefault("SERVER_ADDRESS", ":8080"),
		ShutdownTimeout: mustGetDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		DBPath:          getenvDefault("DB_PATH", "trivia.db"),
		LogMode:         getenvDefault("LOG_MODE", "dev"),
		Locale:          getenvDefault("TRIVIA_LOCALE", "en"),
		Location:        mustGetLocation("TRIVIA_TIMEZONE"),
		SessionSize:     mustGetInt("SESSION_SIZE", 10),
		MasteryPolicy:   getenvDefault("MASTERY_POLICY", "latest_correct"),
		CatalogSeed:     os.Getenv("CATALOG_SEED"),
	}
}

func mustGetDuration(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func mustGetInt(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Fatalf("config: %s=%q is not a positive integer", k, v)
	}
	return n
}

func mustGetLocation(k string) *time.Location {
	v := os.Getenv(k)
	if v == "" || v == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid time zone: %v", k, v, err)
	}
	return loc
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}
