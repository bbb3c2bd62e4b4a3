package logger_test

import (
	"testing"

	"github.com/remaimber-it/trivia/internal/logger"
)

func TestNew_Modes(t *testing.T) {
	for _, mode := range []string{"dev", "prod", "PRODUCTION", ""} {
		log, err := logger.New(mode)
		if err != nil {
			t.Errorf("mode %q: expected no error, got %v", mode, err)
			continue
		}
		if log.With("component", "test") == nil {
			t.Errorf("mode %q: expected a derived logger", mode)
		}
	}
}

func TestNop(t *testing.T) {
	log := logger.Nop()
	log.Info("discarded", "key", "value")
	log.Sync()
}
