package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/yumyum/internal/app"
	"github.com/nhle/yumyum/internal/credential"
	"github.com/nhle/yumyum/internal/estimator"
	"github.com/nhle/yumyum/internal/meallog"
	"github.com/nhle/yumyum/internal/model"
	"github.com/nhle/yumyum/internal/store"
)

func main() {
	cfg, err := model.LoadConfig(model.DefaultConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger()

	if err := os.MkdirAll(filepath.Dir(cfg.Storage.Path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create data directory: %v\n", err)
		os.Exit(1)
	}

	db, err := store.NewSQLiteStore(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	meals := store.NewMealStore(db, logger)
	ctrl := meallog.NewController(context.Background(), meals)

	est := estimator.New(
		cfg.Estimator.BaseURL,
		resolveEstimatorKey(logger),
		time.Duration(cfg.Estimator.TimeoutSec)*time.Second,
	)

	p := tea.NewProgram(app.New(ctrl, est), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "run: %v\n", err)
		os.Exit(1)
	}
}

// newLogger returns a logger that stays off the terminal the TUI owns.
// With YUMYUM_DEBUG set, log output goes to a file next to the config;
// otherwise it is discarded.
func newLogger() *log.Logger {
	if os.Getenv("YUMYUM_DEBUG") == "" {
		return log.New(io.Discard, "", 0)
	}
	path := filepath.Join(filepath.Dir(model.DefaultConfigPath()), "debug.log")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return log.New(io.Discard, "", 0)
	}
	return log.New(f, "yumyum ", log.LstdFlags)
}

// resolveEstimatorKey looks up the remote estimator API key, preferring the
// environment over the system keyring. A missing key is not an error; the
// estimator simply sends unauthenticated requests.
func resolveEstimatorKey(logger *log.Logger) string {
	if key := os.Getenv("YUMYUM_ESTIMATOR_API_KEY"); key != "" {
		return key
	}
	key, err := credential.Get(credential.EstimatorAPIKey)
	if err != nil {
		logger.Printf("estimator api key unavailable: %v", err)
		return ""
	}
	return key
}
