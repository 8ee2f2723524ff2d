package main

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/Youngyoon-1/jwp-dashboard-jdbc/internal/config"
	"github.com/Youngyoon-1/jwp-dashboard-jdbc/internal/jdbc"
	"github.com/Youngyoon-1/jwp-dashboard-jdbc/internal/migrations"
	"github.com/Youngyoon-1/jwp-dashboard-jdbc/internal/transaction"
	"github.com/Youngyoon-1/jwp-dashboard-jdbc/internal/user"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLogLevel(cfg.Level)}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// loadConfig loads --config, or the discovered config file. Defaults are
// used only when nothing was asked for and nothing was found; a JWP_CONFIG
// that points nowhere is an error.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		found, err := config.Discover()
		if errors.Is(err, config.ErrNotFound) {
			return config.Default(), nil
		}
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		path = found
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// app holds everything a command needs.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	db      *sql.DB
	tm      transaction.Manager
	users   *user.Store
	history *user.HistoryStore
	service user.Service
}

func openApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger := newLogger(os.Stderr, cfg.Log)

	// Ensure database directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := db.Exec(migrations.InitialSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	tm := transaction.NewSQLManager(db)
	tmpl := jdbc.NewTemplate(db)
	users := user.NewStore(tmpl)
	history := user.NewHistoryStore(tmpl)
	policy := user.PasswordPolicy{
		MinLength:            cfg.Password.MinLength,
		MaxAccountSimilarity: cfg.Password.MaxAccountSimilarity,
	}
	appService := user.NewAppService(users, history, user.NewBcryptHasher(cfg.Password.BcryptCost), policy)

	return &app{
		cfg:     cfg,
		logger:  logger,
		db:      db,
		tm:      tm,
		users:   users,
		history: history,
		service: user.NewTxService(tm, appService, logger.With("component", "user")),
	}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}
