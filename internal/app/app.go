package app

import (
	"fmt"
	"strings"
	"time"

	"bookreview/pkg/auth"
	"bookreview/pkg/storage"
	"bookreview/pkg/store"
)

// Config holds runtime configuration for the core application.
type Config struct {
	DatabaseURL string
	SQLitePath  string
	TokenSecret string
	TokenTTL    time.Duration

	// Store and Avatars override the defaults built from the fields
	// above; tests inject both.
	Store   store.Store
	Avatars storage.AvatarStore
}

// App is the core application service wiring storage, auth, and the
// catalog/engagement/admin operations together.
type App struct {
	store   store.Store
	tokens  *auth.TokenManager
	avatars storage.AvatarStore
}

// New constructs the application with database storage and token issuing.
func New(cfg Config) (*App, error) {
	dataStore := cfg.Store
	if dataStore == nil {
		var err error
		switch {
		case strings.TrimSpace(cfg.DatabaseURL) != "":
			dataStore, err = store.NewGormStore(cfg.DatabaseURL)
		case strings.TrimSpace(cfg.SQLitePath) != "":
			dataStore, err = store.NewSQLiteStore(cfg.SQLitePath)
		default:
			return nil, fmt.Errorf("database URL or sqlite path required")
		}
		if err != nil {
			return nil, fmt.Errorf("init store: %w", err)
		}
	}
	tokens, err := auth.NewTokenManager(cfg.TokenSecret, cfg.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("init token manager: %w", err)
	}
	return &App{
		store:   dataStore,
		tokens:  tokens,
		avatars: cfg.Avatars,
	}, nil
}

// Tokens exposes the token manager for the HTTP layer's bearer checks.
func (a *App) Tokens() *auth.TokenManager {
	return a.tokens
}
