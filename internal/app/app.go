package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/florianilch/git-credential-lookup/internal/credstore"
	"github.com/florianilch/git-credential-lookup/internal/gitcredential"
)

// App runs credential helper operations against the configured store.
type App struct {
	cfg   *Config
	store *credstore.Store
}

// New creates a new App instance reading process state from env.
// No I/O is performed; the store is opened on each Get.
func New(cfg *Config, env credstore.Environment) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	source, err := cfg.Store.NewSource(env)
	if err != nil {
		return nil, fmt.Errorf("failed to create store source: %w", err)
	}

	store, err := credstore.New(source)
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	return &App{
		cfg:   cfg,
		store: store,
	}, nil
}

// Get reads a credential request from r and writes the first matching stored credential to w.
// Nothing is written when no credential matches.
func (a *App) Get(ctx context.Context, r io.Reader, w io.Writer) error {
	req, err := gitcredential.Decode(r)
	if err != nil {
		return fmt.Errorf("failed to parse credential from stdin: %w", err)
	}

	slog.DebugContext(ctx, "credential requested",
		"protocol", gitcredential.Value(req.Protocol),
		"host", gitcredential.Value(req.Host),
		"path", gitcredential.Value(req.Path),
		"username", gitcredential.Value(req.Username),
	)

	match, err := a.store.Lookup(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to lookup credential: %w", err)
	}
	if match == nil {
		return nil
	}

	if err := match.Encode(w); err != nil {
		return fmt.Errorf("failed to write credential to stdout: %w", err)
	}
	return nil
}

// Store accepts a credential to save. The store is read-only, so this does nothing.
func (a *App) Store(ctx context.Context) error {
	slog.DebugContext(ctx, "ignoring store request, credential store is read-only")
	return nil
}

// Erase accepts a credential to remove. The store is read-only, so this does nothing.
func (a *App) Erase(ctx context.Context) error {
	slog.DebugContext(ctx, "ignoring erase request, credential store is read-only")
	return nil
}
