package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/florianilch/git-credential-lookup/internal/app"
	"github.com/florianilch/git-credential-lookup/internal/credstore"
	"github.com/florianilch/git-credential-lookup/internal/observability"
)

// Execute runs the root command with the given context and arguments.
func Execute(ctx context.Context, args []string, version string) error {
	return newRootCommand(version, os.Stdin, os.Stdout, os.Stderr).Run(ctx, args)
}

func newRootCommand(version string, stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "git-credential-lookup",
		Usage:     "Read-only git credential helper for URL-per-line credential stores",
		Version:   version,
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (debug|info|warn|error)",
				Value: slog.LevelInfo.String(),
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "log format (text|json)",
				Value: string(app.DefaultConfigLogFormat),
			},
			&cli.StringFlag{
				Name:  "telemetry--exporter",
				Usage: "OpenTelemetry log exporter (none|stdout|otlphttp|otlpgrpc)",
				Value: string(app.DefaultConfigTelemetryExporter),
			},
			&cli.StringFlag{
				Name:  "store--backend",
				Usage: "credential store backend (file|keyring)",
				Value: string(app.DefaultConfigStoreBackend),
			},
			&cli.StringFlag{
				Name:  "store--file",
				Usage: "credential store path (default: $" + credstore.PathEnvVar + " or ~/" + credstore.DefaultFileName + ")",
			},
			&cli.StringFlag{
				Name:  "store--keyring-service",
				Usage: "keyring service holding the credential store",
			},
			&cli.StringFlag{
				Name:  "store--keyring-user",
				Usage: "keyring user holding the credential store (default: current user)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "get",
				Usage:  "Return a matching credential, if any exists",
				Action: getAction,
			},
			{
				Name:   "store",
				Usage:  "Store the credential (no-op, the store is read-only)",
				Action: storeAction,
			},
			{
				Name:   "erase",
				Usage:  "Remove matching credentials (no-op, the store is read-only)",
				Action: eraseAction,
			},
		},
	}
}

func getAction(ctx context.Context, cmd *cli.Command) error {
	return withApp(ctx, cmd, func(ctx context.Context, a *app.App) error {
		stdin := cmd.Root().Reader
		if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			slog.InfoContext(ctx, "reading credential attributes from terminal, finish with an empty line")
		}

		return a.Get(ctx, stdin, cmd.Root().Writer)
	})
}

func storeAction(ctx context.Context, cmd *cli.Command) error {
	return withApp(ctx, cmd, func(ctx context.Context, a *app.App) error {
		return a.Store(ctx)
	})
}

func eraseAction(ctx context.Context, cmd *cli.Command) error {
	return withApp(ctx, cmd, func(ctx context.Context, a *app.App) error {
		return a.Erase(ctx)
	})
}

// withApp loads configuration, sets up logging and runs fn against a new App.
func withApp(ctx context.Context, cmd *cli.Command, fn func(context.Context, *app.App) error) error {
	cfg, err := loadConfig(cmd.String("config"), cmd, os.Environ)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Set up observability before creating app
	shutdown, err := observability.Instrument(ctx, observability.Options{
		Writer:   cmd.Root().ErrWriter,
		Level:    cfg.LogLevel,
		Format:   string(cfg.LogFormat),
		Exporter: string(cfg.Telemetry.Exporter),
	})
	if err != nil {
		return fmt.Errorf("failed to set up observability layer: %w", err)
	}
	defer func() {
		// Flush failures must not turn a served credential into a git error
		if err := shutdown(context.Background()); err != nil {
			slog.Warn("failed to flush logs", "error", err)
		}
	}()

	application, err := app.New(cfg, credstore.OSEnvironment{})
	if err != nil {
		return fmt.Errorf("failed to create app: %w", err)
	}

	slog.DebugContext(ctx, "running operation", "operation", cmd.Name)

	return fn(ctx, application)
}
