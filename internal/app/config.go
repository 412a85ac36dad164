package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os/user"

	"github.com/florianilch/git-credential-lookup/internal/credstore"
	"github.com/go-playground/validator/v10"
)

// LogFormat represents the logging output format.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// TelemetryExporter selects where OpenTelemetry log records are exported.
type TelemetryExporter string

const (
	TelemetryExporterNone     TelemetryExporter = "none"
	TelemetryExporterStdout   TelemetryExporter = "stdout"
	TelemetryExporterOTLPHTTP TelemetryExporter = "otlphttp"
	TelemetryExporterOTLPGRPC TelemetryExporter = "otlpgrpc"
)

// StoreBackend represents the storage backends the credential store can be read from.
type StoreBackend string

const (
	StoreBackendFile    StoreBackend = "file"
	StoreBackendKeyring StoreBackend = "keyring"
)

// Default configuration values
const (
	DefaultConfigLogFormat         = LogFormatText
	DefaultConfigTelemetryExporter = TelemetryExporterNone
	DefaultConfigStoreBackend      = StoreBackendFile
	DefaultConfigKeyringService    = "git-credential-lookup"
)

// TelemetryConfig holds OpenTelemetry log export configuration.
// Exporter endpoints are configured through the standard OTEL_EXPORTER_OTLP_* variables.
type TelemetryConfig struct {
	Exporter TelemetryExporter `json:"exporter" validate:"oneof=none stdout otlphttp otlpgrpc"`
}

// StoreConfig describes where the credential store is read from.
type StoreConfig struct {
	Backend StoreBackend `json:"backend" validate:"required,oneof=file keyring"`

	// File overrides the located store path (GIT_CREDENTIALS or ~/.git-credentials).
	File string `json:"file,omitempty"`

	// Keyring identifiers of the secret holding the store text.
	KeyringService string `json:"keyring_service,omitempty"`
	KeyringUser    string `json:"keyring_user,omitempty"`
}

// NewSource creates a credstore.Source from the store configuration.
// Without a configured file, the path is located through env on each lookup.
func (s *StoreConfig) NewSource(env credstore.Environment) (credstore.Source, error) {
	switch s.Backend {
	case StoreBackendFile:
		if s.File != "" {
			return credstore.NewFileSource(credstore.FixedPath(s.File))
		}
		return credstore.NewFileSource(credstore.NewEnvLocator(env))
	case StoreBackendKeyring:
		return credstore.NewKeyringSource(s.KeyringService, s.KeyringUser)
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", s.Backend)
	}
}

// Config holds the application's configuration.
type Config struct {
	// LogLevel for logging output (defaults to Info if unset).
	LogLevel  slog.Level      `json:"log_level"`
	LogFormat LogFormat       `json:"log_format" validate:"oneof=text json"`
	Telemetry TelemetryConfig `json:"telemetry"`
	Store     StoreConfig     `json:"store"`
}

// Default creates a new Config with default values applied.
func Default() (*Config, error) {
	cfg := &Config{}
	if err := cfg.ApplyDefaults(); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}
	return cfg, nil
}

// ApplyDefaults fills unset config fields with sensible defaults.
func (c *Config) ApplyDefaults() error {
	if c.LogFormat == "" {
		c.LogFormat = DefaultConfigLogFormat
	}
	if c.Telemetry.Exporter == "" {
		c.Telemetry.Exporter = DefaultConfigTelemetryExporter
	}
	if c.Store.Backend == "" {
		c.Store.Backend = DefaultConfigStoreBackend
	}

	// Dynamic defaults based on store backend
	switch c.Store.Backend {
	case StoreBackendKeyring:
		if c.Store.KeyringService == "" {
			c.Store.KeyringService = DefaultConfigKeyringService
		}
		if c.Store.KeyringUser == "" {
			currentUser, err := user.Current()
			if err != nil {
				return fmt.Errorf("store.keyring_user required (auto-detect failed: %w)", err)
			}
			c.Store.KeyringUser = currentUser.Username
		}
	case StoreBackendFile:
		// store path is located at lookup time so a missing home directory surfaces as a lookup failure
	}

	return nil
}

// Validate validates the configuration using struct tags and enum values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}

	switch c.Store.Backend {
	case StoreBackendKeyring:
		if c.Store.KeyringService == "" {
			return errors.New("keyring_service required for keyring store")
		}
		if c.Store.KeyringUser == "" {
			return errors.New("keyring_user required for keyring store")
		}
	case StoreBackendFile:
		if c.Store.KeyringService != "" || c.Store.KeyringUser != "" {
			return errors.New("keyring settings are only valid for keyring store")
		}
	}

	return nil
}
