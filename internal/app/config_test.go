package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/florianilch/git-credential-lookup/internal/credstore"
)

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, DefaultConfigLogFormat, cfg.LogFormat)
	assert.Equal(t, DefaultConfigTelemetryExporter, cfg.Telemetry.Exporter)
	assert.Equal(t, StoreBackendFile, cfg.Store.Backend)
	assert.Empty(t, cfg.Store.File)
	assert.NoError(t, cfg.Validate())
}

func TestApplyDefaultsKeyring(t *testing.T) {
	cfg := &Config{Store: StoreConfig{Backend: StoreBackendKeyring}}
	require.NoError(t, cfg.ApplyDefaults())

	assert.Equal(t, DefaultConfigKeyringService, cfg.Store.KeyringService)
	assert.NotEmpty(t, cfg.Store.KeyringUser)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults",
			modify: func(*Config) {},
		},
		{
			name:    "unknown log format",
			modify:  func(c *Config) { c.LogFormat = "xml" },
			wantErr: true,
		},
		{
			name:    "unknown backend",
			modify:  func(c *Config) { c.Store.Backend = "vault" },
			wantErr: true,
		},
		{
			name:    "unknown exporter",
			modify:  func(c *Config) { c.Telemetry.Exporter = "zipkin" },
			wantErr: true,
		},
		{
			name: "keyring without user",
			modify: func(c *Config) {
				c.Store.Backend = StoreBackendKeyring
				c.Store.KeyringService = "svc"
			},
			wantErr: true,
		},
		{
			name:    "keyring settings on file backend",
			modify:  func(c *Config) { c.Store.KeyringUser = "alice" },
			wantErr: true,
		},
		{
			name:   "fixed store file",
			modify: func(c *Config) { c.Store.File = "/srv/git-credentials" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Default()
			require.NoError(t, err)
			tt.modify(cfg)

			err = cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStoreConfigNewSource(t *testing.T) {
	keyring.MockInit()

	tests := []struct {
		name     string
		cfg      StoreConfig
		expected string
	}{
		{
			name:     "fixed file",
			cfg:      StoreConfig{Backend: StoreBackendFile, File: "/srv/creds"},
			expected: "/srv/creds",
		},
		{
			name:     "located file",
			cfg:      StoreConfig{Backend: StoreBackendFile},
			expected: "/env/creds",
		},
		{
			name:     "keyring",
			cfg:      StoreConfig{Backend: StoreBackendKeyring, KeyringService: "svc", KeyringUser: "alice"},
			expected: "keyring:svc/alice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source, err := tt.cfg.NewSource(staticEnv{credstore.PathEnvVar: "/env/creds"})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, source.String())
		})
	}

	_, err := (&StoreConfig{Backend: "vault"}).NewSource(staticEnv{})
	assert.Error(t, err)
}
