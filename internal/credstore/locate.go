package credstore

import (
	"os"
	"path/filepath"
)

const (
	// PathEnvVar overrides the store location when set to a non-empty value.
	PathEnvVar = "GIT_CREDENTIALS"

	// DefaultFileName is the store file name inside the home directory.
	DefaultFileName = ".git-credentials"
)

// Locator resolves the filesystem path of the credential store.
type Locator interface {
	// Locate returns the store path, or false if none can be determined.
	Locate() (string, bool)
}

// EnvLocator resolves the store path from GIT_CREDENTIALS, falling back to
// ~/.git-credentials.
type EnvLocator struct {
	env Environment
}

// Compile-time check to ensure EnvLocator implements Locator
var _ Locator = (*EnvLocator)(nil)

// NewEnvLocator creates an EnvLocator reading from env.
func NewEnvLocator(env Environment) *EnvLocator {
	return &EnvLocator{env: env}
}

// Locate implements Locator.
func (l *EnvLocator) Locate() (string, bool) {
	if path, ok := l.env.LookupEnv(PathEnvVar); ok && path != "" {
		return path, true
	}

	home, err := l.env.UserHomeDir()
	if err != nil || home == "" {
		return "", false
	}
	return filepath.Join(home, DefaultFileName), true
}

// FixedPath is a Locator that always returns itself.
type FixedPath string

// Locate implements Locator.
func (p FixedPath) Locate() (string, bool) {
	return string(p), p != ""
}

// OSEnvironment is the Environment of the running process.
type OSEnvironment struct{}

// Compile-time check to ensure OSEnvironment implements Environment
var _ Environment = OSEnvironment{}

// LookupEnv implements Environment.
func (OSEnvironment) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// UserHomeDir implements Environment.
func (OSEnvironment) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}
