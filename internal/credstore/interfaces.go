package credstore

import (
	"context"
	"io"
)

// Source opens the credential store for sequential reading.
type Source interface {
	// Open returns a reader over the store contents. Implementations report a missing
	// store with an error matching fs.ErrNotExist.
	Open(ctx context.Context) (io.ReadCloser, error)

	// String describes the store location for logs and errors.
	String() string
}

// Environment is the slice of process state the Locator depends on.
type Environment interface {
	LookupEnv(key string) (string, bool)
	UserHomeDir() (string, error)
}
