package credstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
)

// FileSource reads the store from a file on disk. The path is resolved on every Open.
type FileSource struct {
	locator Locator
}

// Compile-time check to ensure FileSource implements Source
var _ Source = (*FileSource)(nil)

// NewFileSource creates a FileSource reading the file the locator points to.
func NewFileSource(locator Locator) (*FileSource, error) {
	if locator == nil {
		return nil, fmt.Errorf("locator cannot be nil")
	}

	return &FileSource{
		locator: locator,
	}, nil
}

// Open opens the store file. A missing file is returned as an fs.ErrNotExist error,
// any other failure as *OpenError. Loose permissions are logged but not rejected.
func (f *FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, ok := f.locator.Locate()
	if !ok {
		return nil, ErrLocate
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, &OpenError{Path: path, Err: err}
	}

	// git creates the store with 0600; anything wider leaks secrets
	if info, err := file.Stat(); err == nil {
		if perm := info.Mode().Perm(); perm&0o077 != 0 {
			slog.WarnContext(ctx, "credential store is accessible by other users",
				"path", path,
				"mode", fmt.Sprintf("%04o", perm),
			)
		}
	}

	return file, nil
}

// String returns the resolved store path.
func (f *FileSource) String() string {
	path, ok := f.locator.Locate()
	if !ok {
		return "<unresolved>"
	}
	return path
}
