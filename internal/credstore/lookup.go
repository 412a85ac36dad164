package credstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/florianilch/git-credential-lookup/internal/gitcredential"
)

// Store answers credential requests from a Source.
type Store struct {
	source Source
}

// New creates a Store reading from source.
func New(source Source) (*Store, error) {
	if source == nil {
		return nil, fmt.Errorf("missing store source")
	}

	return &Store{source: source}, nil
}

// Lookup returns the credential of the first store entry matching req.
// It returns nil without error when nothing matches or the store does not exist.
//
// Errors are one of ErrLocate, *OpenError, *ReadError or *InvalidURLError, or the
// context's error. A malformed line fails the lookup once the scan reaches it.
func (s *Store) Lookup(ctx context.Context, req *gitcredential.Credential) (*gitcredential.Credential, error) {
	rc, err := s.source.Open(ctx)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.DebugContext(ctx, "credential store does not exist", "store", s.source.String())
			return nil, nil
		}
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	line := 0
	for u, err := range Entries(rc) {
		if err != nil {
			return nil, err
		}
		line++

		if !Matches(req, u) {
			continue
		}

		slog.DebugContext(ctx, "credential store entry matched",
			"store", s.source.String(),
			"line", line,
			"protocol", u.Scheme,
			"host", u.Host,
		)
		return gitcredential.FromURL(u), nil
	}

	slog.DebugContext(ctx, "no credential store entry matched", "store", s.source.String(), "entries", line)
	return nil, nil
}
