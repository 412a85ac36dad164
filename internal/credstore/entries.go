package credstore

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"net/url"
	"strings"
	"unicode/utf8"
)

// maxLineSize bounds a single store line.
const maxLineSize = 1 << 20

var (
	errMissingScheme = errors.New("relative URL without a base")
	errEmptyHost     = errors.New("empty host")
	errInvalidUTF8   = errors.New("stream did not contain valid UTF-8")
)

// defaultPorts lists the special schemes that require a host, with their default port.
// file is special too but may be hostless.
var defaultPorts = map[string]string{
	"ftp":   "21",
	"http":  "80",
	"https": "443",
	"ws":    "80",
	"wss":   "443",
}

// Entries returns the store read from r as a lazy sequence of parsed URLs.
// The first read or parse failure is yielded as a terminal error and ends the sequence.
func Entries(r io.Reader) iter.Seq2[*url.URL, error] {
	return func(yield func(*url.URL, error) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

		for scanner.Scan() {
			line := scanner.Text()
			if !utf8.ValidString(line) {
				yield(nil, &ReadError{Err: errInvalidUTF8})
				return
			}

			u, err := parseEntry(line)
			if err != nil {
				yield(nil, &InvalidURLError{Input: line, Err: err})
				return
			}
			if !yield(u, nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield(nil, &ReadError{Err: err})
		}
	}
}

// parseEntry parses a store line, which must be an absolute URL. The line is trimmed of
// surrounding spaces and control characters, and for special schemes such as https the
// host is required, lowercased and stripped of the scheme's default port.
func parseEntry(line string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimFunc(line, func(r rune) bool { return r <= ' ' }))
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" {
		return nil, errMissingScheme
	}

	defaultPort, special := defaultPorts[u.Scheme]
	if !special {
		return u, nil
	}
	if u.Hostname() == "" {
		return nil, errEmptyHost
	}

	host := strings.ToLower(u.Host)
	if port := u.Port(); port == defaultPort {
		host = strings.TrimSuffix(host, ":"+port)
	}
	u.Host = strings.TrimSuffix(host, ":")
	return u, nil
}

// hostname returns the entry host without its port, keeping IPv6 brackets.
func hostname(u *url.URL) string {
	if port := u.Port(); port != "" {
		return strings.TrimSuffix(u.Host, ":"+port)
	}
	return strings.TrimSuffix(u.Host, ":")
}
