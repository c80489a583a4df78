package command

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

// InvalidURLError is returned by ParseURL when the input is not an absolute
// URL.
type InvalidURLError struct {
	Input string
	Err   error
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid url %q: %s", e.Input, e.Err)
}

func (e *InvalidURLError) Unwrap() error { return e.Err }

var (
	errMissingScheme = errors.New("missing scheme")
	errMissingHost   = errors.New("missing host")
	errOpaque        = errors.New("url is not hierarchical")
)

var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
	"ws":    "80",
	"wss":   "443",
}

// ParseURL validates that raw is an absolute URL and returns its canonical
// string form.
//
// The scheme and host are lower-cased, internationalized host names are
// converted to their ASCII form, default ports are dropped, an empty path on
// an http(s) or ws(s) URL becomes "/", and the query is percent-encoded where
// it would not be valid in a request line. Passing the result back to ParseURL returns
// the same string.
func ParseURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return "", &InvalidURLError{Input: raw, Err: err}
	}
	switch {
	case u.Scheme == "":
		return "", &InvalidURLError{Input: raw, Err: errMissingScheme}
	case u.Opaque != "":
		return "", &InvalidURLError{Input: raw, Err: errOpaque}
	case u.Hostname() == "":
		return "", &InvalidURLError{Input: raw, Err: errMissingHost}
	}

	u.Scheme = strings.ToLower(u.Scheme)

	host := u.Hostname()
	if net.ParseIP(host) == nil && !isASCII(host) {
		host, err = idna.Lookup.ToASCII(host)
		if err != nil {
			return "", &InvalidURLError{Input: raw, Err: fmt.Errorf("invalid host: %w", err)}
		}
	}
	host = strings.ToLower(host)

	switch port := u.Port(); {
	case port != "" && port != defaultPorts[u.Scheme]:
		u.Host = net.JoinHostPort(host, port)
	case strings.Contains(host, ":"):
		u.Host = "[" + host + "]"
	default:
		u.Host = host
	}

	if _, special := defaultPorts[u.Scheme]; special && u.Path == "" && u.RawPath == "" {
		u.Path = "/"
	}
	u.RawQuery = escapeQuery(u.RawQuery)
	return u.String(), nil
}

const upperhex = "0123456789ABCDEF"

// escapeQuery percent-encodes the bytes of a raw query which cannot appear
// literally in a request line: controls, space, non-ASCII bytes and the
// characters '"', '#', '<' and '>'. Existing escapes are left untouched, so
// escaping an escaped query returns it unchanged.
func escapeQuery(query string) string {
	n := 0
	for i := 0; i < len(query); i++ {
		if shouldEscapeQuery(query[i]) {
			n++
		}
	}
	if n == 0 {
		return query
	}
	b := make([]byte, 0, len(query)+2*n)
	for i := 0; i < len(query); i++ {
		if c := query[i]; shouldEscapeQuery(c) {
			b = append(b, '%', upperhex[c>>4], upperhex[c&15])
		} else {
			b = append(b, c)
		}
	}
	return string(b)
}

func shouldEscapeQuery(c byte) bool {
	switch {
	case c <= ' ', c >= 0x7f:
		return true
	case c == '"', c == '#', c == '<', c == '>':
		return true
	}
	return false
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
