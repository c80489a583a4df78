// Package httpformat declares the records emitted when httpcraft prints
// requests and responses in a structured output format (json or yaml).
package httpformat

import (
	"net/http"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Header maps canonical header names to their values. Repeated headers are
// joined with ", ".
type Header map[string]string

// MakeHeader converts h to a Header.
func MakeHeader(h http.Header) Header {
	if len(h) == 0 {
		return nil
	}
	header := make(Header, len(h))
	for name, values := range h {
		header[http.CanonicalHeaderKey(name)] = strings.Join(values, ", ")
	}
	return header
}

// Names returns the header names in lexicographical order.
func (h Header) Names() []string {
	names := maps.Keys(h)
	slices.Sort(names)
	return names
}

type Request struct {
	Proto  string `json:"protocol,omitempty" yaml:"protocol,omitempty"`
	Method string `json:"method,omitempty"   yaml:"method,omitempty"`
	URL    string `json:"url,omitempty"      yaml:"url,omitempty"`
	Header Header `json:"header,omitempty"   yaml:"header,omitempty"`
	Body   any    `json:"body,omitempty"     yaml:"body,omitempty"`
}

type Response struct {
	Proto      string `json:"protocol,omitempty"   yaml:"protocol,omitempty"`
	StatusCode int    `json:"statusCode,omitempty" yaml:"statusCode,omitempty"`
	StatusText string `json:"statusText,omitempty" yaml:"statusText,omitempty"`
	Header     Header `json:"header,omitempty"     yaml:"header,omitempty"`
	Body       any    `json:"body,omitempty"       yaml:"body,omitempty"`
}
