package client

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Request describes the request that was sent to the server.
type Request struct {
	Method string
	URL    string
	Proto  string
	Host   string
	Path   string
	Header http.Header
	Body   []byte
}

// Response is the result of one request. Body holds the payload with any
// content encoding already removed; Header is left as sent by the server.
type Response struct {
	Request    *Request
	Proto      string
	StatusCode int
	StatusText string
	Header     http.Header
	Body       []byte
	Elapsed    time.Duration
}

// StatusLine returns the protocol version, status code and reason phrase
// separated by spaces (e.g. "HTTP/1.1 200 OK").
func (r *Response) StatusLine() string {
	s := strconv.Itoa(r.StatusCode)
	if r.StatusText != "" {
		s += " " + r.StatusText
	}
	if r.Proto != "" {
		s = r.Proto + " " + s
	}
	return s
}

// statusText strips the numeric code from the status reported by net/http
// (e.g. "200 OK"), falling back to the standard reason phrase.
func statusText(status string, code int) string {
	text := strings.TrimSpace(strings.TrimPrefix(status, strconv.Itoa(code)))
	if text == "" {
		text = http.StatusText(code)
	}
	return text
}
