package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// MalformedJSONError is returned when a response declares a JSON content type
// but its body is not valid JSON.
type MalformedJSONError struct {
	Err error
}

func (e *MalformedJSONError) Error() string {
	return fmt.Sprintf("malformed json response body: %s", e.Err)
}

func (e *MalformedJSONError) Unwrap() error { return e.Err }

// CharsetError is returned when a body cannot be converted from the charset
// declared in its content type.
type CharsetError struct {
	Charset string
	Err     error
}

func (e *CharsetError) Error() string {
	return fmt.Sprintf("decoding %s response body: %s", e.Charset, e.Err)
}

func (e *CharsetError) Unwrap() error { return e.Err }

const jsonMediaType = "application/json"

// MediaType returns the media type of the Content-Type header in h, with its
// parameters. The media type is lower-cased; ok is false if the header is
// absent or cannot be parsed.
func MediaType(h http.Header) (mediaType string, params map[string]string, ok bool) {
	contentType := h.Get("Content-Type")
	if contentType == "" {
		return "", nil, false
	}
	mediaType, params, err := mime.ParseMediaType(contentType)
	switch {
	case err == nil:
	case errors.Is(err, mime.ErrInvalidMediaParameter):
		// The media type is still usable when only the parameters are
		// malformed.
		params = nil
	default:
		return "", nil, false
	}
	return mediaType, params, true
}

// IsJSON reports whether the Content-Type header in h has the media type
// application/json, ignoring any parameter such as charset.
func IsJSON(h http.Header) bool {
	mediaType, _, _ := MediaType(h)
	return mediaType == jsonMediaType
}

// Body returns the printable form of a response body.
//
// JSON bodies are re-indented; any other body is returned unmodified unless
// its content type declares a charset other than UTF-8, in which case it is
// converted to UTF-8.
func Body(h http.Header, body []byte) ([]byte, error) {
	if IsJSON(h) {
		return PrettyJSON(body)
	}
	return Text(h, body)
}

// PrettyJSON indents a JSON document with two spaces, preserving the order of
// object keys. An empty body (or one made only of white space) is returned as
// empty.
func PrettyJSON(body []byte) ([]byte, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, nil
	}
	b := new(bytes.Buffer)
	if err := json.Indent(b, body, "", "  "); err != nil {
		return nil, &MalformedJSONError{Err: err}
	}
	return b.Bytes(), nil
}

// Text converts body to UTF-8 according to the charset parameter of the
// content type in h. Bodies in unknown charsets are returned unmodified.
func Text(h http.Header, body []byte) ([]byte, error) {
	_, params, _ := MediaType(h)
	charset := strings.ToLower(strings.TrimSpace(params["charset"]))
	switch charset {
	case "", "utf-8", "utf8", "us-ascii":
		return body, nil
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return body, nil
	}
	if name, _ := htmlindex.Name(enc); name == "utf-8" {
		return body, nil
	}
	b, _, err := transform.Bytes(enc.NewDecoder(), body)
	if err != nil {
		return nil, &CharsetError{Charset: charset, Err: err}
	}
	return b, nil
}
