package render

import (
	"bytes"
	"encoding/json"
	"net/http"
	"unicode/utf8"

	"github.com/stealthrocket/httpcraft/format/httpformat"
	"github.com/stealthrocket/httpcraft/internal/client"
)

// ResponseRecord converts res to the record emitted by structured output
// formats. JSON bodies are embedded as values, other bodies as text.
func ResponseRecord(res *client.Response) (*httpformat.Response, error) {
	if err := validateHeader(res.Header); err != nil {
		return nil, err
	}
	body, err := bodyValue(res.Header, res.Body)
	if err != nil {
		return nil, err
	}
	return &httpformat.Response{
		Proto:      res.Proto,
		StatusCode: res.StatusCode,
		StatusText: res.StatusText,
		Header:     httpformat.MakeHeader(res.Header),
		Body:       body,
	}, nil
}

// RequestRecord converts req to the record emitted by structured output
// formats.
func RequestRecord(req *client.Request) (*httpformat.Request, error) {
	if err := validateHeader(req.Header); err != nil {
		return nil, err
	}
	body, err := bodyValue(req.Header, req.Body)
	if err != nil {
		return nil, err
	}
	return &httpformat.Request{
		Proto:  req.Proto,
		Method: req.Method,
		URL:    req.URL,
		Header: httpformat.MakeHeader(req.Header),
		Body:   body,
	}, nil
}

func bodyValue(h http.Header, body []byte) (any, error) {
	if IsJSON(h) {
		if len(bytes.TrimSpace(body)) == 0 {
			return nil, nil
		}
		var v any
		if err := json.Unmarshal(body, &v); err != nil {
			return nil, &MalformedJSONError{Err: err}
		}
		return v, nil
	}
	text, err := Text(h, body)
	if err != nil {
		return nil, err
	}
	if len(text) == 0 {
		return nil, nil
	}
	return string(text), nil
}

func validateHeader(h http.Header) error {
	for name, values := range h {
		for _, value := range values {
			if !utf8.ValidString(value) {
				return &HeaderDecodeError{Name: name, Value: value}
			}
		}
	}
	return nil
}
