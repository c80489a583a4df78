// Package docprint writes the structured output of httpcraft: each value is
// encoded as a separate JSON or YAML document.
package docprint

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/stealthrocket/httpcraft/internal/stream"
)

// Format is the encoding of documents written by a Writer.
type Format string

const (
	// JSON documents are indented by two spaces and separated by a newline.
	// HTML characters are not escaped.
	JSON Format = "json"
	// YAML documents are indented by two spaces and separated by "---".
	YAML Format = "yaml"
)

// ErrClosed is returned when writing to a closed writer.
var ErrClosed = errors.New("document writer closed")

type encoder interface {
	Encode(any) error
	Close() error
}

type jsonEncoder struct{ *json.Encoder }

func (jsonEncoder) Close() error { return nil }

// NewWriter returns a writer which encodes each value written to it as a
// document of the given format on w.
func NewWriter[T any](w io.Writer, format Format) (stream.WriteCloser[T], error) {
	var enc encoder
	switch format {
	case JSON:
		e := json.NewEncoder(w)
		e.SetEscapeHTML(false)
		e.SetIndent("", "  ")
		enc = jsonEncoder{e}
	case YAML:
		e := yaml.NewEncoder(w)
		e.SetIndent(2)
		enc = e
	default:
		return nil, fmt.Errorf("unsupported document format: %q", format)
	}
	return &writer[T]{enc: enc}, nil
}

type writer[T any] struct {
	enc    encoder
	docs   int
	closed bool
}

func (w *writer[T]) Write(values []T) (int, error) {
	if w.closed {
		return 0, ErrClosed
	}
	for i := range values {
		if err := w.enc.Encode(values[i]); err != nil {
			return i, err
		}
		w.docs++
	}
	return len(values), nil
}

// Close terminates the stream. Nothing is written when no document was.
func (w *writer[T]) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if w.docs == 0 {
		return nil
	}
	return w.enc.Close()
}
