// Package render prints HTTP requests and responses for humans.
//
// A Renderer lays out a response in three sections separated by blank lines:
// the status line, the headers (one "Name: value" line per value), and the
// body. Output is produced in memory first so nothing is written when any
// part of the response cannot be decoded.
package render

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/fatih/color"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/stealthrocket/httpcraft/internal/client"
	"github.com/stealthrocket/httpcraft/internal/print/textprint"
)

// HeaderDecodeError is returned when a header value is not valid text.
type HeaderDecodeError struct {
	Name  string
	Value string
}

func (e *HeaderDecodeError) Error() string {
	return fmt.Sprintf("header %s: value is not valid utf-8: %q", e.Name, e.Value)
}

var requestPrefix = []byte("> ")

// Renderer writes the text representation of requests and responses.
type Renderer struct {
	status *color.Color
	header *color.Color
	json   *color.Color
}

// New returns a Renderer which highlights the status line, header names and
// JSON bodies with ANSI colors when colored is true.
func New(colored bool) *Renderer {
	r := &Renderer{
		status: color.New(color.FgBlue),
		header: color.New(color.FgGreen),
		json:   color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{r.status, r.header, r.json} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Response writes res to w.
func (r *Renderer) Response(w io.Writer, res *client.Response) error {
	body, err := Body(res.Header, res.Body)
	if err != nil {
		return err
	}

	b := new(bytes.Buffer)
	fmt.Fprintln(b, r.status.Sprint(res.StatusLine()))
	b.WriteByte('\n')

	if err := r.headers(b, res.Header); err != nil {
		return err
	}

	if len(body) > 0 {
		b.WriteByte('\n')
		if IsJSON(res.Header) {
			b.WriteString(r.json.Sprint(string(body)))
			b.WriteByte('\n')
		} else {
			b.Write(body)
			_ = textprint.Terminate(b, body)
		}
	}

	_, err = w.Write(b.Bytes())
	return err
}

// Request writes req to w, prefixing each line with "> ".
func (r *Renderer) Request(w io.Writer, req *client.Request) error {
	b := new(bytes.Buffer)
	p := textprint.Prefixlines(b, requestPrefix)

	path := req.Path
	if path == "" {
		path = req.URL
	}
	fmt.Fprintf(p, "%s %s %s\n", req.Method, path, req.Proto)
	if req.Host != "" {
		fmt.Fprintf(p, "%s: %s\n", r.header.Sprint("Host"), req.Host)
	}
	if err := r.headers(p, req.Header); err != nil {
		return err
	}
	if len(req.Body) > 0 {
		fmt.Fprintln(p)
		_, _ = p.Write(req.Body)
		_ = textprint.Terminate(p, req.Body)
	}
	b.WriteByte('\n')

	_, err := w.Write(b.Bytes())
	return err
}

func (r *Renderer) headers(w io.Writer, h http.Header) error {
	names := maps.Keys(h)
	slices.Sort(names)
	for _, name := range names {
		for _, value := range h[name] {
			if !utf8.ValidString(value) {
				return &HeaderDecodeError{Name: name, Value: value}
			}
			fmt.Fprintf(w, "%s: %s\n", r.header.Sprint(name), value)
		}
	}
	return nil
}
