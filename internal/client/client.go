// Package client implements the dispatch of httpcraft commands to HTTP
// servers.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/http2"

	"github.com/stealthrocket/httpcraft/internal/command"
	"github.com/stealthrocket/httpcraft/internal/print/human"
)

// TransportError is returned when a request could not be completed because
// of a network failure (DNS resolution, connection, TLS, timeout).
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Options configures a Client.
type Options struct {
	// Maximum duration of the request, including reading the response body.
	// Zero means no limit.
	Timeout time.Duration
	// Headers added to every request.
	Header http.Header
	// Overrides the host sent in requests when not empty. A Host entry in
	// Header has no effect.
	Host string
	// Value of the User-Agent header.
	UserAgent string
	// When true, the client advertises and decodes compressed content
	// encodings.
	Compression bool
	// Logger receives debug information about the request. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// Client sends the HTTP request described by a command.
//
// A Client is meant to serve a single invocation of the program; it does not
// retry failed requests.
type Client struct {
	http        *resty.Client
	header      http.Header
	compression bool
	logger      *slog.Logger
}

// New constructs a Client with its own transport.
func New(opts Options) (*Client, error) {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		// Content encodings are handled by the client so the response body
		// can be decoded with the same rules whether or not the transport
		// negotiated compression.
		DisableCompression: true,
	}
	if _, err := http2.ConfigureTransports(transport); err != nil {
		return nil, fmt.Errorf("configuring http2 transport: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "client")

	rc := resty.NewWithClient(&http.Client{
		Transport: transport,
		Timeout:   opts.Timeout,
	})
	rc.SetRetryCount(0)
	rc.SetLogger(restyLogger{logger})
	if opts.UserAgent != "" {
		rc.SetHeader("User-Agent", opts.UserAgent)
	}
	if host := opts.Host; host != "" {
		rc.SetPreRequestHook(func(_ *resty.Client, r *http.Request) error {
			r.Host = host
			return nil
		})
	}

	return &Client{
		http:        rc,
		header:      opts.Header.Clone(),
		compression: opts.Compression,
		logger:      logger,
	}, nil
}

// Do sends the request described by cmd and returns the response once the
// body has been fully received.
func (c *Client) Do(ctx context.Context, cmd command.Command) (*Response, error) {
	d := &dispatcher{ctx: ctx, client: c}
	if err := cmd.Accept(d); err != nil {
		return nil, err
	}
	return d.response, nil
}

type dispatcher struct {
	ctx      context.Context
	client   *Client
	response *Response
}

func (d *dispatcher) Get(cmd *command.Get) error {
	return d.send(cmd.Method(), cmd.URL, nil)
}

func (d *dispatcher) Post(cmd *command.Post) error {
	return d.sendJSON(cmd.Method(), cmd.URL, cmd.Body)
}

func (d *dispatcher) Put(cmd *command.Put) error {
	return d.sendJSON(cmd.Method(), cmd.URL, cmd.Body)
}

func (d *dispatcher) Delete(cmd *command.Delete) error {
	return d.send(cmd.Method(), cmd.URL, nil)
}

func (d *dispatcher) sendJSON(method, url string, pairs []command.Pair) error {
	body, err := EncodeBody(pairs)
	if err != nil {
		return err
	}
	return d.send(method, url, body)
}

func (d *dispatcher) send(method, url string, body []byte) (err error) {
	d.response, err = d.client.send(d.ctx, method, url, body)
	return err
}

// EncodeBody returns the JSON object built from pairs, as sent by the post and
// put commands. Keys appear in lexicographical order; when a key is repeated,
// the last value wins.
func EncodeBody(pairs []command.Pair) ([]byte, error) {
	b := new(bytes.Buffer)
	e := json.NewEncoder(b)
	e.SetEscapeHTML(false)
	if err := e.Encode(command.Body(pairs)); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(b.Bytes(), []byte{'\n'}), nil
}

const acceptEncoding = "gzip, deflate, zstd"

func (c *Client) send(ctx context.Context, method, url string, body []byte) (*Response, error) {
	req := c.http.R().
		SetContext(ctx).
		SetDoNotParseResponse(true)

	for name, values := range c.header {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}
	if c.compression {
		req.SetHeader("Accept-Encoding", acceptEncoding)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json")
		req.SetBody(body)
	}

	c.logger.Debug("sending request",
		"method", method,
		"url", url,
		"size", human.Bytes(len(body)))

	start := time.Now()
	res, err := req.Execute(method, url)
	if err != nil {
		c.logger.Debug("request failed", "method", method, "url", url, "error", err)
		return nil, &TransportError{Method: method, URL: url, Err: err}
	}
	raw := res.RawBody()
	defer raw.Close()

	content, err := io.ReadAll(raw)
	if err != nil {
		return nil, &TransportError{Method: method, URL: url, Err: fmt.Errorf("reading response body: %w", err)}
	}
	elapsed := time.Since(start)

	encoding := res.Header().Get("Content-Encoding")
	decoded, err := DecodeContent(encoding, content)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("received response",
		"status", res.StatusCode(),
		"proto", res.RawResponse.Proto,
		"encoding", encoding,
		"size", human.Bytes(len(content)),
		"decoded", human.Bytes(len(decoded)),
		"elapsed", elapsed)

	return &Response{
		Request:    makeRequest(res.Request.RawRequest, method, url, body),
		Proto:      res.RawResponse.Proto,
		StatusCode: res.StatusCode(),
		StatusText: statusText(res.Status(), res.StatusCode()),
		Header:     res.Header(),
		Body:       decoded,
		Elapsed:    elapsed,
	}, nil
}

func makeRequest(raw *http.Request, method, url string, body []byte) *Request {
	req := &Request{
		Method: method,
		URL:    url,
		Proto:  "HTTP/1.1",
		Body:   body,
	}
	if raw != nil {
		req.Header = raw.Header.Clone()
		req.Host = raw.Host
		if raw.URL != nil {
			req.Path = raw.URL.RequestURI()
			if req.Host == "" {
				req.Host = raw.URL.Host
			}
		}
	}
	return req
}

type restyLogger struct{ logger *slog.Logger }

func (l restyLogger) Errorf(format string, v ...any) { l.logger.Error(fmt.Sprintf(format, v...)) }
func (l restyLogger) Warnf(format string, v ...any)  { l.logger.Warn(fmt.Sprintf(format, v...)) }
func (l restyLogger) Debugf(format string, v ...any) { l.logger.Debug(fmt.Sprintf(format, v...)) }
