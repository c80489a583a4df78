package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"golang.org/x/net/http/httpguts"

	"github.com/stealthrocket/httpcraft/internal/client"
	"github.com/stealthrocket/httpcraft/internal/command"
	"github.com/stealthrocket/httpcraft/internal/config"
	"github.com/stealthrocket/httpcraft/internal/print/docprint"
	"github.com/stealthrocket/httpcraft/internal/print/human"
	"github.com/stealthrocket/httpcraft/internal/render"
	"github.com/stealthrocket/httpcraft/internal/stream"
)

const requestOptions = `
Options:
   -c, --config path        Path to a configuration file
       --color mode         Colorize the output, one of: auto, always, never
       --debug              Log debug information to stderr
   -f, --fail               Exit with status 3, 4 or 5 on 3xx, 4xx or 5xx responses
   -H, --header "N: value"  Add a header to the request (may be repeated)
   -h, --help               Show this usage information
   -o, --output format      Output format, one of: text, json, yaml
   -t, --timeout duration   Maximum duration of the request (e.g. 30s, 2m)
   -v, --verbose            Print the request before the response
`

const getUsage = `
Usage:	httpcraft get <url> [options]

   Send a GET request to url and print the response.
` + requestOptions

const postUsage = `
Usage:	httpcraft post <url> [key=value ...] [options]

   Send a POST request to url. The key=value pairs are sent as a JSON object
   of strings; when a key is repeated the last value wins.

Example:

   $ httpcraft post https://example.com/echo a=1 b=2
` + requestOptions

const putUsage = `
Usage:	httpcraft put <url> [key=value ...] [options]

   Send a PUT request to url. The key=value pairs are sent as a JSON object
   of strings; when a key is repeated the last value wins.
` + requestOptions

const deleteUsage = `
Usage:	httpcraft delete <url> [options]

   Send a DELETE request to url and print the response.
` + requestOptions

func commandUsage(name string) string {
	switch name {
	case "get":
		return getUsage
	case "post":
		return postUsage
	case "put":
		return putUsage
	default:
		return deleteUsage
	}
}

// request implements the get, post, put and delete commands.
func (p *program) request(ctx context.Context, name string, args []string) error {
	var (
		configPath human.Path
		headers    = make(headerList)
		timeout    human.Duration
		output     outputFormat
		colors     colorMode
		verbose    bool
		debug      bool
		fail       bool
	)

	flagSet := p.newFlagSet("httpcraft "+name, commandUsage(name))
	customVar(flagSet, &configPath, "c", "config")
	customVar(flagSet, headers, "H", "header")
	customVar(flagSet, &timeout, "t", "timeout")
	customVar(flagSet, &output, "o", "output")
	customVar(flagSet, &colors, "color")
	boolVar(flagSet, &verbose, "v", "verbose")
	boolVar(flagSet, &debug, "debug")
	boolVar(flagSet, &fail, "f", "fail")

	args, err := parseFlags(flagSet, args)
	if err != nil {
		return err
	}

	cmd, err := command.Parse(name, args)
	if err != nil {
		var argErr *command.ArgumentError
		if errors.As(err, &argErr) {
			return usageError("httpcraft %s", err)
		}
		return usageError("httpcraft %s: %s", name, err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if isSet(flagSet, "t", "timeout") {
		if timeout < 0 {
			return usageError("httpcraft %s: negative timeout: %s", name, timeout)
		}
		cfg.Timeout = timeout
	}
	if output != "" {
		cfg.Output = string(output)
	}
	if colors != "" {
		cfg.Color = string(colors)
	}

	logger := p.newLogger(debug)
	if debug {
		dumper := spew.ConfigState{
			Indent:                  "  ",
			DisablePointerAddresses: true,
			DisableCapacities:       true,
			SortKeys:                true,
		}
		dumper.Fdump(p.stderr, cmd)
	}

	header := make(http.Header)
	for key, value := range cfg.Headers {
		header.Set(key, value)
	}
	for key, values := range headers {
		header[key] = values
	}
	// The transport ignores a Host entry in the header map; it is sent as
	// the request host instead.
	host := header.Get("Host")
	if host != "" && !httpguts.ValidHostHeader(host) {
		return usageError("httpcraft %s: invalid host header: %q", name, host)
	}
	header.Del("Host")

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "httpcraft/" + currentVersion()
	}

	c, err := client.New(client.Options{
		Timeout:     time.Duration(cfg.Timeout),
		Header:      header,
		Host:        host,
		UserAgent:   userAgent,
		Compression: cfg.Compression,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	res, err := c.Do(ctx, cmd)
	if err != nil {
		return err
	}

	// The whole output is rendered before anything is written so a decoding
	// error never leaves a partial response on stdout.
	b := new(bytes.Buffer)
	switch cfg.Output {
	case config.OutputJSON, config.OutputYAML:
		err = writeRecords(b, docprint.Format(cfg.Output), res, verbose)
	default:
		err = p.writeText(b, res, verbose, cfg.Color)
	}
	if err != nil {
		return err
	}
	if _, err := p.stdout.Write(b.Bytes()); err != nil {
		return err
	}

	if fail {
		if code := res.StatusCode / 100; code >= 3 && code <= 5 {
			logger.Debug("request failed", "status", res.StatusCode)
			return exitCode(code)
		}
	}
	return nil
}

func (p *program) newLogger(debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(p.stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("invocation", uuid.NewString())
}

func (p *program) writeText(w io.Writer, res *client.Response, verbose bool, mode string) error {
	r := render.New(p.colored(mode))
	if verbose && res.Request != nil {
		if err := r.Request(w, res.Request); err != nil {
			return err
		}
	}
	return r.Response(w, res)
}

func writeRecords(b io.Writer, format docprint.Format, res *client.Response, verbose bool) error {
	w, err := docprint.NewWriter[any](b, format)
	if err != nil {
		return err
	}
	records := make([]any, 0, 2)
	if verbose && res.Request != nil {
		req, err := render.RequestRecord(res.Request)
		if err != nil {
			return err
		}
		records = append(records, req)
	}
	rec, err := render.ResponseRecord(res)
	if err != nil {
		return err
	}
	records = append(records, rec)

	err = stream.Write(w, records...)
	return errors.Join(err, w.Close())
}

// colored reports whether output written to stdout should be colorized.
// The auto mode defers to the color library, which honors NO_COLOR, and
// requires stdout to be a terminal.
func (p *program) colored(mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	return !color.NoColor && isTerminal(p.stdout)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
