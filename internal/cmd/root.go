package cmd

// Notes on program structure
// --------------------------
//
// httpcraft uses subcommands to select the operation of the program. Each
// subcommand is implemented by a method of program named after the command,
// in a file of the same name (e.g. the "help" command is implemented by the
// help method in help.go). The get, post, put and delete commands share the
// request pipeline declared in request.go.
//
// The usage message for each command is declared by a constant starting with
// the command name and followed by the suffix "Usage". For example, the usage
// message for the "help" command is declared by the constant helpUsage.
//
// The usage message contains a "Usage:	httpcraft <command>" section presenting
// the structure of the command. Note the tabulation separating "Usage:" and
// "httpcraft".

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/net/http/httpguts"
)

const rootUsage = `httpcraft - command-line HTTP client

   httpcraft sends one HTTP request and prints the response status line, its
   headers and its body. JSON documents are indented for readability.

Example:

   $ httpcraft post https://example.com/echo name=httpcraft version=1
   HTTP/1.1 200 OK

   Content-Type: application/json
   ...

For a list of commands available, run 'httpcraft help'.`

type program struct {
	stdout io.Writer
	stderr io.Writer
}

// Root is the httpcraft entrypoint. It runs the command selected by args,
// writing output to stdout and errors to stderr, and returns the exit code of
// the program.
func Root(ctx context.Context, stdout, stderr io.Writer, args ...string) int {
	p := &program{stdout: stdout, stderr: stderr}

	if len(args) == 0 {
		fmt.Fprintln(stdout, rootUsage)
		return 0
	}

	cmd, args := args[0], args[1:]

	var err error
	switch cmd {
	case "config":
		err = p.config(ctx, args)
	case "delete", "get", "post", "put":
		err = p.request(ctx, cmd, args)
	case "help", "-h", "--help":
		err = p.help(ctx, args)
	case "version":
		err = p.version(ctx, args)
	default:
		err = p.unknown(ctx, cmd)
	}

	switch e := err.(type) {
	case nil:
		return 0
	case exitCode:
		return int(e)
	case usage:
		fmt.Fprintf(stderr, "%s\n", e)
		return 2
	default:
		fmt.Fprintf(stderr, "ERR: httpcraft %s: %s\n", cmd, err)
		return 1
	}
}

// exitCode is an error type returned from command functions to indicate the
// exit code that should be returned by the program.
type exitCode int

func (e exitCode) Error() string {
	return fmt.Sprintf("exit: %d", e)
}

// usage is an error type returned from command functions to indicate a usage
// error.
//
// Usage errors cause the program to exit with status code 2.
type usage string

func usageError(msg string, args ...any) error {
	return usage(fmt.Sprintf(msg, args...))
}

func (e usage) Error() string {
	return string(e)
}

func setEnum[T ~string](enum *T, typ string, value string, options ...string) error {
	for _, option := range options {
		if option == value {
			*enum = T(option)
			return nil
		}
	}
	return fmt.Errorf("unsupported %s: %q (not one of %s)", typ, value, strings.Join(options, ", "))
}

type outputFormat string

func (o outputFormat) String() string {
	return string(o)
}

func (o *outputFormat) Set(value string) error {
	return setEnum(o, "output format", value, "text", "json", "yaml")
}

type colorMode string

func (c colorMode) String() string {
	return string(c)
}

func (c *colorMode) Set(value string) error {
	return setEnum(c, "color mode", value, "auto", "always", "never")
}

// headerList collects the values of repeated "Name: value" options.
type headerList http.Header

func (h headerList) String() string {
	b := new(strings.Builder)
	names := maps.Keys(h)
	slices.Sort(names)
	for i, name := range names {
		for j, value := range h[name] {
			if i != 0 || j != 0 {
				b.WriteByte(',')
			}
			b.WriteString(name)
			b.WriteByte(':')
			b.WriteString(value)
		}
	}
	return b.String()
}

func (h headerList) Set(value string) error {
	name, value, ok := strings.Cut(value, ":")
	if !ok {
		return fmt.Errorf("malformed header (expected \"Name: value\"): %q", name)
	}
	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)
	if !httpguts.ValidHeaderFieldName(name) {
		return fmt.Errorf("invalid header name: %q", name)
	}
	if !httpguts.ValidHeaderFieldValue(value) {
		return fmt.Errorf("invalid value for header %s: %q", name, value)
	}
	http.Header(h).Add(name, value)
	return nil
}

func (p *program) newFlagSet(cmd, usage string) *flag.FlagSet {
	usage = strings.TrimSpace(usage)
	flagSet := flag.NewFlagSet(cmd, flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.Usage = func() { fmt.Fprintln(p.stdout, usage) }
	return flagSet
}

// parseFlags is a greedy parser which consumes all options known to f and
// returns the remaining arguments. Options may be interleaved with positional
// arguments; everything after "--" is returned as positional.
//
// Asking for help returns exitCode(0) after the usage message was printed,
// other parsing errors are returned as usage errors.
func parseFlags(f *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := f.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil, exitCode(0)
			}
			return nil, usageError("%s: %s", f.Name(), err)
		}
		rest := f.Args()
		if n := len(args) - len(rest); n > 0 && args[n-1] == "--" {
			return append(positional, rest...), nil
		}
		if args = rest; len(args) == 0 {
			return positional, nil
		}
		i := slices.IndexFunc(args, func(s string) bool {
			return strings.HasPrefix(s, "-") && s != "-"
		})
		if i < 0 {
			i = len(args)
		}
		positional = append(positional, args[:i]...)
		args = args[i:]
	}
}

// isSet reports whether any of the named flags was passed on the command line.
func isSet(f *flag.FlagSet, names ...string) (set bool) {
	f.Visit(func(flag *flag.Flag) {
		if slices.Contains(names, flag.Name) {
			set = true
		}
	})
	return set
}

func boolVar(f *flag.FlagSet, dst *bool, name string, alias ...string) {
	f.BoolVar(dst, name, *dst, "")
	for _, name := range alias {
		f.BoolVar(dst, name, *dst, "")
	}
}

func customVar(f *flag.FlagSet, dst flag.Value, name string, alias ...string) {
	f.Var(dst, name, "")
	for _, name := range alias {
		f.Var(dst, name, "")
	}
}
