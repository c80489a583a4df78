// Package command models the operations that httpcraft performs.
//
// A Command is one of Get, Post, Put or Delete. Code that acts on commands
// implements Visitor, which has one method per variant; adding a variant to
// the package therefore breaks the build of every consumer until they decide
// what to do with it.
package command

import (
	"fmt"
	"strings"
)

// Command is the sealed set of subcommands.
type Command interface {
	// Method is the HTTP method issued by the command.
	Method() string
	// Target is the validated URL that the command is sent to.
	Target() string
	// Accept calls the method of v matching the concrete command type.
	Accept(v Visitor) error

	command()
}

// Visitor is implemented by types that handle every kind of Command.
type Visitor interface {
	Get(*Get) error
	Post(*Post) error
	Put(*Put) error
	Delete(*Delete) error
}

type Get struct {
	URL string
}

type Post struct {
	URL  string
	Body []Pair
}

type Put struct {
	URL  string
	Body []Pair
}

type Delete struct {
	URL string
}

func (*Get) Method() string    { return "GET" }
func (*Post) Method() string   { return "POST" }
func (*Put) Method() string    { return "PUT" }
func (*Delete) Method() string { return "DELETE" }

func (c *Get) Target() string    { return c.URL }
func (c *Post) Target() string   { return c.URL }
func (c *Put) Target() string    { return c.URL }
func (c *Delete) Target() string { return c.URL }

func (c *Get) Accept(v Visitor) error    { return v.Get(c) }
func (c *Post) Accept(v Visitor) error   { return v.Post(c) }
func (c *Put) Accept(v Visitor) error    { return v.Put(c) }
func (c *Delete) Accept(v Visitor) error { return v.Delete(c) }

func (*Get) command()    {}
func (*Post) command()   {}
func (*Put) command()    {}
func (*Delete) command() {}

// ArgumentError is returned by Parse when the number of arguments does not
// match what the command expects.
type ArgumentError struct {
	Command string
	Reason  string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Command, e.Reason)
}

// Parse constructs the command named name from its positional arguments.
//
// The first argument is the URL; get and delete accept nothing else, while
// post and put accept any number of key=value pairs.
func Parse(name string, args []string) (Command, error) {
	name = strings.ToLower(name)
	if len(args) == 0 {
		return nil, &ArgumentError{Command: name, Reason: "expected a url as first argument"}
	}

	url, err := ParseURL(args[0])
	if err != nil {
		return nil, err
	}
	args = args[1:]

	switch name {
	case "get", "delete":
		if len(args) != 0 {
			return nil, &ArgumentError{
				Command: name,
				Reason:  fmt.Sprintf("unexpected arguments after the url: %s", strings.Join(args, " ")),
			}
		}
		if name == "get" {
			return &Get{URL: url}, nil
		}
		return &Delete{URL: url}, nil

	case "post", "put":
		body, err := ParsePairs(args)
		if err != nil {
			return nil, err
		}
		if name == "post" {
			return &Post{URL: url, Body: body}, nil
		}
		return &Put{URL: url, Body: body}, nil

	default:
		return nil, fmt.Errorf("unsupported command: %q", name)
	}
}
