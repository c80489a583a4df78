package cmd

import (
	"context"
	"fmt"
	"strings"
)

const helpUsage = `
Usage:	httpcraft <command> [options]

Request Commands:
   get      Send a GET request and print the response
   post     Send a POST request with a JSON body built from key=value pairs
   put      Send a PUT request with a JSON body built from key=value pairs
   delete   Send a DELETE request and print the response

Other Commands:
   config   Show the effective httpcraft configuration
   help     Show usage information about httpcraft commands
   version  Show the httpcraft version information

For a description of each command, run 'httpcraft help <command>'.`

func (p *program) help(ctx context.Context, args []string) error {
	flagSet := p.newFlagSet("httpcraft help", helpUsage)
	args, err := parseFlags(flagSet, args)
	if err != nil {
		return err
	}

	var cmd string
	if len(args) > 0 {
		cmd = args[0]
	}

	var msg string
	switch cmd {
	case "config":
		msg = configUsage
	case "delete":
		msg = deleteUsage
	case "get":
		msg = getUsage
	case "help", "":
		msg = helpUsage
	case "post":
		msg = postUsage
	case "put":
		msg = putUsage
	case "version":
		msg = versionUsage
	default:
		return usageError("httpcraft help %s: unknown command", cmd)
	}

	fmt.Fprintln(p.stdout, strings.TrimSpace(msg))
	return nil
}
