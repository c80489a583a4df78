package cmd

import (
	"context"

	"github.com/stealthrocket/httpcraft/internal/config"
	"github.com/stealthrocket/httpcraft/internal/print/docprint"
	"github.com/stealthrocket/httpcraft/internal/print/human"
	"github.com/stealthrocket/httpcraft/internal/stream"
)

const configUsage = `
Usage:	httpcraft config [options]

   Show the configuration applied to requests: the defaults, overridden by
   the content of the configuration file when one is given.

Options:
   -c, --config path    Path to a configuration file
   -h, --help           Show this usage information
   -o, --output format  Output format, one of: text, json, yaml
`

func (p *program) config(ctx context.Context, args []string) error {
	var (
		configPath human.Path
		output     = outputFormat("text")
	)

	flagSet := p.newFlagSet("httpcraft config", configUsage)
	customVar(flagSet, &configPath, "c", "config")
	customVar(flagSet, &output, "o", "output")

	args, err := parseFlags(flagSet, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return usageError("httpcraft config: unexpected arguments: %q", args)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if output == "text" {
		b, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = p.stdout.Write(b)
		return err
	}
	w, err := docprint.NewWriter[*config.Config](p.stdout, docprint.Format(output))
	if err != nil {
		return err
	}
	if err := stream.Write(w, cfg); err != nil {
		return err
	}
	return w.Close()
}
