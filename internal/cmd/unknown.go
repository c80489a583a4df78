package cmd

import (
	"context"
)

const unknownCommand = `httpcraft %s: unknown command
For a list of commands available, run 'httpcraft help'.`

func (p *program) unknown(ctx context.Context, cmd string) error {
	return usageError(unknownCommand, cmd)
}
