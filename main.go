package main

import (
	"context"
	"os"

	"github.com/stealthrocket/httpcraft/internal/cmd"
)

func main() {
	os.Exit(cmd.Root(context.Background(), os.Stdout, os.Stderr, os.Args[1:]...))
}
