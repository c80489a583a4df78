package cmd_test

import (
	"testing"

	"github.com/stealthrocket/httpcraft/internal/assert"
)

var help = tests{
	"calling help with an unknown command causes an error": func(t *testing.T) {
		stdout, stderr, exitCode := httpcraft(t, "help", "whatever")
		assert.Equal(t, exitCode, 2)
		assert.Equal(t, stdout, "")
		assert.Equal(t, stderr, "httpcraft help whatever: unknown command\n")
	},

	"passing an unsupported flag to the command causes an error": func(t *testing.T) {
		_, _, exitCode := httpcraft(t, "help", "-_")
		assert.Equal(t, exitCode, 2)
	},

	"show the help command help with the short option": func(t *testing.T) {
		stdout, stderr, exitCode := httpcraft(t, "help", "-h")
		assert.Equal(t, exitCode, 0)
		assert.HasPrefix(t, stdout, "Usage:\thttpcraft <command> ")
		assert.Equal(t, stderr, "")
	},

	"show the help command help with the long option": func(t *testing.T) {
		stdout, stderr, exitCode := httpcraft(t, "help", "--help")
		assert.Equal(t, exitCode, 0)
		assert.HasPrefix(t, stdout, "Usage:\thttpcraft <command> ")
		assert.Equal(t, stderr, "")
	},

	"show the help command help after a command name": func(t *testing.T) {
		stdout, stderr, exitCode := httpcraft(t, "help", "get", "--help")
		assert.Equal(t, exitCode, 0)
		assert.HasPrefix(t, stdout, "Usage:\thttpcraft <command> ")
		assert.Equal(t, stderr, "")
	},

	"httpcraft help config": func(t *testing.T) {
		stdout, stderr, exitCode := httpcraft(t, "help", "config")
		assert.Equal(t, exitCode, 0)
		assert.HasPrefix(t, stdout, "Usage:\thttpcraft config ")
		assert.Equal(t, stderr, "")
	},

	"httpcraft help delete": func(t *testing.T) {
		stdout, stderr, exitCode := httpcraft(t, "help", "delete")
		assert.Equal(t, exitCode, 0)
		assert.HasPrefix(t, stdout, "Usage:\thttpcraft delete ")
		assert.Equal(t, stderr, "")
	},

	"httpcraft help get": func(t *testing.T) {
		stdout, stderr, exitCode := httpcraft(t, "help", "get")
		assert.Equal(t, exitCode, 0)
		assert.HasPrefix(t, stdout, "Usage:\thttpcraft get ")
		assert.Equal(t, stderr, "")
	},

	"httpcraft help help": func(t *testing.T) {
		stdout, stderr, exitCode := httpcraft(t, "help", "help")
		assert.Equal(t, exitCode, 0)
		assert.HasPrefix(t, stdout, "Usage:\thttpcraft <command> ")
		assert.Equal(t, stderr, "")
	},

	"httpcraft help post": func(t *testing.T) {
		stdout, stderr, exitCode := httpcraft(t, "help", "post")
		assert.Equal(t, exitCode, 0)
		assert.HasPrefix(t, stdout, "Usage:\thttpcraft post ")
		assert.Equal(t, stderr, "")
	},

	"httpcraft help put": func(t *testing.T) {
		stdout, stderr, exitCode := httpcraft(t, "help", "put")
		assert.Equal(t, exitCode, 0)
		assert.HasPrefix(t, stdout, "Usage:\thttpcraft put ")
		assert.Equal(t, stderr, "")
	},

	"httpcraft help version": func(t *testing.T) {
		stdout, stderr, exitCode := httpcraft(t, "help", "version")
		assert.Equal(t, exitCode, 0)
		assert.HasPrefix(t, stdout, "Usage:\thttpcraft version\n")
		assert.Equal(t, stderr, "")
	},
}
