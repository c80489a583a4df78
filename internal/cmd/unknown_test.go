package cmd_test

import (
	"testing"

	"github.com/stealthrocket/httpcraft/internal/assert"
)

var unknown = tests{
	"an error is reported when invoking an unknown command": func(t *testing.T) {
		stdout, stderr, exitCode := httpcraft(t, "whatever")
		assert.Equal(t, exitCode, 2)
		assert.Equal(t, stdout, "")
		assert.HasPrefix(t, stderr, "httpcraft whatever: unknown command\n")
	},

	"command names are case sensitive": func(t *testing.T) {
		_, stderr, exitCode := httpcraft(t, "GET", "https://example.com")
		assert.Equal(t, exitCode, 2)
		assert.HasPrefix(t, stderr, "httpcraft GET: unknown command\n")
	},
}
