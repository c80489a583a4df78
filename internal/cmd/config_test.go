package cmd_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stealthrocket/httpcraft/internal/assert"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0666); err != nil {
		t.Fatal("writing httpcraft configuration:", err)
	}
	return path
}

var config = tests{
	"show the config command help with the short option": func(t *testing.T) {
		stdout, stderr, exitCode := httpcraft(t, "config", "-h")
		assert.Equal(t, exitCode, 0)
		assert.HasPrefix(t, stdout, "Usage:\thttpcraft config ")
		assert.Equal(t, stderr, "")
	},

	"show the default configuration": func(t *testing.T) {
		stdout, stderr, exitCode := httpcraft(t, "config")
		assert.Equal(t, exitCode, 0)
		assert.Equal(t, stdout, `timeout: 0s
user-agent: ""
color: auto
output: text
compression: true
`)
		assert.Equal(t, stderr, "")
	},

	"show the configuration loaded from a file": func(t *testing.T) {
		path := writeConfig(t, "timeout: 1m\nheaders:\n  X-Test: abc\n")

		stdout, stderr, exitCode := httpcraft(t, "config", "-c", path)
		assert.Equal(t, exitCode, 0)
		assert.Equal(t, stdout, `timeout: 1m0s
user-agent: ""
headers:
  X-Test: abc
color: auto
output: text
compression: true
`)
		assert.Equal(t, stderr, "")
	},

	"show the configuration in json": func(t *testing.T) {
		stdout, stderr, exitCode := httpcraft(t, "config", "--output", "json")
		assert.Equal(t, exitCode, 0)
		assert.Equal(t, stderr, "")

		var c map[string]any
		assert.OK(t, json.Unmarshal([]byte(stdout), &c))
		assert.DeepEqual(t, c, map[string]any{
			"timeout":     "0s",
			"user-agent":  "",
			"color":       "auto",
			"output":      "text",
			"compression": true,
		})
	},

	"an invalid configuration file causes an error": func(t *testing.T) {
		path := writeConfig(t, "output: xml\n")

		stdout, stderr, exitCode := httpcraft(t, "config", "-c", path)
		assert.Equal(t, exitCode, 1)
		assert.Equal(t, stdout, "")
		assert.HasPrefix(t, stderr, "ERR: httpcraft config: "+path+": output: ")
	},

	"a missing configuration file causes an error": func(t *testing.T) {
		_, stderr, exitCode := httpcraft(t, "config", "-c", filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Equal(t, exitCode, 1)
		assert.HasPrefix(t, stderr, "ERR: httpcraft config: ")
	},

	"an unsupported output format causes an error": func(t *testing.T) {
		_, _, exitCode := httpcraft(t, "config", "-o", "xml")
		assert.Equal(t, exitCode, 2)
	},
}
