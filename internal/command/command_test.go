package command_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stealthrocket/httpcraft/internal/assert"
	"github.com/stealthrocket/httpcraft/internal/command"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want command.Command
	}{
		{
			name: "get",
			args: []string{"https://example.com/status/200"},
			want: &command.Get{URL: "https://example.com/status/200"},
		},
		{
			name: "post",
			args: []string{"https://example.com/echo", "a=1", "b=2"},
			want: &command.Post{
				URL:  "https://example.com/echo",
				Body: []command.Pair{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}},
			},
		},
		{
			name: "post",
			args: []string{"https://example.com/echo"},
			want: &command.Post{URL: "https://example.com/echo", Body: []command.Pair{}},
		},
		{
			name: "PUT",
			args: []string{"https://example.com/x", "a=1"},
			want: &command.Put{URL: "https://example.com/x", Body: []command.Pair{{Key: "a", Value: "1"}}},
		},
		{
			name: "delete",
			args: []string{"https://example.com/x"},
			want: &command.Delete{URL: "https://example.com/x"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cmd, err := command.Parse(test.name, test.args)
			assert.OK(t, err)
			if diff := cmp.Diff(test.want, cmd); diff != "" {
				t.Errorf("command mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Run("invalid url", func(t *testing.T) {
		_, err := command.Parse("get", []string{"not-a-url"})
		var invalid *command.InvalidURLError
		assert.ErrorAs(t, err, &invalid)
	})

	t.Run("malformed pair", func(t *testing.T) {
		_, err := command.Parse("post", []string{"https://example.com/echo", "malformed"})
		var malformed *command.MalformedPairError
		assert.ErrorAs(t, err, &malformed)
	})

	t.Run("missing url", func(t *testing.T) {
		_, err := command.Parse("get", nil)
		var argErr *command.ArgumentError
		assert.ErrorAs(t, err, &argErr)
	})

	t.Run("extra arguments", func(t *testing.T) {
		_, err := command.Parse("delete", []string{"https://example.com/", "a=1"})
		var argErr *command.ArgumentError
		assert.ErrorAs(t, err, &argErr)
	})

	t.Run("url is validated before pairs", func(t *testing.T) {
		_, err := command.Parse("put", []string{"nope", "malformed"})
		var invalid *command.InvalidURLError
		assert.ErrorAs(t, err, &invalid)
	})
}

type recorder []string

func (r *recorder) Get(c *command.Get) error {
	*r = append(*r, "get "+c.URL)
	return nil
}

func (r *recorder) Post(c *command.Post) error {
	*r = append(*r, "post "+c.URL)
	return nil
}

func (r *recorder) Put(c *command.Put) error {
	*r = append(*r, "put "+c.URL)
	return nil
}

func (r *recorder) Delete(c *command.Delete) error {
	*r = append(*r, "delete "+c.URL)
	return errDone
}

var errDone = errors.New("done")

func TestAcceptVisitsMatchingMethod(t *testing.T) {
	commands := []command.Command{
		&command.Get{URL: "a"},
		&command.Post{URL: "b"},
		&command.Put{URL: "c"},
		&command.Delete{URL: "d"},
	}

	var r recorder
	for _, c := range commands {
		err := c.Accept(&r)
		if c.Method() == "DELETE" {
			assert.Error(t, err, errDone)
		} else {
			assert.OK(t, err)
		}
	}

	assert.EqualAll(t, []string(r), []string{"get a", "post b", "put c", "delete d"})
}
