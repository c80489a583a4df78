package render_test

import (
	"net/http"
	"testing"

	"github.com/stealthrocket/httpcraft/format/httpformat"
	"github.com/stealthrocket/httpcraft/internal/assert"
	"github.com/stealthrocket/httpcraft/internal/client"
	"github.com/stealthrocket/httpcraft/internal/render"
)

func TestResponseRecordJSON(t *testing.T) {
	record, err := render.ResponseRecord(response("application/json", `{"a":"1","n":[1,2]}`))
	assert.OK(t, err)
	assert.DeepEqual(t, record, &httpformat.Response{
		Proto:      "HTTP/1.1",
		StatusCode: 200,
		StatusText: "OK",
		Header: httpformat.Header{
			"Content-Length": "19",
			"Content-Type":   "application/json",
		},
		Body: map[string]any{
			"a": "1",
			"n": []any{1.0, 2.0},
		},
	})
}

func TestResponseRecordText(t *testing.T) {
	record, err := render.ResponseRecord(response("text/plain; charset=iso-8859-1", "caf\xe9"))
	assert.OK(t, err)
	assert.Equal(t, record.Body, any("café"))
}

func TestResponseRecordEmptyBody(t *testing.T) {
	for _, contentType := range []string{"", "application/json"} {
		record, err := render.ResponseRecord(response(contentType, ""))
		assert.OK(t, err)
		assert.Equal(t, record.Body, nil)
	}
}

func TestResponseRecordMalformedJSON(t *testing.T) {
	_, err := render.ResponseRecord(response("application/json", "{"))
	var malformed *render.MalformedJSONError
	assert.ErrorAs(t, err, &malformed)
}

func TestRequestRecord(t *testing.T) {
	record, err := render.RequestRecord(&client.Request{
		Method: "PUT",
		URL:    "https://example.com/items/1",
		Proto:  "HTTP/1.1",
		Header: http.Header{"Content-Type": {"application/json"}},
		Body:   []byte(`{"name":"x"}`),
	})
	assert.OK(t, err)
	assert.DeepEqual(t, record, &httpformat.Request{
		Proto:  "HTTP/1.1",
		Method: "PUT",
		URL:    "https://example.com/items/1",
		Header: httpformat.Header{"Content-Type": "application/json"},
		Body:   map[string]any{"name": "x"},
	})
}

func TestRequestRecordInvalidHeader(t *testing.T) {
	_, err := render.RequestRecord(&client.Request{
		Method: "GET",
		Header: http.Header{"X-Bad": {"\xff"}},
	})
	var headerErr *render.HeaderDecodeError
	assert.ErrorAs(t, err, &headerErr)
}
