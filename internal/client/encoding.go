package client

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

// BodyDecodeError is returned when a response body cannot be decoded
// according to its Content-Encoding header.
type BodyDecodeError struct {
	Encoding string
	Err      error
}

func (e *BodyDecodeError) Error() string {
	return fmt.Sprintf("decoding %s response body: %s", e.Encoding, e.Err)
}

func (e *BodyDecodeError) Unwrap() error { return e.Err }

// DecodeContent removes the content codings listed in header (the value of a
// Content-Encoding header) from b. Codings are undone in the reverse order of
// their application. Decoding stops at the first coding that is not supported,
// leaving the remaining content as received.
func DecodeContent(header string, b []byte) ([]byte, error) {
	if header == "" || len(b) == 0 {
		return b, nil
	}
	codings := strings.Split(header, ",")

	for i := len(codings) - 1; i >= 0; i-- {
		coding := strings.ToLower(strings.TrimSpace(codings[i]))
		var err error
		switch coding {
		case "", "identity":
			continue
		case "gzip", "x-gzip":
			b, err = decodeGzip(b)
		case "deflate":
			b, err = decodeDeflate(b)
		case "zstd":
			b, err = decodeZstd(b)
		default:
			return b, nil
		}
		if err != nil {
			return nil, &BodyDecodeError{Encoding: coding, Err: err}
		}
	}
	return b, nil
}

func decodeGzip(b []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// The "deflate" coding is defined as a zlib stream, but some servers send raw
// deflate data instead; both are accepted.
func decodeDeflate(b []byte) ([]byte, error) {
	if r, err := zlib.NewReader(bytes.NewReader(b)); err == nil {
		defer r.Close()
		return io.ReadAll(r)
	}
	r := flate.NewReader(bytes.NewReader(b))
	defer r.Close()
	return io.ReadAll(r)
}

func decodeZstd(b []byte) ([]byte, error) {
	d, err := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
	)
	if err != nil {
		return nil, err
	}
	defer d.Close()
	return d.DecodeAll(b, nil)
}
