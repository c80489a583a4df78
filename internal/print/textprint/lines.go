// Package textprint contains io.Writer decorators used to lay out text output.
package textprint

import (
	"bytes"
	"io"
)

// Prefixlines returns a writer which inserts prefix at the beginning of each
// line written to w.
func Prefixlines(w io.Writer, prefix []byte) io.Writer {
	return &lineprefixer{prefix: prefix, output: w, start: true}
}

type lineprefixer struct {
	prefix []byte
	output io.Writer
	start  bool
}

func (l *lineprefixer) Write(b []byte) (int, error) {
	count := 0
	for len(b) > 0 {
		if l.start {
			l.start = false
			if _, err := l.output.Write(l.prefix); err != nil {
				return count, err
			}
		}

		i := bytes.IndexByte(b, '\n')
		if i < 0 {
			i = len(b)
		} else {
			i++
			l.start = true
		}
		n, err := l.output.Write(b[:i])
		count += n
		if err != nil {
			return count, err
		}
		b = b[i:]
	}
	return count, nil
}

// Terminate writes a newline to w if b does not already end with one, so the
// next section of output starts on its own line.
func Terminate(w io.Writer, b []byte) error {
	if len(b) == 0 || b[len(b)-1] == '\n' {
		return nil
	}
	_, err := w.Write([]byte{'\n'})
	return err
}
