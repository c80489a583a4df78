// Package stream declares the generic writer interfaces implemented by the
// output printers.
package stream

import "io"

// Writer is an interface implemented by types that consume a stream of values
// of type T.
type Writer[T any] interface {
	// Writes values to the stream, returning the number of values written and
	// any error that occurred.
	Write(values []T) (int, error)
}

// WriteCloser represents a closable stream of values of T.
//
// WriteCloser is like io.WriteCloser for values of any type.
type WriteCloser[T any] interface {
	Writer[T]
	io.Closer
}

// Write writes values to w, returning an error if not all values were
// consumed.
func Write[T any](w Writer[T], values ...T) error {
	n, err := w.Write(values)
	if err == nil && n < len(values) {
		err = io.ErrShortWrite
	}
	return err
}
