package human

import (
	"fmt"
	"strconv"
)

// Bytes represents a number of bytes.
//
// Formatting is done in factors of 1024, using units like KiB, MiB, GiB.
type Bytes uint64

const (
	B   Bytes = 1
	KiB Bytes = 1024 * B
	MiB Bytes = 1024 * KiB
	GiB Bytes = 1024 * MiB
	TiB Bytes = 1024 * GiB
)

func (b Bytes) String() string {
	if b < KiB {
		return strconv.FormatUint(uint64(b), 10) + " B"
	}
	units := [...]struct {
		scale Bytes
		name  string
	}{
		{TiB, "TiB"},
		{GiB, "GiB"},
		{MiB, "MiB"},
		{KiB, "KiB"},
	}
	for _, u := range units {
		if b >= u.scale {
			return ftoa(float64(b), float64(u.scale)) + " " + u.name
		}
	}
	panic("unreachable")
}

func (b Bytes) Format(w fmt.State, v rune) {
	switch v {
	case 'd':
		fmt.Fprintf(w, "%d", uint64(b))
	default:
		_, _ = w.Write([]byte(b.String()))
	}
}
