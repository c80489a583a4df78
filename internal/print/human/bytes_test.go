package human

import (
	"fmt"
	"testing"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in  Bytes
		out string
	}{
		{in: 0, out: "0 B"},
		{in: 1023, out: "1023 B"},
		{in: KiB, out: "1 KiB"},
		{in: 1536, out: "1.5 KiB"},
		{in: 10 * MiB, out: "10 MiB"},
		{in: 123 * GiB, out: "123 GiB"},
	}

	for _, test := range tests {
		t.Run(test.out, func(t *testing.T) {
			if s := test.in.String(); s != test.out {
				t.Errorf("string mismatch: want=%q got=%q", test.out, s)
			}
			if s := fmt.Sprintf("%v", test.in); s != test.out {
				t.Errorf("format mismatch: want=%q got=%q", test.out, s)
			}
			if s := fmt.Sprintf("%d", test.in); s != fmt.Sprint(uint64(test.in)) {
				t.Errorf("decimal mismatch: got=%q", s)
			}
		})
	}
}
