package human

import (
	"encoding"
	"flag"
	"os"
	"os/user"
	"path/filepath"
)

// Path represents a path on the file system.
//
// The type interprets the special prefix "~/" as representing the home
// directory of the user that the program is running as. The prefix is only
// expanded when calling Resolve, so the original form is preserved when the
// value is printed back.
type Path string

func (p Path) String() string {
	return string(p)
}

func (p *Path) Set(s string) error {
	*p = Path(s)
	return nil
}

func (p Path) MarshalText() ([]byte, error) {
	return []byte(p), nil
}

func (p *Path) UnmarshalText(b []byte) error {
	return p.Set(string(b))
}

// Resolve returns the path with the "~/" prefix expanded.
func (p Path) Resolve() (string, error) {
	s := string(p)
	if s == "~" || (len(s) >= 2 && s[0] == '~' && s[1] == os.PathSeparator) {
		home, ok := os.LookupEnv("HOME")
		if !ok {
			u, err := user.Current()
			if err != nil {
				return "", err
			}
			home = u.HomeDir
		}
		return filepath.Join(home, s[1:]), nil
	}
	return s, nil
}

var (
	_ encoding.TextMarshaler   = Path("")
	_ encoding.TextUnmarshaler = (*Path)(nil)
	_ flag.Value               = (*Path)(nil)
)
