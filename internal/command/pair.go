package command

import (
	"fmt"
	"strings"
)

// MalformedPairError is returned by ParsePair when a token has no "="
// separator.
type MalformedPairError struct {
	Token string
}

func (e *MalformedPairError) Error() string {
	return fmt.Sprintf("failed to parse %q: the request body must be made of key=value pairs", e.Token)
}

// Pair is a key=value token given on the command line.
type Pair struct {
	Key   string
	Value string
}

func (p Pair) String() string {
	return p.Key + "=" + p.Value
}

// ParsePair splits token on its first "=". The value may be empty and may
// contain more "=" characters.
func ParsePair(token string) (Pair, error) {
	k, v, ok := strings.Cut(token, "=")
	if !ok {
		return Pair{}, &MalformedPairError{Token: token}
	}
	return Pair{Key: k, Value: v}, nil
}

// ParsePairs parses each token with ParsePair, stopping at the first error.
func ParsePairs(tokens []string) ([]Pair, error) {
	pairs := make([]Pair, 0, len(tokens))
	for _, token := range tokens {
		p, err := ParsePair(token)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

// Body builds the request body object from pairs.
//
// When a key is repeated, the value of its last occurrence wins.
func Body(pairs []Pair) map[string]string {
	body := make(map[string]string, len(pairs))
	for _, p := range pairs {
		body[p.Key] = p.Value
	}
	return body
}
