package parser

import (
	"fmt"
	"strconv"
	"strings"
)

const separator = ","

// Identifier is one token of the comma-separated input. Err is set when the
// token is not an integer; Raw keeps the token as typed.
type Identifier struct {
	Raw string
	ID  int64
	Err error
}

func (i Identifier) Valid() bool {
	return i.Err == nil
}

// ParseIdentifiers splits input on commas and parses each trimmed piece as a
// base-10 integer. Results keep the input order; invalid tokens are returned
// with Err set rather than dropped so callers can report them in place.
func ParseIdentifiers(input string) []Identifier {
	pieces := strings.Split(input, separator)
	ids := make([]Identifier, 0, len(pieces))
	for _, raw := range pieces {
		id, err := ParseIdentifier(raw)
		ids = append(ids, Identifier{Raw: raw, ID: id, Err: err})
	}
	return ids
}

func ParseIdentifier(raw string) (int64, error) {
	token := strings.TrimSpace(raw)
	id, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid fileId %q: %w", raw, err)
	}
	return id, nil
}

// Valid returns only the parsed ids, in order.
func Valid(ids []Identifier) []int64 {
	var out []int64
	for _, id := range ids {
		if id.Valid() {
			out = append(out, id.ID)
		}
	}
	return out
}
