package sheet

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidValue is returned for score text that is not an integer in [0,255].
var ErrInvalidValue = errors.New("invalid score value")

// ParseValue reads score cell text. Empty input counts as zero.
func ParseValue(raw string) (uint8, error) {
	if raw == "" {
		raw = "0"
	}
	v, err := strconv.ParseUint(raw, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidValue, raw)
	}
	return uint8(v), nil
}

// ApplyInput returns current updated with raw, or current unchanged when raw
// does not parse.
func ApplyInput(current Score, raw string) Score {
	v, err := ParseValue(raw)
	if err != nil {
		return current
	}
	return current.Update(v)
}
