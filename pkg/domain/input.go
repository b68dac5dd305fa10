package domain

import (
	"strconv"
	"strings"
)

// ParseInput validates a textual integer. Signs, fractions and anything that does not fit
// in 64 unsigned bits are rejected with an *InvalidInputError.
func ParseInput(s string) (uint64, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return 0, &InvalidInputError{Value: s, Reason: "empty"}
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		reason := "not an integer"
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			reason = "out of range"
		}
		if strings.HasPrefix(v, "-") {
			reason = "negative"
		}
		return 0, &InvalidInputError{Value: s, Reason: reason}
	}
	return n, nil
}

// ParseInputs validates every value, stopping at the first invalid one.
func ParseInputs(values []string) ([]uint64, error) {
	out := make([]uint64, 0, len(values))
	for _, v := range values {
		n, err := ParseInput(v)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
