package service

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParsePosition parses a user-typed task number.
//
// Surrounding whitespace is ignored. Anything other than a run of ASCII
// digits is ErrInvalidNumber. A well-formed number too large to be a
// position is ErrOutOfRange, as is 0; range against the current list is
// checked by the Service.
func ParsePosition(s string) (int, error) {
	s = strings.TrimSpace(s)
	if !isAllDigits(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		// Digits only, so the only failure left is overflow.
		return 0, fmt.Errorf("%w: %s", ErrOutOfRange, s)
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, n)
	}
	return n, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
