// Package cli validates raw configuration tokens into typed values.
// Validators are pure functions; presentation of failures is left to the
// argument-parsing framework consuming them.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// InvalidArgumentError reports a configuration token that failed
// validation. Value is the raw offending token as supplied by the user.
type InvalidArgumentError struct {
	Value   string
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}

func invalidArgf(value string, format string, args ...interface{}) error {
	return &InvalidArgumentError{Value: value, Message: fmt.Sprintf(format, args...)}
}

func integer(text string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, invalidArgf(text, "invalid integer value %q", text)
	}
	return v, nil
}

// PositiveInteger parses text as an integer > 0.
func PositiveInteger(text string) (int, error) {
	v, err := integer(text)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, invalidArgf(text, "invalid positive integer value %q", text)
	}
	return v, nil
}

// NonNegativeInteger parses text as an integer >= 0.
func NonNegativeInteger(text string) (int, error) {
	v, err := integer(text)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, invalidArgf(text, "invalid non-negative integer value %q", text)
	}
	return v, nil
}

// IntegersList parses a comma separated list of integers, e.g. 13,452,2388.
func IntegersList(text string) ([]int, error) {
	parts := strings.Split(text, ",")
	values := make([]int, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, invalidArgf(part, "invalid integer value %q in list %q", part, text)
		}
		values = append(values, v)
	}
	return values, nil
}

// IntegerRange returns a validator accepting integers in the half-open
// range [min, max).
func IntegerRange(min, max int) func(string) (int, error) {
	return func(text string) (int, error) {
		v, err := integer(text)
		if err != nil {
			return 0, err
		}
		if v < min || v >= max {
			return 0, invalidArgf(text, "invalid integer value %d (out of range [%d, %d))", v, min, max)
		}
		return v, nil
	}
}

// CommaSeparatedEnumList splits text on commas and verifies every token
// is one of the allowed options, preserving order and duplicates.
func CommaSeparatedEnumList(allowed []string, text string) ([]string, error) {
	values := strings.Split(text, ",")
	for _, v := range values {
		if !lo.Contains(allowed, v) {
			return nil, invalidArgf(v, "invalid value %q (allowed values: %s)", v, strings.Join(allowed, ", "))
		}
	}
	return values, nil
}
