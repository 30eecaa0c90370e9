package xform

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"
)

// TrimString removes leading and trailing whitespace from a string.
func TrimString(s string) (string, error) {
	return strings.TrimSpace(s), nil
}

// ToLower converts a string to lowercase.
func ToLower(s string) (string, error) {
	return strings.ToLower(s), nil
}

// OneOf returns a transformer that accepts only the given choices.
func OneOf[A comparable](choices ...A) func(A) (A, error) { //nolint:ireturn
	return func(value A) (A, error) {
		if slices.Contains(choices, value) {
			return value, nil
		}

		return value, fmt.Errorf("%w: %v (expected one of %v)", ErrInvalidChoice, value, choices)
	}
}

// Bool parses a string as a boolean value, as strconv.ParseBool does.
func Bool(value string) (bool, error) {
	return strconv.ParseBool(value)
}

// Int64 parses a string as a base-10 int64.
func Int64(value string) (int64, error) {
	return strconv.ParseInt(value, 10, 64)
}

// Uint64 parses a string as a base-10 uint64.
func Uint64(value string) (uint64, error) {
	return strconv.ParseUint(value, 10, 64)
}

// Positive rejects values that are zero or negative.
func Positive[A Numeric](value A) (A, error) { //nolint:ireturn
	if value <= 0 {
		return value, ErrNonPositive
	}

	return value, nil
}

// Between returns a transformer that accepts values in [lo, hi].
func Between[A Numeric](lo, hi A) func(A) (A, error) { //nolint:ireturn
	return func(value A) (A, error) {
		if value < lo || value > hi {
			return value, fmt.Errorf("%w: %v not in [%v, %v]", ErrOutOfRange, value, lo, hi)
		}

		return value, nil
	}
}

// Duration parses a string such as "5ms" or "1h30m" as a time.Duration.
func Duration(value string) (time.Duration, error) {
	return time.ParseDuration(value)
}

// CastNumeric converts a numeric value from one type to another.
// It may truncate depending on the types involved.
func CastNumeric[A Numeric, B Numeric](value A) (B, error) { //nolint:ireturn
	return B(value), nil
}

// ErrInvalidLogLevel is returned when a log level string is not recognized.
var ErrInvalidLogLevel = errors.New("invalid log level")

// SlogLevel parses "debug", "info", "warn" or "error" (already lower-cased).
func SlogLevel(value string) (slog.Level, error) {
	switch value {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, value)
	}
}
