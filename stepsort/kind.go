package stepsort

import (
	"fmt"
	"strings"

	"github.com/amp-labs/stepsort/errors"
)

// Kind selects a sort engine. The zero value is not a valid Kind.
type Kind int

const (
	Bubble Kind = iota + 1
	Insertion
	Merge
	Quick
	Selection
)

var kindNames = map[Kind]string{ //nolint:gochecknoglobals
	Bubble:    "bubble",
	Insertion: "insertion",
	Merge:     "merge",
	Quick:     "quick",
	Selection: "selection",
}

var kindTitles = map[Kind]string{ //nolint:gochecknoglobals
	Bubble:    "Bubble sort",
	Insertion: "Insertion sort",
	Merge:     "Merge sort",
	Quick:     "Quicksort",
	Selection: "Selection sort",
}

// Kinds returns every valid Kind in declaration order.
func Kinds() []Kind {
	return []Kind{Bubble, Insertion, Merge, Quick, Selection}
}

// String returns the lower-case name of the kind, e.g. "merge".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

// Title returns a human-readable heading, e.g. "Merge sort".
func (k Kind) Title() string {
	if title, ok := kindTitles[k]; ok {
		return title
	}

	return k.String()
}

// Valid reports whether k names one of the five engines.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]

	return ok
}

// Ranged reports whether the engine can be run over a sub-range of the
// buffer (see NewRange). Only the divide-and-conquer engines can.
func (k Kind) Ranged() bool {
	return k == Merge || k == Quick
}

// ParseKind accepts a kind's name in any case, or its first letter
// ("b", "i", "m", "q", "s").
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))

	for _, k := range Kinds() {
		full := kindNames[k]
		if name == full || name == full[:1] {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown sort kind %q", errors.ErrInvalidArgument, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %s", errors.ErrInvalidArgument, k)
	}

	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}

	*k = parsed

	return nil
}
