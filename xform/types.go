// Package xform holds small value transformers used to turn raw strings
// (usually environment variables) into typed configuration.
//
// Every transformer has the shape func(A) (B, error) so that they compose
// with envutil.Map.
package xform

import (
	"errors"
	"time"
)

var (
	ErrInvalidChoice = errors.New("invalid choice")
	ErrNonPositive   = errors.New("value must be positive")
	ErrOutOfRange    = errors.New("value out of range")
)

type Intish interface {
	int | int8 | int16 | int32 | int64 | time.Duration
}

type Uintish interface {
	uint | uint8 | uint16 | uint32 | uint64
}

type Numeric interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64 | int | uint | time.Duration
}
