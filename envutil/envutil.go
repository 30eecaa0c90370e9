// Package envutil reads typed configuration from environment variables.
//
//	size := envutil.Int[int](ctx, "SORT_SIZE",
//	    envutil.Default(32),
//	    envutil.Transform(xform.Positive[int])).ValueOrFatal()
//
// Values installed in the context with WithEnvOverride(s) win over the
// process environment.
package envutil

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/amp-labs/stepsort/xform"
)

func get(ctx context.Context, key string) Reader[string] {
	if val, ok := getEnvOverride(ctx, key); ok {
		return Reader[string]{key: key, present: true, value: val}
	}

	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// String reads a raw string.
func String(ctx context.Context, key string, opts ...Option[string]) Reader[string] {
	return apply(get(ctx, key), opts)
}

// Bool reads a boolean as strconv.ParseBool understands it.
func Bool(ctx context.Context, key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(ctx, key), xform.Bool), opts)
}

// Int reads a base-10 signed integer.
func Int[I xform.Intish](ctx context.Context, key string, opts ...Option[I]) Reader[I] {
	return apply(Map(Map(get(ctx, key), xform.Int64), xform.CastNumeric[int64, I]), opts)
}

// Uint reads a base-10 unsigned integer.
func Uint[U xform.Uintish](ctx context.Context, key string, opts ...Option[U]) Reader[U] {
	return apply(Map(Map(get(ctx, key), xform.Uint64), xform.CastNumeric[uint64, U]), opts)
}

// Duration reads a time.Duration such as "10ms".
func Duration(ctx context.Context, key string, opts ...Option[time.Duration]) Reader[time.Duration] {
	return apply(Map(get(ctx, key), xform.Duration), opts)
}

// SlogLevel reads a log level name, ignoring case and surrounding space.
func SlogLevel(ctx context.Context, key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(Map(Map(get(ctx, key), xform.TrimString), xform.ToLower), xform.SlogLevel), opts)
}
