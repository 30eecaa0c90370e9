package main

import (
	"context"
	"math"
	"time"

	"github.com/amp-labs/stepsort/envutil"
	"github.com/amp-labs/stepsort/errors"
	"github.com/amp-labs/stepsort/stepsort"
	"github.com/amp-labs/stepsort/xform"
)

const (
	modeSingle = "single"
	modeTally  = "tally"

	minSize     = 2
	maxSize     = 5000
	defaultSize = 32

	defaultFrameDelay = 20 * time.Millisecond
)

type config struct {
	kind        stepsort.Kind
	size        int
	seed        uint64
	mode        string
	interactive bool
	render      bool
	verify      bool
	frameDelay  time.Duration
	maxSteps    int
	traceFile   string
}

// loadConfig reads every SORT_* setting and reports all invalid ones at once.
func loadConfig(ctx context.Context) (*config, error) {
	var errs errors.Collection

	kind, err := envutil.Map(
		envutil.String(ctx, "SORT_KIND", envutil.Default(stepsort.Merge.String())),
		stepsort.ParseKind).Value()
	errs.Add(err)

	size, err := envutil.Int[int](ctx, "SORT_SIZE",
		envutil.Default(defaultSize),
		envutil.Transform(xform.Between(minSize, maxSize))).Value()
	errs.Add(err)

	seedReader := envutil.Uint[uint64](ctx, "SORT_SEED")
	seed := seedReader.ValueOrElse(uint64(time.Now().UnixNano())) //nolint:gosec

	if seedReader.HasError() {
		_, err = seedReader.Value()
		errs.Add(err)
	}

	mode, err := envutil.String(ctx, "SORT_MODE",
		envutil.Default(modeSingle),
		envutil.Transform(xform.ToLower),
		envutil.Transform(xform.OneOf(modeSingle, modeTally))).Value()
	errs.Add(err)

	interactive, err := envutil.Bool(ctx, "SORT_INTERACTIVE", envutil.Default(false)).Value()
	errs.Add(err)

	render, err := envutil.Bool(ctx, "SORT_RENDER", envutil.Default(true)).Value()
	errs.Add(err)

	verify, err := envutil.Bool(ctx, "SORT_VERIFY", envutil.Default(false)).Value()
	errs.Add(err)

	frameDelay, err := envutil.Duration(ctx, "SORT_FRAME_DELAY", envutil.Default(defaultFrameDelay)).Value()
	errs.Add(err)

	maxSteps, err := envutil.Int[int](ctx, "SORT_MAX_STEPS",
		envutil.Default(0),
		envutil.Transform(xform.Between(0, math.MaxInt))).Value()
	errs.Add(err)

	traceFile, err := envutil.String(ctx, "SORT_TRACE_FILE",
		envutil.Default(""),
		envutil.Transform(xform.TrimString)).Value()
	errs.Add(err)

	if errs.HasError() {
		return nil, errs.GetError()
	}

	return &config{
		kind:        kind,
		size:        size,
		seed:        seed,
		mode:        mode,
		interactive: interactive,
		render:      render,
		verify:      verify,
		frameDelay:  frameDelay,
		maxSteps:    maxSteps,
		traceFile:   traceFile,
	}, nil
}
