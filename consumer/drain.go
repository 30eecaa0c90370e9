package consumer

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/amp-labs/stepsort/logger"
	"github.com/amp-labs/stepsort/stepsort"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Result describes how a Drain call went.
type Result struct {
	Kind stepsort.Kind

	// Snapshots is the number of snapshots pulled and handed to consumers.
	Snapshots int

	// Completed is true when the engine ran to the end, so the buffer
	// (or range) is sorted. A run cut short by WithMaxSnapshots reports
	// false even when the limit equals the engine's total snapshot count:
	// telling the two apart would need one more pull, which would run the
	// engine past the limit. Check the buffer itself when that matters.
	Completed bool

	Elapsed time.Duration
}

type drainOptions struct {
	logger       *slog.Logger
	runID        string
	maxSnapshots int
}

// Option configures Drain.
type Option func(*drainOptions)

// WithLogger logs through l instead of logger.Get(ctx).
func WithLogger(l *slog.Logger) Option {
	return func(o *drainOptions) {
		o.logger = l
	}
}

// WithRunID tags logs and the trace span with id instead of a random UUID.
func WithRunID(id string) Option {
	return func(o *drainOptions) {
		o.runID = id
	}
}

// WithMaxSnapshots stops the sort after n snapshots. The limit is checked
// before pulling, so the engine never runs past the n-th snapshot.
// Zero or less means no limit.
func WithMaxSnapshots(n int) Option {
	return func(o *drainOptions) {
		o.maxSnapshots = n
	}
}

// Drain pulls every snapshot from seq and hands it to each consumer in
// order. It stops when the engine is exhausted, when ctx is done, when the
// snapshot limit is reached, or when a consumer returns an error. The
// sequence is always stopped before Drain returns.
//
// A consumer returning ErrStopped, or hitting the snapshot limit, ends the
// run without an error; Result.Completed tells the two endings apart.
func Drain[T any](
	ctx context.Context,
	seq *stepsort.Sequence[T],
	consumers []Consumer[T],
	opts ...Option,
) (Result, error) {
	options := &drainOptions{}
	for _, opt := range opts {
		opt(options)
	}

	if options.runID == "" {
		options.runID = uuid.NewString()
	}

	kind := seq.Kind()

	ctx = logger.With(ctx, "kind", kind.String(), "run_id", options.runID)

	log := options.logger
	if log == nil {
		log = logger.Get(ctx)
	} else {
		log = log.With("kind", kind.String(), "run_id", options.runID)
	}

	ctx, span := otel.Tracer("stepsort").Start(ctx, "stepsort.drain",
		trace.WithAttributes(
			attribute.String("kind", kind.String()),
			attribute.String("run_id", options.runID),
		))
	defer span.End()

	defer seq.Stop()

	log.Debug("draining sort")

	result, err := pull(ctx, seq, consumers, options.maxSnapshots)

	outcome := outcomeOf(result, err)

	snapshotsPulled.WithLabelValues(kind.String()).Add(float64(result.Snapshots))
	runsFinished.WithLabelValues(kind.String(), outcome).Inc()
	runDuration.WithLabelValues(kind.String()).Observe(result.Elapsed.Seconds())

	span.SetAttributes(
		attribute.Int("snapshots", result.Snapshots),
		attribute.Bool("completed", result.Completed),
		attribute.String("outcome", outcome),
	)

	if errors.Is(err, ErrStopped) {
		err = nil
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		log.Warn("sort did not finish",
			"outcome", outcome, "snapshots", result.Snapshots, "error", err)

		return result, err
	}

	log.Debug("sort drained",
		"outcome", outcome, "snapshots", result.Snapshots, "elapsed", result.Elapsed)

	return result, nil
}

func pull[T any](
	ctx context.Context,
	seq *stepsort.Sequence[T],
	consumers []Consumer[T],
	maxSnapshots int,
) (Result, error) {
	result := Result{Kind: seq.Kind()}
	start := time.Now()

	for {
		if err := ctx.Err(); err != nil {
			result.Elapsed = time.Since(start)

			return result, err
		}

		if maxSnapshots > 0 && result.Snapshots >= maxSnapshots {
			result.Elapsed = time.Since(start)

			return result, ErrStopped
		}

		snapshot, ok := seq.Next()
		if !ok {
			result.Completed = true
			result.Elapsed = time.Since(start)

			return result, nil
		}

		result.Snapshots++

		if err := consumeAll(ctx, consumers, result.Snapshots, snapshot); err != nil {
			result.Elapsed = time.Since(start)

			return result, err
		}
	}
}

func outcomeOf(result Result, err error) string {
	switch {
	case err == nil && result.Completed:
		return outcomeCompleted
	case errors.Is(err, ErrStopped):
		return outcomeStopped
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return outcomeCancelled
	default:
		return outcomeFailed
	}
}
