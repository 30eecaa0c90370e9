// Package tally runs several sort engines over the same input at once and
// reports how much work each one did.
package tally

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/stepsort/compare"
	"github.com/amp-labs/stepsort/consumer"
	"github.com/amp-labs/stepsort/envutil"
	"github.com/amp-labs/stepsort/logger"
	"github.com/amp-labs/stepsort/stepsort"
	"go.uber.org/atomic"
)

const defaultWorkerCount = 4

// Entry is one engine's result.
type Entry struct {
	Kind stepsort.Kind

	// Snapshots is the engine's operation count for the input.
	Snapshots int

	// Digest fingerprints the full snapshot stream (see consumer.Digest).
	Digest uint64

	// Sorted is true when the engine finished and left its copy ascending
	// and holding the same values as the input.
	Sorted bool

	Elapsed time.Duration
}

type options struct {
	kinds    []stepsort.Kind
	workers  int
	progress *atomic.Int64
	verify   bool
}

type Option func(*options)

// WithKinds limits the run to the given engines, in the given order.
func WithKinds(kinds ...stepsort.Kind) Option {
	return func(o *options) {
		o.kinds = kinds
	}
}

// WithWorkers caps how many engines run at the same time.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithProgress adds every snapshot from every engine to counter as it
// happens, so another goroutine can watch the run.
func WithProgress(counter *atomic.Int64) Option {
	return func(o *options) {
		o.progress = counter
	}
}

// WithVerify checks every snapshot, not just the final buffer, for lost or
// duplicated values. Each check is linear in the input length, so this
// turns the quadratic engines cubic; keep it for small inputs and tests.
func WithVerify(verify bool) Option {
	return func(o *options) {
		o.verify = verify
	}
}

// Run sorts a private copy of input with each engine and returns one Entry
// per engine, in the order the engines were requested. input is not
// modified. If ctx is cancelled, Run returns the context error.
func Run(ctx context.Context, input []int, opts ...Option) ([]Entry, error) {
	o := &options{
		kinds: stepsort.Kinds(),
		workers: envutil.Int[int](ctx, "SORT_WORKERS",
			envutil.Default(defaultWorkerCount)).ValueOrElse(defaultWorkerCount),
		progress: atomic.NewInt64(0),
	}

	for _, opt := range opts {
		opt(o)
	}

	if o.workers <= 0 {
		o.workers = defaultWorkerCount
	}

	log := logger.Get(ctx)
	log.Debug("starting tally", "engines", len(o.kinds), "workers", o.workers, "length", len(input))

	pool := pond.NewPool(o.workers, pond.WithContext(ctx))
	defer pool.StopAndWait()

	entries := make([]Entry, len(o.kinds))
	tasks := make([]pond.Task, 0, len(o.kinds))

	for i, kind := range o.kinds {
		tasks = append(tasks, pool.SubmitErr(func() error {
			entry, err := runOne(ctx, kind, input, o)
			if err != nil {
				return fmt.Errorf("%s: %w", kind, err)
			}

			entries[i] = entry

			return nil
		}))
	}

	var errs []error

	for _, task := range tasks {
		if err := task.Wait(); err != nil {
			errs = append(errs, err)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	log.Debug("tally finished", "snapshots", o.progress.Load())

	return entries, nil
}

func runOne(ctx context.Context, kind stepsort.Kind, input []int, o *options) (Entry, error) {
	buf := slices.Clone(input)

	seq, err := stepsort.New(kind, buf)
	if err != nil {
		return Entry{}, err
	}

	digest := consumer.IntDigest()

	result, err := consumer.Drain(ctx, seq, consumersFor(o, input, digest))
	if err != nil {
		return Entry{}, err
	}

	return Entry{
		Kind:      kind,
		Snapshots: result.Snapshots,
		Digest:    digest.Sum64(),
		Sorted: result.Completed &&
			compare.IsSortedFunc(buf, func(a, b int) bool { return a < b }) &&
			compare.SameElements(input, buf),
		Elapsed: result.Elapsed,
	}, nil
}

// consumersFor builds the per-engine chain. The per-snapshot Verifier is
// only included with WithVerify; the final buffer is always checked by the
// caller.
func consumersFor(o *options, input []int, digest *consumer.Digest[int]) []consumer.Consumer[int] {
	progress := o.progress
	tick := consumer.Func[int](func(context.Context, int, []int) error {
		progress.Inc()

		return nil
	})

	consumers := []consumer.Consumer[int]{digest, tick}

	if o.verify {
		consumers = append([]consumer.Consumer[int]{consumer.NewVerifier(input)}, consumers...)
	}

	return consumers
}
