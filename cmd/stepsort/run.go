package main

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/amp-labs/stepsort/cli"
	"github.com/amp-labs/stepsort/compare"
	"github.com/amp-labs/stepsort/consumer"
	"github.com/amp-labs/stepsort/generate"
	"github.com/amp-labs/stepsort/logger"
	"github.com/amp-labs/stepsort/should"
	"github.com/amp-labs/stepsort/stepsort"
	"github.com/amp-labs/stepsort/tally"
	"github.com/google/uuid"
	"go.uber.org/atomic"
)

func run(ctx context.Context, cfg *config, out io.Writer) error {
	if cfg.interactive {
		if err := promptConfig(cfg); err != nil {
			return err
		}
	}

	runID := uuid.NewString()
	ctx = logger.With(ctx, "run_id", runID)

	input := generate.Permutation(cfg.size, cfg.seed)

	logger.Get(ctx).Debug("generated input", "size", cfg.size, "seed", cfg.seed, "mode", cfg.mode)

	if cfg.mode == modeTally {
		return runTally(ctx, cfg, input, out)
	}

	return runSingle(ctx, cfg, runID, input, out)
}

func promptConfig(cfg *config) error {
	size, err := cli.PromptInt("Enter number of integers", minSize, maxSize, cfg.size)
	if err != nil {
		return err
	}

	cfg.size = size

	if cfg.mode == modeTally {
		return nil
	}

	kind, err := cli.SelectKind("Choose sorting algorithm")
	if err != nil {
		return err
	}

	cfg.kind = kind

	return nil
}

func runSingle(ctx context.Context, cfg *config, runID string, input []int, out io.Writer) error {
	buf := slices.Clone(input)

	seq, err := stepsort.New(cfg.kind, buf)
	if err != nil {
		return err
	}

	digest := consumer.IntDigest()
	consumers := baseConsumers(cfg, input, digest)

	if cfg.render {
		consumers = append(consumers, consumer.NewRenderer(out,
			consumer.WithTitle(cfg.kind.Title()),
			consumer.WithFrameDelay(cfg.frameDelay)))
	}

	if cfg.traceFile != "" {
		tw, err := consumer.CreateTrace[int](cfg.traceFile)
		if err != nil {
			return err
		}

		defer should.Close(ctx, tw, "closing trace file")

		consumers = append(consumers, tw)
	}

	result, err := consumer.Drain(ctx, seq, consumers,
		consumer.WithRunID(runID),
		consumer.WithMaxSnapshots(cfg.maxSteps))
	if err != nil {
		return err
	}

	if !compare.SameElements(input, buf) {
		return fmt.Errorf("%w: final buffer", consumer.ErrCorrupted)
	}

	status := runStatus(result, buf)

	fmt.Fprintln(out, cli.BannerAutoWidth(ctx, fmt.Sprintf("%s: %d values, %d operations, %s",
		cfg.kind.Title(), len(buf), result.Snapshots, status), cli.AlignCenter))

	logger.Get(ctx).Info("sort finished",
		"kind", cfg.kind.String(),
		"operations", result.Snapshots,
		"completed", result.Completed,
		"digest", fmt.Sprintf("%016x", digest.Sum64()),
		"elapsed", result.Elapsed)

	return nil
}

// baseConsumers is the chain every single run gets. Per-snapshot
// verification is linear in the input, so it is only on with SORT_VERIFY.
func baseConsumers(cfg *config, input []int, digest *consumer.Digest[int]) []consumer.Consumer[int] {
	if cfg.verify {
		return []consumer.Consumer[int]{consumer.NewVerifier(input), digest}
	}

	return []consumer.Consumer[int]{digest}
}

// runStatus reports a run stopped exactly at its last snapshot as sorted:
// Drain cannot tell that apart from an early stop without running further.
func runStatus(result consumer.Result, buf []int) string {
	if result.Completed || compare.IsSortedFunc(buf, func(a, b int) bool { return a < b }) {
		return "sorted"
	}

	return "stopped early"
}

func runTally(ctx context.Context, cfg *config, input []int, out io.Writer) error {
	progress := atomic.NewInt64(0)

	entries, err := tally.Run(ctx, input, tally.WithProgress(progress), tally.WithVerify(cfg.verify))
	if err != nil {
		return err
	}

	fmt.Fprintln(out, cli.BannerAutoWidth(ctx, fmt.Sprintf("%d values", len(input)), cli.AlignCenter))
	fmt.Fprint(out, formatTally(entries))

	logger.Get(ctx).Info("tally finished", "engines", len(entries), "operations", progress.Load())

	return nil
}

func formatTally(entries []tally.Entry) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%-15s %12s %-16s %s\n", "engine", "operations", "digest", "sorted")

	for _, e := range entries {
		fmt.Fprintf(&sb, "%-15s %12d %016x %t\n", e.Kind.Title(), e.Snapshots, e.Digest, e.Sorted)
	}

	return sb.String()
}
