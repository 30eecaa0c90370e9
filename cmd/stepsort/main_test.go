package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/amp-labs/stepsort/consumer"
	"github.com/amp-labs/stepsort/envutil"
	"github.com/amp-labs/stepsort/stepsort"
	"github.com/amp-labs/stepsort/tally"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		env     map[string]string
		check   func(t *testing.T, cfg *config)
		wantErr bool
	}{
		{
			name: "defaults",
			env:  map[string]string{"SORT_SEED": "5"},
			check: func(t *testing.T, cfg *config) {
				t.Helper()

				assert.Equal(t, stepsort.Merge, cfg.kind)
				assert.Equal(t, defaultSize, cfg.size)
				assert.Equal(t, uint64(5), cfg.seed)
				assert.Equal(t, modeSingle, cfg.mode)
				assert.False(t, cfg.interactive)
				assert.True(t, cfg.render)
				assert.False(t, cfg.verify)
				assert.Equal(t, defaultFrameDelay, cfg.frameDelay)
				assert.Zero(t, cfg.maxSteps)
				assert.Empty(t, cfg.traceFile)
			},
		},
		{
			name: "everything set",
			env: map[string]string{
				"SORT_KIND":        "q",
				"SORT_SIZE":        "100",
				"SORT_SEED":        "9",
				"SORT_MODE":        "TALLY",
				"SORT_INTERACTIVE": "true",
				"SORT_RENDER":      "false",
				"SORT_VERIFY":      "true",
				"SORT_FRAME_DELAY": "1s",
				"SORT_MAX_STEPS":   "40",
				"SORT_TRACE_FILE":  " /tmp/run.jsonl.zst ",
			},
			check: func(t *testing.T, cfg *config) {
				t.Helper()

				assert.Equal(t, stepsort.Quick, cfg.kind)
				assert.Equal(t, 100, cfg.size)
				assert.Equal(t, modeTally, cfg.mode)
				assert.True(t, cfg.interactive)
				assert.False(t, cfg.render)
				assert.True(t, cfg.verify)
				assert.Equal(t, time.Second, cfg.frameDelay)
				assert.Equal(t, 40, cfg.maxSteps)
				assert.Equal(t, "/tmp/run.jsonl.zst", cfg.traceFile)
			},
		},
		{name: "unknown kind", env: map[string]string{"SORT_KIND": "heap"}, wantErr: true},
		{name: "size too small", env: map[string]string{"SORT_SIZE": "1"}, wantErr: true},
		{name: "bad mode", env: map[string]string{"SORT_MODE": "race"}, wantErr: true},
		{name: "bad seed", env: map[string]string{"SORT_SEED": "-4"}, wantErr: true},
		{name: "negative max steps", env: map[string]string{"SORT_MAX_STEPS": "-1"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := loadConfig(envutil.WithEnvOverrides(context.Background(), tt.env))
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestRun_Single(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	cfg := &config{kind: stepsort.Bubble, size: 20, seed: 1, mode: modeSingle, render: true}

	ctx := envutil.WithEnvOverride(context.Background(), "SORT_NO_BANNER", "true")

	require.NoError(t, run(ctx, cfg, &out))

	assert.Contains(t, out.String(), "Bubble sort\n# of operations: 1\n")
	assert.Contains(t, out.String(), "Bubble sort: 20 values")
	assert.Contains(t, out.String(), "operations, sorted")
}

func TestRun_SingleStoppedEarly(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	cfg := &config{kind: stepsort.Selection, size: 10, seed: 1, mode: modeSingle, maxSteps: 3}

	ctx := envutil.WithEnvOverride(context.Background(), "SORT_NO_BANNER", "true")

	require.NoError(t, run(ctx, cfg, &out))
	assert.Contains(t, out.String(), "10 values, 3 operations, stopped early")
}

func TestRun_Tally(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	cfg := &config{size: 12, seed: 4, mode: modeTally}

	ctx := envutil.WithEnvOverride(context.Background(), "SORT_NO_BANNER", "true")

	require.NoError(t, run(ctx, cfg, &out))

	for _, k := range stepsort.Kinds() {
		assert.Contains(t, out.String(), k.Title())
	}
}

func TestFormatTally(t *testing.T) {
	t.Parallel()

	got := formatTally([]tally.Entry{{Kind: stepsort.Bubble, Snapshots: 28, Digest: 0xff, Sorted: true}})
	lines := strings.Split(strings.TrimSpace(got), "\n")

	require.Len(t, lines, 2)
	assert.Equal(t, "Bubble sort               28 00000000000000ff true", lines[1])
}

func TestBaseConsumers_VerifyIsOptIn(t *testing.T) {
	t.Parallel()

	input := []int{2, 1}

	plain := baseConsumers(&config{}, input, consumer.IntDigest())
	require.Len(t, plain, 1)
	assert.IsType(t, &consumer.Digest[int]{}, plain[0])

	verified := baseConsumers(&config{verify: true}, input, consumer.IntDigest())
	require.Len(t, verified, 2)
	assert.IsType(t, &consumer.Verifier[int]{}, verified[0])
}

func TestRunStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result consumer.Result
		buf    []int
		want   string
	}{
		{"completed", consumer.Result{Completed: true}, []int{1, 2, 3}, "sorted"},
		{"limit hit on the last snapshot", consumer.Result{Snapshots: 2}, []int{1, 2, 3}, "sorted"},
		{"limit hit mid-sort", consumer.Result{Snapshots: 1}, []int{1, 3, 2}, "stopped early"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, runStatus(tt.result, tt.buf))
		})
	}
}

func TestRun_SingleVerified(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	cfg := &config{kind: stepsort.Merge, size: 40, seed: 2, mode: modeSingle, verify: true}

	ctx := envutil.WithEnvOverride(context.Background(), "SORT_NO_BANNER", "true")

	require.NoError(t, run(ctx, cfg, &out))
	assert.Contains(t, out.String(), "Merge sort: 40 values")
	assert.Contains(t, out.String(), "operations, sorted")
}
