package consumer

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

const zstdSuffix = ".zst"

// TraceEntry is one line of a trace file.
type TraceEntry[T any] struct {
	Step   int `json:"step"`
	Values []T `json:"values"`
}

// TraceWriter writes each snapshot as a JSON line.
type TraceWriter[T any] struct {
	enc     *json.Encoder
	closers []io.Closer
	buf     *bufio.Writer
}

// NewTraceWriter writes to w. The caller owns w; Close only flushes.
func NewTraceWriter[T any](w io.Writer) *TraceWriter[T] {
	buf := bufio.NewWriter(w)

	return &TraceWriter[T]{
		enc: json.NewEncoder(buf),
		buf: buf,
	}
}

// CreateTrace creates (or truncates) the file at path and writes a trace to
// it. A path ending in ".zst" is zstd-compressed.
func CreateTrace[T any](path string) (*TraceWriter[T], error) {
	file, err := os.Create(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("creating trace file: %w", err)
	}

	if !strings.HasSuffix(path, zstdSuffix) {
		tw := NewTraceWriter[T](file)
		tw.closers = []io.Closer{file}

		return tw, nil
	}

	enc, err := zstd.NewWriter(file)
	if err != nil {
		_ = file.Close()

		return nil, fmt.Errorf("creating zstd writer: %w", err)
	}

	tw := NewTraceWriter[T](enc)
	// The encoder must be closed before the file so the final frame lands.
	tw.closers = []io.Closer{enc, file}

	return tw, nil
}

func (w *TraceWriter[T]) Consume(_ context.Context, step int, snapshot []T) error {
	return w.enc.Encode(TraceEntry[T]{Step: step, Values: snapshot})
}

// Close flushes buffered lines and closes whatever CreateTrace opened.
func (w *TraceWriter[T]) Close() error {
	var errs []error

	if err := w.buf.Flush(); err != nil {
		errs = append(errs, err)
	}

	for _, c := range w.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// ReadTrace reads back a trace written by CreateTrace.
func ReadTrace[T any](path string) ([]TraceEntry[T], error) {
	file, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("opening trace file: %w", err)
	}

	defer file.Close() //nolint:errcheck

	var r io.Reader = file

	if strings.HasSuffix(path, zstdSuffix) {
		dec, err := zstd.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("creating zstd reader: %w", err)
		}

		defer dec.Close()

		r = dec
	}

	return DecodeTrace[T](r)
}

// DecodeTrace reads JSON-line trace entries until EOF.
func DecodeTrace[T any](r io.Reader) ([]TraceEntry[T], error) {
	var entries []TraceEntry[T]

	dec := json.NewDecoder(r)

	for {
		var entry TraceEntry[T]

		err := dec.Decode(&entry)
		if errors.Is(err, io.EOF) {
			return entries, nil
		}

		if err != nil {
			return entries, fmt.Errorf("decoding trace entry %d: %w", len(entries)+1, err)
		}

		entries = append(entries, entry)
	}
}
