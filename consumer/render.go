package consumer

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"golang.org/x/term"
)

const (
	defaultRenderWidth = 60
	clearScreen        = "\x1b[H\x1b[2J"
	barRune            = "█"
)

// Renderer draws int snapshots as horizontal bars, one per element, under a
// header with the running operation count. It is the terminal version of an
// animated bar chart: one frame per snapshot.
type Renderer struct {
	out   io.Writer
	title string
	width int
	delay time.Duration
	clear bool
	sb    strings.Builder
}

// RenderOption configures a Renderer.
type RenderOption func(*Renderer)

// WithTitle sets the header text shown above the count.
func WithTitle(title string) RenderOption {
	return func(r *Renderer) {
		r.title = title
	}
}

// WithWidth fixes the widest bar at n columns instead of sizing to the
// terminal.
func WithWidth(n int) RenderOption {
	return func(r *Renderer) {
		if n > 0 {
			r.width = n
		}
	}
}

// WithFrameDelay waits d after each frame. The wait ends early if the
// context is cancelled.
func WithFrameDelay(d time.Duration) RenderOption {
	return func(r *Renderer) {
		r.delay = d
	}
}

// NewRenderer draws to out. When out is a terminal the screen is cleared
// between frames and bars are sized to its width.
func NewRenderer(out io.Writer, opts ...RenderOption) *Renderer {
	r := &Renderer{
		out:   out,
		width: defaultRenderWidth,
	}

	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) { //nolint:gosec
		r.clear = true

		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 10 { //nolint:gosec
			r.width = cols - 10
		}
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *Renderer) Consume(ctx context.Context, step int, snapshot []int) error {
	r.sb.Reset()

	if r.clear {
		r.sb.WriteString(clearScreen)
	}

	r.frame(step, snapshot)

	if _, err := io.WriteString(r.out, r.sb.String()); err != nil {
		return err
	}

	if r.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(r.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (r *Renderer) frame(step int, snapshot []int) {
	if r.title != "" {
		r.sb.WriteString(r.title)
		r.sb.WriteString("\n")
	}

	fmt.Fprintf(&r.sb, "# of operations: %d\n", step)

	if len(snapshot) == 0 {
		return
	}

	hi := max(slices.Max(snapshot), 1)

	for _, v := range snapshot {
		n := 0
		if v > 0 {
			n = max(v*r.width/hi, 1)
		}

		fmt.Fprintf(&r.sb, "%6d %s\n", v, strings.Repeat(barRune, n))
	}
}
