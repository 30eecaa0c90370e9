// Package shutdown turns SIGINT/SIGTERM into context cancellation so a
// long-running sort can be abandoned cleanly.
package shutdown

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

var (
	mut     sync.Mutex     //nolint:gochecknoglobals
	hooks   []func()       //nolint:gochecknoglobals
	channel chan os.Signal //nolint:gochecknoglobals
)

// BeforeShutdown registers a function to run before the handler's context
// is cancelled. Hooks run in registration order.
func BeforeShutdown(h func()) {
	mut.Lock()
	defer mut.Unlock()

	hooks = append(hooks, h)
}

// Shutdown triggers the shutdown process programmatically, as if a signal
// had arrived. It does nothing when SetupHandler was never called.
func Shutdown() {
	mut.Lock()
	ch := channel
	mut.Unlock()

	if ch != nil {
		select {
		case ch <- os.Interrupt:
		default:
		}
	}
}

// SetupHandler installs the signal handler and returns a child of parent
// that is cancelled once a signal arrives and the hooks have run.
func SetupHandler(parent context.Context) context.Context {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	mut.Lock()
	channel = ch
	mut.Unlock()

	ctx, cancel := context.WithCancel(parent)

	go func() {
		select {
		case sig := <-ch:
			slog.Warn("Received " + sig.String() + ", shutting down...")
		case <-ctx.Done():
		}

		signal.Stop(ch)

		mut.Lock()
		if channel == ch {
			channel = nil
		}
		mut.Unlock()

		cleanup()
		cancel()
	}()

	return ctx
}

func cleanup() {
	mut.Lock()
	pending := hooks
	hooks = nil
	mut.Unlock()

	for _, h := range pending {
		h()
	}
}
