package app

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// ShutdownFunc is a teardown hook. The context carries the shutdown
// deadline; a hook that outlives it should give up and return ctx.Err().
type ShutdownFunc func(ctx context.Context) error

// Lifecycle coordinates teardown for both kiosk sessions and the gateway
// service. Hooks run LIFO, so the inventory store registered first closes
// after the gateway or TUI program that still reads from it.
type Lifecycle struct {
	mu      sync.Mutex
	hooks   []ShutdownFunc
	quitCh  chan struct{}
	doneCh  chan struct{}
	timeout time.Duration
	once    sync.Once
}

// NewLifecycle creates a lifecycle with the given teardown deadline.
func NewLifecycle(timeout time.Duration) *Lifecycle {
	return &Lifecycle{
		quitCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
		timeout: timeout,
	}
}

// OnShutdown registers a teardown hook. Later registrations run first.
func (l *Lifecycle) OnShutdown(fn ShutdownFunc) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.hooks = append(l.hooks, fn)
}

// WaitForSignal blocks the serve command until the process receives SIGINT
// or SIGTERM. A programmatic Shutdown also unblocks it, returning nil.
func (l *Lifecycle) WaitForSignal() os.Signal {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		return sig
	case <-l.quitCh:
		return nil
	}
}

// Shutdown runs the registered hooks newest-first under the teardown
// deadline and returns the last hook error. Only the first call does
// work; later calls return nil.
func (l *Lifecycle) Shutdown() error {
	var lastErr error

	l.once.Do(func() {
		close(l.quitCh)

		ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
		defer cancel()

		l.mu.Lock()
		hooks := make([]ShutdownFunc, len(l.hooks))
		copy(hooks, l.hooks)
		l.mu.Unlock()

		for i := len(hooks) - 1; i >= 0; i-- {
			if err := hooks[i](ctx); err != nil {
				lastErr = err
			}
		}

		close(l.doneCh)
	})

	return lastErr
}

// Done is closed once every hook has run.
func (l *Lifecycle) Done() <-chan struct{} {
	return l.doneCh
}

// ShutdownCh is closed as soon as shutdown begins, before any hook runs.
func (l *Lifecycle) ShutdownCh() <-chan struct{} {
	return l.quitCh
}

// IsShuttingDown reports whether shutdown has started.
func (l *Lifecycle) IsShuttingDown() bool {
	select {
	case <-l.quitCh:
		return true
	default:
		return false
	}
}

// Timeout returns the teardown deadline.
func (l *Lifecycle) Timeout() time.Duration {
	return l.timeout
}
