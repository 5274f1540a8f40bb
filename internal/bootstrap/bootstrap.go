// Package bootstrap runs the server process until it is interrupted and then shuts it down.
package bootstrap

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// App manages application lifecycle with graceful shutdown support.
type App struct {
	mu              sync.Mutex
	hooks           []func(ctx context.Context) error
	shutdownTimeout time.Duration
	signals         []os.Signal
}

// New creates a new App. Shutdown hooks share a deadline of shutdownTimeout;
// zero means no deadline.
func New(shutdownTimeout time.Duration) *App {
	return &App{
		shutdownTimeout: shutdownTimeout,
		signals:         []os.Signal{os.Interrupt, syscall.SIGTERM},
	}
}

// AddShutdownHook registers a function to call during graceful shutdown.
// Hooks run in reverse order (LIFO). Thread-safe.
func (a *App) AddShutdownHook(fn func(ctx context.Context) error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hooks = append(a.hooks, fn)
}

// Run executes run until it returns or the process receives a termination signal.
// On a signal or a cancelled ctx, registered shutdown hooks are called and their
// errors are returned joined. If run returns first, its error is returned.
func (a *App) Run(ctx context.Context, run func(ctx context.Context) error) error {
	ctx, cancel := signal.NotifyContext(ctx, a.signals...)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		if err := run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		return a.shutdown()
	case err := <-errCh:
		return err
	}
}

func (a *App) shutdown() error {
	ctx := context.Background()
	if a.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.shutdownTimeout)
		defer cancel()
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	var errs []error
	for i := len(a.hooks) - 1; i >= 0; i-- {
		if err := a.hooks[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
