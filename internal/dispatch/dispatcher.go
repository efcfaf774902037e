// Package dispatch runs the application's asynchronous commands. Every
// command observes exactly one pending signal followed by exactly one
// of fulfilled, rejected or canceled.
package dispatch

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/visheshsahu1513/Smart-Learning/internal/ctxdata"
	"github.com/visheshsahu1513/Smart-Learning/internal/errdefs"
	"github.com/visheshsahu1513/Smart-Learning/internal/logging"
)

// Hooks fold one command's outcomes into store transitions. Pending
// runs synchronously before Run returns; exactly one of the other
// three runs later. Canceled fires when the command's deadline expires
// or its context is cancelled, so the owning status can rewind to idle
// instead of sticking at loading.
type Hooks[T any] struct {
	Pending   func()
	Fulfilled func(T)
	Rejected  func(*errdefs.Error)
	Canceled  func()
}

// Dispatcher owns the per-key in-flight guard and the command deadline.
// At most one command per key runs at a time; a duplicate is rejected
// up front, before its pending signal.
type Dispatcher struct {
	log     *logging.Logger
	timeout time.Duration

	mu       sync.Mutex
	inflight map[string]struct{}
	wg       sync.WaitGroup
}

func New(log *logging.Logger, timeout time.Duration) *Dispatcher {
	return &Dispatcher{
		log:      log,
		timeout:  timeout,
		inflight: make(map[string]struct{}),
	}
}

// Wait blocks until every dispatched command has settled.
func (d *Dispatcher) Wait() { d.wg.Wait() }

func (d *Dispatcher) acquire(key string) bool {
	if key == "" {
		return true
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, taken := d.inflight[key]; taken {
		return false
	}
	d.inflight[key] = struct{}{}
	return true
}

func (d *Dispatcher) release(key string) {
	if key == "" {
		return
	}
	d.mu.Lock()
	delete(d.inflight, key)
	d.mu.Unlock()
}

// Run dispatches one named command. The returned channel settles with
// nil on fulfilled and the command's error otherwise; it is buffered,
// so callers may drop it. A duplicate command for a still-running key
// settles immediately with ErrInFlight and never reaches Pending.
func Run[T any](ctx context.Context, d *Dispatcher, name, key string, fn func(context.Context) (T, error), h Hooks[T]) <-chan error {
	done := make(chan error, 1)

	if !d.acquire(key) {
		d.log.Warn(ctx, "command rejected, target busy",
			zap.String("command", name), zap.String("key", key))
		done <- errdefs.ErrInFlight
		return done
	}

	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	ctx = ctxdata.WithCommandID(ctx, id.String())
	ctx = ctxdata.WithCommandName(ctx, name)

	if h.Pending != nil {
		h.Pending()
	}
	d.log.Debug(ctx, "command pending")

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer d.release(key)
		start := time.Now()

		runCtx, cancel := context.WithTimeout(ctx, d.timeout)
		defer cancel()

		payload, err := fn(runCtx)
		switch {
		case runCtx.Err() != nil:
			if h.Canceled != nil {
				h.Canceled()
			}
			d.log.Warn(ctx, "command canceled",
				zap.Duration("duration", time.Since(start)),
				zap.Error(runCtx.Err()))
			done <- errdefs.Wrap(errdefs.KindUnavailable, "command canceled", runCtx.Err())
		case err != nil:
			cmdErr := errdefs.From(err)
			if h.Rejected != nil {
				h.Rejected(cmdErr)
			}
			d.log.Warn(ctx, "command rejected",
				zap.Duration("duration", time.Since(start)),
				zap.String("kind", string(cmdErr.Kind)),
				zap.Error(cmdErr))
			done <- cmdErr
		default:
			if h.Fulfilled != nil {
				h.Fulfilled(payload)
			}
			d.log.Debug(ctx, "command fulfilled",
				zap.Duration("duration", time.Since(start)))
			done <- nil
		}
	}()
	return done
}
