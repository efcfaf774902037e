package dispatch_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/visheshsahu1513/Smart-Learning/internal/dispatch"
	"github.com/visheshsahu1513/Smart-Learning/internal/errdefs"
	"github.com/visheshsahu1513/Smart-Learning/internal/logging"
)

func newDispatcher(timeout time.Duration) *dispatch.Dispatcher {
	return dispatch.New(logging.New(zap.NewNop()), timeout)
}

func TestRunFulfilled(t *testing.T) {
	d := newDispatcher(time.Second)

	var mu sync.Mutex
	var events []string
	record := func(e string) func() {
		return func() {
			mu.Lock()
			events = append(events, e)
			mu.Unlock()
		}
	}

	done := dispatch.Run(context.Background(), d, "test/fetch", "k",
		func(ctx context.Context) (int, error) { return 42, nil },
		dispatch.Hooks[int]{
			Pending: record("pending"),
			Fulfilled: func(v int) {
				assert.Equal(t, 42, v)
				record("fulfilled")()
			},
			Rejected: func(*errdefs.Error) { record("rejected")() },
		})

	require.NoError(t, <-done)
	d.Wait()
	assert.Equal(t, []string{"pending", "fulfilled"}, events)
}

func TestRunRejected(t *testing.T) {
	d := newDispatcher(time.Second)

	var rejected *errdefs.Error
	done := dispatch.Run(context.Background(), d, "test/fetch", "k",
		func(ctx context.Context) (int, error) {
			return 0, errdefs.New(errdefs.KindServer, "boom")
		},
		dispatch.Hooks[int]{
			Rejected: func(e *errdefs.Error) { rejected = e },
		})

	err := <-done
	require.Error(t, err)
	d.Wait()
	require.NotNil(t, rejected)
	assert.Equal(t, errdefs.KindServer, rejected.Kind)
	assert.Equal(t, "boom", rejected.Message)
}

func TestRunWrapsForeignErrors(t *testing.T) {
	d := newDispatcher(time.Second)

	done := dispatch.Run(context.Background(), d, "test/fetch", "",
		func(ctx context.Context) (int, error) { return 0, errors.New("dial tcp: refused") },
		dispatch.Hooks[int]{})

	err := <-done
	require.Error(t, err)
	assert.Equal(t, errdefs.KindUnavailable, errdefs.KindOf(err))
}

func TestRunPendingPrecedesTerminal(t *testing.T) {
	d := newDispatcher(time.Second)

	pendingSeen := make(chan struct{})
	done := dispatch.Run(context.Background(), d, "test/fetch", "",
		func(ctx context.Context) (int, error) {
			// Pending already ran synchronously before Run returned,
			// and before the command body itself.
			select {
			case <-pendingSeen:
			default:
				t.Error("command ran before pending was emitted")
			}
			return 1, nil
		},
		dispatch.Hooks[int]{
			Pending: func() { close(pendingSeen) },
		})
	require.NoError(t, <-done)
}

func TestRunInFlightGuard(t *testing.T) {
	d := newDispatcher(time.Second)

	release := make(chan struct{})
	var pendings int
	first := dispatch.Run(context.Background(), d, "test/mutate", "course/1",
		func(ctx context.Context) (int, error) {
			<-release
			return 1, nil
		},
		dispatch.Hooks[int]{Pending: func() { pendings++ }})

	// same key while the first is still running: rejected up front,
	// no pending emitted
	second := dispatch.Run(context.Background(), d, "test/mutate", "course/1",
		func(ctx context.Context) (int, error) { return 2, nil },
		dispatch.Hooks[int]{Pending: func() { pendings++ }})

	assert.ErrorIs(t, <-second, errdefs.ErrInFlight)
	assert.Equal(t, 1, pendings)

	// a different key is unaffected
	other := dispatch.Run(context.Background(), d, "test/mutate", "course/2",
		func(ctx context.Context) (int, error) { return 3, nil },
		dispatch.Hooks[int]{})
	require.NoError(t, <-other)

	close(release)
	require.NoError(t, <-first)
	d.Wait()

	// the key is free again once the first settled
	third := dispatch.Run(context.Background(), d, "test/mutate", "course/1",
		func(ctx context.Context) (int, error) { return 4, nil },
		dispatch.Hooks[int]{})
	require.NoError(t, <-third)
}

func TestRunTimeoutCancels(t *testing.T) {
	d := newDispatcher(20 * time.Millisecond)

	var canceled, rejected bool
	done := dispatch.Run(context.Background(), d, "test/slow", "k",
		func(ctx context.Context) (int, error) {
			<-ctx.Done()
			return 0, ctx.Err()
		},
		dispatch.Hooks[int]{
			Canceled: func() { canceled = true },
			Rejected: func(*errdefs.Error) { rejected = true },
		})

	err := <-done
	require.Error(t, err)
	d.Wait()
	assert.True(t, canceled, "deadline expiry should cancel, not reject")
	assert.False(t, rejected)
}

func TestRunCallerCancel(t *testing.T) {
	d := newDispatcher(time.Second)
	ctx, cancel := context.WithCancel(context.Background())

	done := dispatch.Run(ctx, d, "test/slow", "k",
		func(ctx context.Context) (int, error) {
			<-ctx.Done()
			return 0, ctx.Err()
		},
		dispatch.Hooks[int]{})

	cancel()
	require.Error(t, <-done)
}
