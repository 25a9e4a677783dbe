package ingest

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/poiesic/kbsync/core"
	"github.com/poiesic/kbsync/webui"
	"github.com/poiesic/kbsync/webui/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock drives the wait loop without wall-clock delay.
// Sleeping advances the clock instead of blocking.
type fakeClock struct {
	current time.Time
	slept   []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{current: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time {
	return c.current
}

func (c *fakeClock) sleep(_ context.Context, d time.Duration) error {
	c.slept = append(c.slept, d)
	c.current = c.current.Add(d)
	return nil
}

func newTestWaiter(t *testing.T, api webui.API, clock *fakeClock) *Waiter {
	t.Helper()
	w, err := NewWaiter(api, WithClock(clock.now, clock.sleep))
	require.NoError(t, err)
	return w
}

func TestNewWaiterRequiresAPI(t *testing.T) {
	_, err := NewWaiter(nil)
	assert.ErrorIs(t, err, ErrAPIRequired)
}

func TestNewWaiterRejectsBadOptions(t *testing.T) {
	api := mock.NewMockAPI()

	_, err := NewWaiter(api, WithPollInterval(0))
	assert.ErrorIs(t, err, ErrInvalidPollInterval)

	_, err = NewWaiter(api, WithPollTimeout(-time.Second))
	assert.ErrorIs(t, err, ErrInvalidPollTimeout)
}

func TestWaitCompletedOnThirdPoll(t *testing.T) {
	api := mock.NewMockAPI()
	polls := 0
	api.ProcessingStatusFunc = func(ctx context.Context, fileID string) (string, error) {
		polls++
		if polls == 3 {
			return "completed", nil
		}
		return "pending", nil
	}

	clock := newFakeClock()
	w := newTestWaiter(t, api, clock)

	state, err := w.Wait(context.Background(), "f1")
	require.NoError(t, err)

	assert.Equal(t, StateCompleted, state)
	assert.True(t, state.Ready())
	assert.Equal(t, 3, polls)

	// Polls are spaced by the poll interval.
	require.Len(t, clock.slept, 2)
	for _, d := range clock.slept {
		assert.Equal(t, DefaultPollInterval, d)
	}
}

func TestWaitFailedStatus(t *testing.T) {
	api := mock.NewMockAPI()
	api.ProcessingStatusFunc = func(ctx context.Context, fileID string) (string, error) {
		return "failed", nil
	}

	clock := newFakeClock()
	w := newTestWaiter(t, api, clock)

	state, err := w.Wait(context.Background(), "f1")
	require.NoError(t, err)

	assert.Equal(t, StateFailed, state)
	assert.False(t, state.Ready())
	assert.Equal(t, 1, api.StatusCalls())
}

func TestWaitNotFoundAssumesReady(t *testing.T) {
	api := mock.NewMockAPI()
	api.ProcessingStatusFunc = func(ctx context.Context, fileID string) (string, error) {
		return "", &webui.RemoteError{StatusCode: http.StatusNotFound, Body: "Not Found"}
	}

	clock := newFakeClock()
	w := newTestWaiter(t, api, clock)

	state, err := w.Wait(context.Background(), "f1")
	require.NoError(t, err)

	// Success after exactly one poll, no sleeping.
	assert.Equal(t, StateAssumedReady, state)
	assert.True(t, state.Ready())
	assert.Equal(t, 1, api.StatusCalls())
	assert.Empty(t, clock.slept)
}

func TestWaitTimesOut(t *testing.T) {
	api := mock.NewMockAPI()
	api.ProcessingStatusFunc = func(ctx context.Context, fileID string) (string, error) {
		return "pending", nil
	}

	clock := newFakeClock()
	start := clock.now()
	w := newTestWaiter(t, api, clock)

	state, err := w.Wait(context.Background(), "f1")
	require.NoError(t, err)

	assert.Equal(t, StateTimedOut, state)
	assert.False(t, state.Ready())

	// The loop stopped only once elapsed time reached the timeout, and no
	// polls happen past the deadline.
	elapsed := clock.now().Sub(start)
	assert.GreaterOrEqual(t, elapsed, DefaultPollTimeout)

	expectedPolls := int(DefaultPollTimeout / DefaultPollInterval)
	assert.Equal(t, expectedPolls, api.StatusCalls())
}

func TestWaitUnrecognizedStatusKeepsPolling(t *testing.T) {
	api := mock.NewMockAPI()
	polls := 0
	api.ProcessingStatusFunc = func(ctx context.Context, fileID string) (string, error) {
		polls++
		switch polls {
		case 1:
			return "", nil
		case 2:
			return "extracting", nil
		default:
			return "completed", nil
		}
	}

	clock := newFakeClock()
	w := newTestWaiter(t, api, clock)

	state, err := w.Wait(context.Background(), "f1")
	require.NoError(t, err)
	assert.Equal(t, StateCompleted, state)
	assert.Equal(t, 3, polls)
}

func TestWaitAbortsOnRemoteError(t *testing.T) {
	api := mock.NewMockAPI()
	api.ProcessingStatusFunc = func(ctx context.Context, fileID string) (string, error) {
		return "", &webui.RemoteError{StatusCode: http.StatusInternalServerError, Body: "boom"}
	}

	clock := newFakeClock()
	w := newTestWaiter(t, api, clock)

	state, err := w.Wait(context.Background(), "f1")
	require.Error(t, err)

	var re *webui.RemoteError
	assert.ErrorAs(t, err, &re)
	assert.Equal(t, StatePolling, state)
	assert.Equal(t, 1, api.StatusCalls())
}

func TestWaitStateStatus(t *testing.T) {
	tests := []struct {
		state WaitState
		want  core.FileStatus
	}{
		{StateCompleted, core.StatusCompleted},
		{StateFailed, core.StatusFailed},
		{StateAssumedReady, core.StatusUnknown},
		{StateTimedOut, core.StatusPending},
		{StatePolling, core.StatusPending},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.state.Status(), "state %s", tt.state)
	}
}

func TestWaitStateString(t *testing.T) {
	assert.Equal(t, "completed", StateCompleted.String())
	assert.Equal(t, "failed", StateFailed.String())
	assert.Equal(t, "timed-out", StateTimedOut.String())
	assert.Equal(t, "assumed-ready", StateAssumedReady.String())
	assert.Equal(t, "polling", StatePolling.String())
	assert.Equal(t, "invalid", WaitState(99).String())
}

func TestSleepContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sleepContext(ctx, time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
}
