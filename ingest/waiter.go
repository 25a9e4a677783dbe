// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/poiesic/kbsync/core"
	"github.com/poiesic/kbsync/webui"
)

// Default polling parameters for backend-side file processing.
const (
	DefaultPollInterval = 2 * time.Second
	DefaultPollTimeout  = 120 * time.Second
)

// WaitState is a terminal state of the processing wait loop.
type WaitState int

const (
	// StatePolling means the wait loop has not reached a terminal state.
	// It is never returned alongside a nil error.
	StatePolling WaitState = iota

	// StateCompleted means the backend reported successful processing.
	StateCompleted

	// StateFailed means the backend reported failed processing.
	StateFailed

	// StateTimedOut means the deadline elapsed before a terminal status.
	StateTimedOut

	// StateAssumedReady means the backend has no status endpoint (404) and
	// the file is optimistically assumed ready. This can mask genuinely
	// failed processing on backends that lack the endpoint for unrelated
	// reasons; the behavior is kept for compatibility with older builds.
	StateAssumedReady
)

// String returns a human-readable name for the state.
func (s WaitState) String() string {
	switch s {
	case StatePolling:
		return "polling"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	case StateTimedOut:
		return "timed-out"
	case StateAssumedReady:
		return "assumed-ready"
	default:
		return "invalid"
	}
}

// Status maps the wait outcome onto the file's processing state.
// A timed-out file is still pending at the deadline; AssumedReady maps
// to Unknown because the backend never reported a real status.
func (s WaitState) Status() core.FileStatus {
	switch s {
	case StateCompleted:
		return core.StatusCompleted
	case StateFailed:
		return core.StatusFailed
	case StateAssumedReady:
		return core.StatusUnknown
	default:
		return core.StatusPending
	}
}

// Ready reports whether the state counts as a successful wait.
// TimedOut is not ready, but the pipeline still attaches the file —
// indexing may finish asynchronously after the deadline.
func (s WaitState) Ready() bool {
	return s == StateCompleted || s == StateAssumedReady
}

// Waiter polls the backend until a file's extraction/indexing finishes,
// fails, or a deadline elapses. State transitions are owned exclusively
// by the waiter; nothing else mutates a file's status.
type Waiter struct {
	api      webui.API
	interval time.Duration
	timeout  time.Duration
	now      func() time.Time
	sleep    func(ctx context.Context, d time.Duration) error
	logger   *slog.Logger
}

// WaiterOption configures a Waiter.
type WaiterOption func(*Waiter) error

// WithPollInterval sets the delay between status polls.
func WithPollInterval(d time.Duration) WaiterOption {
	return func(w *Waiter) error {
		if d <= 0 {
			return ErrInvalidPollInterval
		}
		w.interval = d
		return nil
	}
}

// WithPollTimeout sets the deadline for a single file's wait.
func WithPollTimeout(d time.Duration) WaiterOption {
	return func(w *Waiter) error {
		if d <= 0 {
			return ErrInvalidPollTimeout
		}
		w.timeout = d
		return nil
	}
}

// WithClock replaces the wall clock and sleep functions.
// Tests inject both to drive the wait loop without real delay.
func WithClock(now func() time.Time, sleep func(ctx context.Context, d time.Duration) error) WaiterOption {
	return func(w *Waiter) error {
		if now != nil {
			w.now = now
		}
		if sleep != nil {
			w.sleep = sleep
		}
		return nil
	}
}

// NewWaiter creates a waiter with the default 2s interval and 120s
// timeout.
func NewWaiter(api webui.API, opts ...WaiterOption) (*Waiter, error) {
	if api == nil {
		return nil, ErrAPIRequired
	}

	w := &Waiter{
		api:      api,
		interval: DefaultPollInterval,
		timeout:  DefaultPollTimeout,
		now:      time.Now,
		sleep:    sleepContext,
		logger:   slog.Default().With("component", "waiter"),
	}
	for _, opt := range opts {
		if err := opt(w); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// Wait polls the processing status of fileID until a terminal state.
//
// Transitions from Polling:
//   - backend responds 404            → AssumedReady (endpoint not supported)
//   - status "completed"              → Completed
//   - status "failed"                 → Failed
//   - deadline elapses                → TimedOut
//   - any other response status      → remain Polling, sleep, re-poll
//
// Any other transport or server error aborts the wait and is returned
// with StatePolling; it is not silently retried.
func (w *Waiter) Wait(ctx context.Context, fileID string) (WaitState, error) {
	deadline := w.now().Add(w.timeout)

	for w.now().Before(deadline) {
		status, err := w.api.ProcessingStatus(ctx, fileID)
		if webui.IsNotFound(err) {
			w.logger.Debug("status endpoint not supported, assuming ready", "file", fileID)
			return StateAssumedReady, nil
		}
		if err != nil {
			return StatePolling, err
		}

		switch status {
		case "completed":
			return StateCompleted, nil
		case "failed":
			return StateFailed, nil
		}

		w.logger.Debug("still processing", "file", fileID, "status", status)
		if err := w.sleep(ctx, w.interval); err != nil {
			return StatePolling, err
		}
	}

	return StateTimedOut, nil
}

// sleepContext sleeps for d or until the context is cancelled.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	select {
	case <-ctx.Done():
		timer.Stop()
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
