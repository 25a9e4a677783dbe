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
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path/filepath"

	"github.com/poiesic/kbsync/core"
	"github.com/poiesic/kbsync/webui"
)

// maxErrMessage caps the error text recorded per failed item.
const maxErrMessage = 200

// Pipeline orchestrates the per-file ingestion workflow over a batch of
// catalog entries. Entries are processed strictly in catalog order, one
// at a time, and a step failure is isolated to its entry.
type Pipeline struct {
	api     webui.API
	waiter  *Waiter
	monitor Monitor
	logger  *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithMonitor sets the observer for per-file progress.
// Default is a no-op monitor.
func WithMonitor(m Monitor) Option {
	return func(p *Pipeline) error {
		if m != nil {
			p.monitor = m
		}
		return nil
	}
}

// WithWaiter replaces the processing waiter.
func WithWaiter(w *Waiter) Option {
	return func(p *Pipeline) error {
		if w != nil {
			p.waiter = w
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger != nil {
			p.logger = logger
		}
		return nil
	}
}

// NewPipeline creates an ingestion pipeline over the given backend.
func NewPipeline(api webui.API, opts ...Option) (*Pipeline, error) {
	if api == nil {
		return nil, ErrAPIRequired
	}

	waiter, err := NewWaiter(api)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		api:     api,
		waiter:  waiter,
		monitor: &noopMonitor{},
		logger:  slog.Default().With("component", "pipeline"),
	}
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			return nil, optErr
		}
	}
	return p, nil
}

// Run processes every entry against the collection: upload, wait for
// processing, attach. A failed step records the entry as failed and the
// batch continues; entries are never retried within a run. The returned
// summary is complete regardless of outcomes; the caller maps
// Failed > 0 to the process exit status.
func (p *Pipeline) Run(ctx context.Context, entries []core.CatalogEntry, collection core.Collection) core.RunSummary {
	summary := core.RunSummary{
		Collection: collection,
		Items:      make([]core.ItemResult, 0, len(entries)),
	}

	p.monitor.Start(entries, collection)

	for i, entry := range entries {
		p.monitor.ItemStart(i+1, len(entries), entry)

		fileID, state, err := p.processEntry(ctx, entry, collection)
		item := core.ItemResult{Entry: entry, FileID: fileID, Status: state.Status()}

		if err != nil {
			item.Err = truncateMessage(err.Error())
			summary.Failed++
			p.logger.Warn("entry failed", "file", entry.RelPath, "err", err)
			p.monitor.ItemFailed(entry, err)
		} else {
			summary.Succeeded++
		}

		summary.Items = append(summary.Items, item)
	}

	p.monitor.Finish(summary)
	return summary
}

// processEntry runs upload → wait → attach for one entry, returning the
// file ID and the wait state reached. A TimedOut or Failed wait is not
// an error here: attachment proceeds anyway as a best-effort policy,
// since indexing may complete after the deadline.
func (p *Pipeline) processEntry(ctx context.Context, entry core.CatalogEntry, collection core.Collection) (string, WaitState, error) {
	fileID, err := p.uploadEntry(ctx, entry)
	if err != nil {
		return "", StatePolling, err
	}
	p.monitor.Uploaded(entry, fileID)

	state, err := p.waiter.Wait(ctx, fileID)
	if err != nil {
		return fileID, state, fmt.Errorf("waiting for processing: %w", err)
	}
	p.monitor.WaitDone(entry, state)

	if err := p.api.AttachFile(ctx, collection.ID, fileID); err != nil {
		return fileID, state, fmt.Errorf("attaching to collection: %w", err)
	}
	p.monitor.Attached(entry, fileID)

	return fileID, state, nil
}

// uploadEntry opens the file and submits it. The handle is released as
// soon as the request finishes, on error paths included.
func (p *Pipeline) uploadEntry(ctx context.Context, entry core.CatalogEntry) (string, error) {
	f, err := os.Open(entry.AbsPath)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", entry.RelPath, err)
	}
	defer f.Close()

	mimeType := mime.TypeByExtension(filepath.Ext(entry.AbsPath))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	fileID, err := p.api.UploadFile(ctx, filepath.Base(entry.AbsPath), f, mimeType)
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w", entry.RelPath, err)
	}
	return fileID, nil
}

// truncateMessage keeps per-item error records short for the report.
func truncateMessage(msg string) string {
	if len(msg) > maxErrMessage {
		return msg[:maxErrMessage]
	}
	return msg
}
