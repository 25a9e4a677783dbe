package main

import (
	"fmt"
	"io"

	"github.com/poiesic/kbsync/core"
	"github.com/poiesic/kbsync/ingest"
)

// consoleMonitor prints per-file progress the moment it happens.
type consoleMonitor struct {
	w       io.Writer
	baseURL string
}

var _ ingest.Monitor = (*consoleMonitor)(nil)

func newConsoleMonitor(w io.Writer, baseURL string) *consoleMonitor {
	return &consoleMonitor{w: w, baseURL: baseURL}
}

func (m *consoleMonitor) Start(_ []core.CatalogEntry, _ core.Collection) {}

func (m *consoleMonitor) ItemStart(index, total int, entry core.CatalogEntry) {
	fmt.Fprintf(m.w, "\n[%d/%d] %s\n", index, total, entry.RelPath)
}

func (m *consoleMonitor) Uploaded(_ core.CatalogEntry, fileID string) {
	fmt.Fprintf(m.w, "  uploaded  -> %s\n", fileID)
}

func (m *consoleMonitor) WaitDone(_ core.CatalogEntry, state ingest.WaitState) {
	if state.Ready() {
		fmt.Fprintf(m.w, "  processing... done\n")
	} else {
		fmt.Fprintf(m.w, "  processing... %s (proceeding anyway)\n", state)
	}
}

func (m *consoleMonitor) Attached(_ core.CatalogEntry, _ string) {
	fmt.Fprintf(m.w, "  added to knowledge collection\n")
}

func (m *consoleMonitor) ItemFailed(_ core.CatalogEntry, err error) {
	fmt.Fprintf(m.w, "  ERROR: %v\n", err)
}

func (m *consoleMonitor) Finish(summary core.RunSummary) {
	fmt.Fprintf(m.w, "\n-- Summary ------------------------------\n")
	fmt.Fprintf(m.w, "  Succeeded : %d\n", summary.Succeeded)
	fmt.Fprintf(m.w, "  Failed    : %d\n", summary.Failed)
	fmt.Fprintf(m.w, "  Collection: '%s' (%s)\n", summary.Collection.Name, summary.Collection.ID)
	fmt.Fprintf(m.w, "  View at   : %s\n", m.baseURL)
}
