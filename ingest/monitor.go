package ingest

import "github.com/poiesic/kbsync/core"

// Monitor provides hooks to observe an ingestion run.
// Implement this interface to report per-file progress as it happens;
// every hook fires immediately, nothing is buffered to the end of the
// batch.
type Monitor interface {
	Start(entries []core.CatalogEntry, collection core.Collection)
	ItemStart(index, total int, entry core.CatalogEntry)
	Uploaded(entry core.CatalogEntry, fileID string)
	WaitDone(entry core.CatalogEntry, state WaitState)
	Attached(entry core.CatalogEntry, fileID string)
	ItemFailed(entry core.CatalogEntry, err error)
	Finish(summary core.RunSummary)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ []core.CatalogEntry, _ core.Collection) {}
func (n *noopMonitor) ItemStart(_, _ int, _ core.CatalogEntry)       {}
func (n *noopMonitor) Uploaded(_ core.CatalogEntry, _ string)        {}
func (n *noopMonitor) WaitDone(_ core.CatalogEntry, _ WaitState)     {}
func (n *noopMonitor) Attached(_ core.CatalogEntry, _ string)        {}
func (n *noopMonitor) ItemFailed(_ core.CatalogEntry, _ error)       {}
func (n *noopMonitor) Finish(_ core.RunSummary)                      {}
