package core

// Collection is a named knowledge collection on the remote backend.
// Name is the natural key used for lookup; ID is assigned by the backend
// and is required for attach and completion calls.
type Collection struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FileStatus describes the backend-side processing state of an uploaded file.
type FileStatus int

const (
	// StatusPending means the backend has not finished extraction/indexing yet.
	StatusPending FileStatus = iota + 1
	// StatusCompleted means extraction/indexing finished successfully.
	StatusCompleted
	// StatusFailed means the backend reported a processing failure.
	StatusFailed
	// StatusUnknown means the backend exposes no status endpoint.
	// Treated as ready; an optimistic default, not a real success signal.
	StatusUnknown
)

// String returns a human-readable name for the status.
func (s FileStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	case StatusUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// CatalogEntry is a single file selected for ingestion.
// RelPath is relative to the scanned root and is the sort key; AbsPath is
// the path used to open the file.
type CatalogEntry struct {
	RelPath string
	AbsPath string
}

// ItemResult records the outcome of one catalog entry in a run.
// Status is the last processing state observed for the uploaded file;
// an entry that failed before its wait finished stays Pending. Err is
// empty on success and holds a truncated error message otherwise.
type ItemResult struct {
	Entry  CatalogEntry
	FileID string
	Status FileStatus
	Err    string
}

// Failed reports whether the entry failed a pipeline step.
func (r *ItemResult) Failed() bool {
	return r.Err != ""
}

// RunSummary is the final accounting of a batch run.
// It is immutable once the pipeline returns it; the CLI boundary maps
// Failed > 0 to a non-zero exit status.
type RunSummary struct {
	Succeeded  int
	Failed     int
	Collection Collection
	Items      []ItemResult
}
