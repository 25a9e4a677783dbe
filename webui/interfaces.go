package webui

import (
	"context"
	"io"

	"github.com/poiesic/kbsync/core"
)

// API is the backend surface consumed by the ingestion pipeline and the
// query tool. Client implements it against a live Open WebUI instance.
type API interface {
	// ListCollections returns every knowledge collection on the backend.
	ListCollections(ctx context.Context) ([]core.Collection, error)

	// CreateCollection creates a named knowledge collection and returns it
	// with the backend-assigned ID.
	CreateCollection(ctx context.Context, name, description string) (core.Collection, error)

	// UploadFile transmits one file's bytes as a multipart request and
	// returns the backend-assigned file identifier.
	UploadFile(ctx context.Context, filename string, contents io.Reader, mimeType string) (string, error)

	// ProcessingStatus returns the raw processing status string for an
	// uploaded file. A backend without the status endpoint yields a
	// *RemoteError with status 404; callers treat that as "not supported".
	ProcessingStatus(ctx context.Context, fileID string) (string, error)

	// AttachFile links a processed file to a knowledge collection.
	AttachFile(ctx context.Context, collectionID, fileID string) error

	// Completion answers a question with retrieval over the given
	// collection and returns the response text verbatim.
	Completion(ctx context.Context, model, question, collectionID string) (string, error)
}
