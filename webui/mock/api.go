package mock

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/poiesic/kbsync/core"
	"github.com/poiesic/kbsync/webui"
)

// Attachment records one AttachFile call.
type Attachment struct {
	CollectionID string
	FileID       string
}

// MockAPI is a test double for webui.API.
// It allows custom behavior injection via function fields.
type MockAPI struct {
	// ListCollectionsFunc is called by ListCollections if set.
	ListCollectionsFunc func(ctx context.Context) ([]core.Collection, error)

	// CreateCollectionFunc is called by CreateCollection if set.
	CreateCollectionFunc func(ctx context.Context, name, description string) (core.Collection, error)

	// UploadFileFunc is called by UploadFile if set.
	UploadFileFunc func(ctx context.Context, filename string, contents io.Reader, mimeType string) (string, error)

	// ProcessingStatusFunc is called by ProcessingStatus if set.
	ProcessingStatusFunc func(ctx context.Context, fileID string) (string, error)

	// AttachFileFunc is called by AttachFile if set.
	AttachFileFunc func(ctx context.Context, collectionID, fileID string) error

	// CompletionFunc is called by Completion if set.
	CompletionFunc func(ctx context.Context, model, question, collectionID string) (string, error)

	// Collections is the in-memory backend state used by the default
	// behaviors. Entries may be preloaded by tests.
	Collections []core.Collection

	// Attachments records every AttachFile call in order.
	Attachments []Attachment

	// Uploaded records the filename of every UploadFile call in order.
	Uploaded []string

	listCalls       int
	createCalls     int
	uploadCalls     int
	statusCalls     int
	attachCalls     int
	completionCalls int
}

var _ webui.API = (*MockAPI)(nil)

// NewMockAPI creates a mock backend with default in-memory behavior.
// Returns the concrete type to allow test assertions via the counters.
func NewMockAPI() *MockAPI {
	return &MockAPI{}
}

// ListCollections returns the in-memory collection list.
func (m *MockAPI) ListCollections(ctx context.Context) ([]core.Collection, error) {
	m.listCalls++

	if m.ListCollectionsFunc != nil {
		return m.ListCollectionsFunc(ctx)
	}

	out := make([]core.Collection, len(m.Collections))
	copy(out, m.Collections)
	return out, nil
}

// CreateCollection appends a collection with a fresh ID.
func (m *MockAPI) CreateCollection(ctx context.Context, name, description string) (core.Collection, error) {
	m.createCalls++

	if m.CreateCollectionFunc != nil {
		return m.CreateCollectionFunc(ctx, name, description)
	}

	created := core.Collection{ID: uuid.NewString(), Name: name}
	m.Collections = append(m.Collections, created)
	return created, nil
}

// UploadFile records the upload and returns a fresh file ID.
func (m *MockAPI) UploadFile(ctx context.Context, filename string, contents io.Reader, mimeType string) (string, error) {
	m.uploadCalls++

	if m.UploadFileFunc != nil {
		return m.UploadFileFunc(ctx, filename, contents, mimeType)
	}

	// Drain the reader so upstream handle management is exercised.
	if contents != nil {
		if _, err := io.Copy(io.Discard, contents); err != nil {
			return "", err
		}
	}

	m.Uploaded = append(m.Uploaded, filename)
	return uuid.NewString(), nil
}

// ProcessingStatus reports "completed" for every file.
func (m *MockAPI) ProcessingStatus(ctx context.Context, fileID string) (string, error) {
	m.statusCalls++

	if m.ProcessingStatusFunc != nil {
		return m.ProcessingStatusFunc(ctx, fileID)
	}
	return "completed", nil
}

// AttachFile records the attachment.
func (m *MockAPI) AttachFile(ctx context.Context, collectionID, fileID string) error {
	m.attachCalls++

	if m.AttachFileFunc != nil {
		return m.AttachFileFunc(ctx, collectionID, fileID)
	}

	m.Attachments = append(m.Attachments, Attachment{CollectionID: collectionID, FileID: fileID})
	return nil
}

// Completion returns a canned answer.
func (m *MockAPI) Completion(ctx context.Context, model, question, collectionID string) (string, error) {
	m.completionCalls++

	if m.CompletionFunc != nil {
		return m.CompletionFunc(ctx, model, question, collectionID)
	}
	return "mock answer", nil
}

// ListCalls returns the number of ListCollections calls.
func (m *MockAPI) ListCalls() int { return m.listCalls }

// CreateCalls returns the number of CreateCollection calls.
func (m *MockAPI) CreateCalls() int { return m.createCalls }

// UploadCalls returns the number of UploadFile calls.
func (m *MockAPI) UploadCalls() int { return m.uploadCalls }

// StatusCalls returns the number of ProcessingStatus calls.
func (m *MockAPI) StatusCalls() int { return m.statusCalls }

// AttachCalls returns the number of AttachFile calls.
func (m *MockAPI) AttachCalls() int { return m.attachCalls }

// CompletionCalls returns the number of Completion calls.
func (m *MockAPI) CompletionCalls() int { return m.completionCalls }

// TotalCalls returns the number of calls across every method.
// Dry-run tests assert this stays zero.
func (m *MockAPI) TotalCalls() int {
	return m.listCalls + m.createCalls + m.uploadCalls +
		m.statusCalls + m.attachCalls + m.completionCalls
}

// Reset clears state, counters, and injected behaviors.
func (m *MockAPI) Reset() {
	*m = MockAPI{}
}
