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


package query

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/kbsync/core"
	"github.com/poiesic/kbsync/webui"
)

// NotFound describes a failed collection lookup. It carries the names
// that do exist so the caller can correct the query.
type NotFound struct {
	Name      string
	Available []string
}

// Message returns the user-facing description of the miss.
func (nf *NotFound) Message() string {
	quoted := make([]string, len(nf.Available))
	for i, name := range nf.Available {
		quoted[i] = "'" + name + "'"
	}
	return fmt.Sprintf("Collection '%s' not found. Available: [%s]", nf.Name, strings.Join(quoted, ", "))
}

// Tool exposes the read-only query operations.
type Tool struct {
	api    webui.API
	logger *slog.Logger
}

// NewTool creates a query tool over the given backend.
func NewTool(api webui.API) (*Tool, error) {
	if api == nil {
		return nil, ErrAPIRequired
	}
	return &Tool{
		api:    api,
		logger: slog.Default().With("component", "query"),
	}, nil
}

// List returns every knowledge collection on the backend.
func (t *Tool) List(ctx context.Context) ([]core.Collection, error) {
	return t.api.ListCollections(ctx)
}

// ResolveByName looks up a collection by exact name without creating
// anything on a miss. A miss yields a non-nil NotFound carrying the
// available names.
func (t *Tool) ResolveByName(ctx context.Context, name string) (core.Collection, *NotFound, error) {
	collections, err := t.api.ListCollections(ctx)
	if err != nil {
		return core.Collection{}, nil, fmt.Errorf("listing collections: %w", err)
	}

	available := make([]string, len(collections))
	for i, collection := range collections {
		if collection.Name == name {
			return collection, nil, nil
		}
		available[i] = collection.Name
	}

	return core.Collection{}, &NotFound{Name: name, Available: available}, nil
}

// Answer resolves the collection and forwards an augmented-context
// completion scoped to it, returning the response text verbatim. When no
// collection matches, the not-found message is returned as the answer and
// the completion endpoint is never called.
func (t *Tool) Answer(ctx context.Context, question, collectionName, model string) (string, error) {
	if question == "" {
		return "", core.ErrEmptyQuestion
	}

	collection, notFound, err := t.ResolveByName(ctx, collectionName)
	if err != nil {
		return "", err
	}
	if notFound != nil {
		t.logger.Info("collection not found", "name", collectionName)
		return notFound.Message(), nil
	}

	answer, err := t.api.Completion(ctx, model, question, collection.ID)
	if err != nil {
		return "", fmt.Errorf("completion against %q: %w", collectionName, err)
	}
	return answer, nil
}
