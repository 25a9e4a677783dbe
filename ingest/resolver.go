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

	"github.com/poiesic/kbsync/core"
	"github.com/poiesic/kbsync/webui"
)

// Resolver provides get-or-create semantics for a named knowledge
// collection.
//
// The check-then-create sequence is not atomic against concurrent
// external creators of the same name; a racing caller may leave a
// duplicate collection on the backend. This is an accepted limitation —
// a local lock would not help across processes, and the backend owns the
// uniqueness guarantee it does not enforce.
type Resolver struct {
	api    webui.API
	logger *slog.Logger
}

// NewResolver creates a resolver over the given backend.
func NewResolver(api webui.API) (*Resolver, error) {
	if api == nil {
		return nil, ErrAPIRequired
	}
	return &Resolver{
		api:    api,
		logger: slog.Default().With("component", "resolver"),
	}, nil
}

// Resolve returns the collection with an exactly matching name, creating
// it when no such collection exists. Lookup happens before create so a
// repeated run appends to the existing collection instead of duplicating
// it.
func (r *Resolver) Resolve(ctx context.Context, name string) (core.Collection, error) {
	if err := core.ValidateCollectionName(name); err != nil {
		return core.Collection{}, err
	}

	existing, err := r.api.ListCollections(ctx)
	if err != nil {
		return core.Collection{}, fmt.Errorf("listing collections: %w", err)
	}

	for _, collection := range existing {
		if collection.Name == name {
			r.logger.Info("using existing knowledge collection", "name", name, "id", collection.ID)
			return collection, nil
		}
	}

	description := fmt.Sprintf("Ingested from local folder: %s", name)
	created, err := r.api.CreateCollection(ctx, name, description)
	if err != nil {
		return core.Collection{}, fmt.Errorf("creating collection %q: %w", name, err)
	}

	r.logger.Info("created knowledge collection", "name", name, "id", created.ID)
	return created, nil
}
