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


package webui

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/poiesic/kbsync/core"
)

// ListCollections returns every knowledge collection on the backend.
// Depending on the backend build, the listing body is either a raw JSON
// array or an object with an "items" field; both shapes are accepted.
func (c *Client) ListCollections(ctx context.Context) ([]core.Collection, error) {
	body, err := c.get(ctx, "/api/v1/knowledge/", metadataTimeout)
	if err != nil {
		return nil, err
	}

	collections, err := decodeCollectionList(body)
	if err != nil {
		return nil, fmt.Errorf("decoding collection list: %w", err)
	}
	return collections, nil
}

// decodeCollectionList accepts both listing shapes.
func decodeCollectionList(body []byte) ([]core.Collection, error) {
	var collections []core.Collection
	if err := json.Unmarshal(body, &collections); err == nil {
		return collections, nil
	}

	var wrapped struct {
		Items []core.Collection `json:"items"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, err
	}
	return wrapped.Items, nil
}

// CreateCollection creates a named knowledge collection.
// The returned Collection carries the backend-assigned ID.
func (c *Client) CreateCollection(ctx context.Context, name, description string) (core.Collection, error) {
	payload := map[string]string{
		"name":        name,
		"description": description,
	}

	body, err := c.postJSON(ctx, "/api/v1/knowledge/create", payload, metadataTimeout)
	if err != nil {
		return core.Collection{}, err
	}

	var created core.Collection
	if err := json.Unmarshal(body, &created); err != nil {
		return core.Collection{}, fmt.Errorf("decoding created collection: %w", err)
	}
	if created.Name == "" {
		created.Name = name
	}

	c.logger.Debug("created knowledge collection", "name", name, "id", created.ID)
	return created, nil
}

// AttachFile links an uploaded file to a knowledge collection.
// Idempotency is assumed backend-side and not verified locally.
func (c *Client) AttachFile(ctx context.Context, collectionID, fileID string) error {
	payload := map[string]string{"file_id": fileID}

	_, err := c.postJSON(ctx, "/api/v1/knowledge/"+collectionID+"/file/add", payload, attachTimeout)
	return err
}
