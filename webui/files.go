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
	"io"
)

// UploadFile submits one file as a multipart request and returns the
// backend-assigned file identifier.
func (c *Client) UploadFile(ctx context.Context, filename string, contents io.Reader, mimeType string) (string, error) {
	body, err := c.postMultipart(ctx, "/api/v1/files/", "file", filename, contents, mimeType, uploadTimeout)
	if err != nil {
		return "", err
	}

	var uploaded struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &uploaded); err != nil {
		return "", fmt.Errorf("decoding upload response: %w", err)
	}

	c.logger.Debug("uploaded file", "name", filename, "id", uploaded.ID)
	return uploaded.ID, nil
}

// ProcessingStatus returns the backend's processing status string for an
// uploaded file. Older builds lack the endpoint entirely; those respond
// 404, which surfaces here as a *RemoteError for the caller to
// special-case.
func (c *Client) ProcessingStatus(ctx context.Context, fileID string) (string, error) {
	body, err := c.get(ctx, "/api/v1/files/"+fileID+"/process/status", metadataTimeout)
	if err != nil {
		return "", err
	}

	var status struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &status); err != nil {
		return "", fmt.Errorf("decoding status response: %w", err)
	}
	return status.Status, nil
}
