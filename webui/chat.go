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
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatFileRef struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type completionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Files    []chatFileRef `json:"files"`
}

// Completion runs a retrieval-augmented chat completion scoped to one
// knowledge collection and returns the response text verbatim.
func (c *Client) Completion(ctx context.Context, model, question, collectionID string) (string, error) {
	payload := completionRequest{
		Model:    model,
		Messages: []chatMessage{{Role: "user", Content: question}},
		Files:    []chatFileRef{{Type: "collection", ID: collectionID}},
	}

	body, err := c.postJSON(ctx, "/api/chat/completions", payload, completionTimeout)
	if err != nil {
		return "", err
	}

	var resp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decoding completion response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion response contains no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
