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
	"errors"
	"fmt"
	"net/http"
)

// maxBodyDisplay caps the response body length embedded in error messages.
const maxBodyDisplay = 200

// RemoteError is returned for any non-2xx response from the backend.
// Body holds the raw response body for diagnostics; Error truncates it.
type RemoteError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *RemoteError) Error() string {
	body := e.Body
	if len(body) > maxBodyDisplay {
		body = body[:maxBodyDisplay]
	}
	return fmt.Sprintf("remote error %d: %s", e.StatusCode, body)
}

// IsNotFound reports whether err is a RemoteError with HTTP status 404.
// Callers special-case 404 where the backend build may predate an
// endpoint.
func IsNotFound(err error) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.StatusCode == http.StatusNotFound
}
