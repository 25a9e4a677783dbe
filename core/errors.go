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


package core

import "errors"

// Input validation errors. All of them are fatal and reported before any
// network activity takes place.
var (
	// ErrNotADirectory indicates the ingestion root does not exist or is
	// not a directory.
	ErrNotADirectory = errors.New("not a directory")

	// ErrAPIKeyRequired indicates no credential was supplied for a run
	// that performs network calls.
	ErrAPIKeyRequired = errors.New("API key required")

	// ErrNoFiles indicates the catalog matched no files under the root.
	ErrNoFiles = errors.New("no supported files found")

	// ErrEmptyCollectionName indicates a collection name resolved to the
	// empty string.
	ErrEmptyCollectionName = errors.New("collection name cannot be empty")

	// ErrEmptyQuestion indicates a query was issued with no question text.
	ErrEmptyQuestion = errors.New("question cannot be empty")
)
