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

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveRoot validates that path names an existing directory and returns
// its absolute form.
//
// Validation rules:
//   - path must exist
//   - path must be a directory
//
// NOT validated:
//   - readability of the tree below the root (surfaced during the scan)
func ResolveRoot(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotADirectory, path)
	}

	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotADirectory, abs)
	}

	return abs, nil
}

// ValidateCredential checks that an API key is present when one is needed.
// Dry runs perform no network calls and may proceed without a credential.
func ValidateCredential(apiKey string, dryRun bool) error {
	if apiKey == "" && !dryRun {
		return fmt.Errorf("%w: set OPENWEBUI_API_KEY or pass --api-key", ErrAPIKeyRequired)
	}
	return nil
}

// ValidateCollectionName checks that a collection name is usable as a
// lookup key.
func ValidateCollectionName(name string) error {
	if name == "" {
		return ErrEmptyCollectionName
	}
	return nil
}
