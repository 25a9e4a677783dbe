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


package catalog

import (
	"path/filepath"
	"strings"
)

// ExtensionSet is a set of lower-cased, dot-prefixed file suffixes that
// determines catalog membership.
type ExtensionSet map[string]struct{}

// DefaultExtensions returns the file types the backend can extract text
// from.
func DefaultExtensions() ExtensionSet {
	return ExtensionSet{
		".pdf": {}, ".txt": {}, ".md": {}, ".rst": {}, ".csv": {},
		".docx": {}, ".doc": {}, ".xlsx": {}, ".xls": {}, ".pptx": {},
		".html": {}, ".htm": {}, ".xml": {}, ".json": {},
	}
}

// Add inserts an extension into the set, normalizing case and adding the
// leading dot when missing. Empty strings are ignored.
func (s ExtensionSet) Add(ext string) {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	s[ext] = struct{}{}
}

// AddList inserts every extension from a comma-separated list.
func (s ExtensionSet) AddList(list string) {
	for _, ext := range strings.Split(list, ",") {
		s.Add(ext)
	}
}

// Contains reports whether the file named by path has a suffix in the set.
// Matching is case-insensitive.
func (s ExtensionSet) Contains(path string) bool {
	_, ok := s[strings.ToLower(filepath.Ext(path))]
	return ok
}
