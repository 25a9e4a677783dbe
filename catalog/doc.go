// Package catalog discovers the files eligible for ingestion.
//
// Scan walks a directory tree recursively, selects regular files whose
// extension is in the configured ExtensionSet, and returns them sorted by
// relative path so that run order and console output are reproducible.
// Symlink cycles are not guarded against.
package catalog
