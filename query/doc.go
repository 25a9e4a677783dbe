// Package query answers questions against named knowledge collections.
//
// The Tool resolves a collection name read-only (no create-on-miss) and
// forwards a retrieval-augmented completion scoped to the collection's
// identifier. A missing collection is a descriptive result listing the
// available names, not an error. The package shares the backend client
// with the ingestion pipeline but performs no polling or attachment.
package query
