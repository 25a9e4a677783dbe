// Package mock provides a test double for webui.API.
//
// MockAPI behaves as a small in-memory backend by default: collections
// live in a slice in creation order, upload and create calls assign
// fresh IDs, and every file reports "completed" processing. Each method
// has a corresponding
// ...Func field for behavior injection and a call counter for assertions.
package mock
