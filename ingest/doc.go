// Package ingest provides the pipeline that loads catalog entries into a
// knowledge collection.
//
// The Pipeline type drives the per-file workflow for each entry:
//   - Uploading the file's bytes to the backend
//   - Waiting for asynchronous extraction/indexing to finish
//   - Attaching the file to the resolved collection
//
// Processing is strictly sequential, one file at a time, so console
// output stays attributable to a single file and the backend sees no
// load spikes. Failures are isolated per entry: a failed step records the
// entry as failed and the batch continues.
package ingest
