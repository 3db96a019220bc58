// Package fs provides file-based input and output for scrape batches.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/jobtailor"
)

// Ensure BatchWriter implements jobtailor.BatchWriter at compile time.
var _ jobtailor.BatchWriter = (*BatchWriter)(nil)

// BatchWriter writes a batch as a JSON artifact with atomic update
// semantics. The batch is written to a temporary file in the same
// directory, then moved into place, so a crash mid-write never leaves a
// truncated artifact behind.
type BatchWriter struct {
	path string
}

// NewBatchWriter creates a BatchWriter targeting the given file path.
func NewBatchWriter(path string) *BatchWriter {
	return &BatchWriter{path: path}
}

// Path returns the target file path.
func (w *BatchWriter) Path() string {
	return w.path
}

// WriteBatch serializes the batch to the target path.
func (w *BatchWriter) WriteBatch(ctx context.Context, batch *jobtailor.Batch) error {
	if err := batch.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(batch, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp := w.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}

	if err := os.Rename(tmp, w.path); err != nil {
		os.Remove(tmp)
		return err
	}

	return nil
}

// ReadBatch loads a batch artifact from disk.
func ReadBatch(path string) (*jobtailor.Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, jobtailor.Errorf(jobtailor.ENOTFOUND, "batch file %q not found", path)
		}
		return nil, err
	}

	var batch jobtailor.Batch
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, jobtailor.Errorf(jobtailor.EINVALID, "invalid batch file %q: %v", path, err)
	}

	return &batch, nil
}
