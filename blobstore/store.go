// Package blobstore abstracts where pre-trained artifacts live.
//
// The summarization oracle loads its classifier and vectorizer
// artifacts exactly once at startup; a BlobStore decouples that load
// from the storage backend (local disk, in-memory fixtures, MinIO,
// S3).
package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// BlobStore is an abstraction for accessing immutable artifact blobs.
type BlobStore interface {
	// Open opens a blob for reading. The caller must close the
	// returned reader.
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// Put writes a blob atomically, replacing any existing blob with
	// the same name.
	Put(ctx context.Context, name string, data []byte) error
}

// ReadAll opens the named blob and reads it fully.
func ReadAll(ctx context.Context, s BlobStore, name string) ([]byte, error) {
	r, err := s.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
