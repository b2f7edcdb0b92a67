package object

import (
	"context"
	"io"
)

// ObjectStore defines the contract for saving and retrieving uploaded files.
// Save persists the reader under the given name, overwriting any existing
// object at that exact name (last write wins).
type ObjectStore interface {
	Save(ctx context.Context, fileName string, r io.Reader) (storedName string, sizeBytes int64, mimeType string, err error)
	Open(ctx context.Context, storedName string) (io.ReadCloser, error)
}
