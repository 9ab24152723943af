package storage

import (
	"context"
	"io"
)

// BlobStorage is the gateway to the object store. Upload returns the public
// retrieval URL for the stored object.
type BlobStorage interface {
	Upload(ctx context.Context, key string, reader io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}
