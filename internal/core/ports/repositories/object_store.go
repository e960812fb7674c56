package repositories

import "context"

// ObjectStore persists uploaded files in an object storage bucket.
type ObjectStore interface {
	// PutObject stores data under objectName and returns its public URL.
	PutObject(ctx context.Context, objectName, contentType string, data []byte) (string, error)
}
