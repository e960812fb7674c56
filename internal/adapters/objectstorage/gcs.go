package objectstorage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"os"

	portsrepo "github.com/SscSPs/sky_delivery_backend/internal/core/ports/repositories"
	"github.com/SscSPs/sky_delivery_backend/internal/platform/config"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/storage/v1"
)

// GCSStore uploads objects to a Google Cloud Storage bucket.
type GCSStore struct {
	objects  *storage.ObjectsService
	bucket   string
	endpoint string
}

var _ portsrepo.ObjectStore = (*GCSStore)(nil)

// NewGCSStore creates a store for cfg.Bucket. Credentials come from
// cfg.CredentialsFile when set, otherwise from application default credentials.
// Extra client options are appended last.
func NewGCSStore(ctx context.Context, cfg config.StorageConfig, extra ...option.ClientOption) (*GCSStore, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage bucket cannot be empty")
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		data, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read storage credentials: %w", err)
		}
		creds, err := google.CredentialsFromJSON(ctx, data, storage.DevstorageReadWriteScope)
		if err != nil {
			return nil, fmt.Errorf("failed to parse storage credentials: %w", err)
		}
		opts = append(opts, option.WithCredentials(creds))
	}
	opts = append(opts, extra...)

	svc, err := storage.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &GCSStore{objects: svc.Objects, bucket: cfg.Bucket, endpoint: cfg.Endpoint}, nil
}

// PutObject uploads data and returns https://{bucket}.{endpoint}/{objectName}.
func (s *GCSStore) PutObject(ctx context.Context, objectName, contentType string, data []byte) (string, error) {
	obj := &storage.Object{Name: objectName, ContentType: contentType}
	_, err := s.objects.Insert(s.bucket, obj).
		Media(bytes.NewReader(data), googleapi.ContentType(contentType)).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to upload object %s to bucket %s: %w", objectName, s.bucket, err)
	}
	return ObjectURL(s.bucket, s.endpoint, objectName), nil
}

// ObjectURL builds the virtual-hosted URL of an object.
func ObjectURL(bucket, endpoint, objectName string) string {
	u := url.URL{Scheme: "https", Host: bucket + "." + endpoint, Path: "/" + objectName}
	return u.String()
}
