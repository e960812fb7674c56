package services

import "context"

// UploadSvc stores files uploaded through the admin console.
type UploadSvc interface {
	// UploadImage stores an image and returns the URL it is reachable at.
	UploadImage(ctx context.Context, originalFilename string, data []byte) (string, error)
}
