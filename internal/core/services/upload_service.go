package services

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/SscSPs/sky_delivery_backend/internal/apperrors"
	portsrepo "github.com/SscSPs/sky_delivery_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sky_delivery_backend/internal/core/ports/services"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

type uploadService struct {
	BaseService
	store portsrepo.ObjectStore
}

// NewUploadService creates the upload service backed by store.
func NewUploadService(store portsrepo.ObjectStore) portssvc.UploadSvc {
	return &uploadService{store: store}
}

// UploadImage sniffs the content, rejects anything that is not an image and
// stores it under a random name keeping the original extension.
func (s *uploadService) UploadImage(ctx context.Context, originalFilename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty file", apperrors.ErrValidation)
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", fmt.Errorf("%w: %s is not an image", apperrors.ErrValidation, mtype.String())
	}

	ext := strings.ToLower(filepath.Ext(originalFilename))
	if ext == "" {
		ext = mtype.Extension()
	}
	objectName := uuid.NewString() + ext

	url, err := s.store.PutObject(ctx, objectName, mtype.String(), data)
	if err != nil {
		s.LogError(ctx, err, "Failed to upload image", slog.String("object", objectName))
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	s.LogInfo(ctx, "Image uploaded", slog.String("url", url))
	return url, nil
}
