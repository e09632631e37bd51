package service

import (
	"context"
	"log"

	apperrors "skarchitects/internal/errors"
	"skarchitects/internal/upload"
)

// UploadService relays image uploads to the external image host.
type UploadService interface {
	Upload(ctx context.Context, data []byte, mimeType string) (url string, err error)
}

type uploadService struct {
	uploader upload.Uploader
}

// NewUploadService creates a new upload service. A nil uploader means
// the image host is not configured; uploads then fail cleanly.
func NewUploadService(uploader upload.Uploader) UploadService {
	return &uploadService{uploader: uploader}
}

// Upload forwards the image bytes and returns the hosted URL. No provider
// call is made for an empty payload. Provider failures are logged
// server-side and collapse to a generic error for the client; a hosted
// image whose project save later fails is orphaned (no cleanup).
func (s *uploadService) Upload(ctx context.Context, data []byte, mimeType string) (string, error) {
	if len(data) == 0 {
		return "", apperrors.ErrNoFileUploaded
	}
	if s.uploader == nil {
		log.Println("upload requested but image host is not configured")
		return "", apperrors.ErrUploadFailed
	}

	url, err := s.uploader.Upload(ctx, data, mimeType)
	if err != nil {
		log.Printf("image upload: %v", err)
		return "", apperrors.ErrUploadFailed
	}
	return url, nil
}
