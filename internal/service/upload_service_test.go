package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "skarchitects/internal/errors"
)

// MockUploader is a mock implementation of upload.Uploader.
type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, data []byte, mimeType string) (string, error) {
	args := m.Called(ctx, data, mimeType)
	return args.String(0), args.Error(1)
}

func TestUploadService_Upload(t *testing.T) {
	mockUploader := new(MockUploader)
	mockUploader.On("Upload", mock.Anything, []byte("fake-png"), "image/png").
		Return("https://res.cloudinary.com/demo/image/upload/v1/sk_architects_portfolio/x.png", nil)

	service := NewUploadService(mockUploader)
	url, err := service.Upload(context.Background(), []byte("fake-png"), "image/png")

	assert.NoError(t, err)
	assert.Contains(t, url, "https://")
	mockUploader.AssertExpectations(t)
}

func TestUploadService_EmptyPayloadSkipsProvider(t *testing.T) {
	mockUploader := new(MockUploader)

	service := NewUploadService(mockUploader)
	url, err := service.Upload(context.Background(), nil, "image/png")

	assert.Empty(t, url)
	assert.Equal(t, apperrors.ErrNoFileUploaded, err)
	mockUploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadService_ProviderFailure(t *testing.T) {
	mockUploader := new(MockUploader)
	mockUploader.On("Upload", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("provider exploded"))

	service := NewUploadService(mockUploader)
	url, err := service.Upload(context.Background(), []byte("fake-png"), "image/png")

	assert.Empty(t, url)
	// provider detail is logged, not leaked
	assert.Equal(t, apperrors.ErrUploadFailed, err)
	mockUploader.AssertExpectations(t)
}

func TestUploadService_NotConfigured(t *testing.T) {
	service := NewUploadService(nil)
	_, err := service.Upload(context.Background(), []byte("fake-png"), "image/png")
	assert.Equal(t, apperrors.ErrUploadFailed, err)
}
