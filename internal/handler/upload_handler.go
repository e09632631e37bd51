package handler

import (
	"io"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "skarchitects/internal/errors"
	"skarchitects/internal/response"
	"skarchitects/internal/service"
)

// UploadHandler relays multipart image uploads to the image host.
type UploadHandler struct {
	uploadService service.UploadService
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// UploadResponse carries the hosted image URL.
type UploadResponse struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"imageUrl"`
}

// Upload godoc
// @Summary Upload an image and get its hosted URL
// @Tags upload
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image file"
// @Success 200 {object} UploadResponse
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /upload [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error(apperrors.ErrNoFileUploaded.Error()))
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("open upload: %v", err)
		return c.JSON(http.StatusInternalServerError, response.Error(apperrors.ErrUploadFailed.Error()))
	}
	defer file.Close()

	// Uploads are buffered in memory before the relay, matching the
	// multipart parser's behavior for small files. No explicit size cap.
	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("read upload: %v", err)
		return c.JSON(http.StatusInternalServerError, response.Error(apperrors.ErrUploadFailed.Error()))
	}

	url, err := h.uploadService.Upload(c.Request().Context(), data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		status, msg := apperrors.MapError(err)
		return c.JSON(status, response.Error(msg))
	}

	return c.JSON(http.StatusOK, UploadResponse{Success: true, ImageURL: url})
}
