package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrProjectNotFound is returned when a project id does not exist.
	ErrProjectNotFound = errors.New("Project not found")
	// ErrNoFileUploaded is returned when an upload request carries no file.
	ErrNoFileUploaded = errors.New("No file uploaded")
	// ErrUploadFailed is returned when the image host rejects an upload.
	ErrUploadFailed = errors.New("Upload failed")
)

// MapError returns the HTTP status and client-safe message for a domain
// error. Unknown errors collapse to a generic 500; the real error is
// logged server-side only.
func MapError(err error) (int, string) {
	switch {
	case errors.Is(err, ErrProjectNotFound):
		return http.StatusNotFound, ErrProjectNotFound.Error()
	case errors.Is(err, ErrNoFileUploaded):
		return http.StatusBadRequest, ErrNoFileUploaded.Error()
	case errors.Is(err, ErrUploadFailed):
		return http.StatusInternalServerError, ErrUploadFailed.Error()
	default:
		return http.StatusInternalServerError, "Server Error"
	}
}
