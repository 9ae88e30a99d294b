package api

import (
	"mime/multipart"
	"net/http"

	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// formUpload lifts an optional file part into an upload. A missing part is
// not an error; the caller decides whether the file is required.
func formUpload(c *gin.Context, field string) (*commands.Upload, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errs.Is(err, http.ErrMissingFile) || errs.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	return openUpload(header)
}

// formUploads collects every file sent under a repeated field name.
func formUploads(c *gin.Context, field string) ([]commands.Upload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errs.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	headers := form.File[field]
	uploads := make([]commands.Upload, 0, len(headers))
	for _, header := range headers {
		upload, err := openUpload(header)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, *upload)
	}
	return uploads, nil
}

// Opened parts are reclaimed with the rest of the multipart form when the
// request finishes.
func openUpload(header *multipart.FileHeader) (*commands.Upload, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	return &commands.Upload{File: file, Filename: header.Filename}, nil
}
