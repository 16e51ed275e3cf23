package handler

import (
	"mime/multipart"

	"github.com/labstack/echo/v4"

	"github.com/mappedev/persondir/internal/schema"
	"github.com/mappedev/persondir/internal/server"
	"github.com/mappedev/persondir/internal/validation"
)

// PostImageRequest carries one required uploaded file from a multipart
// form. A missing file, or a non-multipart request, leaves Image nil and
// fails the required constraint.
type PostImageRequest struct {
	Image *multipart.FileHeader `file:"image" validate:"required"`
}

func (r *PostImageRequest) Validate() error {
	return validation.Struct(r)
}

// FileHandler serves the image upload operation.
type FileHandler struct {
	Handler
}

// NewFileHandler constructs a FileHandler.
func NewFileHandler(s *server.Server) *FileHandler {
	return &FileHandler{
		Handler: NewHandler(s),
	}
}

// PostImage reports metadata about the uploaded file: original filename,
// declared content type, and size in kilobytes rounded to two decimals.
// The file content itself is never stored.
func (h *FileHandler) PostImage(c echo.Context, req *PostImageRequest) (schema.ImageOut, error) {
	return schema.ImageOutFrom(req.Image), nil
}
