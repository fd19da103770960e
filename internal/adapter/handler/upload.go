package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/photostrip-backend/internal/infrastructure/storage"
	"github.com/marcos-nsantos/photostrip-backend/internal/pkg/httputil"
)

const DefaultMaxUploadSize = 10 << 20 // 10MB

// formImage opens the "file" part of a multipart upload after checking its
// size and type. The caller closes the file.
func formImage(c *gin.Context, maxSize int64) (multipart.File, string, bool) {
	if maxSize <= 0 {
		maxSize = DefaultMaxUploadSize
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httputil.ErrorWithCode(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds the upload limit")
			return nil, "", false
		}
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_FILE", "file is required")
		return nil, "", false
	}

	contentType := strings.ToLower(header.Header.Get("Content-Type"))
	if !storage.AllowedContentTypes.Contains(contentType) {
		file.Close()
		httputil.ErrorWithCode(c, http.StatusUnsupportedMediaType, "INVALID_TYPE", "only jpeg, png and webp images are allowed")
		return nil, "", false
	}

	return file, contentType, true
}
