package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/marcos-nsantos/photostrip-backend/internal/domain"
)

type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func NotFound(resource string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		StatusCode: http.StatusNotFound,
	}
}

func BadRequest(message string) *AppError {
	return &AppError{
		Code:       "BAD_REQUEST",
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func Internal(err error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "an internal error occurred",
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

type mapping struct {
	target error
	code   string
	status int
}

// domainErrors is checked in order; the first match wins.
var domainErrors = []mapping{
	{domain.ErrSessionNotFound, "SESSION_NOT_FOUND", http.StatusNotFound},
	{domain.ErrLayoutNotFound, "LAYOUT_NOT_FOUND", http.StatusNotFound},
	{domain.ErrPhotoNotFound, "PHOTO_NOT_FOUND", http.StatusNotFound},
	{domain.ErrStickerNotFound, "STICKER_NOT_FOUND", http.StatusNotFound},
	{domain.ErrExportNotFound, "EXPORT_NOT_FOUND", http.StatusNotFound},
	{domain.ErrSessionFull, "SESSION_FULL", http.StatusConflict},
	{domain.ErrNotEnoughPhotos, "NOT_ENOUGH_PHOTOS", http.StatusUnprocessableEntity},
	{domain.ErrCountdownActive, "COUNTDOWN_ACTIVE", http.StatusConflict},
	{domain.ErrInvalidCountdown, "INVALID_COUNTDOWN", http.StatusBadRequest},
	{domain.ErrInvalidFilter, "INVALID_FILTER", http.StatusBadRequest},
	{domain.ErrInvalidBackground, "INVALID_BACKGROUND", http.StatusBadRequest},
	{domain.ErrInvalidColor, "INVALID_COLOR", http.StatusBadRequest},
	{domain.ErrInvalidShape, "INVALID_SHAPE", http.StatusBadRequest},
	{domain.ErrInvalidImage, "INVALID_IMAGE", http.StatusBadRequest},
	{domain.ErrInvalidCaption, "INVALID_CAPTION", http.StatusBadRequest},
	{domain.ErrInvalidPreviewWidth, "INVALID_PREVIEW_WIDTH", http.StatusBadRequest},
	{domain.ErrAssetNotAllowed, "ASSET_NOT_ALLOWED", http.StatusForbidden},
	{domain.ErrAssetLoad, "ASSET_LOAD_FAILED", http.StatusBadGateway},
	{domain.ErrCameraUnavailable, "CAMERA_UNAVAILABLE", http.StatusServiceUnavailable},
	{domain.ErrCameraClosed, "CAMERA_CLOSED", http.StatusConflict},
	{domain.ErrNoFrame, "NO_FRAME", http.StatusServiceUnavailable},
	{domain.ErrTokenInvalid, "INVALID_TOKEN", http.StatusUnauthorized},
}

// FromDomain translates a domain sentinel, however deeply wrapped, into an
// AppError. Unknown errors become internal errors whose message hides the
// cause.
func FromDomain(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	for _, m := range domainErrors {
		if errors.Is(err, m.target) {
			return &AppError{
				Code:       m.code,
				Message:    m.target.Error(),
				StatusCode: m.status,
				Err:        err,
			}
		}
	}

	return Internal(err)
}
