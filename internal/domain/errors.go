package domain

import "errors"

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionFull         = errors.New("session already has all photos")
	ErrLayoutNotFound      = errors.New("layout not found")
	ErrPhotoNotFound       = errors.New("photo not found")
	ErrStickerNotFound     = errors.New("sticker not found")
	ErrNotEnoughPhotos     = errors.New("not enough photos for layout")
	ErrAssetLoad           = errors.New("asset could not be loaded")
	ErrAssetNotAllowed     = errors.New("asset reference not allowed")
	ErrRenderFailed        = errors.New("strip could not be rendered")
	ErrInvalidFilter       = errors.New("invalid filter")
	ErrInvalidBackground   = errors.New("invalid background")
	ErrInvalidColor        = errors.New("invalid color")
	ErrInvalidShape        = errors.New("invalid photo shape")
	ErrInvalidImage        = errors.New("invalid image")
	ErrInvalidCaption      = errors.New("invalid caption")
	ErrInvalidPreviewWidth = errors.New("invalid preview width")
	ErrCameraUnavailable   = errors.New("camera unavailable")
	ErrCameraClosed        = errors.New("camera stream is not open")
	ErrNoFrame             = errors.New("no camera frame available")
	ErrCountdownActive     = errors.New("countdown already running")
	ErrInvalidCountdown    = errors.New("invalid countdown duration")
	ErrTokenInvalid        = errors.New("token invalid")
	ErrExportNotFound      = errors.New("export not found")
)
