package request

// UploadPhotoForm carries the non-file fields of a photo upload.
type UploadPhotoForm struct {
	Filter   string `form:"filter" binding:"omitempty,max=256"`
	Mirrored bool   `form:"mirrored"`
}

type UpdatePhotoRequest struct {
	Mirrored     *bool   `json:"mirrored"`
	ToggleMirror bool    `json:"toggle_mirror"`
	Filter       *string `json:"filter" binding:"omitempty,max=256"`
}
