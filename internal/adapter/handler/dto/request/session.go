package request

type CreateSessionRequest struct {
	LayoutID string `json:"layout_id" binding:"required,max=64"`
}

type UpdateStyleRequest struct {
	Background   *string  `json:"background" binding:"omitempty,max=8388608"`
	Shape        *string  `json:"shape" binding:"omitempty,oneof=rectangle rounded circle heart"`
	TextColor    *string  `json:"text_color" binding:"omitempty,max=64"`
	Caption      *string  `json:"caption" binding:"omitempty,max=40"`
	PreviewWidth *float64 `json:"preview_width" binding:"omitempty,min=100,max=2000"`
}
