package request

type AddStickerRequest struct {
	Src string `json:"src" binding:"required,max=8388608"`
}

type UpdateStickerRequest struct {
	X        *float64 `json:"x"`
	Y        *float64 `json:"y"`
	Scale    string   `json:"scale" binding:"omitempty,oneof=up down"`
	Rotate   bool     `json:"rotate"`
	Rotation *float64 `json:"rotation"`
}
