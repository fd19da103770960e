package response

import (
	"github.com/marcos-nsantos/photostrip-backend/internal/domain/entity"
	"github.com/marcos-nsantos/photostrip-backend/internal/domain/valueobject"
)

type LayoutResponse struct {
	ID           string  `json:"id"`
	Type         string  `json:"type"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	PhotoCount   int     `json:"photo_count"`
	AspectRatio  float64 `json:"aspect_ratio"`
	Columns      int     `json:"columns"`
	Rows         int     `json:"rows"`
	PreviewImage string  `json:"preview_image,omitempty"`
}

type StickerAssetResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Src      string `json:"src"`
	Category string `json:"category,omitempty"`
}

type BackgroundTextureResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Src  string `json:"src"`
}

type BackgroundsResponse struct {
	Colors   []string                    `json:"colors"`
	Textures []BackgroundTextureResponse `json:"textures"`
}

type FilterPresetResponse struct {
	Name   string `json:"name"`
	Label  string `json:"label"`
	Filter string `json:"filter"`
}

func LayoutFromEntity(l *entity.Layout) LayoutResponse {
	cols, rows := l.Grid()
	return LayoutResponse{
		ID:           l.ID,
		Type:         string(l.Type),
		Title:        l.Title,
		Description:  l.Description,
		PhotoCount:   l.PhotoCount,
		AspectRatio:  l.AspectRatio,
		Columns:      cols,
		Rows:         rows,
		PreviewImage: l.PreviewImage,
	}
}

func LayoutsFromEntities(layouts []entity.Layout) []LayoutResponse {
	resp := make([]LayoutResponse, len(layouts))
	for i := range layouts {
		resp[i] = LayoutFromEntity(&layouts[i])
	}
	return resp
}

func StickerAssetsFromEntities(stickers []entity.StickerAsset) []StickerAssetResponse {
	resp := make([]StickerAssetResponse, len(stickers))
	for i, s := range stickers {
		resp[i] = StickerAssetResponse{ID: s.ID, Name: s.Name, Src: s.Src, Category: s.Category}
	}
	return resp
}

func BackgroundsFromEntities(colors []string, textures []entity.BackgroundTexture) BackgroundsResponse {
	resp := BackgroundsResponse{
		Colors:   colors,
		Textures: make([]BackgroundTextureResponse, len(textures)),
	}
	for i, t := range textures {
		resp.Textures[i] = BackgroundTextureResponse{ID: t.ID, Name: t.Name, Src: t.Src}
	}
	return resp
}

func FilterPresetsToResponse(presets []valueobject.FilterPreset) []FilterPresetResponse {
	resp := make([]FilterPresetResponse, len(presets))
	for i, p := range presets {
		resp[i] = FilterPresetResponse{Name: p.Name, Label: p.Label, Filter: p.Filter.String()}
	}
	return resp
}
