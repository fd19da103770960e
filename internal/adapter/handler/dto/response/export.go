package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/photostrip-backend/internal/domain/entity"
	"github.com/marcos-nsantos/photostrip-backend/internal/usecase/export"
)

type ExportResponse struct {
	ID        uuid.UUID `json:"id"`
	Filename  string    `json:"filename"`
	URL       string    `json:"url"`
	SignedURL string    `json:"signed_url,omitempty"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

func ExportFromEntity(e *entity.Export) ExportResponse {
	return ExportResponse{
		ID:        e.ID,
		Filename:  e.Filename,
		URL:       e.URL,
		Width:     e.Width,
		Height:    e.Height,
		Size:      e.Size,
		CreatedAt: e.CreatedAt,
	}
}

func ExportsFromEntities(exports []entity.Export) []ExportResponse {
	resp := make([]ExportResponse, len(exports))
	for i := range exports {
		resp[i] = ExportFromEntity(&exports[i])
	}
	return resp
}

func ExportResultToResponse(result *export.Result) ExportResponse {
	resp := ExportFromEntity(result.Export)
	resp.SignedURL = result.SignedURL
	return resp
}
