package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/photostrip-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/photostrip-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/photostrip-backend/internal/pkg/httputil"
	"github.com/marcos-nsantos/photostrip-backend/internal/usecase/session"
)

type StickerHandler struct {
	stickerSvc StickerService
}

func NewStickerHandler(stickerSvc StickerService) *StickerHandler {
	return &StickerHandler{stickerSvc: stickerSvc}
}

func (h *StickerHandler) Add(c *gin.Context) {
	sessionID, ok := uuidParam(c, "id", "session")
	if !ok {
		return
	}

	var req request.AddStickerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	st, err := h.stickerSvc.AddSticker(c.Request.Context(), sessionID, req.Src)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.Created(c, response.StickerFromEntity(st, h.stickerSvc.ObjectURL))
}

// Update applies a drag, a scale step or a rotation to one sticker.
func (h *StickerHandler) Update(c *gin.Context) {
	sessionID, ok := uuidParam(c, "id", "session")
	if !ok {
		return
	}
	stickerID, ok := uuidParam(c, "sticker_id", "sticker")
	if !ok {
		return
	}

	var req request.UpdateStickerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	st, err := h.stickerSvc.UpdateSticker(c.Request.Context(), sessionID, stickerID, session.UpdateStickerInput{
		X:        req.X,
		Y:        req.Y,
		Scale:    session.ScaleDirection(req.Scale),
		Rotate:   req.Rotate,
		Rotation: req.Rotation,
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.StickerFromEntity(st, h.stickerSvc.ObjectURL))
}

func (h *StickerHandler) Delete(c *gin.Context) {
	sessionID, ok := uuidParam(c, "id", "session")
	if !ok {
		return
	}
	stickerID, ok := uuidParam(c, "sticker_id", "sticker")
	if !ok {
		return
	}

	if err := h.stickerSvc.DeleteSticker(c.Request.Context(), sessionID, stickerID); err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.NoContent(c)
}
