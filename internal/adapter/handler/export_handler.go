package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/photostrip-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/photostrip-backend/internal/domain"
	"github.com/marcos-nsantos/photostrip-backend/internal/pkg/httputil"
)

type ExportHandler struct {
	exportSvc ExportService
}

func NewExportHandler(exportSvc ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// Export godoc
//
//	@Summary		Render the strip and store it
//	@Tags			exports
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Session ID"
//	@Success		201	{object}	response.ExportResponse
//	@Failure		422	{object}	httputil.ErrorResponse	"Not every slot has a photo"
//	@Failure		502	{object}	httputil.ErrorResponse	"An image could not be loaded"
//	@Router			/sessions/{id}/export [post]
func (h *ExportHandler) Export(c *gin.Context) {
	sessionID, ok := uuidParam(c, "id", "session")
	if !ok {
		return
	}

	result, err := h.exportSvc.Export(c.Request.Context(), sessionID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	httputil.Created(c, response.ExportResultToResponse(result))
}

// Download godoc
//
//	@Summary		Render the strip and download it as PNG
//	@Tags			exports
//	@Produce		png
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Session ID"
//	@Success		200	{file}	binary
//	@Router			/sessions/{id}/export/download [get]
func (h *ExportHandler) Download(c *gin.Context) {
	sessionID, ok := uuidParam(c, "id", "session")
	if !ok {
		return
	}

	file, err := h.exportSvc.Download(c.Request.Context(), sessionID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	httputil.Attachment(c, file.Filename, "image/png", file.Data)
}

func (h *ExportHandler) Preview(c *gin.Context) {
	sessionID, ok := uuidParam(c, "id", "session")
	if !ok {
		return
	}

	file, err := h.exportSvc.Preview(c.Request.Context(), sessionID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	httputil.Inline(c, "image/png", file.Data)
}

func (h *ExportHandler) List(c *gin.Context) {
	sessionID, ok := uuidParam(c, "id", "session")
	if !ok {
		return
	}

	exports, err := h.exportSvc.List(c.Request.Context(), sessionID)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.ExportsFromEntities(exports))
}

func (h *ExportHandler) Get(c *gin.Context) {
	sessionID, ok := uuidParam(c, "id", "session")
	if !ok {
		return
	}
	exportID, ok := uuidParam(c, "export_id", "export")
	if !ok {
		return
	}

	result, err := h.exportSvc.Get(c.Request.Context(), sessionID, exportID)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.ExportResultToResponse(result))
}

func (h *ExportHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotEnoughPhotos):
		httputil.ErrorWithCode(c, http.StatusUnprocessableEntity, "NOT_ENOUGH_PHOTOS", "every slot needs a photo before exporting")
	case errors.Is(err, domain.ErrAssetLoad):
		httputil.ErrorWithCode(c, http.StatusBadGateway, "ASSET_LOAD_FAILED", "an image of the strip could not be loaded")
	case errors.Is(err, domain.ErrRenderFailed):
		httputil.ErrorWithCode(c, http.StatusInternalServerError, "RENDER_FAILED", "the strip could not be rendered")
	default:
		httputil.HandleError(c, err)
	}
}
