package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/photostrip-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/photostrip-backend/internal/pkg/httputil"
)

type CatalogueHandler struct {
	catalogueSvc CatalogueService
}

func NewCatalogueHandler(catalogueSvc CatalogueService) *CatalogueHandler {
	return &CatalogueHandler{catalogueSvc: catalogueSvc}
}

// Layouts godoc
//
//	@Summary		List strip layouts
//	@Tags			catalogue
//	@Produce		json
//	@Success		200	{array}		response.LayoutResponse
//	@Router			/layouts [get]
func (h *CatalogueHandler) Layouts(c *gin.Context) {
	layouts, err := h.catalogueSvc.Layouts(c.Request.Context())
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.LayoutsFromEntities(layouts))
}

// Stickers godoc
//
//	@Summary		List sticker assets
//	@Tags			catalogue
//	@Produce		json
//	@Success		200	{array}		response.StickerAssetResponse
//	@Router			/stickers [get]
func (h *CatalogueHandler) Stickers(c *gin.Context) {
	stickers, err := h.catalogueSvc.Stickers(c.Request.Context())
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.StickerAssetsFromEntities(stickers))
}

// Backgrounds godoc
//
//	@Summary		List background colors and textures
//	@Tags			catalogue
//	@Produce		json
//	@Success		200	{object}	response.BackgroundsResponse
//	@Router			/backgrounds [get]
func (h *CatalogueHandler) Backgrounds(c *gin.Context) {
	textures, err := h.catalogueSvc.Backgrounds(c.Request.Context())
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.BackgroundsFromEntities(h.catalogueSvc.BackgroundColors(), textures))
}

// Filters godoc
//
//	@Summary		List filter presets
//	@Tags			catalogue
//	@Produce		json
//	@Success		200	{array}		response.FilterPresetResponse
//	@Router			/filters [get]
func (h *CatalogueHandler) Filters(c *gin.Context) {
	httputil.OK(c, response.FilterPresetsToResponse(h.catalogueSvc.Filters()))
}
