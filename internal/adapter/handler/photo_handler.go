package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/photostrip-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/photostrip-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/photostrip-backend/internal/pkg/httputil"
	"github.com/marcos-nsantos/photostrip-backend/internal/usecase/session"
)

type PhotoHandler struct {
	photoSvc      PhotoService
	maxUploadSize int64
}

func NewPhotoHandler(photoSvc PhotoService, maxUploadSize int64) *PhotoHandler {
	return &PhotoHandler{
		photoSvc:      photoSvc,
		maxUploadSize: maxUploadSize,
	}
}

// Upload godoc
//
//	@Summary		Add a photo from a file
//	@Tags			photos
//	@Accept			multipart/form-data
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id			path		string	true	"Session ID"
//	@Param			file		formData	file	true	"JPEG, PNG or WebP image"
//	@Param			filter		formData	string	false	"Preset name or CSS filter"
//	@Param			mirrored	formData	bool	false	"Mirror when drawn"
//	@Success		201			{object}	response.PhotoResponse
//	@Failure		409			{object}	httputil.ErrorResponse	"Session already full"
//	@Router			/sessions/{id}/photos [post]
func (h *PhotoHandler) Upload(c *gin.Context) {
	sessionID, ok := uuidParam(c, "id", "session")
	if !ok {
		return
	}

	file, contentType, ok := formImage(c, h.maxUploadSize)
	if !ok {
		return
	}
	defer file.Close()

	var form request.UploadPhotoForm
	if err := c.ShouldBind(&form); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	photo, err := h.photoSvc.UploadPhoto(c.Request.Context(), session.UploadPhotoInput{
		SessionID:   sessionID,
		File:        file,
		ContentType: contentType,
		Filter:      form.Filter,
		Mirrored:    form.Mirrored,
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.Created(c, response.PhotoFromEntity(photo, h.photoSvc.ObjectURL))
}

func (h *PhotoHandler) Update(c *gin.Context) {
	sessionID, ok := uuidParam(c, "id", "session")
	if !ok {
		return
	}
	photoID, ok := uuidParam(c, "photo_id", "photo")
	if !ok {
		return
	}

	var req request.UpdatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	photo, err := h.photoSvc.UpdatePhoto(c.Request.Context(), sessionID, photoID, session.UpdatePhotoInput{
		Mirrored:     req.Mirrored,
		ToggleMirror: req.ToggleMirror,
		Filter:       req.Filter,
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.PhotoFromEntity(photo, h.photoSvc.ObjectURL))
}

func (h *PhotoHandler) Delete(c *gin.Context) {
	sessionID, ok := uuidParam(c, "id", "session")
	if !ok {
		return
	}
	photoID, ok := uuidParam(c, "photo_id", "photo")
	if !ok {
		return
	}

	if err := h.photoSvc.DeletePhoto(c.Request.Context(), sessionID, photoID); err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.NoContent(c)
}
