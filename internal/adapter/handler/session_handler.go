package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/photostrip-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/photostrip-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/photostrip-backend/internal/pkg/httputil"
	"github.com/marcos-nsantos/photostrip-backend/internal/usecase/session"
)

type SessionHandler struct {
	sessionSvc    SessionService
	maxUploadSize int64
}

func NewSessionHandler(sessionSvc SessionService, maxUploadSize int64) *SessionHandler {
	return &SessionHandler{
		sessionSvc:    sessionSvc,
		maxUploadSize: maxUploadSize,
	}
}

// Create godoc
//
//	@Summary		Start a booth session
//	@Description	Creates a session for a layout and returns the bearer token that authorizes every later call on it
//	@Tags			sessions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.CreateSessionRequest	true	"Layout choice"
//	@Success		201		{object}	response.CreateSessionResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Failure		404		{object}	httputil.ErrorResponse	"Unknown layout"
//	@Router			/sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	var req request.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	result, err := h.sessionSvc.Create(c.Request.Context(), req.LayoutID)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.Created(c, response.CreateSessionResponse{
		Session:   response.SessionFromEntity(result.Session, h.sessionSvc.ObjectURL),
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
	})
}

// Get godoc
//
//	@Summary		Get a session
//	@Tags			sessions
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Session ID"
//	@Success		200	{object}	response.SessionResponse
//	@Failure		404	{object}	httputil.ErrorResponse
//	@Router			/sessions/{id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id", "session")
	if !ok {
		return
	}

	s, err := h.sessionSvc.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.SessionFromEntity(s, h.sessionSvc.ObjectURL))
}

// Geometry godoc
//
//	@Summary		Strip geometry in preview pixels
//	@Tags			sessions
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Session ID"
//	@Success		200	{object}	render.Geometry
//	@Router			/sessions/{id}/geometry [get]
func (h *SessionHandler) Geometry(c *gin.Context) {
	id, ok := uuidParam(c, "id", "session")
	if !ok {
		return
	}

	g, err := h.sessionSvc.Geometry(c.Request.Context(), id)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, g)
}

// UpdateStyle godoc
//
//	@Summary		Change background, photo shape, caption or text color
//	@Tags			sessions
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"Session ID"
//	@Param			request	body		request.UpdateStyleRequest	true	"Fields to change"
//	@Success		200		{object}	response.SessionResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Failure		403		{object}	httputil.ErrorResponse	"Background image not allowed"
//	@Router			/sessions/{id}/style [put]
func (h *SessionHandler) UpdateStyle(c *gin.Context) {
	id, ok := uuidParam(c, "id", "session")
	if !ok {
		return
	}

	var req request.UpdateStyleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	s, err := h.sessionSvc.UpdateStyle(c.Request.Context(), id, session.StyleInput{
		Background:   req.Background,
		Shape:        req.Shape,
		TextColor:    req.TextColor,
		Caption:      req.Caption,
		PreviewWidth: req.PreviewWidth,
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.SessionFromEntity(s, h.sessionSvc.ObjectURL))
}

// UploadBackground godoc
//
//	@Summary		Upload a custom background image
//	@Tags			sessions
//	@Accept			multipart/form-data
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string	true	"Session ID"
//	@Param			file	formData	file	true	"JPEG, PNG or WebP image"
//	@Success		200		{object}	response.SessionResponse
//	@Failure		413		{object}	httputil.ErrorResponse
//	@Failure		415		{object}	httputil.ErrorResponse
//	@Router			/sessions/{id}/background [post]
func (h *SessionHandler) UploadBackground(c *gin.Context) {
	id, ok := uuidParam(c, "id", "session")
	if !ok {
		return
	}

	file, contentType, ok := formImage(c, h.maxUploadSize)
	if !ok {
		return
	}
	defer file.Close()

	s, err := h.sessionSvc.UploadBackground(c.Request.Context(), session.UploadBackgroundInput{
		SessionID:   id,
		File:        file,
		ContentType: contentType,
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.SessionFromEntity(s, h.sessionSvc.ObjectURL))
}

// Reset godoc
//
//	@Summary		Clear photos and stickers
//	@Tags			sessions
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Session ID"
//	@Success		200	{object}	response.SessionResponse
//	@Router			/sessions/{id}/reset [post]
func (h *SessionHandler) Reset(c *gin.Context) {
	id, ok := uuidParam(c, "id", "session")
	if !ok {
		return
	}

	s, err := h.sessionSvc.Reset(c.Request.Context(), id)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.SessionFromEntity(s, h.sessionSvc.ObjectURL))
}
