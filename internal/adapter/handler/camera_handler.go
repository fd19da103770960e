package handler

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photostrip-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/photostrip-backend/internal/infrastructure/camera"
	"github.com/marcos-nsantos/photostrip-backend/internal/infrastructure/observability"
	"github.com/marcos-nsantos/photostrip-backend/internal/pkg/apperror"
	"github.com/marcos-nsantos/photostrip-backend/internal/pkg/httputil"
	"github.com/marcos-nsantos/photostrip-backend/internal/usecase/capture"
)

type CameraConfig struct {
	Capture        capture.Config
	Scheduler      capture.Scheduler
	OpenTimeout    time.Duration
	AllowedOrigins []string
}

// CameraHandler runs one capture pipeline per WebSocket connection. The
// browser streams its camera; countdown ticks and stored photos are pushed
// back as events.
type CameraHandler struct {
	sessionSvc SessionService
	photoSvc   PhotoService
	upgrader   websocket.Upgrader
	cfg        CameraConfig
	logger     *zap.Logger
}

func NewCameraHandler(sessionSvc SessionService, photoSvc PhotoService, cfg CameraConfig, logger *zap.Logger) *CameraHandler {
	if cfg.Scheduler == nil {
		cfg.Scheduler = capture.SystemScheduler
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 15 * time.Second
	}

	h := &CameraHandler{
		sessionSvc: sessionSvc,
		photoSvc:   photoSvc,
		cfg:        cfg,
		logger:     logger,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

func (h *CameraHandler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	return origin == "" || slices.Contains(h.cfg.AllowedOrigins, "*") || slices.Contains(h.cfg.AllowedOrigins, origin)
}

// Stream godoc
//
//	@Summary		Live camera socket
//	@Description	Upgrades to a WebSocket. The token may be passed as the token query parameter.
//	@Tags			camera
//	@Param			id		path	string	true	"Session ID"
//	@Param			token	query	string	false	"Session token"
//	@Success		101
//	@Router			/sessions/{id}/camera [get]
func (h *CameraHandler) Stream(c *gin.Context) {
	sessionID, ok := uuidParam(c, "id", "session")
	if !ok {
		return
	}

	g, err := h.sessionSvc.Geometry(c.Request.Context(), sessionID)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	ws, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("camera upgrade failed", zap.Error(err))
		return
	}

	logger := observability.Session(h.logger, sessionID)
	conn := camera.NewConn(ws, h.cfg.OpenTimeout, logger)
	go conn.WritePump()
	go conn.ReadPump()
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	obs := &cameraObserver{
		ctx:       ctx,
		sessionID: sessionID,
		conn:      conn,
		photoSvc:  h.photoSvc,
		logger:    logger,
	}
	pipeline := capture.NewPipeline(conn, obs, h.cfg.Scheduler, h.cfg.Capture, logger)
	defer func() {
		if err := pipeline.Close(); err != nil {
			logger.Warn("closing camera pipeline", zap.Error(err))
		}
	}()

	if err := pipeline.Open(ctx, g.SlotAspect()); err != nil {
		sendError(conn, err)
		return
	}

	for {
		select {
		case <-conn.Done():
			return
		case <-ctx.Done():
			return
		case msg := <-conn.Commands():
			h.dispatch(pipeline, conn, msg)
		}
	}
}

func (h *CameraHandler) dispatch(p *capture.Pipeline, conn *camera.Conn, msg camera.Message) {
	var err error

	switch msg.Type {
	case camera.TypeSelectFilter:
		var payload camera.FilterPayload
		if err = msg.Decode(&payload); err == nil {
			err = p.SelectFilter(payload.Name)
		}

	case camera.TypeResize:
		var payload camera.ResizePayload
		if err = msg.Decode(&payload); err == nil {
			p.SetContainer(payload.Width, payload.Height)
		}

	case camera.TypeStartCountdown:
		var payload camera.CountdownPayload
		if err = msg.Decode(&payload); err == nil {
			err = p.StartCountdown(payload.Seconds)
		}

	case camera.TypeCancel:
		p.CancelCountdown()

	default:
		h.logger.Debug("unknown camera message", zap.String("type", msg.Type))
		return
	}

	if err != nil {
		sendError(conn, err)
	}
}

type cameraObserver struct {
	ctx       context.Context
	sessionID uuid.UUID
	conn      *camera.Conn
	photoSvc  PhotoService
	logger    *zap.Logger
}

func (o *cameraObserver) OnTick(remaining int) {
	_ = o.conn.Send(camera.TypeTick, camera.TickPayload{Remaining: remaining})
}

func (o *cameraObserver) OnCapture(c *capture.Capture) {
	photo, err := o.photoSvc.AddCapturedPhoto(o.ctx, o.sessionID, c)
	if err != nil {
		o.logger.Warn("storing captured photo", zap.Error(err))
		o.OnError(err)
		return
	}
	_ = o.conn.Send(camera.TypeCaptured, response.PhotoFromEntity(photo, o.photoSvc.ObjectURL))
}

func (o *cameraObserver) OnError(err error) {
	appErr := apperror.FromDomain(err)
	_ = o.conn.Send(camera.TypeCaptureFail, camera.ErrorPayload{Code: appErr.Code, Message: appErr.Message})
}

func sendError(conn *camera.Conn, err error) {
	appErr := apperror.FromDomain(err)
	_ = conn.Send(camera.TypeError, camera.ErrorPayload{Code: appErr.Code, Message: appErr.Message})
}
