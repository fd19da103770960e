package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/jpeg"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photostrip-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/photostrip-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/photostrip-backend/internal/domain"
	"github.com/marcos-nsantos/photostrip-backend/internal/domain/entity"
	"github.com/marcos-nsantos/photostrip-backend/internal/infrastructure/camera"
	"github.com/marcos-nsantos/photostrip-backend/internal/infrastructure/render"
	"github.com/marcos-nsantos/photostrip-backend/internal/mocks"
	"github.com/marcos-nsantos/photostrip-backend/internal/usecase/capture"
)

type cameraFixture struct {
	sessionSvc *mocks.MockSessionService
	photoSvc   *mocks.MockPhotoService
	server     *httptest.Server
}

func newCameraFixture(t *testing.T) *cameraFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &cameraFixture{
		sessionSvc: mocks.NewMockSessionService(ctrl),
		photoSvc:   mocks.NewMockPhotoService(ctrl),
	}

	h := handler.NewCameraHandler(f.sessionSvc, f.photoSvc, handler.CameraConfig{
		Capture:        capture.Config{TickInterval: time.Millisecond, Countdowns: []int{3, 5, 10}},
		OpenTimeout:    2 * time.Second,
		AllowedOrigins: []string{"*"},
	}, zap.NewNop())

	router := setupRouter()
	router.GET("/sessions/:id/camera", h.Stream)
	f.server = httptest.NewServer(router)
	t.Cleanup(f.server.Close)

	return f
}

func (f *cameraFixture) dial(t *testing.T, sessionID uuid.UUID) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(f.server.URL, "http") + "/sessions/" + sessionID.String() + "/camera"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close() })
	return ws
}

func readUntil(t *testing.T, ws *websocket.Conn, msgType string) camera.Message {
	t.Helper()

	require.NoError(t, ws.SetReadDeadline(time.Now().Add(5*time.Second)))
	for {
		var msg camera.Message
		require.NoError(t, ws.ReadJSON(&msg))
		if msg.Type == msgType {
			return msg
		}
	}
}

func jpegFrame(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 640, 480)), nil))
	return buf.Bytes()
}

func TestCameraHandler_Stream(t *testing.T) {
	t.Run("captures a frame after the countdown", func(t *testing.T) {
		f := newCameraFixture(t)

		g, err := render.ComputeGeometry(strip4(), 400)
		require.NoError(t, err)

		sessionID := uuid.New()
		photo := entity.NewPhoto("s3://sessions/x/photos/y.jpg", "sessions/x/photos/y.jpg", nil, 640, 478)

		f.sessionSvc.EXPECT().Geometry(gomock.Any(), sessionID).Return(g, nil)
		f.photoSvc.EXPECT().
			AddCapturedPhoto(gomock.Any(), sessionID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, c *capture.Capture) (*entity.Photo, error) {
				assert.True(t, c.Mirrored)
				assert.NotEmpty(t, c.Data)
				return photo, nil
			})
		f.photoSvc.EXPECT().ObjectURL(gomock.Any()).DoAndReturn(identityURL).AnyTimes()

		ws := f.dial(t, sessionID)

		open := readUntil(t, ws, camera.TypeOpen)
		var constraints map[string]any
		require.NoError(t, json.Unmarshal(open.Payload, &constraints))
		assert.InDelta(t, g.SlotAspect(), constraints["aspect_ratio"], 0.0001)

		require.NoError(t, ws.WriteJSON(map[string]any{"type": camera.TypeOpened}))
		require.NoError(t, ws.WriteJSON(map[string]any{
			"type":    camera.TypeStartCountdown,
			"payload": map[string]int{"seconds": 3},
		}))

		done := make(chan struct{})
		defer close(done)
		frame := jpegFrame(t)
		go func() {
			ticker := time.NewTicker(5 * time.Millisecond)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					if err := ws.WriteMessage(websocket.BinaryMessage, frame); err != nil {
						return
					}
				}
			}
		}()

		tick := readUntil(t, ws, camera.TypeTick)
		var tp camera.TickPayload
		require.NoError(t, tick.Decode(&tp))
		assert.Equal(t, 3, tp.Remaining)

		captured := readUntil(t, ws, camera.TypeCaptured)
		var resp response.PhotoResponse
		require.NoError(t, captured.Decode(&resp))
		assert.Equal(t, photo.ID, resp.ID)
	})

	t.Run("reports an unknown filter", func(t *testing.T) {
		f := newCameraFixture(t)

		g, err := render.ComputeGeometry(strip4(), 400)
		require.NoError(t, err)

		sessionID := uuid.New()
		f.sessionSvc.EXPECT().Geometry(gomock.Any(), sessionID).Return(g, nil)

		ws := f.dial(t, sessionID)

		readUntil(t, ws, camera.TypeOpen)
		require.NoError(t, ws.WriteJSON(map[string]any{"type": camera.TypeOpened}))
		require.NoError(t, ws.WriteJSON(map[string]any{
			"type":    camera.TypeSelectFilter,
			"payload": map[string]string{"name": "infrared"},
		}))

		msg := readUntil(t, ws, camera.TypeError)
		var payload camera.ErrorPayload
		require.NoError(t, msg.Decode(&payload))
		assert.Equal(t, "INVALID_FILTER", payload.Code)
	})

	t.Run("reports a refused camera", func(t *testing.T) {
		f := newCameraFixture(t)

		g, err := render.ComputeGeometry(strip4(), 400)
		require.NoError(t, err)

		sessionID := uuid.New()
		f.sessionSvc.EXPECT().Geometry(gomock.Any(), sessionID).Return(g, nil)

		ws := f.dial(t, sessionID)

		readUntil(t, ws, camera.TypeOpen)
		require.NoError(t, ws.WriteJSON(map[string]any{"type": camera.TypeOpenFailed, "payload": map[string]string{"message": "NotAllowedError"}}))
		readUntil(t, ws, camera.TypeOpen)
		require.NoError(t, ws.WriteJSON(map[string]any{"type": camera.TypeOpenFailed, "payload": map[string]string{"message": "NotAllowedError"}}))

		msg := readUntil(t, ws, camera.TypeError)
		var payload camera.ErrorPayload
		require.NoError(t, msg.Decode(&payload))
		assert.Equal(t, "CAMERA_UNAVAILABLE", payload.Code)
	})

	t.Run("rejects unknown session before upgrading", func(t *testing.T) {
		f := newCameraFixture(t)

		sessionID := uuid.New()
		f.sessionSvc.EXPECT().Geometry(gomock.Any(), sessionID).Return(render.Geometry{}, domain.ErrSessionNotFound)

		url := "ws" + strings.TrimPrefix(f.server.URL, "http") + "/sessions/" + sessionID.String() + "/camera"
		_, resp, err := websocket.DefaultDialer.Dial(url, nil)
		require.ErrorIs(t, err, websocket.ErrBadHandshake)
		require.NotNil(t, resp)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
