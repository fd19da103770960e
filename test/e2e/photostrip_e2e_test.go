package e2e_test

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createSession(t *testing.T, app *TestApp, layoutID string) (string, string) {
	t.Helper()

	resp, err := app.post("/sessions", map[string]string{"layout_id": layoutID}, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		Session struct {
			ID string `json:"id"`
		} `json:"session"`
		Token string `json:"token"`
	}
	parseResponse(t, resp, &created)
	require.NotEmpty(t, created.Token)

	return created.Session.ID, created.Token
}

func TestE2E_Catalogue(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	t.Run("layouts come from the configuration store", func(t *testing.T) {
		resp, err := app.get("/layouts", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var layouts []map[string]any
		parseResponse(t, resp, &layouts)
		require.NotEmpty(t, layouts)

		ids := make([]string, len(layouts))
		for i, l := range layouts {
			ids[i] = l["id"].(string)
		}
		assert.Contains(t, ids, "strip-4")
		assert.Contains(t, ids, "grid-6")
	})

	t.Run("filters list the presets", func(t *testing.T) {
		resp, err := app.get("/filters", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var filters []map[string]any
		parseResponse(t, resp, &filters)
		assert.NotEmpty(t, filters)
	})
}

func TestE2E_PhotoStrip(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	sessionID, token := createSession(t, app, "strip-4")
	base := "/sessions/" + sessionID

	t.Run("requires the session token", func(t *testing.T) {
		resp, err := app.get(base, nil)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("rejects a token for another session", func(t *testing.T) {
		_, otherToken := createSession(t, app, "strip-2")

		resp, err := app.get(base, authHeader(otherToken))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("download needs every slot filled", func(t *testing.T) {
		resp, err := app.get(base+"/export/download", authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		var errResp map[string]any
		parseResponse(t, resp, &errResp)
		assert.Equal(t, "NOT_ENOUGH_PHOTOS", errResp["code"])
	})

	colors := []color.Color{
		color.NRGBA{R: 220, A: 255},
		color.NRGBA{G: 220, A: 255},
		color.NRGBA{B: 220, A: 255},
		color.NRGBA{R: 220, G: 220, A: 255},
	}

	t.Run("uploads four photos", func(t *testing.T) {
		for i, c := range colors {
			resp, err := app.upload(base+"/photos", "image/png", testPhoto(t, c), nil, authHeader(token))
			require.NoError(t, err)
			require.Equal(t, http.StatusCreated, resp.StatusCode, "photo %d", i)

			var photo map[string]any
			parseResponse(t, resp, &photo)
			assert.NotEmpty(t, photo["id"])
			assert.Equal(t, false, photo["is_mirrored"])
		}

		assert.Len(t, app.Storage.keys("sessions/"+sessionID+"/photos/"), 4)
	})

	t.Run("rejects a fifth photo", func(t *testing.T) {
		resp, err := app.upload(base+"/photos", "image/png", testPhoto(t, color.White), nil, authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		var errResp map[string]any
		parseResponse(t, resp, &errResp)
		assert.Equal(t, "SESSION_FULL", errResp["code"])
	})

	t.Run("session reports completion", func(t *testing.T) {
		resp, err := app.get(base, authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var s map[string]any
		parseResponse(t, resp, &s)
		assert.Equal(t, true, s["is_complete"])
		assert.Len(t, s["photos"], 4)
	})

	t.Run("updates the style", func(t *testing.T) {
		resp, err := app.put(base+"/style", map[string]any{
			"shape":      "rounded",
			"caption":    "E2E",
			"text_color": "#000000",
			"background": "#ffffff",
		}, authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var s map[string]any
		parseResponse(t, resp, &s)
		assert.Equal(t, "rounded", s["shape"])
		assert.Equal(t, "E2E", s["caption"])
	})

	t.Run("adds a sticker", func(t *testing.T) {
		sticker := testPhoto(t, color.Black)
		dataURI := "data:image/png;base64," + base64.StdEncoding.EncodeToString(sticker)

		resp, err := app.post(base+"/stickers", map[string]string{"src": dataURI}, authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var st map[string]any
		parseResponse(t, resp, &st)
		stickerID := st["id"].(string)

		resp, err = app.patch(base+"/stickers/"+stickerID, map[string]any{"scale": "up", "rotate": true}, authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		parseResponse(t, resp, &st)
		assert.InDelta(t, 15.0, st["rotation"], 0.001)
	})

	t.Run("downloads a 1200x3600 strip", func(t *testing.T) {
		resp, err := app.get(base+"/export/download", authHeader(token))
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
		assert.Contains(t, resp.Header.Get("Content-Disposition"), "gstudio-")

		data, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		cfg, err := png.DecodeConfig(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 1200, cfg.Width)
		assert.Equal(t, 3600, cfg.Height)
	})

	t.Run("records an export", func(t *testing.T) {
		resp, err := app.post(base+"/export", nil, authHeader(token))
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var exp map[string]any
		parseResponse(t, resp, &exp)
		assert.EqualValues(t, 1200, exp["width"])
		assert.EqualValues(t, 3600, exp["height"])
		assert.Contains(t, exp["signed_url"], "signed=true")

		exportID := exp["id"].(string)

		resp, err = app.get(base+"/exports", authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var exports []map[string]any
		parseResponse(t, resp, &exports)
		require.Len(t, exports, 1)
		assert.Equal(t, exportID, exports[0]["id"])

		resp, err = app.get(fmt.Sprintf("%s/exports/%s", base, exportID), authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("reset clears photos and stickers", func(t *testing.T) {
		resp, err := app.post(base+"/reset", nil, authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var s map[string]any
		parseResponse(t, resp, &s)
		assert.Empty(t, s["photos"])
		assert.Empty(t, s["stickers"])
		assert.Equal(t, "E2E", s["caption"])
		assert.Empty(t, app.Storage.keys("sessions/"+sessionID+"/photos/"))
	})
}
