package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photostrip-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/photostrip-backend/internal/adapter/repository/memory"
	pgRepo "github.com/marcos-nsantos/photostrip-backend/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/photostrip-backend/internal/infrastructure/auth"
	"github.com/marcos-nsantos/photostrip-backend/internal/infrastructure/database"
	"github.com/marcos-nsantos/photostrip-backend/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/photostrip-backend/internal/infrastructure/render"
	"github.com/marcos-nsantos/photostrip-backend/internal/infrastructure/server"
	"github.com/marcos-nsantos/photostrip-backend/internal/infrastructure/storage"
	"github.com/marcos-nsantos/photostrip-backend/internal/usecase/capture"
	"github.com/marcos-nsantos/photostrip-backend/internal/usecase/catalogue"
	"github.com/marcos-nsantos/photostrip-backend/internal/usecase/export"
	"github.com/marcos-nsantos/photostrip-backend/internal/usecase/session"
	"github.com/marcos-nsantos/photostrip-backend/migrations"
)

const (
	testDBUser     = "testuser"
	testDBPassword = "testpass"
	testDBName     = "testdb"
	testJWTSecret  = "test-secret-key-for-e2e-tests"
	apiBasePath    = "/api/v1"
)

type TestApp struct {
	Server     *httptest.Server
	Pool       *pgxpool.Pool
	Container  testcontainers.Container
	Storage    *memoryStorage
	BaseURL    string
	httpClient *http.Client
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping e2e test in short mode")
	}

	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:18-alpine",
		postgres.WithDatabase(testDBName),
		postgres.WithUsername(testDBUser),
		postgres.WithPassword(testDBPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	err = database.RunMigrations(ctx, pool, migrations.FS)
	require.NoError(t, err)

	logger, _ := zap.NewDevelopment()

	// Repositories; sessions stay in memory so no redis container is needed
	sessionRepo := memory.NewSessionRepo(time.Hour)
	layoutRepo := pgRepo.NewLayoutRepo(pool)
	stickerRepo := pgRepo.NewStickerRepo(pool)
	backgroundRepo := pgRepo.NewBackgroundRepo(pool)
	exportRepo := pgRepo.NewExportRepo(pool)

	jwtSvc := auth.NewJWTService(testJWTSecret, 15*time.Minute)

	// In-memory object store instead of S3
	objects := newMemoryStorage()
	processor := storage.NewImageProcessor()

	loader := render.NewAssetLoader(objects, nil, nil)
	compositor, err := render.NewCompositor(loader, render.DefaultBaseWidth)
	require.NoError(t, err)

	catalogueSvc := catalogue.NewService(layoutRepo, stickerRepo, backgroundRepo, logger)
	sessionSvc := session.NewService(sessionRepo, catalogueSvc, objects, processor, jwtSvc, 400, logger)
	exportSvc := export.NewService(sessionRepo, exportRepo, objects, compositor, "gstudio", time.Hour, logger)

	router := server.NewRouter(server.RouterConfig{
		CatalogueHandler: handler.NewCatalogueHandler(catalogueSvc),
		SessionHandler:   handler.NewSessionHandler(sessionSvc, handler.DefaultMaxUploadSize),
		PhotoHandler:     handler.NewPhotoHandler(sessionSvc, handler.DefaultMaxUploadSize),
		StickerHandler:   handler.NewStickerHandler(sessionSvc),
		ExportHandler:    handler.NewExportHandler(exportSvc),
		CameraHandler: handler.NewCameraHandler(sessionSvc, sessionSvc, handler.CameraConfig{
			Capture:        capture.Config{},
			AllowedOrigins: []string{"*"},
		}, logger),
		SessionAuth:    middleware.NewSessionAuth(jwtSvc),
		AllowedOrigins: []string{"*"},
		Logger:         logger,
		Environment:    "test",
	})

	ts := httptest.NewServer(router.Engine())

	return &TestApp{
		Server:    ts,
		Pool:      pool,
		Container: pgContainer,
		Storage:   objects,
		BaseURL:   ts.URL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (app *TestApp) cleanup(t *testing.T) {
	t.Helper()

	app.Server.Close()
	app.Pool.Close()

	ctx := context.Background()
	if err := app.Container.Terminate(ctx); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

func (app *TestApp) request(method, path string, body any, headers map[string]string) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, app.BaseURL+apiBasePath+path, bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return app.httpClient.Do(req)
}

func (app *TestApp) get(path string, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodGet, path, nil, headers)
}

func (app *TestApp) post(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodPost, path, body, headers)
}

func (app *TestApp) put(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodPut, path, body, headers)
}

func (app *TestApp) patch(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodPatch, path, body, headers)
}

func (app *TestApp) delete(path string, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodDelete, path, nil, headers)
}

// upload posts an image as the "file" part of a multipart form.
func (app *TestApp) upload(path, contentType string, data []byte, fields map[string]string, headers map[string]string) (*http.Response, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			return nil, err
		}
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="photo"`)
	h.Set("Content-Type", contentType)
	part, err := writer.CreatePart(h)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(data); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, app.BaseURL+apiBasePath+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return app.httpClient.Do(req)
}

func parseResponse(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if dest != nil {
		err = json.Unmarshal(body, dest)
		require.NoError(t, err, "response body: %s", string(body))
	}
}

func authHeader(token string) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + token,
	}
}

// testPhoto is a 4:3 camera-sized PNG filled with one color.
func testPhoto(t *testing.T, c color.Color) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 640, 480))
	for y := 0; y < 480; y++ {
		for x := 0; x < 640; x++ {
			img.Set(x, y, c)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// memoryStorage stands in for S3 so uploaded photos can be read back by
// the compositor.
type memoryStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{objects: make(map[string][]byte)}
}

func (s *memoryStorage) Upload(_ context.Context, key string, reader io.Reader, _ string, _ int64) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return nil
}

func (s *memoryStorage) Download(_ context.Context, key string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.objects[key]
	if !ok {
		return nil, fmt.Errorf("object %q not found", key)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *memoryStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func (s *memoryStorage) GetURL(key string) string {
	return "https://stub-storage.example.com/" + key
}

func (s *memoryStorage) GetSignedURL(key string, _ time.Duration) (string, error) {
	return "https://stub-storage.example.com/" + key + "?signed=true", nil
}

func (s *memoryStorage) keys(prefix string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var keys []string
	for k := range s.objects {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys
}
