package render

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/marcos-nsantos/photostrip-backend/internal/domain"
)

const maxRemoteAssetSize = 20 << 20

// Loader resolves an asset reference into a fully decoded image.
type Loader interface {
	Load(ctx context.Context, ref string) (image.Image, error)
}

// ObjectReader reads objects from the bucket that backs s3:// references.
type ObjectReader interface {
	Download(ctx context.Context, key string) (io.ReadCloser, error)
}

// AssetLoader understands data URIs, http(s) URLs, s3:// object keys and
// absolute paths into the bundled static assets.
type AssetLoader struct {
	objects ObjectReader
	assets  fs.FS
	client  *http.Client
}

func NewAssetLoader(objects ObjectReader, assets fs.FS, client *http.Client) *AssetLoader {
	if client == nil {
		client = http.DefaultClient
	}
	return &AssetLoader{
		objects: objects,
		assets:  assets,
		client:  client,
	}
}

func (l *AssetLoader) Load(ctx context.Context, ref string) (image.Image, error) {
	rc, err := l.open(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrAssetLoad, shortRef(ref), err)
	}
	defer rc.Close()

	img, err := imaging.Decode(rc, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %w", domain.ErrAssetLoad, shortRef(ref), err)
	}

	return img, nil
}

func (l *AssetLoader) open(ctx context.Context, ref string) (io.ReadCloser, error) {
	switch {
	case strings.HasPrefix(ref, "data:"):
		data, err := DecodeDataURI(ref)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(bytes.NewReader(data)), nil

	case strings.HasPrefix(ref, "s3://"):
		if l.objects == nil {
			return nil, errors.New("object storage not configured")
		}
		return l.objects.Download(ctx, strings.TrimPrefix(ref, "s3://"))

	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return l.fetch(ctx, ref)

	case strings.HasPrefix(ref, "/"):
		if l.assets == nil {
			return nil, errors.New("static assets not configured")
		}
		return l.assets.Open(strings.TrimPrefix(ref, "/"))

	default:
		return nil, errors.New("unsupported reference")
	}
}

func (l *AssetLoader) fetch(ctx context.Context, ref string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetching: status %d", resp.StatusCode)
	}

	return struct {
		io.Reader
		io.Closer
	}{io.LimitReader(resp.Body, maxRemoteAssetSize), resp.Body}, nil
}

// DecodeDataURI returns the payload of a data: URI, either base64 or
// percent encoded.
func DecodeDataURI(ref string) ([]byte, error) {
	header, payload, ok := strings.Cut(strings.TrimPrefix(ref, "data:"), ",")
	if !ok {
		return nil, errors.New("malformed data uri")
	}

	if strings.HasSuffix(header, ";base64") {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("decoding base64: %w", err)
		}
		return data, nil
	}

	data, err := url.PathUnescape(payload)
	if err != nil {
		return nil, fmt.Errorf("unescaping: %w", err)
	}
	return []byte(data), nil
}

// EncodeDataURI is the inverse of DecodeDataURI for base64 payloads.
func EncodeDataURI(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func shortRef(ref string) string {
	if strings.HasPrefix(ref, "data:") {
		header, _, _ := strings.Cut(ref, ",")
		return header
	}
	return ref
}
