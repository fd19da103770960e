package capture

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photostrip-backend/internal/adapter/camera"
	"github.com/marcos-nsantos/photostrip-backend/internal/domain"
	"github.com/marcos-nsantos/photostrip-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/photostrip-backend/internal/pkg/geometry"
)

// Observer receives countdown and capture events. Calls come from the
// timer goroutine.
type Observer interface {
	OnTick(remaining int)
	OnCapture(c *Capture)
	OnError(err error)
}

type Config struct {
	JPEGQuality  int
	Countdowns   []int
	TickInterval time.Duration
}

// Capture is one frozen frame, cropped to the slot aspect and encoded as
// JPEG. Filter and mirroring are carried along, not baked in.
type Capture struct {
	Data     []byte
	Width    int
	Height   int
	Filter   valueobject.Filter
	Mirrored bool
}

type Pipeline struct {
	mu        sync.Mutex
	device    camera.Device
	stream    camera.Stream
	ctx       context.Context
	observer  Observer
	countdown *Countdown
	preset    valueobject.FilterPreset
	target    float64
	container geometry.Size
	cfg       Config
	logger    *zap.Logger
}

func NewPipeline(device camera.Device, observer Observer, scheduler Scheduler, cfg Config, logger *zap.Logger) *Pipeline {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = time.Second
	}
	if cfg.JPEGQuality <= 0 {
		cfg.JPEGQuality = 92
	}
	if len(cfg.Countdowns) == 0 {
		cfg.Countdowns = []int{3, 5, 10}
	}

	p := &Pipeline{
		device:   device,
		observer: observer,
		preset:   valueobject.FilterPresets[0],
		cfg:      cfg,
		logger:   logger,
	}
	p.countdown = NewCountdown(scheduler, cfg.TickInterval, observer.OnTick, p.fire)
	return p
}

// Open acquires the camera, preferring the ideal constraints and falling
// back once to a minimal request. target is the slot aspect ratio used when
// the client has not reported its container size.
func (p *Pipeline) Open(ctx context.Context, target float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	_ = p.stopStream()
	p.ctx = ctx
	p.target = target

	stream, err := p.device.Open(ctx, camera.IdealConstraints(target))
	if err != nil {
		p.logger.Warn("ideal camera constraints rejected, retrying with minimal constraints", zap.Error(err))

		stream, err = p.device.Open(ctx, camera.MinimalConstraints())
		if err != nil {
			p.logger.Error("camera unavailable", zap.Error(err))
			return fmt.Errorf("%w: %w", domain.ErrCameraUnavailable, err)
		}
	}

	p.stream = stream
	return nil
}

func (p *Pipeline) IsOpen() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stream != nil
}

func (p *Pipeline) SelectFilter(name string) error {
	preset, ok := valueobject.FilterPresetByName(name)
	if !ok {
		return fmt.Errorf("%w: unknown preset %q", domain.ErrInvalidFilter, name)
	}

	p.mu.Lock()
	p.preset = preset
	p.mu.Unlock()
	return nil
}

func (p *Pipeline) ActiveFilter() valueobject.FilterPreset {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.preset
}

// SetContainer records the on-screen size of the live video element.
func (p *Pipeline) SetContainer(w, h float64) {
	p.mu.Lock()
	p.container = geometry.Size{W: w, H: h}
	p.mu.Unlock()
}

func (p *Pipeline) State() State {
	return p.countdown.State()
}

func (p *Pipeline) StartCountdown(seconds int) error {
	if !slices.Contains(p.cfg.Countdowns, seconds) {
		return fmt.Errorf("%w: %d", domain.ErrInvalidCountdown, seconds)
	}
	if !p.IsOpen() {
		return domain.ErrCameraClosed
	}
	return p.countdown.Start(seconds)
}

// CancelCountdown abandons a running countdown without capturing.
func (p *Pipeline) CancelCountdown() {
	p.countdown.Stop()
}

func (p *Pipeline) fire() {
	p.mu.Lock()
	ctx := p.ctx
	p.mu.Unlock()
	if ctx == nil {
		ctx = context.Background()
	}

	c, err := p.CaptureNow(ctx)
	if err != nil {
		p.logger.Error("capture failed", zap.Error(err))
		p.observer.OnError(err)
		return
	}
	p.observer.OnCapture(c)
}

// CaptureNow freezes the current frame. The frame is cover-cropped to the
// container aspect at source resolution and left unmirrored.
func (p *Pipeline) CaptureNow(ctx context.Context) (*Capture, error) {
	p.mu.Lock()
	stream := p.stream
	preset := p.preset
	container := p.container
	target := p.target
	p.mu.Unlock()

	if stream == nil {
		return nil, domain.ErrCameraClosed
	}

	frame, err := stream.Frame(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrNoFrame, err)
	}

	b := frame.Bounds()
	srcW, srcH := float64(b.Dx()), float64(b.Dy())

	dstW, dstH := container.W, container.H
	if dstW <= 0 || dstH <= 0 {
		dstW, dstH = target, 1
	}
	if dstW <= 0 {
		dstW, dstH = srcW, srcH
	}

	crop := geometry.CoverCrop(srcW, srcH, dstW, dstH)
	img := imaging.Crop(frame, crop.Image().Add(b.Min))

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(p.cfg.JPEGQuality)); err != nil {
		return nil, fmt.Errorf("encoding capture: %w", err)
	}

	return &Capture{
		Data:     buf.Bytes(),
		Width:    img.Bounds().Dx(),
		Height:   img.Bounds().Dy(),
		Filter:   slices.Clone(preset.Filter),
		Mirrored: true,
	}, nil
}

// Close stops any countdown and releases the camera. It is safe to call
// on every exit path.
func (p *Pipeline) Close() error {
	p.countdown.Stop()

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stopStream()
}

func (p *Pipeline) stopStream() error {
	if p.stream == nil {
		return nil
	}
	err := p.stream.Stop()
	p.stream = nil
	if err != nil {
		return fmt.Errorf("stopping camera stream: %w", err)
	}
	return nil
}
