package capture_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"sync"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photostrip-backend/internal/adapter/camera"
	"github.com/marcos-nsantos/photostrip-backend/internal/domain"
	"github.com/marcos-nsantos/photostrip-backend/internal/mocks"
	"github.com/marcos-nsantos/photostrip-backend/internal/usecase/capture"
)

type recorder struct {
	mu       sync.Mutex
	ticks    []int
	captures []*capture.Capture
	errs     []error
}

func (r *recorder) OnTick(remaining int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ticks = append(r.ticks, remaining)
}

func (r *recorder) OnCapture(c *capture.Capture) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.captures = append(r.captures, c)
}

func (r *recorder) OnError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

func newPipeline(device camera.Device, obs capture.Observer, sched capture.Scheduler) *capture.Pipeline {
	return capture.NewPipeline(device, obs, sched, capture.Config{
		JPEGQuality: 90,
		Countdowns:  []int{3, 5, 10},
	}, zap.NewNop())
}

func frame640x480() image.Image {
	img := imaging.New(640, 480, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	// A marker in the top-left corner tells whether the frame was flipped.
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			img.SetNRGBA(x, y, color.NRGBA{B: 255, A: 255})
		}
	}
	return img
}

func TestPipeline_Open(t *testing.T) {
	t.Run("ideal constraints", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		device := mocks.NewMockDevice(ctrl)
		stream := mocks.NewMockStream(ctrl)
		p := newPipeline(device, &recorder{}, &fakeScheduler{})

		ctx := context.Background()
		device.EXPECT().Open(ctx, camera.IdealConstraints(1.0/3.0)).Return(stream, nil)

		require.NoError(t, p.Open(ctx, 1.0/3.0))
		assert.True(t, p.IsOpen())
	})

	t.Run("falls back once to minimal constraints", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		device := mocks.NewMockDevice(ctrl)
		stream := mocks.NewMockStream(ctrl)
		p := newPipeline(device, &recorder{}, &fakeScheduler{})

		ctx := context.Background()
		gomock.InOrder(
			device.EXPECT().Open(ctx, camera.IdealConstraints(0.5)).Return(nil, errors.New("overconstrained")),
			device.EXPECT().Open(ctx, camera.MinimalConstraints()).Return(stream, nil),
		)

		require.NoError(t, p.Open(ctx, 0.5))
		assert.True(t, p.IsOpen())
	})

	t.Run("surfaces unavailable after the fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		device := mocks.NewMockDevice(ctrl)
		p := newPipeline(device, &recorder{}, &fakeScheduler{})

		device.EXPECT().Open(gomock.Any(), gomock.Any()).Return(nil, errors.New("permission denied")).Times(2)

		err := p.Open(context.Background(), 0.5)
		assert.ErrorIs(t, err, domain.ErrCameraUnavailable)
		assert.False(t, p.IsOpen())
	})
}

func TestPipeline_CaptureNow(t *testing.T) {
	t.Run("cover crops 4:3 into a 1:3 container", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		device := mocks.NewMockDevice(ctrl)
		stream := mocks.NewMockStream(ctrl)
		p := newPipeline(device, &recorder{}, &fakeScheduler{})

		ctx := context.Background()
		device.EXPECT().Open(ctx, gomock.Any()).Return(stream, nil)
		stream.EXPECT().Frame(ctx).Return(frame640x480(), nil)

		require.NoError(t, p.Open(ctx, 1.0/3.0))
		p.SetContainer(200, 600)
		require.NoError(t, p.SelectFilter("sepia"))

		c, err := p.CaptureNow(ctx)
		require.NoError(t, err)

		assert.Equal(t, 160, c.Width)
		assert.Equal(t, 480, c.Height)
		assert.True(t, c.Mirrored)
		assert.Equal(t, "sepia(100%)", c.Filter.String())

		img, err := imaging.Decode(bytes.NewReader(c.Data))
		require.NoError(t, err)
		assert.Equal(t, 160, img.Bounds().Dx())
		assert.Equal(t, 480, img.Bounds().Dy())
	})

	t.Run("pixels are not mirrored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		device := mocks.NewMockDevice(ctrl)
		stream := mocks.NewMockStream(ctrl)
		p := newPipeline(device, &recorder{}, &fakeScheduler{})

		ctx := context.Background()
		device.EXPECT().Open(ctx, gomock.Any()).Return(stream, nil)
		stream.EXPECT().Frame(ctx).Return(frame640x480(), nil)

		require.NoError(t, p.Open(ctx, 4.0/3.0))

		c, err := p.CaptureNow(ctx)
		require.NoError(t, err)
		assert.Equal(t, 640, c.Width)
		assert.Equal(t, 480, c.Height)

		img, err := imaging.Decode(bytes.NewReader(c.Data))
		require.NoError(t, err)
		r, g, b, _ := img.At(10, 10).RGBA()
		assert.Greater(t, b>>8, uint32(200))
		assert.Less(t, r>>8, uint32(60))
		assert.Less(t, g>>8, uint32(60))
	})

	t.Run("closed camera", func(t *testing.T) {
		p := newPipeline(nil, &recorder{}, &fakeScheduler{})
		_, err := p.CaptureNow(context.Background())
		assert.ErrorIs(t, err, domain.ErrCameraClosed)
	})
}

func TestPipeline_Countdown(t *testing.T) {
	t.Run("captures once at the end of the countdown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		device := mocks.NewMockDevice(ctrl)
		stream := mocks.NewMockStream(ctrl)
		sched := &fakeScheduler{}
		obs := &recorder{}
		p := newPipeline(device, obs, sched)

		ctx := context.Background()
		device.EXPECT().Open(ctx, gomock.Any()).Return(stream, nil)
		stream.EXPECT().Frame(gomock.Any()).Return(frame640x480(), nil).Times(1)

		require.NoError(t, p.Open(ctx, 0.75))
		require.NoError(t, p.StartCountdown(3))
		assert.ErrorIs(t, p.StartCountdown(3), domain.ErrCountdownActive)

		sched.drain()

		assert.Equal(t, []int{3, 2, 1}, obs.ticks)
		require.Len(t, obs.captures, 1)
		assert.Empty(t, obs.errs)
		assert.Equal(t, capture.StateIdle, p.State())
	})

	t.Run("cancel skips the capture", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		device := mocks.NewMockDevice(ctrl)
		stream := mocks.NewMockStream(ctrl)
		sched := &fakeScheduler{}
		obs := &recorder{}
		p := newPipeline(device, obs, sched)

		device.EXPECT().Open(gomock.Any(), gomock.Any()).Return(stream, nil)

		require.NoError(t, p.Open(context.Background(), 0.75))
		require.NoError(t, p.StartCountdown(5))
		p.CancelCountdown()
		sched.drain()

		assert.Equal(t, []int{5}, obs.ticks)
		assert.Empty(t, obs.captures)
		assert.Equal(t, capture.StateIdle, p.State())
		require.NoError(t, p.StartCountdown(3), "a cancelled countdown can be restarted")
	})

	t.Run("rejects durations outside the list", func(t *testing.T) {
		p := newPipeline(nil, &recorder{}, &fakeScheduler{})
		assert.ErrorIs(t, p.StartCountdown(4), domain.ErrInvalidCountdown)
	})

	t.Run("requires an open camera", func(t *testing.T) {
		p := newPipeline(nil, &recorder{}, &fakeScheduler{})
		assert.ErrorIs(t, p.StartCountdown(3), domain.ErrCameraClosed)
	})

	t.Run("frame errors reach the observer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		device := mocks.NewMockDevice(ctrl)
		stream := mocks.NewMockStream(ctrl)
		sched := &fakeScheduler{}
		obs := &recorder{}
		p := newPipeline(device, obs, sched)

		device.EXPECT().Open(gomock.Any(), gomock.Any()).Return(stream, nil)
		stream.EXPECT().Frame(gomock.Any()).Return(nil, errors.New("no data"))

		require.NoError(t, p.Open(context.Background(), 0.75))
		require.NoError(t, p.StartCountdown(3))
		sched.drain()

		require.Len(t, obs.errs, 1)
		assert.ErrorIs(t, obs.errs[0], domain.ErrNoFrame)
		assert.Empty(t, obs.captures)
	})
}

func TestPipeline_SelectFilter(t *testing.T) {
	p := newPipeline(nil, &recorder{}, &fakeScheduler{})

	assert.Equal(t, "none", p.ActiveFilter().Name)
	require.NoError(t, p.SelectFilter("noir"))
	assert.Equal(t, "noir", p.ActiveFilter().Name)
	assert.ErrorIs(t, p.SelectFilter("glitter"), domain.ErrInvalidFilter)
}

func TestPipeline_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	device := mocks.NewMockDevice(ctrl)
	stream := mocks.NewMockStream(ctrl)
	sched := &fakeScheduler{}
	obs := &recorder{}
	p := newPipeline(device, obs, sched)

	device.EXPECT().Open(gomock.Any(), gomock.Any()).Return(stream, nil)
	stream.EXPECT().Stop().Return(nil).Times(1)

	require.NoError(t, p.Open(context.Background(), 0.75))
	require.NoError(t, p.StartCountdown(5))

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
	sched.drain()

	assert.False(t, p.IsOpen())
	assert.Empty(t, obs.captures)
	assert.Equal(t, capture.StateIdle, p.State())
}
