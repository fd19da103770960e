package camera

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	adaptercamera "github.com/marcos-nsantos/photostrip-backend/internal/adapter/camera"
	"github.com/marcos-nsantos/photostrip-backend/internal/domain"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8 << 20
	sendBuffer     = 32
)

var ErrConnClosed = errors.New("camera connection closed")

type outbound struct {
	messageType int
	data        []byte
}

// Conn is a browser camera reached over a WebSocket. The browser owns the
// real device: it is asked to open it, then streams JPEG frames back.
type Conn struct {
	ws          *websocket.Conn
	send        chan outbound
	replies     chan Message
	commands    chan Message
	done        chan struct{}
	closeOnce   sync.Once
	openTimeout time.Duration
	logger      *zap.Logger

	mu         sync.Mutex
	frame      []byte
	frameReady chan struct{}
	stream     *remoteStream
}

func NewConn(ws *websocket.Conn, openTimeout time.Duration, logger *zap.Logger) *Conn {
	return &Conn{
		ws:          ws,
		send:        make(chan outbound, sendBuffer),
		replies:     make(chan Message, 1),
		commands:    make(chan Message, sendBuffer),
		done:        make(chan struct{}),
		openTimeout: openTimeout,
		logger:      logger,
		frameReady:  make(chan struct{}),
	}
}

// Commands delivers client control messages other than open replies.
func (c *Conn) Commands() <-chan Message {
	return c.commands
}

// Done is closed once the connection is gone.
func (c *Conn) Done() <-chan struct{} {
	return c.done
}

// Send queues a JSON event for the client.
func (c *Conn) Send(msgType string, payload any) error {
	msg := Message{Type: msgType}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshaling %s: %w", msgType, err)
		}
		msg.Payload = raw
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", msgType, err)
	}

	select {
	case <-c.done:
		return ErrConnClosed
	default:
	}

	select {
	case c.send <- outbound{messageType: websocket.TextMessage, data: data}:
		return nil
	case <-c.done:
		return ErrConnClosed
	}
}

// Open asks the browser to start its camera and waits for the answer.
func (c *Conn) Open(ctx context.Context, constraints adaptercamera.Constraints) (adaptercamera.Stream, error) {
	// drop a stale reply from an earlier request
	select {
	case <-c.replies:
	default:
	}

	if err := c.Send(TypeOpen, constraints); err != nil {
		return nil, err
	}

	timeout := time.NewTimer(c.openTimeout)
	defer timeout.Stop()

	select {
	case reply := <-c.replies:
		if reply.Type == TypeOpenFailed {
			var p ErrorPayload
			_ = reply.Decode(&p)
			return nil, fmt.Errorf("browser refused camera: %s", p.Message)
		}

		s := &remoteStream{conn: c}
		c.mu.Lock()
		c.stream = s
		c.mu.Unlock()
		return s, nil

	case <-timeout.C:
		return nil, errors.New("timed out waiting for camera")
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-c.done:
		return nil, ErrConnClosed
	}
}

// ReadPump reads client messages until the socket fails or is closed.
// It closes the connection on return.
func (c *Conn) ReadPump() {
	defer c.Close()

	c.ws.SetReadLimit(maxMessageSize)
	_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		msgType, data, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Warn("camera socket closed unexpectedly", zap.Error(err))
			}
			return
		}

		if msgType == websocket.BinaryMessage {
			c.storeFrame(data)
			continue
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			c.logger.Debug("invalid camera message", zap.Error(err))
			continue
		}

		switch msg.Type {
		case TypeOpened, TypeOpenFailed:
			select {
			case c.replies <- msg:
			default:
			}
		default:
			select {
			case c.commands <- msg:
			case <-c.done:
				return
			}
		}
	}
}

// WritePump writes queued messages and keeps the socket alive with pings.
func (c *Conn) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case msg := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(msg.messageType, msg.data); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.ws.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

// Close tears the connection down. Safe to call more than once.
func (c *Conn) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		// give WritePump a moment to send the close frame
		time.AfterFunc(writeWait, func() { _ = c.ws.Close() })
	})
}

func (c *Conn) storeFrame(data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stream == nil || c.stream.isStopped() {
		return
	}

	first := c.frame == nil
	c.frame = data
	if first {
		close(c.frameReady)
	}
}

func (c *Conn) latestFrame(ctx context.Context) ([]byte, error) {
	c.mu.Lock()
	ready := c.frameReady
	c.mu.Unlock()

	select {
	case <-ready:
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-c.done:
		return nil, ErrConnClosed
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame, nil
}

func (c *Conn) detach(s *remoteStream) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stream != s {
		return
	}
	c.frame = nil
	c.frameReady = make(chan struct{})
	c.stream = nil
}

type remoteStream struct {
	conn     *Conn
	stopOnce sync.Once
	mu       sync.Mutex
	stopped  bool
}

// Frame decodes the most recent frame, waiting for the first one to arrive.
func (s *remoteStream) Frame(ctx context.Context) (image.Image, error) {
	if s.isStopped() {
		return nil, domain.ErrCameraClosed
	}

	data, err := s.conn.latestFrame(ctx)
	if err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding frame: %w", err)
	}
	return img, nil
}

// Stop tells the browser to release every track of the stream.
func (s *remoteStream) Stop() error {
	var err error
	s.stopOnce.Do(func() {
		s.mu.Lock()
		s.stopped = true
		s.mu.Unlock()

		s.conn.detach(s)
		err = s.conn.Send(TypeClose, nil)
		if errors.Is(err, ErrConnClosed) {
			err = nil
		}
	})
	return err
}

func (s *remoteStream) isStopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}
