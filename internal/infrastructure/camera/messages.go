package camera

import "encoding/json"

// Message types exchanged over the camera socket. JPEG frames travel as
// binary messages and carry no envelope.
const (
	// server to client
	TypeOpen        = "camera.open"
	TypeClose       = "camera.close"
	TypeTick        = "countdown.tick"
	TypeCaptured    = "capture.done"
	TypeCaptureFail = "capture.error"
	TypeError       = "error"

	// client to server
	TypeOpened         = "camera.opened"
	TypeOpenFailed     = "camera.error"
	TypeSelectFilter   = "filter.select"
	TypeResize         = "container.resize"
	TypeStartCountdown = "countdown.start"
	TypeCancel         = "countdown.cancel"
)

type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Decode unmarshals the payload into v.
func (m Message) Decode(v any) error {
	if len(m.Payload) == 0 {
		return nil
	}
	return json.Unmarshal(m.Payload, v)
}

type OpenedPayload struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type ErrorPayload struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

type FilterPayload struct {
	Name string `json:"name"`
}

type ResizePayload struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type CountdownPayload struct {
	Seconds int `json:"seconds"`
}

type TickPayload struct {
	Remaining int `json:"remaining"`
}
