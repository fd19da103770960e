package capture

import (
	"sync"
	"time"

	"github.com/marcos-nsantos/photostrip-backend/internal/domain"
)

type State int

const (
	StateIdle State = iota
	StateCountingDown
	StateCaptured
)

func (s State) String() string {
	switch s {
	case StateCountingDown:
		return "counting_down"
	case StateCaptured:
		return "captured"
	default:
		return "idle"
	}
}

type Timer interface {
	Stop() bool
}

type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type clockScheduler struct{}

func (clockScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// SystemScheduler schedules ticks on the wall clock.
var SystemScheduler Scheduler = clockScheduler{}

// Countdown runs Idle -> CountingDown(n..1) -> Captured -> Idle with one
// single-shot timer in flight. It cannot be restarted while running.
type Countdown struct {
	mu        sync.Mutex
	scheduler Scheduler
	interval  time.Duration
	state     State
	remaining int
	timer     Timer
	gen       int

	onTick func(remaining int)
	onFire func()
}

func NewCountdown(scheduler Scheduler, interval time.Duration, onTick func(int), onFire func()) *Countdown {
	if scheduler == nil {
		scheduler = SystemScheduler
	}
	return &Countdown{
		scheduler: scheduler,
		interval:  interval,
		onTick:    onTick,
		onFire:    onFire,
	}
}

func (c *Countdown) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Start reports n immediately and schedules exactly n ticks; the last one
// fires the capture.
func (c *Countdown) Start(n int) error {
	if n <= 0 {
		return domain.ErrInvalidCountdown
	}

	c.mu.Lock()
	if c.state != StateIdle {
		c.mu.Unlock()
		return domain.ErrCountdownActive
	}
	c.state = StateCountingDown
	c.remaining = n
	c.gen++
	c.schedule(c.gen)
	c.mu.Unlock()

	if c.onTick != nil {
		c.onTick(n)
	}
	return nil
}

// Stop abandons a running countdown without capturing. Ticks already
// scheduled become no-ops.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.gen++
	c.state = StateIdle
	c.remaining = 0
}

func (c *Countdown) schedule(gen int) {
	c.timer = c.scheduler.AfterFunc(c.interval, func() { c.tick(gen) })
}

func (c *Countdown) tick(gen int) {
	c.mu.Lock()
	if gen != c.gen || c.state != StateCountingDown {
		c.mu.Unlock()
		return
	}

	c.remaining--
	if c.remaining > 0 {
		remaining := c.remaining
		c.schedule(gen)
		c.mu.Unlock()

		if c.onTick != nil {
			c.onTick(remaining)
		}
		return
	}

	c.timer = nil
	c.state = StateCaptured
	c.mu.Unlock()

	if c.onFire != nil {
		c.onFire()
	}

	c.mu.Lock()
	if gen == c.gen {
		c.state = StateIdle
	}
	c.mu.Unlock()
}
