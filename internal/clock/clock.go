// Package clock advances the wheel's rotation angle from frame timestamps.
package clock

import "math"

const twoPi = 2 * math.Pi

// State of the animation clock
type State int

const (
	Running State = iota
	Paused
)

func (s State) String() string {
	if s == Paused {
		return "paused"
	}
	return "running"
}

// AnimationClock integrates a constant angular velocity over frame time.
// It keeps ticking while paused so the timestamp reference stays fresh.
// Only one tick subscription is ever live; changing the spin rate or the
// pause state restarts it.
type AnimationClock struct {
	sched Scheduler

	angle    float64 // radians in [0, 2π)
	spinRate float64 // revolutions per second
	state    State

	// Timestamp reference
	last    float64
	hasLast bool

	// Subscription
	active  bool
	frame   FrameID
	version uint64
}

// New creates a running clock at angle 0. Ticks start with Start.
func New(sched Scheduler, spinRate float64) *AnimationClock {
	return &AnimationClock{
		sched:    sched,
		spinRate: spinRate,
		state:    Running,
	}
}

// Start (re)subscribes to frame ticks.
func (c *AnimationClock) Start() {
	c.cancel()
	c.active = true
	c.hasLast = false
	c.version++
	c.schedule(c.version)
}

// Stop cancels the subscription. No tick mutates the angle afterwards.
func (c *AnimationClock) Stop() {
	c.cancel()
	c.active = false
	c.version++
}

func (c *AnimationClock) Active() bool { return c.active }

func (c *AnimationClock) Angle() float64 { return c.angle }

func (c *AnimationClock) SpinRate() float64 { return c.spinRate }

func (c *AnimationClock) State() State { return c.state }

func (c *AnimationClock) Paused() bool { return c.state == Paused }

// SetSpinRate takes effect on the next tick.
func (c *AnimationClock) SetSpinRate(rate float64) {
	if rate == c.spinRate {
		return
	}
	c.spinRate = rate
	c.restart()
}

func (c *AnimationClock) SetPaused(paused bool) {
	next := Running
	if paused {
		next = Paused
	}
	if next == c.state {
		return
	}
	c.state = next
	c.restart()
}

func (c *AnimationClock) TogglePause() {
	c.SetPaused(c.state == Running)
}

func (c *AnimationClock) restart() {
	if c.active {
		c.Start()
	}
}

func (c *AnimationClock) cancel() {
	if c.active {
		c.sched.CancelFrame(c.frame)
	}
}

func (c *AnimationClock) schedule(version uint64) {
	c.frame = c.sched.RequestFrame(func(ts float64) { c.tick(version, ts) })
}

func (c *AnimationClock) tick(version uint64, ts float64) {
	if !c.active || version != c.version {
		return
	}
	if !c.hasLast {
		c.last = ts
		c.hasLast = true
	} else {
		delta := (ts - c.last) / 1000
		c.last = ts
		if delta < 0 {
			delta = 0
		}
		if c.state == Running {
			c.angle = Wrap(c.angle + twoPi*c.spinRate*delta)
		}
	}
	c.schedule(version)
}

// Wrap folds a into [0, 2π).
func Wrap(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	if a >= twoPi {
		a = 0
	}
	return a
}
