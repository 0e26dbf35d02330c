package controller

import (
	"fmt"

	"github.com/rowanlk/platformer/input"
)

// Body is the physics collaborator the controller drives. Coordinates are
// world units with Y pointing up. The controller assumes exclusive write
// access to the body's velocity and position.
type Body interface {
	Position() (x, y float64)
	SetPosition(x, y float64)
	Velocity() (x, y float64)
	SetVelocity(x, y float64)
	GravityScale() float64
}

// Tuning holds the movement scalars. They are fixed for the lifetime of a
// Controller; to change them, build a new Controller.
type Tuning struct {
	// MaxSpeed is the horizontal speed cap in units/sec.
	MaxSpeed float64
	// TimeToMaxSpeed is the seconds of held input to reach MaxSpeed from rest.
	TimeToMaxSpeed float64
	// TimeToMinSpeed is the seconds to decay from MaxSpeed to rest.
	TimeToMinSpeed float64
	// MaxJumpHeight is the apex height of a jump in units.
	MaxJumpHeight float64
	// CrawlSpeed is the horizontal speed while crouching, in units/sec.
	CrawlSpeed float64
}

// Controller turns per-frame key input into horizontal velocity changes and
// vertical impulses on a physics body. It runs single-threaded, once per
// frame, driven by an externally owned loop.
type Controller struct {
	tuning   Tuning
	body     Body
	gravityY float64

	state State
	// velocity is the signed horizontal velocity in units/sec. It is only
	// mutated by the update handlers and persists across state transitions.
	velocity float64
}

// New validates the tuning against the world gravity and the body's gravity
// scale, failing fast on values that would divide by zero or produce a
// negative radicand in the jump impulse. The initial state is the caller's
// choice.
func New(t Tuning, body Body, gravityY float64, initial State) (*Controller, error) {
	if body == nil {
		return nil, fmt.Errorf("controller: nil body")
	}
	if t.MaxSpeed <= 0 {
		return nil, fmt.Errorf("controller: max speed must be positive, got %v", t.MaxSpeed)
	}
	if t.TimeToMaxSpeed <= 0 {
		return nil, fmt.Errorf("controller: time to max speed must be positive, got %v", t.TimeToMaxSpeed)
	}
	if t.TimeToMinSpeed <= 0 {
		return nil, fmt.Errorf("controller: time to min speed must be positive, got %v", t.TimeToMinSpeed)
	}
	if t.MaxJumpHeight < 0 {
		return nil, fmt.Errorf("controller: max jump height must not be negative, got %v", t.MaxJumpHeight)
	}
	if t.CrawlSpeed < 0 {
		return nil, fmt.Errorf("controller: crawl speed must not be negative, got %v", t.CrawlSpeed)
	}
	if gravityY >= 0 {
		return nil, fmt.Errorf("controller: world gravity must be negative, got %v", gravityY)
	}
	if scale := body.GravityScale(); scale <= 0 {
		return nil, fmt.Errorf("controller: body gravity scale must be positive, got %v", scale)
	}

	return &Controller{
		tuning:   t,
		body:     body,
		gravityY: gravityY,
		state:    initial,
	}, nil
}

// State returns the active motion state.
func (c *Controller) State() State {
	return c.state
}

// HorizontalVelocity returns the signed horizontal velocity in units/sec.
func (c *Controller) HorizontalVelocity() float64 {
	return c.velocity
}

// Update runs one frame: it dispatches to exactly one state handler, then
// applies the horizontal translation. dt is the elapsed frame time in
// seconds and is assumed non-negative and small.
func (c *Controller) Update(in input.Snapshot, dt float64) {
	switch c.state {
	case StateGrounded:
		c.updateGrounded(in, dt)
	case StateAirborne:
		c.updateAirborne(in, dt)
	case StateCrouching:
		c.updateCrouching(in, dt)
	}

	x, y := c.body.Position()
	c.body.SetPosition(x+c.velocity*dt, y)
}

func (c *Controller) updateGrounded(in input.Snapshot, dt float64) {
	// Jump and crouch are both checked every frame, in this order; when both
	// fire, the crouch assignment is the one left standing.
	if in.UpPressed {
		c.jump()
		c.state = StateAirborne
	}
	if in.DownPressed {
		c.state = StateCrouching
	}
	c.steer(in, dt)
}

func (c *Controller) updateAirborne(in input.Snapshot, dt float64) {
	c.steer(in, dt)
	// Landing is signalled by the vertical velocity reaching exactly zero.
	if _, vy := c.body.Velocity(); vy == 0 {
		c.state = StateGrounded
	}
}

func (c *Controller) updateCrouching(in input.Snapshot, dt float64) {
	c.decelerate(dt)
	if in.DownPressed {
		c.state = StateGrounded
	}
	// Jump is checked after crouch, so it wins when both keys fire on the
	// same frame.
	if in.UpPressed {
		c.jump()
		c.state = StateAirborne
	}
	// Crawling translates the body directly and leaves the horizontal
	// velocity alone.
	if in.Right {
		x, y := c.body.Position()
		c.body.SetPosition(x+c.tuning.CrawlSpeed*dt, y)
	} else if in.Left {
		x, y := c.body.Position()
		c.body.SetPosition(x-c.tuning.CrawlSpeed*dt, y)
	}
}

// steer applies the shared horizontal rule: right wins over left, and no
// held input decelerates.
func (c *Controller) steer(in input.Snapshot, dt float64) {
	if in.Right {
		c.accelerate(1, dt)
	} else if in.Left {
		c.accelerate(-1, dt)
	} else {
		c.decelerate(dt)
	}
}
