package controller

import "math"

// decelSnapDivisor sets the cutoff below which a decaying velocity snaps to
// zero instead of shrinking forever.
const decelSnapDivisor = 10

// jump assigns the exact takeoff speed needed to reach MaxJumpHeight under
// constant gravity with no drag (v^2 = 2*a*h), zeroing the body's
// horizontal velocity. An instantaneous assignment, not a force.
func (c *Controller) jump() {
	vy := math.Sqrt(-2 * c.gravityY * c.body.GravityScale() * c.tuning.MaxJumpHeight)
	c.body.SetVelocity(0, vy)
}

// accelerate steps the horizontal velocity toward dir (+1 right, -1 left).
// It does nothing once the cap in that direction is reached. Turning around
// is paced by TimeToMinSpeed rather than TimeToMaxSpeed, so reversal speed
// is tuned independently of top-speed acceleration.
func (c *Controller) accelerate(dir float64, dt float64) {
	if dir > 0 && c.velocity >= c.tuning.MaxSpeed {
		return
	}
	if dir < 0 && c.velocity <= -c.tuning.MaxSpeed {
		return
	}

	timeConst := c.tuning.TimeToMaxSpeed
	if c.velocity != 0 && (c.velocity > 0) != (dir > 0) {
		timeConst = c.tuning.TimeToMinSpeed
	}
	c.velocity += dir * c.tuning.MaxSpeed * dt / timeConst
}

// decelerate shrinks the horizontal velocity toward zero, preserving sign,
// and snaps to exactly zero once the magnitude drops below the cutoff.
func (c *Controller) decelerate(dt float64) {
	if c.velocity == 0 {
		return
	}

	mag := math.Abs(c.velocity) - c.tuning.MaxSpeed*dt/c.tuning.TimeToMinSpeed
	if mag < c.tuning.MaxSpeed/c.tuning.TimeToMinSpeed/decelSnapDivisor {
		c.velocity = 0
		return
	}
	if c.velocity > 0 {
		c.velocity = mag
	} else {
		c.velocity = -mag
	}
}
