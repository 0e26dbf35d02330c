package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Body is a dynamic box body with locked rotation and a per-body gravity
// scale. It satisfies the controller's Body interface.
type Body struct {
	body         *cp.Body
	shape        *cp.Shape
	gravityScale float64
}

// NewBody adds a dynamic box of the given size to the world, centered at
// (x, y). Rotation is locked with an infinite moment. gravityScale
// multiplies the world gravity for this body only.
func (w *World) NewBody(x, y, width, height, mass, gravityScale float64) *Body {
	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(cp.Vector{X: x, Y: y})
	body.SetVelocityUpdateFunc(func(b *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		cp.BodyUpdateVelocity(b, gravity.Mult(gravityScale), damping, dt)
	})

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(0.8)

	w.space.AddBody(body)
	w.space.AddShape(shape)

	return &Body{
		body:         body,
		shape:        shape,
		gravityScale: gravityScale,
	}
}

// Position returns the body's center in world coordinates.
func (b *Body) Position() (x, y float64) {
	pos := b.body.Position()
	return pos.X, pos.Y
}

// SetPosition moves the body's center to (x, y).
func (b *Body) SetPosition(x, y float64) {
	b.body.SetPosition(cp.Vector{X: x, Y: y})
}

// Velocity returns the body's linear velocity.
func (b *Body) Velocity() (x, y float64) {
	vel := b.body.Velocity()
	return vel.X, vel.Y
}

// SetVelocity assigns the body's linear velocity.
func (b *Body) SetVelocity(x, y float64) {
	b.body.SetVelocity(x, y)
}

// GravityScale returns the gravity multiplier fixed at creation.
func (b *Body) GravityScale() float64 {
	return b.gravityScale
}
