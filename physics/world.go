package physics

import "github.com/jakecoffman/cp"

// World owns the Chipmunk space. Coordinates are Y-up, so gravity points
// down the negative Y axis.
type World struct {
	space    *cp.Space
	gravityY float64
}

// NewWorld creates a space with the given vertical gravity acceleration.
func NewWorld(gravityY float64) *World {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: gravityY})

	return &World{
		space:    space,
		gravityY: gravityY,
	}
}

// GravityY returns the vertical gravity acceleration.
func (w *World) GravityY() float64 {
	return w.gravityY
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	return w.space
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float64) {
	w.space.Step(dt)
}

// AddBounds installs static segments: a floor along y=0 and walls at x=0
// and x=width reaching height units up.
func (w *World) AddBounds(width, height float64) {
	thickness := 1.0
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: width, Y: 0}},
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: height}},
		{a: cp.Vector{X: width, Y: 0}, b: cp.Vector{X: width, Y: height}},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(w.space.StaticBody, seg.a, seg.b, thickness)
		shape.SetFriction(0.8)
		w.space.AddShape(shape)
	}
}
