package controller

import (
	"math"
	"testing"

	"github.com/rowanlk/platformer/input"
)

type fakeBody struct {
	x, y         float64
	vx, vy       float64
	gravityScale float64
}

func newFakeBody() *fakeBody {
	return &fakeBody{gravityScale: 1}
}

func (b *fakeBody) Position() (float64, float64) { return b.x, b.y }
func (b *fakeBody) SetPosition(x, y float64)     { b.x, b.y = x, y }
func (b *fakeBody) Velocity() (float64, float64) { return b.vx, b.vy }
func (b *fakeBody) SetVelocity(x, y float64)     { b.vx, b.vy = x, y }
func (b *fakeBody) GravityScale() float64        { return b.gravityScale }

const testGravityY = -10.0

func testTuning() Tuning {
	return Tuning{
		MaxSpeed:       5,
		TimeToMaxSpeed: 1,
		TimeToMinSpeed: 0.5,
		MaxJumpHeight:  5,
		CrawlSpeed:     2,
	}
}

func mustNew(t *testing.T, tn Tuning, body Body, initial State) *Controller {
	t.Helper()
	c, err := New(tn, body, testGravityY, initial)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return c
}

func TestNewValidation(t *testing.T) {
	cases := []struct {
		name     string
		mutate   func(*Tuning)
		gravityY float64
		scale    float64
		wantErr  bool
	}{
		{"valid", func(*Tuning) {}, testGravityY, 1, false},
		{"zero_max_speed", func(tn *Tuning) { tn.MaxSpeed = 0 }, testGravityY, 1, true},
		{"zero_time_to_max_speed", func(tn *Tuning) { tn.TimeToMaxSpeed = 0 }, testGravityY, 1, true},
		{"negative_time_to_min_speed", func(tn *Tuning) { tn.TimeToMinSpeed = -1 }, testGravityY, 1, true},
		{"negative_jump_height", func(tn *Tuning) { tn.MaxJumpHeight = -1 }, testGravityY, 1, true},
		{"negative_crawl_speed", func(tn *Tuning) { tn.CrawlSpeed = -1 }, testGravityY, 1, true},
		{"zero_gravity", func(*Tuning) {}, 0, 1, true},
		{"upward_gravity", func(*Tuning) {}, 10, 1, true},
		{"zero_gravity_scale", func(*Tuning) {}, testGravityY, 0, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tn := testTuning()
			c.mutate(&tn)
			body := newFakeBody()
			body.gravityScale = c.scale
			_, err := New(tn, body, c.gravityY, StateGrounded)
			if c.wantErr && err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !c.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestNewNilBody(t *testing.T) {
	if _, err := New(testTuning(), nil, testGravityY, StateGrounded); err == nil {
		t.Fatalf("expected error for nil body")
	}
}

func TestAccelerationRamp(t *testing.T) {
	// right held for one second in ten steps of 0.1 with TimeToMaxSpeed=1
	// ramps to MaxSpeed monotonically without overshoot.
	body := newFakeBody()
	c := mustNew(t, testTuning(), body, StateGrounded)

	in := input.Snapshot{Right: true}
	prev := 0.0
	for i := 0; i < 10; i++ {
		c.Update(in, 0.1)
		v := c.HorizontalVelocity()
		if v < prev {
			t.Fatalf("velocity not monotonic at step %d: %v < %v", i, v, prev)
		}
		if v > 5+1e-9 {
			t.Fatalf("velocity exceeded max speed at step %d: %v", i, v)
		}
		prev = v
	}
	if math.Abs(prev-5) > 1e-9 {
		t.Fatalf("expected velocity to reach 5, got %v", prev)
	}

	// further held input stays at the cap
	c.Update(in, 0.1)
	if c.HorizontalVelocity() > 5+1e-9 {
		t.Fatalf("velocity pushed beyond cap: %v", c.HorizontalVelocity())
	}
}

func TestRightWinsOverLeft(t *testing.T) {
	body := newFakeBody()
	c := mustNew(t, testTuning(), body, StateGrounded)

	c.Update(input.Snapshot{Left: true, Right: true}, 0.1)
	if c.HorizontalVelocity() <= 0 {
		t.Fatalf("expected rightward velocity when both held, got %v", c.HorizontalVelocity())
	}
}

func TestDecelerationConvergesToExactZero(t *testing.T) {
	cases := []struct {
		name      string
		start     float64
		maxFrames int
	}{
		{"from_max_right", 5, 10},
		{"from_max_left", -5, 10},
		{"below_threshold", 0.05, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := newFakeBody()
			c := mustNew(t, testTuning(), body, StateGrounded)
			c.velocity = tc.start

			frames := 0
			for ; frames < tc.maxFrames; frames++ {
				c.Update(input.Snapshot{}, 0.1)
				if c.HorizontalVelocity() == 0 {
					break
				}
			}
			if c.HorizontalVelocity() != 0 {
				t.Fatalf("velocity did not reach exactly zero within %d frames: %v", tc.maxFrames, c.HorizontalVelocity())
			}
		})
	}
}

func TestJumpFromGrounded(t *testing.T) {
	body := newFakeBody()
	body.vx = 7
	c := mustNew(t, testTuning(), body, StateGrounded)
	c.velocity = 3

	c.Update(input.Snapshot{UpPressed: true}, 0.1)

	if c.State() != StateAirborne {
		t.Fatalf("expected airborne after jump, got %s", c.State())
	}
	// sqrt(-2 * -10 * 1 * 5) = 10, and the body's horizontal velocity is
	// zeroed by the impulse.
	if body.vy != 10 {
		t.Fatalf("expected vertical velocity 10, got %v", body.vy)
	}
	if body.vx != 0 {
		t.Fatalf("expected body horizontal velocity zeroed, got %v", body.vx)
	}
}

func TestGroundedJumpAndCrouchSameFrame(t *testing.T) {
	// Both keys are checked unconditionally; crouch is assigned last so it
	// wins the state, while the jump impulse still fires.
	body := newFakeBody()
	c := mustNew(t, testTuning(), body, StateGrounded)

	c.Update(input.Snapshot{UpPressed: true, DownPressed: true}, 0.1)

	if c.State() != StateCrouching {
		t.Fatalf("expected crouching to win the frame, got %s", c.State())
	}
	if body.vy != 10 {
		t.Fatalf("expected jump impulse to still fire, vy=%v", body.vy)
	}
}

func TestCrouchingJumpAndCrouchSameFrame(t *testing.T) {
	// In crouching the jump check runs after the crouch check, so jump wins.
	body := newFakeBody()
	c := mustNew(t, testTuning(), body, StateCrouching)

	c.Update(input.Snapshot{UpPressed: true, DownPressed: true}, 0.1)

	if c.State() != StateAirborne {
		t.Fatalf("expected jump to win the frame, got %s", c.State())
	}
	if body.vy != 10 {
		t.Fatalf("expected jump impulse, vy=%v", body.vy)
	}
}

func TestCrouchKeyTogglesBackToGrounded(t *testing.T) {
	body := newFakeBody()
	c := mustNew(t, testTuning(), body, StateCrouching)

	c.Update(input.Snapshot{DownPressed: true}, 0.1)
	if c.State() != StateGrounded {
		t.Fatalf("expected grounded, got %s", c.State())
	}
}

func TestCrawlIsPurePositionDelta(t *testing.T) {
	cases := []struct {
		name  string
		in    input.Snapshot
		wantX float64
	}{
		{"right", input.Snapshot{Right: true}, 0.5},
		{"left", input.Snapshot{Left: true}, -0.5},
		{"right_wins_over_left", input.Snapshot{Left: true, Right: true}, 0.5},
		{"none", input.Snapshot{}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := newFakeBody()
			c := mustNew(t, testTuning(), body, StateCrouching)

			c.Update(tc.in, 0.25)

			if body.x != tc.wantX {
				t.Fatalf("expected x %v, got %v", tc.wantX, body.x)
			}
			if c.HorizontalVelocity() != 0 {
				t.Fatalf("crawl must not touch horizontal velocity, got %v", c.HorizontalVelocity())
			}
		})
	}
}

func TestCrouchingDecaysVelocityEveryFrame(t *testing.T) {
	body := newFakeBody()
	c := mustNew(t, testTuning(), body, StateCrouching)
	c.velocity = 5

	// held direction input must not stop the decay while crouching
	c.Update(input.Snapshot{Right: true}, 0.1)
	if c.HorizontalVelocity() != 4 {
		t.Fatalf("expected velocity to decay to 4, got %v", c.HorizontalVelocity())
	}
}

func TestLandingRequiresExactZero(t *testing.T) {
	cases := []struct {
		name string
		vy   float64
		want State
	}{
		{"exactly_zero", 0, StateGrounded},
		{"slightly_positive", 0.0001, StateAirborne},
		{"slightly_negative", -0.0001, StateAirborne},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := newFakeBody()
			body.vy = tc.vy
			c := mustNew(t, testTuning(), body, StateAirborne)

			c.Update(input.Snapshot{}, 0.1)
			if c.State() != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, c.State())
			}
		})
	}
}

func TestVelocityCarriesIntoAirborne(t *testing.T) {
	body := newFakeBody()
	body.vy = 1 // keep the fake body off the ground after the jump
	c := mustNew(t, testTuning(), body, StateGrounded)

	in := input.Snapshot{Right: true}
	for i := 0; i < 3; i++ {
		c.Update(in, 0.1)
	}
	if c.HorizontalVelocity() != 1.5 {
		t.Fatalf("expected velocity 1.5 before jump, got %v", c.HorizontalVelocity())
	}

	c.Update(input.Snapshot{Right: true, UpPressed: true}, 0.1)
	if c.State() != StateAirborne {
		t.Fatalf("expected airborne, got %s", c.State())
	}
	if c.HorizontalVelocity() != 2 {
		t.Fatalf("expected velocity to keep ramping through the jump, got %v", c.HorizontalVelocity())
	}

	// airborne steering keeps working on the same velocity
	c.Update(input.Snapshot{Right: true}, 0.1)
	if c.HorizontalVelocity() != 2.5 {
		t.Fatalf("expected velocity 2.5 while airborne, got %v", c.HorizontalVelocity())
	}
}

func TestUpdateAppliesTranslationAfterHandler(t *testing.T) {
	// The handler runs first: 3 decays to 2, then the translation uses the
	// post-handler velocity.
	body := newFakeBody()
	c := mustNew(t, testTuning(), body, StateGrounded)
	c.velocity = 3

	c.Update(input.Snapshot{}, 0.1)

	if c.HorizontalVelocity() != 2 {
		t.Fatalf("expected velocity 2 after decay, got %v", c.HorizontalVelocity())
	}
	if body.x != 0.2 {
		t.Fatalf("expected x=0.2 after translation, got %v", body.x)
	}
}
