package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"

	"github.com/rowanlk/platformer/controller"
	"github.com/rowanlk/platformer/input"
	"github.com/rowanlk/platformer/physics"
	"github.com/rowanlk/platformer/tuning"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	// worldGravityY is the world gravity acceleration, units/sec^2, Y up.
	worldGravityY = -980.0

	playerWidth        = 32
	playerHeight       = 64
	playerMass         = 1.0
	playerGravityScale = 1.0
)

type Game struct {
	frames int

	keyboard *input.Keyboard
	world    *physics.World
	body     *physics.Body
	ctrl     *controller.Controller

	tuningPath string
	watcher    *tuning.Watcher

	playerImg *ebiten.Image
}

func NewGame(tuningPath string) (*Game, error) {
	cfg, err := tuning.Load(tuningPath)
	if err != nil {
		return nil, err
	}

	world := physics.NewWorld(worldGravityY)
	world.AddBounds(baseWidth, baseHeight)
	body := world.NewBody(baseWidth/2, playerHeight, playerWidth, playerHeight, playerMass, playerGravityScale)

	ctrl, err := controller.New(controllerTuning(cfg), body, worldGravityY, controller.StateGrounded)
	if err != nil {
		return nil, err
	}

	watcher, err := tuning.NewWatcher(filepath.Dir(tuningPath))
	if err != nil {
		log.Printf("tuning watcher disabled: %v", err)
		watcher = nil
	}

	img := ebiten.NewImage(playerWidth, playerHeight)
	img.Fill(colornames.Crimson)

	return &Game{
		keyboard:   input.NewKeyboard(),
		world:      world,
		body:       body,
		ctrl:       ctrl,
		tuningPath: tuningPath,
		watcher:    watcher,
		playerImg:  img,
	}, nil
}

func (g *Game) Update() error {
	g.frames++

	g.applyTuningReloads()

	snap := g.keyboard.Read()
	dt := 1.0 / float64(ebiten.TPS())
	g.ctrl.Update(snap, dt)
	g.world.Step(dt)

	return nil
}

// applyTuningReloads drains watcher events and, if any tuning file changed,
// swaps in a controller built from the reloaded values. Each controller's
// tuning stays immutable; the current state carries over.
func (g *Game) applyTuningReloads() {
	if g.watcher == nil {
		return
	}

	reload := false
drain:
	for {
		select {
		case _, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				break drain
			}
			reload = true
		case err, ok := <-g.watcher.Errors:
			if !ok {
				break drain
			}
			log.Printf("tuning watch: %v", err)
		default:
			break drain
		}
	}
	if !reload {
		return
	}

	cfg, err := tuning.Load(g.tuningPath)
	if err != nil {
		log.Printf("tuning reload rejected: %v", err)
		return
	}
	ctrl, err := controller.New(controllerTuning(cfg), g.body, worldGravityY, g.ctrl.State())
	if err != nil {
		log.Printf("tuning reload rejected: %v", err)
		return
	}
	g.ctrl = ctrl
	log.Printf("tuning reloaded from %s", g.tuningPath)
}

func (g *Game) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()))

	ebitenutil.DrawLine(screen, 0, screenY(0), baseWidth, screenY(0), colornames.White)

	x, y := g.body.Position()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x-playerWidth/2, screenY(y)-playerHeight/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(g.playerImg, op)

	_, vy := g.body.Velocity()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("State: %s    hvel: %.1f    vvel: %.1f", g.ctrl.State(), g.ctrl.HorizontalVelocity(), vy), 0, 20)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

// screenY maps world Y (up) to screen Y (down).
func screenY(worldY float64) float64 {
	return baseHeight - worldY
}

func controllerTuning(t *tuning.Tuning) controller.Tuning {
	return controller.Tuning{
		MaxSpeed:       t.MaxSpeed,
		TimeToMaxSpeed: t.TimeToMaxSpeed,
		TimeToMinSpeed: t.TimeToMinSpeed,
		MaxJumpHeight:  t.MaxJumpHeight,
		CrawlSpeed:     t.CrawlSpeed,
	}
}
