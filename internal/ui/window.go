// Package ui is the Ebiten shell around the headless world: keyboard
// capture, camera, and vector drawing. Nothing in here feeds back into
// the simulation except the KeyState handed over each tick.
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"thegame/internal/config"
	"thegame/internal/game"
)

// GameWindow implements ebiten.Game over a World.
type GameWindow struct {
	world  *game.World
	cfg    *config.Config
	logger *zap.Logger

	dt   float64
	tick int

	camX float64
	camY float64

	// previous-frame key states for edge triggering
	menuHeld    bool
	confirmHeld bool
	reportHeld  bool
}

// New builds the window shell. The caller owns world setup (maps, warp
// handler) before handing it over.
func New(world *game.World, cfg *config.Config, logger *zap.Logger) *GameWindow {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GameWindow{
		world:  world,
		cfg:    cfg,
		logger: logger,
		dt:     1.0 / float64(cfg.Window.TPS),
	}
}

// Update captures the keyboard, hands the snapshot to the world, and
// runs one fixed-dt tick.
func (gw *GameWindow) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	keys := game.KeyState{
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Run:   ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight),
	}

	// Menu and confirm are edge triggered so a held key opens or
	// dismisses exactly one overlay.
	menu := ebiten.IsKeyPressed(ebiten.KeyEnter)
	keys.Menu = menu && !gw.menuHeld
	gw.menuHeld = menu

	confirm := ebiten.IsKeyPressed(ebiten.KeySpace)
	keys.Confirm = confirm && !gw.confirmHeld
	gw.confirmHeld = confirm

	report := ebiten.IsKeyPressed(ebiten.KeyR)
	if report && !gw.reportHeld {
		if err := copyDebugReport(gw.world, gw.tick); err != nil {
			gw.logger.Warn("debug report copy failed", zap.Error(err))
		} else {
			gw.logger.Info("debug report copied to clipboard")
		}
	}
	gw.reportHeld = report

	gw.tick++
	gw.world.HandleKeys(keys)
	gw.world.Update(gw.dt)
	gw.updateCamera()
	return nil
}

// updateCamera centers the viewport on the player's pixel position,
// clamped so the camera never shows past the map edge.
func (gw *GameWindow) updateCamera() {
	tile := gw.world.Params().TileSize
	viewW := float64(gw.cfg.Window.Cols) * tile
	viewH := float64(gw.cfg.Window.Rows) * tile
	cols, rows := gw.world.Grid().Extent()
	mapW := float64(cols) * tile
	mapH := float64(rows) * tile

	sub := gw.world.Player().SubPosition()
	gw.camX = clamp(sub.X+tile/2-viewW/2, 0, max(0, mapW-viewW))
	gw.camY = clamp(sub.Y+tile/2-viewH/2, 0, max(0, mapH-viewH))
}

// Draw renders the map, actors, and overlay stack.
func (gw *GameWindow) Draw(screen *ebiten.Image) {
	gw.drawMap(screen)
	gw.drawRoutes(screen)
	gw.drawSightLines(screen)
	gw.drawActors(screen)
	gw.drawOverlays(screen)
	gw.drawHUD(screen)
}

// Layout reports the fixed viewport size in pixels.
func (gw *GameWindow) Layout(outsideWidth, outsideHeight int) (int, int) {
	tile := int(gw.world.Params().TileSize)
	return gw.cfg.Window.Cols * tile, gw.cfg.Window.Rows * tile
}

// WindowSize returns the initial OS window dimensions.
func (gw *GameWindow) WindowSize() (int, int) {
	return gw.Layout(0, 0)
}

func (gw *GameWindow) hudText() string {
	return fmt.Sprintf("map: %s  state: %s  player: %v",
		gw.world.MapName(), gw.world.State(), gw.world.Player().Position())
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
