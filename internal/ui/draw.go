package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"thegame/internal/game"
)

var (
	colFloor     = color.RGBA{R: 24, G: 26, B: 30, A: 255}
	colGridLine  = color.RGBA{R: 40, G: 44, B: 50, A: 255}
	colWall      = color.RGBA{R: 120, G: 120, B: 128, A: 255}
	colWarp      = color.RGBA{R: 80, G: 140, B: 220, A: 255}
	colRoute     = color.RGBA{R: 70, G: 90, B: 70, A: 255}
	colRouteNext = color.RGBA{R: 110, G: 160, B: 110, A: 255}
	colSight     = color.RGBA{R: 200, G: 170, B: 40, A: 60}
	colPlayer    = color.RGBA{R: 80, G: 180, B: 90, A: 255}
	colLancer    = color.RGBA{R: 190, G: 70, B: 70, A: 255}
	colLancerHot = color.RGBA{R: 240, G: 120, B: 40, A: 255}
	colAlert     = color.RGBA{R: 240, G: 60, B: 60, A: 255}
	colPanel     = color.RGBA{R: 16, G: 18, B: 22, A: 235}
	colPanelEdge = color.RGBA{R: 150, G: 150, B: 160, A: 255}
	colText      = color.RGBA{R: 220, G: 220, B: 220, A: 255}
)

// cell returns the screen-space rectangle of a grid cell.
func (gw *GameWindow) cell(pos game.GridPos) (x, y, s float32) {
	tile := gw.world.Params().TileSize
	return float32(float64(pos.Col)*tile - gw.camX),
		float32(float64(pos.Row)*tile - gw.camY),
		float32(tile)
}

func (gw *GameWindow) drawMap(screen *ebiten.Image) {
	screen.Fill(colFloor)
	cols, rows := gw.world.Grid().Extent()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			pos := game.GridPos{Col: x, Row: y}
			kind, ok := gw.world.Grid().At(pos)
			if !ok {
				continue
			}
			sx, sy, s := gw.cell(pos)
			if sx < -s || sy < -s || sx > float32(screen.Bounds().Dx()) || sy > float32(screen.Bounds().Dy()) {
				continue
			}
			switch kind {
			case game.TileWall:
				vector.FillRect(screen, sx, sy, s, s, colWall, false)
			case game.TileWarp:
				vector.FillCircle(screen, sx+s/2, sy+s/2, s/3, colWarp, false)
			}
			vector.StrokeRect(screen, sx, sy, s, s, 0.5, colGridLine, false)
		}
	}
}

func (gw *GameWindow) drawRoutes(screen *ebiten.Image) {
	for _, l := range gw.world.Lancers() {
		if l.State != game.LancerPatrolling {
			continue
		}
		next := l.Route.Next()
		for _, p := range l.Route.Waypoints() {
			sx, sy, s := gw.cell(p)
			c := colRoute
			if p == next {
				c = colRouteNext
			}
			vector.FillCircle(screen, sx+s/2, sy+s/2, s/8, c, false)
		}
	}
}

func (gw *GameWindow) drawSightLines(screen *ebiten.Image) {
	for _, l := range gw.world.Lancers() {
		if l.State == game.LancerDone {
			continue
		}
		for _, p := range gw.world.SightCells(l) {
			sx, sy, s := gw.cell(p)
			vector.FillRect(screen, sx, sy, s, s, colSight, false)
		}
	}
}

func (gw *GameWindow) drawActors(screen *ebiten.Image) {
	for _, l := range gw.world.Lancers() {
		c := colLancer
		if l.State == game.LancerTriggered || l.State == game.LancerChasing {
			c = colLancerHot
		}
		gw.drawActor(screen, l.Actor, c)
	}
	gw.drawActor(screen, gw.world.Player(), colPlayer)
}

// drawActor renders the body square plus a facing wedge on the leading
// edge, scaled slightly when running.
func (gw *GameWindow) drawActor(screen *ebiten.Image, a *game.Actor, body color.RGBA) {
	tile := float32(gw.world.Params().TileSize)
	sub := a.SubPosition()
	sx := float32(sub.X-gw.camX) + tile*0.15
	sy := float32(sub.Y-gw.camY) + tile*0.15
	size := tile * 0.7

	vector.FillRect(screen, sx, sy, size, size, body, false)

	wedge := size / 4
	if a.Surface().Status == game.MotionRunning {
		wedge = size / 3
	}
	cx := sx + size/2
	cy := sy + size/2
	var wx, wy float32
	switch a.Direction() {
	case game.DirDown:
		wx, wy = cx, sy+size
	case game.DirUp:
		wx, wy = cx, sy
	case game.DirLeft:
		wx, wy = sx, cy
	case game.DirRight:
		wx, wy = sx+size, cy
	}
	vector.FillCircle(screen, wx, wy, wedge/2, color.RGBA{R: 250, G: 250, B: 250, A: 255}, false)
}

func (gw *GameWindow) drawOverlays(screen *ebiten.Image) {
	for _, o := range gw.world.Events().Entries() {
		switch o.Kind {
		case game.OverlayAlert:
			gw.drawAlertMark(screen, o)
		case game.OverlayPauseMenu:
			gw.drawPanel(screen, "PAUSED", "space: resume   q: quit")
		case game.OverlayCaughtDialog:
			gw.drawPanel(screen, "you were caught!", "space: continue")
		case game.OverlayBattle:
			gw.drawPanel(screen, "BATTLE", "space: continue")
		}
	}
}

// drawAlertMark renders the exclamation mark above the triggered
// lancer, sinking toward the head as the timer runs out.
func (gw *GameWindow) drawAlertMark(screen *ebiten.Image, o *game.Overlay) {
	if o.Lancer == nil {
		return
	}
	tile := float32(gw.world.Params().TileSize)
	sub := o.Lancer.Actor.SubPosition()
	cx := float32(sub.X-gw.camX) + tile/2
	top := float32(sub.Y-gw.camY) - tile*0.8*(1-float32(o.Progress())*0.5)

	barH := tile * 0.45
	vector.FillRect(screen, cx-tile/16, top, tile/8, barH, colAlert, false)
	vector.FillCircle(screen, cx, top+barH+tile/8, tile/12, colAlert, false)
}

func (gw *GameWindow) drawPanel(screen *ebiten.Image, title, hint string) {
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	pw := w * 0.5
	ph := h * 0.25
	px := (w - pw) / 2
	py := (h - ph) / 2

	vector.FillRect(screen, px, py, pw, ph, colPanel, false)
	vector.StrokeRect(screen, px, py, pw, ph, 1.5, colPanelEdge, false)

	face := basicfont.Face7x13
	tx := int(px) + 16
	ty := int(py) + 28
	text.Draw(screen, title, face, tx, ty, colText)
	text.Draw(screen, hint, face, tx, ty+24, colText)
}

func (gw *GameWindow) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, gw.hudText(), 6, 4)
}
