// Package view draws the game with ebiten: both boards through the scene
// camera, the rocket and its particles, the pop-in message, the HUD and
// the menus.
package view

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/seaboard/battleship/internal/effects"
	"github.com/seaboard/battleship/internal/game"
	"github.com/seaboard/battleship/internal/model"
	"github.com/seaboard/battleship/internal/render"
	"github.com/seaboard/battleship/internal/rocket"
	"github.com/seaboard/battleship/internal/scene"
)

// Panel sizes in cells.
const (
	menuCols  = 40
	menuRows  = 22
	namesCols = 44
	namesRows = 14
	axisLen   = 3.0
)

var axisColors = [3]color.RGBA{
	{0xff, 0x55, 0x55, 0xff},
	{0x55, 0xff, 0x55, 0xff},
	{0x55, 0x55, 0xff, 0xff},
}

// View renders one Logic.
type View struct {
	logic    *game.Logic
	model    *model.Model
	scene    *scene.Scene
	fx       *effects.System
	renderer *render.GridRenderer
	cellPx   int

	boards [2]*render.CellBuffer
	hud    *render.CellBuffer
	menu   *render.CellBuffer
	names  *render.CellBuffer

	last model.GameState
}

// New builds a view. cellPx is the size of a HUD cell in pixels and the
// board cell size before zoom.
func New(l *game.Logic, sc *scene.Scene, fx *effects.System, cellPx int) *View {
	atlas := render.NewFontAtlas()
	w, h := sc.Size()
	return &View{
		logic:    l,
		model:    l.Model(),
		scene:    sc,
		fx:       fx,
		renderer: render.NewGridRenderer(atlas, cellPx, cellPx),
		cellPx:   cellPx,
		boards:   [2]*render.CellBuffer{render.NewBoardBuffer(), render.NewBoardBuffer()},
		hud:      render.NewCellBuffer(w/cellPx, h/cellPx),
		menu:     render.NewCellBuffer(menuCols, menuRows),
		names:    render.NewCellBuffer(namesCols, namesRows),
		last:     l.Model().State,
	}
}

// Resize follows the window size.
func (v *View) Resize(w, h int) {
	if cw, ch := v.scene.Size(); cw == w && ch == h {
		return
	}
	v.scene.SetSize(w, h)
	v.hud = render.NewCellBuffer(w/v.cellPx, h/v.cellPx)
	v.scene.Refresh()
}

// Update emits particles for this tick and ages the old ones.
func (v *View) Update() {
	md := v.model
	r := v.scene.Rocket()
	if md.State == model.StateFireing && !r.Stopped() {
		v.fx.Exhaust(r.Loc(), r.Dir(), md.Options.Rocket)
	}
	if v.last == model.StateFireing && md.State == model.StateMessage {
		p := md.Current()
		v.fx.Impact(scene.OpponentBoardX+float64(p.SelX)+0.5, float64(p.SelY)+0.5, md.Message.Kind != model.GridMiss)
	}
	if md.State == model.StateInit {
		v.fx.Clear()
	}
	v.last = md.State
	v.fx.Tick()
}

// Draw renders the frame.
func (v *View) Draw(screen *ebiten.Image) {
	screen.Fill(render.Palette[render.ColorBlack])
	v.scene.TakeDirty()

	md := v.model
	proj := v.scene.Projector(float64(v.cellPx) * 2)
	alpha := 1.0
	if v.logic.Menu().Open() {
		alpha = 0.35
	}

	if md.State != model.StateInit {
		v.drawBoard(screen, proj, md.Curr, scene.OwnBoardX, alpha)
		v.drawBoard(screen, proj, 1-md.Curr, scene.OpponentBoardX, alpha)
		v.drawRocket(screen, proj)
		v.drawEffects(screen, proj)
	}
	if md.Lines {
		v.drawAxes(screen, proj)
	}
	if md.State == model.StateMessage || md.State == model.StateGameOver {
		v.drawMessage(screen)
	}

	v.renderHUD()
	v.renderer.Draw(screen, v.hud)

	m := v.logic.Menu()
	if m.Open() {
		render.RenderMenu(v.menu, m)
		v.drawPanel(screen, v.menu)
		if ns := m.Names(); ns.Enabled {
			render.RenderNames(v.names, ns)
			v.drawPanel(screen, v.names)
		}
	}
}

func (v *View) drawBoard(screen *ebiten.Image, proj scene.Projector, p int, worldX, alpha float64) {
	md := v.model
	pl := &md.Players[p]
	bv := render.BoardView{
		Player:    pl,
		ShowShips: v.showShips(p),
		Fog:       md.Options.Fog,
		FogSeed:   md.Options.FogSeed + int64(p),
	}
	switch md.State {
	case model.StatePlaceShips:
		bv.Placing = p == md.Curr
	case model.StatePlaying, model.StateAIPlaying:
		if p != md.Curr {
			shooter := md.Current()
			bv.Cursor, bv.CursorX, bv.CursorY = true, shooter.SelX, shooter.SelY
		}
	}
	buf := v.boards[p]
	render.RenderBoard(buf, bv)

	a, b, c, d, tx, ty := proj.Plane(worldX-render.BoardOffsetX, -render.BoardOffsetY)
	var geo ebiten.GeoM
	geo.SetElement(0, 0, a)
	geo.SetElement(0, 1, b)
	geo.SetElement(0, 2, tx)
	geo.SetElement(1, 0, c)
	geo.SetElement(1, 1, d)
	geo.SetElement(1, 2, ty)
	v.renderer.DrawAt(screen, buf, geo, alpha)

	fg := uint8(render.ColorLightGray)
	if p == md.Curr {
		fg = render.ColorWhite
	}
	v.renderer.DrawText(screen, pl.Name, render.BoardOffsetX, -1.2, 1, fg, geo)
}

// showShips decides whether p's unhit ships are visible. Hidden fleets
// still show to their own human player and once the game is over.
func (v *View) showShips(p int) bool {
	md := v.model
	pl := &md.Players[p]
	switch {
	case !pl.Fog, md.State == model.StateGameOver || md.GameOver:
		return true
	case p == md.Curr && !pl.AI.IsAI():
		return md.State != model.StateTransition
	}
	return false
}

func (v *View) drawRocket(screen *ebiten.Image, proj scene.Projector) {
	md := v.model
	r := v.scene.Rocket()
	if md.State != model.StateFireing || md.Options.Rocket.Path == model.RocketOff || len(r.Path()) == 0 {
		return
	}
	opts := md.Options.Rocket
	if opts.ShowPath {
		pts := r.Sample()
		for i := 1; i < len(pts); i++ {
			x0, y0 := proj.Project(pts[i-1])
			x1, y1 := proj.Project(pts[i])
			vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, render.Palette[render.ColorDarkGray], true)
		}
	}
	if r.Stopped() {
		return
	}
	loc := r.Loc()
	dir := r.Dir()
	tail := rocket.Vec{loc[0] - dir[0]*0.3*float64(opts.Size), loc[1] - dir[1]*0.3*float64(opts.Size), loc[2] - dir[2]*0.3*float64(opts.Size)}
	x0, y0 := proj.Project(tail)
	x1, y1 := proj.Project(loc)
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), float32(opts.Size)*2, render.Palette[render.ColorLightGray], true)
	vector.FillCircle(screen, float32(x1), float32(y1), float32(opts.Size)*1.5, render.Palette[render.ColorWhite], true)
}

func (v *View) drawEffects(screen *ebiten.Image, proj scene.Projector) {
	px := float64(v.cellPx) * 2
	v.fx.Each(func(p effects.Position, sp effects.Spark, heat float64) {
		var c uint8
		switch sp.Kind {
		case effects.KindExhaust:
			c = render.FireColor(sp.Colour, heat, sp.Roll)
		case effects.KindBlast:
			c = render.FireColor(model.FireOrange, heat, sp.Roll)
		default:
			c = render.ColorLightCyan
			if sp.Roll < 0.3 {
				c = render.ColorWhite
			}
		}
		x, y := proj.Project(rocket.Vec{p.X, p.Y, p.Z})
		r := float32(max(1, sp.Size*px*(0.3+0.7*heat)))
		vector.FillCircle(screen, float32(x), float32(y), r, render.Fade(c, heat), true)
	})
}

func (v *View) drawAxes(screen *ebiten.Image, proj scene.Projector) {
	ox, oy := proj.Project(rocket.Vec{})
	for axis := range 3 {
		var end rocket.Vec
		end[axis] = axisLen
		x, y := proj.Project(end)
		vector.StrokeLine(screen, float32(ox), float32(oy), float32(x), float32(y), 2, axisColors[axis], true)
	}
}

func (v *View) drawMessage(screen *ebiten.Image) {
	md := v.model
	msg := md.Message
	text := render.MessageText(msg, md.Players[msg.Shooter].Name)
	scale := float64(msg.Size) * 0.8
	if md.State == model.StateGameOver {
		scale = model.MaxMsgSize * 0.8
	}
	geo := v.renderer.CellGeoM()
	w := float64(len(text)) * scale
	x := (float64(v.hud.Cols) - w) / 2
	y := (float64(v.hud.Rows) - scale) / 2
	v.renderer.DrawText(screen, text, x+0.1, y+0.1, scale, render.ColorBlack, geo)
	v.renderer.DrawText(screen, text, x, y, scale, render.MessageColor(msg), geo)
}

func (v *View) drawPanel(screen *ebiten.Image, buf *render.CellBuffer) {
	geo := v.renderer.CellGeoM()
	x := (v.hud.Cols - buf.Cols) / 2
	y := (v.hud.Rows - buf.Rows) / 2
	geo.Translate(float64(x*v.cellPx), float64(y*v.cellPx))

	// opaque backing so the boards do not show through
	vector.FillRect(screen, float32(x*v.cellPx), float32(y*v.cellPx),
		float32(buf.Cols*v.cellPx), float32(buf.Rows*v.cellPx), render.Palette[render.ColorBlack], false)
	v.renderer.DrawAt(screen, buf, geo, 1)
}
