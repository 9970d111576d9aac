package view

import (
	"fmt"
	"strings"

	"github.com/seaboard/battleship/internal/game"
	"github.com/seaboard/battleship/internal/model"
	"github.com/seaboard/battleship/internal/render"
)

const logLines = 5

func resultColor(r game.ShotResult) uint8 {
	switch r {
	case game.ShotWin:
		return render.ColorLightGreen
	case game.ShotSunk:
		return render.ColorLightRed
	case game.ShotHit:
		return render.ColorYellow
	default:
		return render.ColorCyan
	}
}

func (v *View) renderHUD() {
	buf := v.hud
	buf.Clear()
	md := v.model

	buf.WriteString(1, 0, model.Name+" "+model.Version, render.ColorWhite, render.ColorBlack)
	if md.State == model.StateInit {
		return
	}

	for i := range md.Players {
		p := &md.Players[i]
		line := fmt.Sprintf("%-9s %-9s H:%2d M:%2d Lost:%d", p.Name, p.AI, p.Hits, p.Misses, p.Sunk)
		fg := uint8(render.ColorLightGray)
		if i == md.Curr {
			fg = render.ColorWhite
		}
		buf.WriteString(buf.Cols-len(line)-1, i, line, fg, render.ColorBlack)
	}

	buf.WriteString(1, 2, v.hint(), render.ColorLightCyan, render.ColorBlack)

	row := buf.Rows - logLines - 1
	for i, e := range v.logic.BattleLog().Recent(logLines) {
		buf.WriteString(1, row+i, e.Text, resultColor(e.Result), render.ColorBlack)
	}
	buf.WriteString(1, buf.Rows-1, "ESC: Options  Ctrl+X/Y/Z: Orbit  Alt+X/Y/Z: Pan  Ctrl+R: Reset view",
		render.ColorDarkGray, render.ColorBlack)
}

func (v *View) hint() string {
	md := v.model
	p := md.Current()
	if md.Demo {
		return "Demo mode. ESC to stop."
	}
	switch md.State {
	case model.StatePlaceShips:
		if i := p.Placing(); i >= 0 {
			return fmt.Sprintf("%s: place your %s. Arrows move, Space rotates, Enter places, Backspace undoes.",
				p.Name, strings.ToLower(p.Ships[i].Type.String()))
		}
	case model.StatePlaying:
		return fmt.Sprintf("%s: pick a target at %s. Arrows aim, Enter fires.", p.Name, game.CellName(p.SelX, p.SelY))
	case model.StateAIPlaying:
		return fmt.Sprintf("%s is aiming...", p.Name)
	case model.StateFireing:
		return fmt.Sprintf("%s fires at %s!", p.Name, game.CellName(p.SelX, p.SelY))
	case model.StateGameOver:
		return "Game over. Enter for the title menu, C copies the battle log."
	}
	return ""
}
