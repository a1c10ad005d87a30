package mazechase

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/games/mazechase/sim"
)

// Each maze tile is drawn two cells wide so the board looks square.
const cellW = 2

// Super-dots blink every superBlink ticks of play.
const superBlink = 16

// hudRows is the HUD line on top plus the status line below the maze.
const hudRows = 2

var bonusColors = map[string]core.Color{
	"cherry":     core.ColorBrightRed,
	"strawberry": core.ColorPink,
	"orange":     core.ColorOrange,
	"apple":      core.ColorBrightGreen,
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		msg := "No session"
		if g.err != nil {
			msg = g.err.Error()
		}
		g.renderOverlay(dst, "Cannot start", msg)
		return
	}

	f := g.session.Frame()
	needW := f.Width * cellW
	needH := f.Height + hudRows
	if dst.Width() < needW || dst.Height() < needH {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", needW, needH))
		return
	}

	offX := (dst.Width() - needW) / 2
	offY := (dst.Height()-needH)/2 + 1

	g.renderHUD(dst, f, offX, offY-1)
	renderTiles(dst, f, offX, offY)
	renderItems(dst, f, offX, offY)
	renderPursuers(dst, f, offX, offY)
	renderPlayer(dst, f, offX, offY)

	status := offY + f.Height
	if f.DeathMessage {
		dst.DrawTextCentered(status, "Caught! Get ready...", core.ColorBrightRed)
	} else if f.PowerLeft > 0 {
		dst.DrawTextCentered(status, fmt.Sprintf("POWER %d", f.PowerLeft), core.ColorBrightCyan)
	}

	switch f.State {
	case sim.StateWelcome:
		g.renderOverlay(dst, g.Title(), "Press Enter to start")
	case sim.StatePaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case sim.StateGameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score %d - press R to restart", f.Score))
	}
}

func (g *Game) renderHUD(dst *core.Screen, f sim.Frame, x, y int) {
	hud := fmt.Sprintf("Score: %d  Level: %d  Lives: %d", f.Score, f.Level, f.Lives)
	dst.DrawTextColored(x, y, hud, core.ColorBrightWhite)
}

func renderTiles(dst *core.Screen, f sim.Frame, offX, offY int) {
	for row, line := range f.Tiles {
		for col, kind := range line {
			r, c := tileGlyph(kind)
			x := offX + col*cellW
			dst.SetColored(x, offY+row, r, c)
			dst.SetColored(x+1, offY+row, r, c)
		}
	}
}

func tileGlyph(k sim.TileKind) (rune, core.Color) {
	switch k {
	case sim.TileWall:
		return '█', core.ColorBlue
	case sim.TilePortalBlocker:
		return '▒', core.ColorBlue
	case sim.TileGhostDoor:
		return '─', core.ColorPink
	case sim.TilePortal:
		return '░', core.ColorCyan
	default:
		return ' ', core.ColorDefault
	}
}

func renderItems(dst *core.Screen, f sim.Frame, offX, offY int) {
	for _, it := range f.Items {
		x := offX + it.Tile.Col*cellW
		y := offY + it.Tile.Row
		switch it.Kind {
		case sim.CollectDot:
			if !it.Consumed {
				dst.SetColored(x, y, '·', core.ColorWhite)
			}
		case sim.CollectSuperDot:
			if !it.Consumed {
				r := '●'
				if (f.Clock/superBlink)%2 == 1 {
					r = '•'
				}
				dst.SetColored(x, y, r, core.ColorBrightWhite)
			}
		case sim.CollectBonus:
			if it.Consumed {
				// Point popup while the eaten animation runs
				if it.AnimLeft > 0 {
					dst.DrawTextColored(x, y, fmt.Sprint(it.Points), core.ColorBrightCyan)
				}
				continue
			}
			c, ok := bonusColors[it.Label]
			if !ok {
				c = core.ColorBrightMagenta
			}
			dst.SetColored(x, y, '%', c)
		}
	}
}

func renderPursuers(dst *core.Screen, f sim.Frame, offX, offY int) {
	for _, p := range f.Pursuers {
		c := core.ColorFromHex(p.Color, core.ColorBrightWhite)
		if f.Player.Empowered && p.State == sim.PursuerActive {
			c = core.ColorBrightBlue
		}
		dst.SetColored(offX+p.Tile.Col*cellW, offY+p.Tile.Row, 'M', c)
	}
}

func renderPlayer(dst *core.Screen, f sim.Frame, offX, offY int) {
	p := f.Player
	r := 'O'
	if p.MouthOpen {
		switch p.Facing {
		case sim.DirUp:
			r = 'V'
		case sim.DirDown:
			r = 'Λ'
		case sim.DirLeft:
			r = '>'
		default:
			r = '<'
		}
	}
	c := core.ColorYellow
	if p.Empowered {
		c = core.ColorBrightYellow
	}
	dst.SetColored(offX+p.Tile.Col*cellW, offY+p.Tile.Row, r, c)
}

func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(utf8.RuneCountInString(line1), utf8.RuneCountInString(line2)) + 4
	screen := core.NewRect(0, 0, dst.Width(), dst.Height())
	box := screen.Centered(min(boxW, dst.Width()), 5)

	dst.DrawBox(box, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorWhite)
}
