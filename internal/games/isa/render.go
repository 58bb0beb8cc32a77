package isa

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/isa-quest/internal/core"
	"github.com/vovakirdan/isa-quest/internal/economy"
)

const (
	runeWall     = '█'
	runeTerminal = '▒'
	runeCoin     = '$'
	runePlayer   = '@'

	panelTitle    = " ISA Provider "
	panelMinWidth = 30
)

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.mode == nil {
		return
	}
	g.mode.render(g, dst)

	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// camera returns the world cell shown at the top-left of dst. The view
// follows the player and stops at the world edges.
func (g *Game) camera(dst *core.Screen) (int, int) {
	layout := g.world.Layout()
	px, py := g.world.Player().Body.Center()

	offX := core.Clamp(int(px)-dst.Width()/2, 0, max(int(layout.Width)-dst.Width(), 0))
	offY := core.Clamp(int(py)-dst.Height()/2, 0, max(int(layout.Height)-dst.Height(), 0))
	return offX, offY
}

// renderWorld draws walls, the terminal, coins and the player.
func (g *Game) renderWorld(dst *core.Screen) {
	offX, offY := g.camera(dst)
	layout := g.world.Layout()

	for _, wall := range layout.Walls {
		dst.FillBox(wall, offX, offY, runeWall, core.ColorWall)
	}
	dst.FillBox(layout.Terminal, offX, offY, runeTerminal, core.ColorTerminal)
	for _, coin := range g.world.Coins() {
		dst.FillBox(coin, offX, offY, runeCoin, core.ColorCoin)
	}
	dst.FillBox(g.world.Player().Body, offX, offY, runePlayer, core.ColorPlayer)
}

// hudText returns the status lines shown over the room.
func (g *Game) hudText() string {
	if !g.economyEnabled() {
		return fmt.Sprintf("Money: %s\n", economy.FormatMoney(g.accounts.Current))
	}
	return fmt.Sprintf("Year: %d\nCurrent account: %s\nStocks and shares ISA: %s\n",
		g.clock.Year(),
		economy.FormatMoney(g.accounts.Current),
		economy.FormatMoney(g.accounts.ISA))
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawLines(1, 0, g.hudText(), core.ColorHUD)
}

// renderTerminal draws the terminal screen as a framed panel in the middle
// of the view.
func (g *Game) renderTerminal(dst *core.Screen) {
	text := g.terminal.Text(g.accounts)
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")

	width := panelMinWidth
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line)+4)
	}
	height := len(lines) + 4

	x := max((dst.Width()-width)/2, 0)
	y := max((dst.Height()-height)/2, 0)

	dst.DrawFrame(x, y, width, height, core.ColorPanel)
	dst.DrawTextColored(x+2, y, panelTitle, core.ColorHUD)
	dst.DrawLines(x+2, y+2, text, core.ColorPanel)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, title, subtitle string) {
	width := max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 6
	height := 4
	x := max((dst.Width()-width)/2, 0)
	y := max((dst.Height()-height)/2, 0)

	dst.DrawFrame(x, y, width, height, core.ColorHUD)
	dst.DrawTextColored(x+(width-utf8.RuneCountInString(title))/2, y+1, title, core.ColorHUD)
	dst.DrawTextColored(x+(width-utf8.RuneCountInString(subtitle))/2, y+2, subtitle, core.ColorGray)
}
