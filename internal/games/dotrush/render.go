package dotrush

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/dot-rush/internal/core"
	"github.com/vovakirdan/dot-rush/internal/sim"
)

// Render draws the current session state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.world.ForEachActive(func(e *sim.Entity) {
		g.drawEntity(dst, e)
	})

	// Crosshair on top of everything in the field.
	dst.SetCell(int(g.crosshair.X), int(g.crosshair.Y), CrosshairChar, core.ColorBrightWhite)

	g.drawHUD(dst)

	if g.debug {
		g.drawDebug(dst)
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Best combo: %d  |  Press R to restart", g.score, g.bestCombo))
	}
}

// drawEntity renders one entity as a glyph cluster proportional to its
// size. Cell coordinates truncate the float simulation position.
func (g *Game) drawEntity(dst *core.Screen, e *sim.Entity) {
	x, y := int(e.Pos.X), int(e.Pos.Y)

	var glyph rune
	var color core.Color
	switch e.Kind {
	case sim.KindBomb:
		glyph, color = BombChar, core.ColorBrightRed
	case sim.KindSlowMo:
		glyph, color = SlowMoChar, core.ColorBrightCyan
	case sim.KindDouble:
		glyph, color = DoubleChar, core.ColorBrightYellow
	default:
		glyph, color = DotChar, e.Color
	}

	dst.SetCell(x, y, glyph, color)

	// Wide entities get horizontal bulk; terminal cells are taller than
	// they are wide, so only the x-axis is padded.
	if e.Size >= 2 {
		dst.SetCell(x-1, y, glyph, color)
		dst.SetCell(x+1, y, glyph, color)
	}
}

// drawHUD renders the status line across the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	target := g.world.TargetColor()

	hud := fmt.Sprintf(" Score: %d  Combo: %d  Lives: %s ",
		g.score, g.combo, strings.Repeat(string(LifeChar), g.lives))
	dst.DrawText(1, 0, hud)

	label := " Target: "
	x := len(hud) + 2
	dst.DrawText(x, 0, label)
	dst.DrawTextColored(x+len(label), 0, "●● "+target.String(), target)
}

// drawDebug renders pool occupancy under the HUD.
func (g *Game) drawDebug(dst *core.Screen) {
	for i, ps := range g.world.Stats() {
		line := fmt.Sprintf(" %s: %d/%d (peak %d) ", ps.Name, ps.Stats.Active, ps.Stats.Max, ps.Stats.Total)
		dst.DrawText(1, 1+i, line)
	}
	dst.DrawText(1, 1+len(g.world.Stats()),
		fmt.Sprintf(" timescale: %.2f  x%d ", g.world.TimeScale(), g.world.ScoreMultiplier()))
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
