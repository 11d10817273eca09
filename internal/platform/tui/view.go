package tui

import (
	"fmt"
	"strings"

	"github.com/antonvlasov/swoop/internal/core"
	"github.com/antonvlasov/swoop/internal/sim"
)

// Obstacle theme colors, keyed by the phase tag frozen into each obstacle.
var tagColors = map[string]core.Color{
	"meadow": core.ColorGreen,
	"forest": core.ColorYellow,
	"canyon": core.ColorOrange,
	"storm":  core.ColorBrightMagenta,
}

// viewport projects world coordinates onto the terminal grid.
// The world has a fixed size regardless of the terminal, so gameplay
// is identical at any window size.
type viewport struct {
	screenW, screenH int
	worldW, worldH   float64
}

func newViewport(screenW, screenH int, worldW, worldH float64) viewport {
	return viewport{screenW: screenW, screenH: screenH, worldW: worldW, worldH: worldH}
}

func (v viewport) toScreenX(wx float64) int {
	return int(wx / v.worldW * float64(v.screenW))
}

func (v viewport) toScreenY(wy float64) int {
	return int(wy / v.worldH * float64(v.screenH))
}

// drawGame renders the full simulation state into the screen buffer.
// hidePlayer is set on invulnerability blink frames.
func drawGame(dst *core.Screen, g *sim.Game, hidePlayer bool) {
	dst.Clear()

	cfg := g.Config()
	v := newViewport(dst.Width(), dst.Height(), cfg.World.Width, cfg.World.Height)

	drawGround(dst, v, cfg.World.GroundLevel())

	for _, o := range g.Obstacles() {
		drawObstacle(dst, v, o, cfg.World.GroundLevel())
	}

	if !hidePlayer {
		drawPlayer(dst, v, g)
	}

	drawHUD(dst, g)
}

func drawGround(dst *core.Screen, v viewport, groundLevel float64) {
	gy := v.toScreenY(groundLevel)
	if gy >= dst.Height() {
		gy = dst.Height() - 1
	}
	dst.DrawHLine(0, gy, dst.Width(), '▔')
	for y := gy + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), '░')
	}
}

func drawObstacle(dst *core.Screen, v viewport, o sim.Obstacle, groundLevel float64) {
	color, ok := tagColors[o.Tag]
	if !ok {
		color = core.ColorGreen
	}

	x0 := v.toScreenX(o.X)
	x1 := v.toScreenX(o.Right())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	gapTop := v.toScreenY(o.GapCenterY - o.GapSize/2)
	gapBottom := v.toScreenY(o.GapCenterY + o.GapSize/2)
	groundY := v.toScreenY(groundLevel)

	w := x1 - x0
	// Top section hangs from the ceiling down to the gap.
	for y := 0; y < gapTop; y++ {
		dst.DrawHLine(x0, y, w, '█')
	}
	if gapTop > 0 {
		dst.DrawHLine(x0, gapTop-1, w, '▄')
	}
	// Bottom section stands on the ground.
	for y := gapBottom + 1; y < groundY; y++ {
		dst.DrawHLine(x0, y, w, '█')
	}
	if gapBottom+1 < groundY {
		dst.DrawHLine(x0, gapBottom+1, w, '▀')
	}

	// Recolor the section cells; DrawHLine writes default color.
	for y := 0; y < groundY; y++ {
		if y >= gapTop && y <= gapBottom {
			continue
		}
		for x := x0; x < x1; x++ {
			dst.SetColored(x, y, dst.Get(x, y), color)
		}
	}
}

func drawPlayer(dst *core.Screen, v viewport, g *sim.Game) {
	body := g.Body()
	px := v.toScreenX(body.X)
	py := v.toScreenY(body.DisplayY())

	color := core.ColorBrightYellow
	if g.Invulnerable() {
		color = core.ColorBrightWhite
	}
	dst.SetColored(px, py, '●', color)
	// Sprite is wider than a cell on wide terminals.
	if v.screenW >= 60 {
		dst.SetColored(px-1, py, '(', color)
		dst.SetColored(px+1, py, '>', color)
	}
}

func drawHUD(dst *core.Screen, g *sim.Game) {
	score := fmt.Sprintf(" Score: %d  Best: %d ", g.Score(), g.BestScore())
	dst.DrawTextColored(2, 0, score, core.ColorBrightWhite)

	phase := fmt.Sprintf(" %s ", strings.ToUpper(g.PhaseParams().Tag))
	phaseColor, ok := tagColors[g.PhaseParams().Tag]
	if !ok {
		phaseColor = core.ColorGreen
	}
	dst.DrawTextColored(dst.Width()-len(phase)-2, 0, phase, phaseColor)

	hearts := heartsLine(g.Lives(), g.MaxLives())
	dst.DrawText(2, 1, hearts)
	for i := 0; i < g.MaxLives(); i++ {
		c := core.ColorGray
		if i < g.Lives() {
			c = core.ColorBrightRed
		}
		dst.SetColored(2+i*2, 1, dst.Get(2+i*2, 1), c)
	}

	if streak := g.Streak(); streak >= 3 {
		dst.DrawTextColored(2, 2, fmt.Sprintf("streak x%d", streak), core.ColorBrightCyan)
	}
}

func heartsLine(lives, maxLives int) string {
	var sb strings.Builder
	for i := 0; i < maxLives; i++ {
		if i > 0 {
			sb.WriteRune(' ')
		}
		if i < lives {
			sb.WriteRune('♥')
		} else {
			sb.WriteRune('♡')
		}
	}
	return sb.String()
}

// drawCenteredMessage draws a boxed message in the center of the screen.
// Lines after the first render two rows below the title.
func drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := len(title)
	for _, l := range lines {
		boxW = core.Max(boxW, len(l))
	}
	boxW += 4
	boxH := 4 + len(lines)
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	for i, l := range lines {
		dst.DrawText(boxX+(boxW-len(l))/2, boxY+3+i, l)
	}
}
