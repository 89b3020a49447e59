package invaders

import (
	"fmt"
	"math"

	"github.com/patricklapgar/Space-Shooter-Game/internal/core"
)

// Visual characters for rendering
const (
	StarChar       = '·'
	BrightStarChar = '*'
	HealthFullChar = '█'
	HealthLostChar = '░'
)

// Render draws the current game state to the screen. It only reads game
// state; the star backdrop is built on the first call after a Reset.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	for _, s := range g.backdrop() {
		if s.bright {
			dst.SetWithColor(s.x, s.y, BrightStarChar, core.ColorGray)
		} else {
			dst.SetWithColor(s.x, s.y, StarChar, core.ColorDarkGray)
		}
	}

	for _, e := range g.enemies {
		drawSprite(dst, e.Sprite(), e.Pos)
		for _, l := range e.Lasers {
			drawSprite(dst, l.Sprite, l.Pos)
		}
	}
	for _, l := range g.player.Lasers {
		drawSprite(dst, l.Sprite, l.Pos)
	}
	drawSprite(dst, SpritePlayer, g.player.Pos)
	g.drawHealthBar(dst)
	g.drawHUD(dst)

	switch g.state {
	case StatePaused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorBrightYellow)
	case StateLost, StateQuit:
		left := g.Snapshot().RemainingGraceSeconds(g.runtime.TickRate)
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  R to restart  |  closing in %ds", g.score, left),
			core.ColorBrightRed)
	}
}

// drawSprite paints the glyph rows of id with their top-left at pos.
func drawSprite(dst *core.Screen, id SpriteID, pos core.Vec) {
	x, y := pos.Pixel()
	c := id.Color()
	for dy, row := range Glyphs[id] {
		dx := 0
		for _, r := range row {
			if r != ' ' {
				dst.SetWithColor(x+dx, y+dy, r, c)
			}
			dx++
		}
	}
}

// drawHealthBar draws a red bar the width of the ship under it, overlaid
// by a green bar proportional to remaining health.
func (g *Game) drawHealthBar(dst *core.Screen) {
	x, y := g.player.Pos.Pixel()
	y += g.player.Height()
	w := g.player.Width()
	green := int(math.Round(float64(w) * g.player.HealthRatio()))

	dst.DrawHLine(x, y, w, HealthLostChar, core.ColorRed)
	dst.DrawHLine(x, y, green, HealthFullChar, core.ColorGreen)
}

func (g *Game) drawHUD(dst *core.Screen) {
	lives := fmt.Sprintf(" Lives: %d ", g.lives)
	level := fmt.Sprintf(" Level: %d ", g.waves.Level)
	score := fmt.Sprintf(" Score: %d ", g.score)

	dst.DrawTextWithColor(1, 0, lives, core.ColorWhite)
	dst.DrawTextWithColor(dst.Width()-len(level)-1, 0, level, core.ColorWhite)
	dst.DrawTextCentered(0, score, core.ColorBrightYellow)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), c)

	dst.DrawTextWithColor(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, c)
	dst.DrawTextWithColor(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle, core.ColorWhite)
}
