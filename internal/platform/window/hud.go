package window

import (
	"fmt"
	"image/color"

	"github.com/patricklapgar/Space-Shooter-Game/internal/games/invaders"
)

var (
	colorText    = color.White
	colorScore   = color.RGBA{R: 255, G: 230, B: 90, A: 255}
	colorLost    = color.RGBA{R: 255, G: 80, B: 80, A: 255}
	colorBarFull = color.RGBA{G: 255, A: 255}
	colorBarLost = color.RGBA{R: 255, A: 255}
	colorDim     = color.RGBA{R: 160, G: 160, B: 160, A: 255}
)

const (
	hudMargin = 10 // Distance of the HUD from the window edges
	barMargin = 2  // Space between the ship and its health bar
)

func livesText(s invaders.Snapshot) string {
	return fmt.Sprintf("Lives: %d", s.Lives)
}

func levelText(s invaders.Snapshot) string {
	return fmt.Sprintf("Level: %d", s.Level)
}

func scoreText(s invaders.Snapshot) string {
	return fmt.Sprintf("Score: %d", s.Score)
}

// overlayLines returns the centered messages for the end and pause
// screens, or nil during play.
func overlayLines(s invaders.Snapshot, tickRate int) []string {
	switch s.State {
	case invaders.StatePaused:
		return []string{"PAUSED", "P to resume  |  Esc for the title screen"}
	case invaders.StateLost, invaders.StateQuit:
		return []string{
			"You Lost!!",
			fmt.Sprintf("Score: %d  |  R to restart  |  closing in %ds",
				s.Score, s.RemainingGraceSeconds(tickRate)),
		}
	default:
		return nil
	}
}

// healthBar is the bar drawn under the player ship.
type healthBar struct {
	X, Y    float32
	W, H    float32
	Filled  float32 // Width of the remaining-health part
	Visible bool
}

// playerHealthBar places the bar under a ship of size w×h inside the
// gap strip reserved below it.
func playerHealthBar(s invaders.Snapshot, w, h, gap int) healthBar {
	if s.MaxHealth <= 0 {
		return healthBar{}
	}

	barH := max(gap-2*barMargin, 2)
	ratio := float32(max(s.Health, 0)) / float32(s.MaxHealth)
	return healthBar{
		X:       float32(s.Player.X),
		Y:       float32(s.Player.Y) + float32(h+barMargin),
		W:       float32(w),
		H:       float32(barH),
		Filled:  float32(w) * min(ratio, 1),
		Visible: true,
	}
}

// titleLines is the text of the title screen.
func titleLines(difficulty string, highScore int) []string {
	lines := []string{
		"SPACE INVADERS",
		"Press SPACE or click to begin...",
		fmt.Sprintf("Difficulty: %s", difficulty),
	}
	if highScore > 0 {
		lines = append(lines, fmt.Sprintf("High score: %d", highScore))
	}
	return lines
}
