// Package window is the desktop frontend: an ebiten window that draws the
// game from image assets and reads the keyboard every tick.
package window

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/patricklapgar/Space-Shooter-Game/internal/assets"
	"github.com/patricklapgar/Space-Shooter-Game/internal/audio"
	"github.com/patricklapgar/Space-Shooter-Game/internal/config"
	"github.com/patricklapgar/Space-Shooter-Game/internal/core"
	"github.com/patricklapgar/Space-Shooter-Game/internal/games/invaders"
	"github.com/patricklapgar/Space-Shooter-Game/internal/storage"
)

// textScale enlarges the bitmap font, which is 12 pixels high.
const textScale = 2

// Options configures the window frontend.
type Options struct {
	Rules      config.InvadersConfig // Window profile with the preset applied
	Difficulty config.DifficultyPreset
	Player     string
	AssetsDir  string  // Empty uses the built-in sprites
	Scale      float64 // Window size relative to the field
	TickRate   int
	Seed       int64 // 0 picks a new seed for every game
	Store      *storage.Store
	Sound      *audio.SoundManager
	Logger     *log.Logger
}

type phase int

const (
	phaseTitle phase = iota
	phasePlaying
)

// Game implements ebiten.Game around an invaders session.
type Game struct {
	opts       Options
	game       *invaders.Game
	images     map[invaders.SpriteID]*ebiten.Image
	background *ebiten.Image
	face       text.Face
	phase      phase
	runSaved   bool
	highScore  int
}

// New loads the assets and prepares the title screen.
func New(opts Options) (*Game, error) {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	set, err := loadAssets(opts)
	if err != nil {
		return nil, err
	}
	sprites, err := set.Sprites()
	if err != nil {
		return nil, err
	}

	g := &Game{
		opts:       opts,
		game:       invaders.New(invaders.WithConfig(opts.Rules), invaders.WithSprites(sprites)),
		images:     make(map[invaders.SpriteID]*ebiten.Image, len(set.Images)),
		background: ebiten.NewImageFromImage(set.Background),
		face:       text.NewGoXFace(bitmapfont.Face),
	}
	for id, img := range set.Images {
		g.images[id] = ebiten.NewImageFromImage(img)
	}
	g.loadHighScore()

	if opts.Logger != nil {
		opts.Logger.Info("assets loaded", "source", set.Source)
	}
	return g, nil
}

func loadAssets(opts Options) (*assets.Set, error) {
	if opts.AssetsDir != "" {
		return assets.LoadDir(opts.AssetsDir)
	}
	return assets.Builtin(opts.Rules.Field.Width, opts.Rules.Field.Height, opts.Seed), nil
}

// Update advances one tick. It is called TickRate times per second.
func (g *Game) Update() error {
	if g.phase == phaseTitle {
		if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.start()
		}
		return nil
	}

	return g.step(readInput(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed))
}

// step runs one tick of play with the given input.
func (g *Game) step(in core.InputFrame) error {
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	state := g.game.State()
	switch {
	case state.GameOver && in.Has(core.ActionRestart):
		g.start()
		return nil
	case (state.GameOver || state.Paused) && in.Has(core.ActionBack):
		g.toTitle()
		return nil
	}

	result := g.game.Step(in)
	g.opts.Sound.HandleEvents(result.Events)

	if result.State.GameOver && !g.runSaved {
		g.saveRun()
		g.runSaved = true
	}
	if result.State.Done {
		g.toTitle()
	}
	return nil
}

// start begins a new game.
func (g *Game) start() {
	seed := g.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	field := g.field()
	g.game.Reset(core.RuntimeConfig{
		ScreenW:  field.W,
		ScreenH:  field.H,
		TickRate: g.opts.TickRate,
		Seed:     seed,
	})
	g.runSaved = false
	g.phase = phasePlaying
}

func (g *Game) toTitle() {
	g.phase = phaseTitle
	g.loadHighScore()
}

// field is the play area, falling back to the window profile size.
func (g *Game) field() core.Field {
	f := core.Field{W: g.opts.Rules.Field.Width, H: g.opts.Rules.Field.Height}
	if f.W <= 0 || f.H <= 0 {
		def := config.DefaultWindowConfig().Field
		f = core.Field{W: def.Width, H: def.Height}
	}
	return f
}

func (g *Game) saveRun() {
	if g.opts.Store == nil {
		return
	}

	snap := g.game.Snapshot()
	_, err := g.opts.Store.SaveRun(storage.Run{
		Player:        g.opts.Player,
		Difficulty:    string(g.opts.Difficulty),
		Score:         snap.Score,
		Level:         snap.Level,
		Kills:         snap.Kills,
		LivesLeft:     max(snap.Lives, 0),
		DurationTicks: snap.Tick,
	})
	if g.opts.Logger == nil {
		return
	}
	if err != nil {
		g.opts.Logger.Warn("could not save run", "error", err)
		return
	}
	g.opts.Logger.Info("run finished", "score", snap.Score, "level", snap.Level, "kills", snap.Kills)
}

func (g *Game) loadHighScore() {
	if g.opts.Store == nil {
		return
	}
	if best, err := g.opts.Store.HighScore(string(g.opts.Difficulty)); err == nil {
		g.highScore = best
	}
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)

	field := g.field()
	if g.phase == phaseTitle {
		g.drawLines(screen, titleLines(string(g.opts.Difficulty), g.highScore), field, colorText)
		return
	}

	snap := g.game.Snapshot()
	for _, e := range snap.Enemies {
		g.drawSprite(screen, e)
	}
	for _, l := range snap.Lasers {
		g.drawSprite(screen, l)
	}
	g.drawSprite(screen, snap.Player)
	g.drawHealthBar(screen, snap)

	g.drawText(screen, livesText(snap), hudMargin, hudMargin, text.AlignStart, colorText)
	g.drawText(screen, scoreText(snap), float64(field.W)/2, hudMargin, text.AlignCenter, colorScore)
	g.drawText(screen, levelText(snap), float64(field.W-hudMargin), hudMargin, text.AlignEnd, colorText)

	if lines := overlayLines(snap, g.opts.TickRate); lines != nil {
		clr := color.Color(colorText)
		if snap.State != invaders.StatePaused {
			clr = colorLost
		}
		g.drawLines(screen, lines, field, clr)
	}
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	field := g.field()
	b := g.background.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(field.W)/float64(b.Dx()), float64(field.H)/float64(b.Dy()))
	screen.DrawImage(g.background, op)
}

func (g *Game) drawSprite(screen *ebiten.Image, v invaders.EntityView) {
	img, ok := g.images[v.Sprite]
	if !ok {
		return
	}
	x, y := core.Vec{X: v.X, Y: v.Y}.Pixel()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, op)
}

func (g *Game) drawHealthBar(screen *ebiten.Image, snap invaders.Snapshot) {
	b := g.images[invaders.SpritePlayer].Bounds()
	bar := playerHealthBar(snap, b.Dx(), b.Dy(), g.opts.Rules.Player.HealthBarGap)
	if !bar.Visible {
		return
	}
	vector.DrawFilledRect(screen, bar.X, bar.Y, bar.W, bar.H, colorBarLost, false)
	if bar.Filled > 0 {
		vector.DrawFilledRect(screen, bar.X, bar.Y, bar.Filled, bar.H, colorBarFull, false)
	}
}

// drawLines centers lines as a block in the field.
func (g *Game) drawLines(screen *ebiten.Image, lines []string, field core.Field, clr color.Color) {
	lineH := g.face.Metrics().HAscent + g.face.Metrics().HDescent
	lineH = lineH*textScale + 8
	y := (float64(field.H) - lineH*float64(len(lines))) / 2
	for i, line := range lines {
		c := clr
		if i > 0 {
			c = colorDim
		}
		g.drawText(screen, line, float64(field.W)/2, y+lineH*float64(i), text.AlignCenter, c)
	}
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y float64, align text.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = align
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, g.face, op)
}

// Layout fixes the logical screen to the field size; ebiten scales it to
// the window.
func (g *Game) Layout(_, _ int) (int, int) {
	f := g.field()
	return f.W, f.H
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g, err := New(opts)
	if err != nil {
		return err
	}

	field := g.field()
	ebiten.SetWindowSize(int(float64(field.W)*g.opts.Scale), int(float64(field.H)*g.opts.Scale))
	ebiten.SetWindowTitle(g.game.Title())
	ebiten.SetTPS(g.opts.TickRate)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
