package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/patricklapgar/Space-Shooter-Game/internal/audio"
	"github.com/patricklapgar/Space-Shooter-Game/internal/config"
	"github.com/patricklapgar/Space-Shooter-Game/internal/core"
	"github.com/patricklapgar/Space-Shooter-Game/internal/games/invaders"
	"github.com/patricklapgar/Space-Shooter-Game/internal/storage"
)

// PlayOptions describes one play session.
type PlayOptions struct {
	Rules        config.InvadersConfig // Terminal profile with the preset applied
	Difficulty   config.DifficultyPreset
	Player       string
	Sound        *audio.SoundManager // nil plays silently
	Logger       *log.Logger         // nil disables logging
	ReturnToMenu bool                // End of session goes back to the menu instead of exiting
}

// GameModel is the Bubble Tea model running one game of invaders.
type GameModel struct {
	game       *invaders.Game
	screen     *core.Screen
	store      *storage.Store
	opts       PlayOptions
	config     core.RuntimeConfig
	seed       int64 // Requested seed; 0 picks a new one for every game
	keyMapper  *KeyMapper
	holds      *HoldTracker
	pending    core.InputFrame // One-shot actions since the last tick
	ticks      int
	gameState  core.GameState
	runSaved   bool // Whether the run has been saved for the current game over
	embedded   bool // Driven by a parent model that owns the program
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a new Bubble Tea model for a game.
func NewGameModel(opts PlayOptions, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	seed := cfg.Seed
	cfg.Seed = nextSeed(seed)

	return GameModel{
		seed:      seed,
		game:      invaders.New(invaders.WithConfig(opts.Rules)),
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		opts:      opts,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		holds:     NewHoldTracker(DefaultHoldTicks),
		pending:   core.NewInputFrame(),
	}
}

// nextSeed returns seed, or a time-based one when seed is 0.
func nextSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			return m.leave()
		}
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.pending.Set(action)
		}
	default:
		if holdable(action) {
			m.holds.Press(action, m.ticks)
		} else {
			m.pending.Set(action)
		}
	}

	return m, nil
}

// handleResize processes window resize events. The field is sized when a
// game starts, so a resize only restarts a game that has not begun.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.game.State().Level == 0 {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.pending.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = nextSeed(m.seed)
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.pending.Clear()
		m.holds.Reset()
		return m, tickCmd(m.config.TickRate)
	}

	frame := m.pending.Clone()
	m.holds.Apply(&frame, m.ticks)
	m.pending.Clear()
	m.ticks++

	result := m.game.Step(frame)
	m.gameState = result.State
	m.opts.Sound.HandleEvents(result.Events)

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	if m.gameState.Done {
		return m.leave()
	}

	return m, tickCmd(m.config.TickRate)
}

// leave ends the session, returning to the menu when there is one.
func (m GameModel) leave() (tea.Model, tea.Cmd) {
	if !m.opts.ReturnToMenu {
		m.quitting = true
		return m, tea.Quit
	}

	m.backToMenu = true
	if m.embedded {
		return m, nil
	}
	return m, tea.Quit
}

// saveRun records the finished run. Storage failures never stop the game.
func (m *GameModel) saveRun() {
	if m.store == nil {
		return
	}

	snap := m.game.Snapshot()
	run := storage.Run{
		Player:        m.opts.Player,
		Difficulty:    string(m.opts.Difficulty),
		Score:         snap.Score,
		Level:         snap.Level,
		Kills:         snap.Kills,
		LivesLeft:     max(snap.Lives, 0),
		DurationTicks: snap.Tick,
	}
	if _, err := m.store.SaveRun(run); err != nil && m.opts.Logger != nil {
		m.opts.Logger.Warn("could not save run", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".invaders", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the session ended and the menu should show.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the state after the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// GameResult is how a game program ended.
type GameResult struct {
	State      core.GameState
	BackToMenu bool
}

// Run starts a Bubble Tea program for one game and blocks until it exits.
func Run(opts PlayOptions, store *storage.Store, cfg core.RuntimeConfig) (GameResult, error) {
	model := NewGameModel(opts, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return GameResult{}, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return GameResult{}, nil
	}
	return GameResult{State: m.State(), BackToMenu: m.BackToMenu()}, nil
}
