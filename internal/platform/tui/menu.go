package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/patricklapgar/Space-Shooter-Game/internal/config"
	"github.com/patricklapgar/Space-Shooter-Game/internal/core"
	"github.com/patricklapgar/Space-Shooter-Game/internal/storage"
)

// banner is the title art shown above the menu.
var banner = []string{
	"╔═╗╔═╗╔═╗╔═╗╔═╗",
	"╚═╗╠═╝╠═╣║  ║╣ ",
	"╚═╝╩  ╩ ╩╚═╝╚═╝",
	"I N V A D E R S",
}

// MenuItemID identifies a menu entry.
type MenuItemID int

const (
	MenuItemStart MenuItemID = iota
	MenuItemDifficulty
	MenuItemScores
	MenuItemQuit
)

// menuItems lists the entries in display order.
var menuItems = []MenuItemID{MenuItemStart, MenuItemDifficulty, MenuItemScores, MenuItemQuit}

// Presets lists the difficulty presets in the order the menu cycles them.
var Presets = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

var (
	bannerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// MenuModel is the Bubble Tea model for the title screen.
type MenuModel struct {
	cursor         int
	preset         int // Index into Presets
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	start          bool // Set when user starts a game
	openScoreboard bool // True if user asked for the high scores
}

// NewMenuModel creates a new menu model with difficulty preselected.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, difficulty config.DifficultyPreset) MenuModel {
	m := MenuModel{
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	for i, p := range Presets {
		if p == difficulty {
			m.preset = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if menuItems[m.cursor] == MenuItemDifficulty {
			m.preset = (m.preset + len(Presets) - 1) % len(Presets)
		}

	case MenuActionRight:
		if menuItems[m.cursor] == MenuItemDifficulty {
			m.preset = (m.preset + 1) % len(Presets)
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit

	case MenuActionSelect:
		switch menuItems[m.cursor] {
		case MenuItemStart:
			m.start = true
			return m, tea.Quit
		case MenuItemDifficulty:
			m.preset = (m.preset + 1) % len(Presets)
		case MenuItemScores:
			m.openScoreboard = true
			return m, tea.Quit
		case MenuItemQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// itemLabel returns the display text of an entry.
func (m MenuModel) itemLabel(id MenuItemID) string {
	switch id {
	case MenuItemStart:
		return "Start Game"
	case MenuItemDifficulty:
		return fmt.Sprintf("Difficulty  < %s >", m.Difficulty())
	case MenuItemScores:
		return "High Scores"
	case MenuItemQuit:
		return "Quit"
	default:
		return ""
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	for _, line := range banner {
		b.WriteString(centerText(bannerStyle.Render(line), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if best := m.highScore(); best > 0 {
		b.WriteString(centerText(fmt.Sprintf("High score (%s): %d", m.Difficulty(), best), m.width))
	}
	b.WriteString("\n\n")

	for i, id := range menuItems {
		line := "  " + m.itemLabel(id)
		if i == m.cursor {
			line = selectedStyle.Render("> " + m.itemLabel(id))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("A/D or arrows: move  |  Space: fire  |  P: pause  |  Q: quit"), m.width))
	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Tab: Scores"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// highScore returns the best score for the selected difficulty, or 0.
func (m MenuModel) highScore() int {
	if m.store == nil {
		return 0
	}
	best, err := m.store.HighScore(string(m.Difficulty()))
	if err != nil {
		return 0
	}
	return best
}

// Difficulty returns the selected preset.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return Presets[m.preset]
}

// Started returns true if the user chose Start Game.
func (m MenuModel) Started() bool {
	return m.start
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Difficulty      config.DifficultyPreset
	Config          core.RuntimeConfig
	Start           bool
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, difficulty config.DifficultyPreset) (MenuResult, error) {
	model := NewMenuModel(store, cfg, difficulty)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Difficulty: difficulty}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Difficulty: difficulty, Quit: true}, nil
	}

	result := MenuResult{
		Config:     m.Config(),
		Difficulty: m.Difficulty(),
	}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Started():
		result.Start = true
	default:
		result.Quit = true
	}

	return result, nil
}
