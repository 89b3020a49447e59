package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/patricklapgar/Space-Shooter-Game/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case " ":
		return core.ActionFire, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionScoreboard
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}

// DefaultHoldTicks is how long a movement or fire key stays down after a
// key event. Terminals report presses and auto-repeats but no releases, so
// the hold must bridge the gap between repeats.
const DefaultHoldTicks = 9

// HoldTracker turns key presses into held actions.
type HoldTracker struct {
	holdTicks int
	until     map[core.Action]int
}

// NewHoldTracker creates a tracker holding keys for holdTicks ticks.
func NewHoldTracker(holdTicks int) *HoldTracker {
	return &HoldTracker{
		holdTicks: max(holdTicks, 1),
		until:     make(map[core.Action]int),
	}
}

// holdable reports whether an action is continuous rather than one-shot.
func holdable(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown, core.ActionFire:
		return true
	}
	return false
}

// Press records a key event at tick. A press cancels the hold of the
// opposite direction so that reversing feels immediate.
func (h *HoldTracker) Press(a core.Action, tick int) {
	if !holdable(a) {
		return
	}
	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	case core.ActionUp:
		delete(h.until, core.ActionDown)
	case core.ActionDown:
		delete(h.until, core.ActionUp)
	}
	h.until[a] = tick + h.holdTicks
}

// Apply sets every action still held at tick into frame and forgets
// expired ones.
func (h *HoldTracker) Apply(frame *core.InputFrame, tick int) {
	for a, until := range h.until {
		if tick >= until {
			delete(h.until, a)
			continue
		}
		frame.Set(a)
	}
}

// Reset releases every key.
func (h *HoldTracker) Reset() {
	clear(h.until)
}
