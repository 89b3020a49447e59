package tui

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/patricklapgar/Space-Shooter-Game/internal/config"
	"github.com/patricklapgar/Space-Shooter-Game/internal/core"
	"github.com/patricklapgar/Space-Shooter-Game/internal/storage"
)

func newTestModel(t *testing.T, opts PlayOptions, store *storage.Store) GameModel {
	t.Helper()
	if opts.Rules.Player.Health == 0 {
		opts.Rules = config.DefaultTerminalConfig()
	}
	if opts.Difficulty == "" {
		opts.Difficulty = config.DifficultyNormal
	}
	m := NewGameModel(opts, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})
	m.Init()
	return m
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T, want GameModel", next)
	}
	return gm, cmd
}

func tick(t *testing.T, m GameModel, n int) (GameModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for i := 0; i < n; i++ {
		m, cmd = update(t, m, TickMsg{})
	}
	return m, cmd
}

func TestGameModelHeldKeyMovesShip(t *testing.T) {
	m := newTestModel(t, PlayOptions{}, nil)
	startX := m.game.Player().Pos.X

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = tick(t, m, 1)
	if got := m.game.Player().Pos.X; got != startX-0.5 {
		t.Errorf("after one tick X = %v, want %v", got, startX-0.5)
	}

	m, _ = tick(t, m, 20)
	want := startX - float64(DefaultHoldTicks)*0.5
	if got := m.game.Player().Pos.X; got != want {
		t.Errorf("after hold expired X = %v, want %v", got, want)
	}
}

func TestGameModelPause(t *testing.T) {
	m := newTestModel(t, PlayOptions{}, nil)

	m, _ = update(t, m, runeKey("p"))
	m, _ = tick(t, m, 1)
	if !m.State().Paused {
		t.Error("P should pause the game")
	}

	m, _ = update(t, m, runeKey("p"))
	m, _ = tick(t, m, 1)
	if m.State().Paused {
		t.Error("second P should resume the game")
	}
}

func TestGameModelQuitKey(t *testing.T) {
	m := newTestModel(t, PlayOptions{}, nil)

	m, cmd := update(t, m, runeKey("q"))
	if !m.IsQuitting() {
		t.Error("Q should quit")
	}
	if cmd == nil {
		t.Error("Q should return a quit command")
	}
	if m.View() != "" {
		t.Error("View should be empty while quitting")
	}
}

func TestGameModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, PlayOptions{Player: "tester"}, store)
	m, _ = tick(t, m, 30)
	m.game.Player().Health = 0

	m, _ = tick(t, m, 1)
	if !m.State().GameOver {
		t.Fatal("game should be over once health is gone")
	}
	m, _ = tick(t, m, 10)

	runs, err := store.TopRuns("", 10)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, want 1", len(runs))
	}
	if runs[0].Player != "tester" || runs[0].Difficulty != "normal" {
		t.Errorf("run = %+v, want player tester on normal", runs[0])
	}
	if runs[0].DurationTicks != 30 {
		t.Errorf("DurationTicks = %d, want 30", runs[0].DurationTicks)
	}
}

func TestGameModelRestart(t *testing.T) {
	m := newTestModel(t, PlayOptions{}, nil)
	m.game.Player().Health = 0
	m, _ = tick(t, m, 1)
	if !m.State().GameOver {
		t.Fatal("expected game over")
	}

	m, _ = update(t, m, runeKey("r"))
	m, _ = tick(t, m, 1)
	if m.State().GameOver {
		t.Error("R should restart after game over")
	}
	if m.game.Player().Health != 100 {
		t.Errorf("Health = %d after restart, want 100", m.game.Player().Health)
	}
}

func enemyPositions(m GameModel) []core.Vec {
	var pos []core.Vec
	for _, e := range m.game.Enemies() {
		pos = append(pos, e.Pos)
	}
	return pos
}

func TestGameModelRestartKeepsSeed(t *testing.T) {
	m := newTestModel(t, PlayOptions{}, nil)
	m, _ = tick(t, m, 1)
	first := enemyPositions(m)
	if len(first) == 0 {
		t.Fatal("first tick should spawn a wave")
	}

	m.game.Player().Health = 0
	m, _ = tick(t, m, 1)
	m, _ = update(t, m, runeKey("r"))
	m, _ = tick(t, m, 1)
	if m.config.Seed != 7 {
		t.Errorf("Seed = %d after restart, want 7", m.config.Seed)
	}

	m, _ = tick(t, m, 1)
	if got := enemyPositions(m); !reflect.DeepEqual(got, first) {
		t.Errorf("restarted wave = %v, want %v", got, first)
	}
}

func TestGameModelRestartIgnoredWhilePlaying(t *testing.T) {
	m := newTestModel(t, PlayOptions{}, nil)
	m, _ = tick(t, m, 5)

	m, _ = update(t, m, runeKey("r"))
	m, _ = tick(t, m, 1)
	if m.game.State().Level != 1 {
		t.Errorf("Level = %d, restart while playing should be ignored", m.game.State().Level)
	}
}

func TestGameModelQuitsWhenDone(t *testing.T) {
	rules := config.DefaultTerminalConfig()
	rules.Gameplay.GraceSeconds = 0

	m := newTestModel(t, PlayOptions{Rules: rules}, nil)
	m.game.Player().Health = 0

	m, cmd := tick(t, m, 1)
	if !m.State().Done {
		t.Fatal("session should be done without a grace period")
	}
	if !m.IsQuitting() || cmd == nil {
		t.Error("standalone game should quit when the session ends")
	}
}

func TestGameModelReturnsToMenuWhenEmbedded(t *testing.T) {
	rules := config.DefaultTerminalConfig()
	rules.Gameplay.GraceSeconds = 0

	m := newTestModel(t, PlayOptions{Rules: rules, ReturnToMenu: true}, nil)
	m.embedded = true
	m.game.Player().Health = 0

	m, cmd := tick(t, m, 1)
	if !m.BackToMenu() {
		t.Error("embedded game should go back to the menu")
	}
	if m.IsQuitting() || cmd != nil {
		t.Error("embedded game must not quit the program")
	}
}

func TestGameModelBackFromPause(t *testing.T) {
	m := newTestModel(t, PlayOptions{ReturnToMenu: true}, nil)

	m, _ = update(t, m, runeKey("b"))
	if m.BackToMenu() {
		t.Error("back is ignored while playing")
	}

	m, _ = update(t, m, runeKey("p"))
	m, _ = tick(t, m, 1)
	m, cmd := update(t, m, runeKey("b"))
	if !m.BackToMenu() || cmd == nil {
		t.Error("back while paused should leave to the menu")
	}
}

func TestGameModelView(t *testing.T) {
	m := newTestModel(t, PlayOptions{}, nil)
	m, _ = tick(t, m, 1)

	view := m.View()
	if !strings.Contains(view, "Lives: 5") {
		t.Errorf("view should show the HUD, got:\n%s", view)
	}
}

func TestMenuDifficultyCycle(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, config.DifficultyNormal)

	send := func(msg tea.KeyMsg) {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}

	send(tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != config.DifficultyNormal {
		t.Error("left/right only change difficulty on its row")
	}

	send(tea.KeyMsg{Type: tea.KeyDown})
	send(tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != config.DifficultyHard {
		t.Errorf("Difficulty = %s, want hard", m.Difficulty())
	}
	send(tea.KeyMsg{Type: tea.KeyLeft})
	send(tea.KeyMsg{Type: tea.KeyLeft})
	send(tea.KeyMsg{Type: tea.KeyLeft})
	if m.Difficulty() != config.DifficultyFixed {
		t.Errorf("Difficulty = %s, want fixed after wrapping", m.Difficulty())
	}

	if !strings.Contains(m.View(), "< fixed >") {
		t.Error("menu should show the selected difficulty")
	}
}

func TestMenuStart(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, config.DifficultyEasy)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if !m.Started() || cmd == nil {
		t.Error("Enter on Start Game should start")
	}
	if m.Difficulty() != config.DifficultyEasy {
		t.Errorf("Difficulty = %s, want easy", m.Difficulty())
	}
}

func TestMenuScoreboard(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, config.DifficultyNormal)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(MenuModel)
	if !m.WantsScoreboard() {
		t.Error("Tab should open the scoreboard")
	}
}

func TestScoreboardTabs(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	for _, r := range []storage.Run{
		{Player: "ann", Difficulty: "easy", Score: 50, Level: 2},
		{Player: "bob", Difficulty: "hard", Score: 90, Level: 3},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	sb := NewScoreboardModel(store, 100, 30, "")
	if len(sb.runs) != 2 {
		t.Fatalf("All tab has %d runs, want 2", len(sb.runs))
	}

	next, _ := sb.Update(tea.KeyMsg{Type: tea.KeyTab})
	sb = next.(ScoreboardModel)
	if len(sb.runs) != 1 || sb.runs[0].Player != "ann" {
		t.Errorf("easy tab runs = %+v, want only ann", sb.runs)
	}
	if !strings.Contains(sb.View(), "Best: 50") {
		t.Error("scoreboard should show tab stats")
	}

	next, _ = sb.Update(runeKey("X"))
	sb = next.(ScoreboardModel)
	if len(sb.runs) != 0 {
		t.Error("clearing the easy tab should remove its runs")
	}

	all := NewScoreboardModel(store, 60, 30, "")
	if len(all.runs) != 1 {
		t.Errorf("clearing one difficulty left %d runs, want 1", len(all.runs))
	}
}

func newTestSession(t *testing.T, store *storage.Store, graceSeconds int) SessionModel {
	t.Helper()
	rules := config.DefaultTerminalConfig()
	rules.Gameplay.GraceSeconds = graceSeconds

	m := NewSessionModel(store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, SSHServerConfig{
		Rules:      rules,
		Difficulty: config.DifficultyHard,
		TickRate:   60,
	}, "ann")
	m.Init()
	return m
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", next)
	}
	return sm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestSessionStartsGameWithPreset(t *testing.T) {
	m := newTestSession(t, nil, 5)

	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame || m.gameModel == nil {
		t.Fatalf("Enter should start a game, view = %d", m.view)
	}
	if cmd == nil {
		t.Error("starting a game should schedule the first tick")
	}

	gm := m.gameModel
	if !gm.embedded || !gm.opts.ReturnToMenu {
		t.Error("session games must return to the menu")
	}
	if gm.opts.Difficulty != config.DifficultyHard || gm.opts.Player != "ann" {
		t.Errorf("opts = %s/%s, want hard/ann", gm.opts.Difficulty, gm.opts.Player)
	}
	if gm.opts.Rules.Difficulty.InitialLevel != config.InitialLevelForPreset(config.DifficultyHard) {
		t.Errorf("InitialLevel = %v, hard preset not applied", gm.opts.Rules.Difficulty.InitialLevel)
	}
	if lives := gm.game.State().Lives; lives != 3 {
		t.Errorf("Lives = %d, want 3 on hard", lives)
	}
}

func TestSessionReturnsToMenuAfterGame(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	m := newTestSession(t, store, 0)
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m.gameModel.game.Player().Health = 0

	m, cmd := sessionUpdate(t, m, TickMsg{})
	if m.view != viewMenu || m.gameModel != nil {
		t.Fatalf("finished game should show the menu, view = %d", m.view)
	}
	if m.quitting || isQuit(cmd) {
		t.Error("finished game must not end the session")
	}
	if m.menu.Difficulty() != config.DifficultyHard {
		t.Errorf("menu difficulty = %s, want hard kept", m.menu.Difficulty())
	}

	runs, err := store.TopRuns("hard", 10)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(runs) != 1 || runs[0].Player != "ann" {
		t.Errorf("runs = %+v, want one run by ann", runs)
	}
}

func TestSessionTransitions(t *testing.T) {
	enter := tea.KeyMsg{Type: tea.KeyEnter}
	tab := tea.KeyMsg{Type: tea.KeyTab}

	tests := []struct {
		name string
		msgs []tea.Msg
		view sessionView
		quit bool
	}{
		{"open scores", []tea.Msg{tab}, viewScores, false},
		{"scores back to menu", []tea.Msg{tab, runeKey("b")}, viewMenu, false},
		{"paused game back to menu", []tea.Msg{enter, runeKey("p"), TickMsg{}, runeKey("b")}, viewMenu, false},
		{"quit from menu", []tea.Msg{runeKey("q")}, viewMenu, true},
		{"quit from game", []tea.Msg{enter, TickMsg{}, runeKey("q")}, viewGame, true},
		{"quit from scores", []tea.Msg{tab, runeKey("q")}, viewScores, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestSession(t, nil, 5)
			var cmd tea.Cmd
			for _, msg := range tt.msgs {
				m, cmd = sessionUpdate(t, m, msg)
			}

			if m.view != tt.view {
				t.Errorf("view = %d, want %d", m.view, tt.view)
			}
			if m.quitting != tt.quit {
				t.Errorf("quitting = %v, want %v", m.quitting, tt.quit)
			}
			if tt.quit {
				if !isQuit(cmd) {
					t.Error("quit should pass tea.Quit through")
				}
				if m.View() != "" {
					t.Error("View should be empty after quitting")
				}
			}
		})
	}
}

func TestSSHServerPort(t *testing.T) {
	tests := []struct {
		addr, want string
	}{
		{":23234", "23234"},
		{"0.0.0.0:2222", "2222"},
		{"localhost", "localhost"},
	}

	for _, tt := range tests {
		s := &SSHServer{config: SSHServerConfig{Address: tt.addr}}
		if got := s.Port(); got != tt.want {
			t.Errorf("Port(%q) = %q, want %q", tt.addr, got, tt.want)
		}
	}
}
