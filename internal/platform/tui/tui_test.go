package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/menagerie/internal/config"
	"github.com/vovakirdan/menagerie/internal/core"
	_ "github.com/vovakirdan/menagerie/internal/critters"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyCode(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg      tea.KeyMsg
		expected int
		ok       bool
	}{
		{runeKey('q'), 'q', true},
		{runeKey('h'), 'h', true},
		{tea.KeyMsg{Type: tea.KeySpace}, core.KeySpace, true},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft, true},
		{tea.KeyMsg{Type: tea.KeyRight}, core.KeyRight, true},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.KeyEnter, true},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.KeyEscape, true},
		{tea.KeyMsg{Type: tea.KeyF1}, 0, false},
		{runeKey('é'), 'é', true},
		{runeKey('世'), 0, false},
	}

	for _, tt := range tests {
		got, ok := km.KeyCode(tt.msg)
		if got != tt.expected || ok != tt.ok {
			t.Errorf("KeyCode(%v) = %d, %v, expected %d, %v", tt.msg, got, ok, tt.expected, tt.ok)
		}
	}
}

func TestMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.expected {
			t.Errorf("MapKeyToMenuAction(%v) = %v, expected %v", tt.msg, got, tt.expected)
		}
	}
}

func TestDisplayKeyQueue(t *testing.T) {
	d := NewDisplay(10, 20)
	if d.HasKey() {
		t.Fatal("New display should have no keys")
	}
	if _, err := d.Key(); err != core.ErrNoKey {
		t.Errorf("Key() error = %v, expected ErrNoKey", err)
	}

	d.PushKey('a')
	d.PushKey('b')
	d.PushbackKey('z')
	for _, expected := range []int{'z', 'a', 'b'} {
		if k, err := d.Key(); err != nil || k != expected {
			t.Errorf("Key() = %c, %v, expected %c", k, err, expected)
		}
	}

	d.Resize(0, -3)
	if r, c := d.Size(); r != 1 || c != 1 {
		t.Errorf("Size() after bad resize = %d, %d, expected 1, 1", r, c)
	}
}

func TestRenderFrame(t *testing.T) {
	f := core.MustFrame(2, 10, core.Black)
	f.Paint(0, 3, core.Red)

	spans := map[int]textSpan{1: {col: 2, text: "HELLO"}}
	out := RenderFrame(f, spans)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderFrame() produced %d lines, expected 2", len(lines))
	}
	if !strings.Contains(lines[1], "HELLO") {
		t.Errorf("Row 1 = %q, expected the text span", lines[1])
	}
	if RenderFrame(nil, nil) != "" {
		t.Error("RenderFrame(nil) should be empty")
	}
}

func TestNewGameKeyMapUsesConfig(t *testing.T) {
	keys := NewGameKeyMap(config.KeysConfig{Fire: []string{"f", "space"}})
	if got := keys.Fire.Help().Key; got != "f/space" {
		t.Errorf("Fire help = %q, expected %q", got, "f/space")
	}
	if got := keys.Move.Help().Key; got != "h" {
		t.Errorf("Move help = %q, expected default %q", got, "h")
	}
}

// play advances the model by ticks until the round is no longer running.
func play(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; i < 10 && m.phase == phasePlaying; i++ {
		next, _ := m.Update(TickMsg{})
		m = next.(Model)
	}
	return m
}

func TestModelRounds(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Engine.Rounds = 2

	m := NewModel(cfg, 80, 26)
	m.Init()

	next, _ := m.Update(runeKey('q'))
	m = play(t, next.(Model))
	if m.phase != phaseRoundOver {
		t.Fatalf("phase = %v, expected round over", m.phase)
	}
	if len(m.Results()) != 1 || m.Results()[0].Reason != "quit" {
		t.Fatalf("Results() = %v, expected one quit round", m.Results())
	}
	if !strings.Contains(m.View(), "ROUND 1 OVER") {
		t.Error("View() should show the round-over banner")
	}

	// Ticks between rounds do nothing
	next, cmd := m.Update(TickMsg{})
	m = next.(Model)
	if cmd != nil || m.phase != phaseRoundOver {
		t.Error("Stale tick should be ignored")
	}

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if m.phase != phasePlaying || cmd == nil {
		t.Fatal("Enter should start the next round")
	}

	next, _ = m.Update(runeKey('q'))
	m = play(t, next.(Model))
	if m.phase != phaseDone {
		t.Fatalf("phase = %v, expected done", m.phase)
	}
	if !strings.Contains(m.View(), "Session over") {
		t.Error("View() should show the session results")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !next.(Model).BackToMenu() {
		t.Error("Enter after the last round should go back to the menu")
	}
}

func TestModelCtrlCQuits(t *testing.T) {
	m := NewModel(config.DefaultConfig(), 80, 26)
	m.Init()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("ctrl+c should quit")
	}
	if next.(Model).View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestSessionMenuStartsGame(t *testing.T) {
	s := NewSessionModel(config.DefaultConfig(), 80, 26)

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyDown}) // hard
	s = next.(SessionModel)
	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)

	if s.game == nil || cmd == nil {
		t.Fatal("Selecting a difficulty should start a game")
	}
	if s.game.cfg.Engine.Cannonballs != 5 {
		t.Errorf("Cannonballs = %d, expected hard preset 5", s.game.cfg.Engine.Cannonballs)
	}
}

func TestNewSSHServerCreatesHostKey(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_key")

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer() error = %v", err)
	}
	if srv.Addr() != cfg.Address {
		t.Errorf("Addr() = %q, expected %q", srv.Addr(), cfg.Address)
	}
	if _, err := os.Stat(cfg.HostKeyPath); err != nil {
		t.Errorf("host key not written: %v", err)
	}
}
