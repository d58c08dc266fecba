package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/menagerie/internal/config"
	"github.com/vovakirdan/menagerie/internal/menagerie"
)

// footerHeight is the number of terminal lines below the playfield.
const footerHeight = 2

type phase int

const (
	phasePlaying phase = iota
	phaseRoundOver
	phaseDone
)

// Model is the Bubble Tea model playing a session of menagerie rounds.
// The engine advances one cycle per tick; keys are queued on the display
// and read by the engine like any other keyboard.
type Model struct {
	cfg        config.Config
	display    *Display
	engine     *menagerie.Menagerie
	difficulty *config.DifficultyManager
	keyMapper  *KeyMapper
	keys       GameKeyMap
	help       help.Model

	round   int // zero-based
	results []menagerie.Result
	phase   phase

	standalone bool // quit the program when the session ends
	quitting   bool
	backToMenu bool
}

// NewModel creates a session model for a terminal of width x height cells.
func NewModel(cfg config.Config, width, height int, opts ...menagerie.Option) Model {
	display := NewDisplay(height-footerHeight, width)
	h := help.New()
	h.ShowAll = false

	return Model{
		cfg:        cfg,
		display:    display,
		engine:     menagerie.New(display, cfg, opts...),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		keyMapper:  NewKeyMapper(),
		keys:       NewGameKeyMap(cfg.Keys),
		help:       h,
	}
}

// Init starts the first round.
func (m Model) Init() tea.Cmd {
	m.startRound()
	return tickCmd(m.tickRate())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.display.Resize(msg.Height-footerHeight, msg.Width)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey forwards keys to the engine while a round runs and drives the
// screens between rounds.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.phase {
	case phasePlaying:
		if code, ok := m.keyMapper.KeyCode(msg); ok {
			m.display.PushKey(code)
		}

	case phaseRoundOver:
		switch {
		case key.Matches(msg, m.keys.Next):
			m.round++
			m.phase = phasePlaying
			m.startRound()
			return m, tickCmd(m.tickRate())
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		}

	case phaseDone:
		switch {
		case key.Matches(msg, m.keys.Next):
			m.backToMenu = true
			if m.standalone {
				return m, tea.Quit
			}
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// handleTick runs one engine cycle.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.phase != phasePlaying {
		return m, nil // stale tick from the previous round
	}
	if m.engine.Step() {
		return m, tickCmd(m.tickRate())
	}

	res := m.engine.Result()
	m.results = append(m.results, res)
	if len(m.results) >= m.cfg.Engine.Rounds {
		m.phase = phaseDone
	} else {
		m.phase = phaseRoundOver
	}
	m.banner(fmt.Sprintf(" ROUND %d OVER: %s ", m.round+1, res.Reason))
	return m, nil
}

// startRound resets the engine for the current round. Ticks pace the
// round, so pacers never sleep here.
func (m *Model) startRound() {
	m.display.ClearText()
	m.engine.SetPacerDelay(0)
	m.engine.Start()
}

func (m Model) tickRate() int {
	return m.difficulty.TickRate(m.cfg.Engine.TickRate, m.round)
}

// banner centers text on the playfield.
func (m Model) banner(text string) {
	rows, cols := m.display.Size()
	m.display.SetText(rows/2, max(0, (cols-len(text))/2), text)
}

// View renders the playfield with a status line and help below it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.phase == phaseDone && m.backToMenu {
		return ""
	}
	if m.phase == phaseDone {
		return ResultsView(m.results) + "\n" + m.help.ShortHelpView(m.keys.ShortHelp())
	}

	var b strings.Builder
	b.WriteString(RenderFrame(m.display.Scene(), m.display.spans()))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status()))
	b.WriteString("\n")
	if m.phase == phaseRoundOver {
		b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	} else {
		b.WriteString(m.help.ShortHelpView(m.keys.PlayHelp()))
	}
	return b.String()
}

func (m Model) status() string {
	res := m.engine.Result()
	return fmt.Sprintf("Round %d/%d  Shots %d  Kills %d  Critters %d  Cycle %d",
		m.round+1, m.cfg.Engine.Rounds, m.engine.ShotsLeft(), res.Kills,
		m.engine.Population(), res.Cycles)
}

// Results returns the finished rounds of the session.
func (m Model) Results() []menagerie.Result {
	return m.results
}

// IsQuitting returns true if the user asked to leave.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true once the session is over and acknowledged.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a session in the terminal and returns the finished rounds.
func Run(cfg config.Config, width, height int, opts ...menagerie.Option) ([]menagerie.Result, error) {
	model := NewModel(cfg, width, height, opts...)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	if fm, ok := final.(Model); ok {
		return fm.Results(), nil
	}
	return nil, nil
}
