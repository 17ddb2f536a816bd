package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fb-breakout/internal/config"
	"github.com/vovakirdan/fb-breakout/internal/core"
	"github.com/vovakirdan/fb-breakout/internal/games/breakout"
	"github.com/vovakirdan/fb-breakout/internal/platform"
	"github.com/vovakirdan/fb-breakout/internal/storage"
)

// footerLines is the space kept below the preview for status and help.
const footerLines = 2

// Session describes one terminal play session.
type Session struct {
	Config config.Config
	Seed   uint64
	Player string
	Store  *storage.Store // optional run history
	Logger *log.Logger
}

// Display is the loop's display collaborator in the terminal. Frames are drawn
// by the model's View, so Present only counts them.
type Display struct {
	frames int
}

// Present counts the frame.
func (d *Display) Present(*core.Surface) error {
	d.frames++
	return nil
}

// Close does nothing.
func (d *Display) Close() error { return nil }

type errMsg struct{ err error }

// Model is the Bubble Tea model running one game.
type Model struct {
	session    Session
	loop       *platform.Loop
	input      *KeyInput
	keys       KeyMap
	help       help.Model
	renderer   *lipgloss.Renderer
	frameDelay time.Duration
	width      int
	height     int
	saved      bool // run recorded in the store
	quitting   bool
	err        error
}

// NewModel creates a model for a fresh game sized for a width x height terminal.
// A nil renderer uses the default one.
func NewModel(s Session, width, height int, renderer *lipgloss.Renderer) Model {
	if s.Logger == nil {
		s.Logger = log.New(io.Discard)
	}

	cfg := s.Config
	game := breakout.New(cfg, s.Seed)
	surface := core.NewSurface(cfg.Screen.Width, cfg.Screen.Height, s.Seed)
	input := &KeyInput{}
	// The tick command paces frames, so the loop itself never sleeps.
	loop := platform.NewLoop(game, surface, &Display{}, input, nil, 0, s.Logger)

	h := help.New()
	h.Width = width

	return Model{
		session:    s,
		loop:       loop,
		input:      input,
		keys:       DefaultKeyMap(),
		help:       h,
		renderer:   renderer,
		frameDelay: cfg.Render.FrameDelay,
		width:      width,
		height:     height,
	}
}

// Loop returns the frame loop driven by the model.
func (m Model) Loop() *platform.Loop {
	return m.loop
}

// Err returns the error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

// Init paints the level and starts the tick loop.
func (m Model) Init() tea.Cmd {
	if err := m.loop.Init(); err != nil {
		return func() tea.Msg { return errMsg{err} }
	}
	return tickCmd(m.frameDelay)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()

	case errMsg:
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey feeds game keys to the loop's input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.saveRun("quit")
		m.quitting = true
		return m, tea.Quit
	}

	// After the game ends the final frame stays up until a quit key.
	if m.loop.Done() {
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if code := m.keys.KeyCode(msg); code != core.KeyNone {
		m.input.Feed(code)
	}
	return m, nil
}

// handleTick steps the loop once.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.loop.Done() {
		return m, nil
	}

	if err := m.loop.Step(); err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	if m.loop.Done() {
		st := m.loop.Stats()
		m.saveRun(st.Result())
		if st.Quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	return m, tickCmd(m.frameDelay)
}

// saveRun records the session once. Storage failures only log.
func (m *Model) saveRun(result string) {
	if m.saved || m.session.Store == nil {
		return
	}
	m.saved = true

	st := m.loop.Stats()
	_, err := m.session.Store.SaveRun(storage.Run{
		Player:    m.session.Player,
		Display:   "tui",
		Outcome:   result,
		Destroyed: st.Destroyed,
		Frames:    st.Frames,
		Elapsed:   st.Elapsed,
		Seed:      m.session.Seed,
	})
	if err != nil {
		m.session.Logger.Warn("could not save run", "error", err)
	}
}

// View renders the downsampled surface with a status line and help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	rows := m.height - footerLines
	if rows < 1 || m.width < 1 {
		return "terminal too small"
	}

	var b strings.Builder
	b.WriteString(RenderSurface(m.loop.Surface(), m.width, rows, m.renderer))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	helpStyle := m.newStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) statusLine() string {
	st := m.loop.Stats()
	status := fmt.Sprintf("blocks %d/%d  frames %d  %.1fs",
		st.Destroyed, st.Destroyed+m.loop.Game().Blocks().CountAlive(), st.Frames, st.Elapsed)

	if st.Outcome != breakout.InProgress {
		over := m.newStyle().Bold(true).Foreground(lipgloss.Color("9"))
		status += "  " + over.Render(strings.ToUpper(st.Outcome.String())+", press q to exit")
	}
	return status
}

func (m Model) newStyle() lipgloss.Style {
	if m.renderer != nil {
		return m.renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}

// Run starts the Bubble Tea program for one session.
func Run(s Session, width, height int) error {
	model := NewModel(s, width, height, nil)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
