package tui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bridge/internal/bridge"
	"github.com/vovakirdan/tui-bridge/internal/config"
	"github.com/vovakirdan/tui-bridge/internal/console"
	"github.com/vovakirdan/tui-bridge/internal/storage"
)

// phase is the screen the model is showing.
type phase int

const (
	phaseSize     phase = iota // asking for the bridge length
	phasePlaying               // accepting moves
	phaseLost                  // asking retry or quit
	phaseFinished              // showing the summary
)

// Options configures a game model.
type Options struct {
	Maker     *bridge.Maker
	Store     *storage.Store // may be nil
	Logger    *log.Logger    // may be nil
	Display   config.DisplayConfig
	Size      int    // skips the length prompt when non-zero
	Player    string // recorded with the result
	SessionID string // generated when empty
}

// Model is the Bubble Tea model for one bridge game session.
type Model struct {
	maker     *bridge.Maker
	store     *storage.Store
	logger    *log.Logger
	game      *bridge.Game
	phase     phase
	input     textinput.Model
	keys      KeyMap
	help      help.Model
	theme     Theme
	player    string
	sessionID string
	message   string // last rejected input
	width     int
	height    int
	quitting  bool
	saved     bool
}

// NewModel creates a model. With a preset size the bridge is built right
// away; otherwise the player is asked for its length first.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sessionID := opts.SessionID
	if sessionID == "" {
		sessionID = storage.NewSessionID()
	}

	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("%d-%d", bridge.MinSize, bridge.MaxSize)
	ti.CharLimit = 3
	ti.Width = 8
	ti.Focus()

	m := Model{
		maker:     opts.Maker,
		store:     opts.Store,
		logger:    logger,
		phase:     phaseSize,
		input:     ti,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		theme:     NewTheme(opts.Display),
		player:    opts.Player,
		sessionID: sessionID,
		width:     80,
		height:    24,
	}

	if opts.Size != 0 {
		m.startGame(opts.Size)
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.phase == phaseSize {
		return textinput.Blink
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Abort) {
			m.quitting = true
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	if m.phase == phaseSize {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey dispatches a key press to the current phase.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.phase {
	case phaseSize:
		if key.Matches(msg, m.keys.Confirm) {
			m.submitSize()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case phasePlaying:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.move(bridge.Up)
		case key.Matches(msg, m.keys.Down):
			m.move(bridge.Down)
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		}

	case phaseLost:
		switch {
		case key.Matches(msg, m.keys.Retry):
			if err := m.game.Retry(); err != nil {
				m.message = console.ErrorMessage(err)
				return m, nil
			}
			m.message = ""
			m.phase = phasePlaying
			m.logger.Debug("retry", "session", m.sessionID, "attempt", m.game.Attempts())
		case key.Matches(msg, m.keys.Quit):
			m.finish()
		}

	case phaseFinished:
		if key.Matches(msg, m.keys.Quit) || key.Matches(msg, m.keys.Confirm) {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// submitSize reads the length typed into the input.
func (m *Model) submitSize() {
	size, err := console.ParseSize(m.input.Value())
	if err != nil {
		m.message = console.ErrorMessage(err)
		m.input.Reset()
		return
	}
	m.startGame(size)
	m.input.Reset()
}

// startGame builds a bridge and moves to the playing phase.
func (m *Model) startGame(size int) {
	b, err := m.maker.MakeBridge(size)
	if err != nil {
		m.message = console.ErrorMessage(err)
		return
	}
	m.game = bridge.NewGame(b)
	m.phase = phasePlaying
	m.message = ""
	m.input.Blur()
	m.logger.Debug("bridge created", "session", m.sessionID, "size", size)
}

// move steps the player and follows the resulting status.
func (m *Model) move(d bridge.Direction) {
	mv, err := m.game.Move(d)
	if err != nil {
		m.message = console.ErrorMessage(err)
		return
	}
	m.message = ""
	m.logger.Debug("move", "session", m.sessionID, "position", mv.Position, "direction", mv.Direction, "correct", mv.Correct)

	switch m.game.Status() {
	case bridge.StatusLose:
		m.phase = phaseLost
	case bridge.StatusWin:
		m.finish()
	}
}

// finish shows the summary and records the result once.
func (m *Model) finish() {
	m.phase = phaseFinished
	if m.saved {
		return
	}
	m.saved = true

	res := m.game.Result()
	m.logger.Info("game finished", "session", m.sessionID, "player", m.player,
		"size", res.Size, "won", res.Won, "attempts", res.Attempts)

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveResult(m.sessionID, m.player, res); err != nil {
		m.logger.Warn("could not save result", "session", m.sessionID, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(m.theme.Title.Render("BRIDGE CROSSING"), m.width))
	b.WriteString("\n\n")

	switch m.phase {
	case phaseSize:
		b.WriteString("Enter the bridge length.\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")

	case phasePlaying, phaseLost:
		b.WriteString(m.status())
		b.WriteString("\n\n")
		b.WriteString(RenderMap(m.game.Moves(), m.game.Bridge().Len(), m.theme))
		b.WriteString("\n\n")
		if m.phase == phaseLost {
			b.WriteString(m.theme.Fail.Render("You fell!"))
			b.WriteString(" Retry from the start (R) or quit (Q)?\n")
		} else {
			b.WriteString("Select the tile to move to. (Up: U, Down: D)\n")
		}

	case phaseFinished:
		b.WriteString(m.summary())
	}

	if m.message != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.Error.Render("[ERROR] " + m.message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Hint.Render(m.help.View(m.keys)))
	return b.String()
}

// status renders the attempt and position line.
func (m Model) status() string {
	return m.theme.Hint.Render(fmt.Sprintf("Attempt %d  ·  Tile %d/%d",
		m.game.Attempts(), m.game.Position(), m.game.Bridge().Len()))
}

// summary renders the final result screen.
func (m Model) summary() string {
	var b strings.Builder
	b.WriteString("Final game result\n\n")
	b.WriteString(RenderMap(m.game.Moves(), m.game.Bridge().Len(), m.theme))
	b.WriteString("\n\n")

	if m.game.Finished() {
		b.WriteString("Game result: " + m.theme.Success.Render("Success"))
	} else {
		b.WriteString("Game result: " + m.theme.Fail.Render("Failure"))
	}
	b.WriteString("\n")
	b.WriteString("Total attempts: " + strconv.Itoa(m.game.Attempts()))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Hint.Render("Press Enter or Q to exit."))
	b.WriteString("\n")
	return b.String()
}

// Game returns the game being played, or nil before the length is chosen.
func (m Model) Game() *bridge.Game {
	return m.game
}

// IsQuitting returns true if the session is over.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for one game and returns the final
// result. The result is the zero value if the player left before the
// bridge was built.
func Run(opts Options) (bridge.Result, error) {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return bridge.Result{}, err
	}

	m, ok := final.(Model)
	if !ok || m.game == nil {
		return bridge.Result{}, nil
	}
	return m.game.Result(), nil
}
