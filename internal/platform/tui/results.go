package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bridge/internal/storage"
)

// Results board layout constants
const (
	maxResults  = 100 // Max results to load
	allSizesTab = 0   // Size filter value meaning every size
)

// ResultsKeyMap defines the key bindings for the results board.
type ResultsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextSize key.Binding
	PrevSize key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ResultsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextSize, k.PrevSize, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ResultsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextSize, k.PrevSize, k.Quit},
	}
}

// DefaultResultsKeyMap returns default key bindings.
func DefaultResultsKeyMap() ResultsKeyMap {
	return ResultsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextSize: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("right/tab", "next size"),
		),
		PrevSize: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("left/S-tab", "prev size"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ResultsModel is the Bubble Tea model for the results board. With no size
// filter it lists recent games; with a size it lists the best wins.
type ResultsModel struct {
	store    *storage.Store
	sizes    []int // allSizesTab followed by bridge sizes
	cursor   int
	results  []storage.ResultEntry
	table    table.Model
	help     help.Model
	keys     ResultsKeyMap
	width    int
	height   int
	loadErr  error
	quitting bool
}

// NewResultsModel creates a results board. sizes lists the bridge sizes to
// offer as filters.
func NewResultsModel(store *storage.Store, sizes []int, width, height int) ResultsModel {
	m := ResultsModel{
		store:  store,
		sizes:  append([]int{allSizesTab}, sizes...),
		keys:   DefaultResultsKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadResults()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ResultsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Player", Width: 12},
		{Title: "Size", Width: 5},
		{Title: "Result", Width: 8},
		{Title: "Tries", Width: 6},
		{Title: "Date", Width: 14},
	}

	height := m.height - 8 // Leave room for header, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadResults loads results for the selected size filter.
func (m *ResultsModel) loadResults() {
	m.results, m.loadErr = nil, nil
	if m.store != nil {
		size := m.sizes[m.cursor]
		if size == allSizesTab {
			m.results, m.loadErr = m.store.RecentResults(maxResults)
		} else {
			m.results, m.loadErr = m.store.BestResults(size, maxResults)
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current results.
func (m *ResultsModel) updateTableRows() {
	rows := make([]table.Row, len(m.results))
	for i, r := range m.results {
		outcome := "lost"
		if r.Won {
			outcome = "crossed"
		}
		player := r.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			player,
			fmt.Sprintf("%d", r.Size),
			outcome,
			fmt.Sprintf("%d", r.Attempts),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// Init initializes the results model.
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results board.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextSize):
			m.cursor = (m.cursor + 1) % len(m.sizes)
			m.loadResults()
			return m, nil

		case key.Matches(msg, m.keys.PrevSize):
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(m.sizes) - 1
			}
			m.loadResults()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Title returns the heading for the selected filter.
func (m ResultsModel) Title() string {
	if size := m.sizes[m.cursor]; size != allSizesTab {
		return fmt.Sprintf("BEST CROSSINGS - %d TILES", size)
	}
	return "RECENT GAMES"
}

// View renders the results board.
func (m ResultsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render(m.Title()), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	// Help bar
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ResultsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load results:\n" + m.loadErr.Error())
	case len(m.results) == 0:
		return emptyStyle.Render("No games recorded yet.\nCross a bridge to get on the board!")
	}
	return m.table.View()
}

// Rows returns the number of results shown.
func (m ResultsModel) Rows() int {
	return len(m.results)
}

// RunResults runs the results board.
func RunResults(store *storage.Store, sizes []int, width, height int) error {
	p := tea.NewProgram(
		NewResultsModel(store, sizes, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
