package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bridge/internal/bridge"
	"github.com/vovakirdan/tui-bridge/internal/config"
	"github.com/vovakirdan/tui-bridge/internal/storage"
)

// fixedGenerator replays numbers in order, cycling when exhausted.
type fixedGenerator struct {
	numbers []int
	next    int
}

func (g *fixedGenerator) Generate() int {
	n := g.numbers[g.next%len(g.numbers)]
	g.next++
	return n
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func enter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

// send feeds messages through Update and returns the resulting model.
func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T, want Model", next)
		}
	}
	return m
}

// newTestModel builds a model over the UDU bridge.
func newTestModel(size int, store *storage.Store) Model {
	return NewModel(Options{
		Maker:     bridge.NewMaker(&fixedGenerator{numbers: []int{1, 0, 1}}),
		Store:     store,
		Display:   config.DefaultConfig().Display,
		Size:      size,
		Player:    "tester",
		SessionID: "session-1",
	})
}

func TestModelSizePrompt(t *testing.T) {
	m := newTestModel(0, nil)
	if m.phase != phaseSize {
		t.Fatalf("phase = %v, want size prompt", m.phase)
	}

	m = send(t, m, runes("x"), enter())
	if m.phase != phaseSize || m.message == "" {
		t.Errorf("bad size accepted: phase %v, message %q", m.phase, m.message)
	}

	m = send(t, m, runes("2"), enter())
	if m.phase != phaseSize || !strings.Contains(m.message, "between 3 and 20") {
		t.Errorf("out-of-range size accepted: phase %v, message %q", m.phase, m.message)
	}

	m = send(t, m, runes("3"), enter())
	if m.phase != phasePlaying {
		t.Fatalf("phase = %v, want playing", m.phase)
	}
	if m.Game().Bridge().Symbols() != "UDU" {
		t.Errorf("bridge = %q, want UDU", m.Game().Bridge().Symbols())
	}
	if m.message != "" {
		t.Errorf("message not cleared: %q", m.message)
	}
}

func TestModelWin(t *testing.T) {
	m := newTestModel(3, nil)
	if m.phase != phasePlaying {
		t.Fatalf("preset size should start playing, phase = %v", m.phase)
	}

	m = send(t, m, runes("U"), tea.KeyMsg{Type: tea.KeyDown}, runes("u"))
	if m.phase != phaseFinished {
		t.Fatalf("phase = %v, want finished", m.phase)
	}
	if !m.Game().Finished() {
		t.Error("expected a win")
	}
	view := m.View()
	if !strings.Contains(view, "Success") || !strings.Contains(view, "Total attempts: 1") {
		t.Errorf("summary missing from view:\n%s", view)
	}
}

func TestModelLoseRetryQuit(t *testing.T) {
	m := newTestModel(3, nil)

	m = send(t, m, runes("D"))
	if m.phase != phaseLost {
		t.Fatalf("phase = %v, want lost", m.phase)
	}

	// Moves are ignored until the player decides
	m = send(t, m, runes("U"))
	if m.Game().Position() != 1 {
		t.Errorf("move accepted while lost")
	}

	m = send(t, m, runes("R"))
	if m.phase != phasePlaying || m.Game().Attempts() != 2 || m.Game().Position() != 0 {
		t.Fatalf("retry failed: phase %v, attempts %d, position %d",
			m.phase, m.Game().Attempts(), m.Game().Position())
	}

	m = send(t, m, runes("U"), runes("U"), runes("Q"))
	if m.phase != phaseFinished {
		t.Fatalf("phase = %v, want finished", m.phase)
	}
	if m.Game().Finished() {
		t.Error("quit after a loss must not count as a win")
	}
	if !strings.Contains(m.View(), "Failure") {
		t.Error("summary should report failure")
	}

	next, cmd := m.Update(enter())
	if cmd == nil || !next.(Model).IsQuitting() {
		t.Error("enter on the summary should quit")
	}
}

func TestModelSavesResultOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(3, store)
	m = send(t, m, runes("U"), runes("D"), runes("U"), runes("R"), runes("Q"))

	entries, err := store.RecentResults(10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("saved %d results, want 1", len(entries))
	}
	e := entries[0]
	if e.SessionID != "session-1" || e.Player != "tester" || !e.Won || e.Layout != "UDU" || e.Path != "UDU" {
		t.Errorf("saved entry = %+v", e)
	}
}

func TestModelAbortDoesNotSave(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(3, store)
	m = send(t, m, runes("U"), tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.IsQuitting() {
		t.Fatal("ctrl+c should quit")
	}

	entries, _ := store.RecentResults(10)
	if len(entries) != 0 {
		t.Errorf("unfinished game was saved: %+v", entries)
	}
}

func TestRenderMapShowsMarksAndPendingTiles(t *testing.T) {
	theme := NewTheme(config.DefaultConfig().Display)
	moves := []bridge.Move{
		{Position: 0, Direction: bridge.Up, Correct: true},
		{Position: 1, Direction: bridge.Up, Correct: false},
	}

	out := RenderMap(moves, 4, theme)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "O") || !strings.Contains(lines[0], "X") {
		t.Errorf("upper row missing marks: %q", lines[0])
	}
	if strings.Contains(lines[1], "O") || strings.Contains(lines[1], "X") {
		t.Errorf("lower row should have no marks: %q", lines[1])
	}
	if strings.Count(lines[1], "·") != 2 {
		t.Errorf("lower row should show 2 pending tiles: %q", lines[1])
	}
}
