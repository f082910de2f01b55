package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bridge/internal/bridge"
	"github.com/vovakirdan/tui-bridge/internal/storage"
)

func TestResultsModelFilters(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveResult("", "a", bridge.Result{Size: 3, Layout: "UUU", Won: true, Attempts: 2})
	store.SaveResult("", "b", bridge.Result{Size: 3, Layout: "DDD", Won: false, Attempts: 1})
	store.SaveResult("", "c", bridge.Result{Size: 4, Layout: "UUUU", Won: true, Attempts: 1})

	m := NewResultsModel(store, []int{3, 4}, 80, 24)
	if m.Rows() != 3 || m.Title() != "RECENT GAMES" {
		t.Fatalf("recent view: rows %d, title %q", m.Rows(), m.Title())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ResultsModel)
	if m.Rows() != 1 || m.Title() != "BEST CROSSINGS - 3 TILES" {
		t.Errorf("size 3 view: rows %d, title %q", m.Rows(), m.Title())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ResultsModel)
	if m.Title() != "BEST CROSSINGS - 4 TILES" || m.Rows() != 1 {
		t.Errorf("wrap-around view: rows %d, title %q", m.Rows(), m.Title())
	}
}

func TestResultsModelWithoutStore(t *testing.T) {
	m := NewResultsModel(nil, nil, 80, 24)
	if m.Rows() != 0 {
		t.Errorf("rows = %d, want 0", m.Rows())
	}
	if m.View() == "" {
		t.Error("expected an empty-state view")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil || next.View() != "" {
		t.Error("q should quit the board")
	}
}
