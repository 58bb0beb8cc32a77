package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/isa-quest/internal/storage"
)

func TestScoreboardViews(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("zz_menu_game", 1500)
	store.SaveLedger([]storage.LedgerEntry{
		{RunID: "run-1", GameID: "zz_menu_game", Kind: "deposit", Amount: 100, Current: 50, ISA: 100, Year: 3, Seq: 1},
	})

	m := NewScoreboardModel(store, 100, 30)
	for i, g := range m.games {
		if g.ID == "zz_menu_game" {
			m.gameCursor = i
			m.loadScores(g.ID)
		}
	}

	if len(m.scores) != 1 || len(m.runs) != 1 {
		t.Fatalf("loaded %d scores and %d runs, want 1 and 1", len(m.scores), len(m.runs))
	}
	if m.stats == nil || m.stats.HighScore != 1500 {
		t.Errorf("stats = %+v, want high score 1500", m.stats)
	}
	if rows := m.table.Rows(); len(rows) != 1 || rows[0][1] != "£1,500" {
		t.Errorf("score rows = %v", rows)
	}

	next, _ := m.Update(runeKey('r'))
	m = next.(ScoreboardModel)
	if m.view != viewRuns {
		t.Fatal("r should switch to the runs view")
	}
	if rows := m.table.Rows(); len(rows) != 1 || rows[0][2] != "£100.00" {
		t.Errorf("run rows = %v", rows)
	}
	if !strings.Contains(m.View(), "RECENT RUNS") {
		t.Error("view should be titled RECENT RUNS")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}
