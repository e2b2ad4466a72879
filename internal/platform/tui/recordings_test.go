package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/dragon"
	"github.com/vovakirdan/flappy-dragon/internal/journal"
)

func openTestJournal(t *testing.T) *journal.Store {
	t.Helper()
	store, err := journal.Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("journal.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func saveFallingRun(t *testing.T, store *journal.Store) int64 {
	t.Helper()
	rec, err := journal.NewRecorder(ShellName, 4, config.DefaultDragonConfig(), 0)
	if err != nil {
		t.Fatalf("NewRecorder() failed: %v", err)
	}
	rec.Record(0, core.ActionFlap)
	for i := 0; i < 200; i++ {
		rec.Record(21, core.ActionNone)
	}
	id, err := store.Save(rec.Recording())
	if err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	return id
}

func updateRecordings(t *testing.T, m RecordingsModel, msg tea.Msg) RecordingsModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(RecordingsModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestRecordingsReplaySelected(t *testing.T) {
	store := openTestJournal(t)
	saveFallingRun(t, store)
	newest := saveFallingRun(t, store)

	m := NewRecordingsModel(store, 80, 24)
	if len(m.recordings) != 2 {
		t.Fatalf("loaded %d recordings, want 2", len(m.recordings))
	}

	m = updateRecordings(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	want := fmt.Sprintf("#%d:", newest)
	if !strings.HasPrefix(m.Status(), want) {
		t.Errorf("status = %q, want replay of the newest recording", m.Status())
	}
	if !strings.Contains(m.Status(), "1 runs") {
		t.Errorf("status = %q, want exactly one run", m.Status())
	}
}

func TestRecordingsDelete(t *testing.T) {
	store := openTestJournal(t)
	saveFallingRun(t, store)
	saveFallingRun(t, store)

	m := NewRecordingsModel(store, 80, 24)
	m = updateRecordings(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})

	if len(m.recordings) != 1 {
		t.Errorf("%d recordings left, want 1", len(m.recordings))
	}
	if !strings.HasPrefix(m.Status(), "Deleted") {
		t.Errorf("status = %q", m.Status())
	}
}

func TestRecordingsEmptyAndNilStore(t *testing.T) {
	m := NewRecordingsModel(nil, 80, 24)
	if !strings.Contains(m.View(), "No sessions recorded yet.") {
		t.Error("empty browser should say so")
	}

	m = updateRecordings(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = updateRecordings(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	if m.Status() != "journal unavailable" {
		t.Errorf("status = %q", m.Status())
	}
}

func TestFormatReplay(t *testing.T) {
	got := FormatReplay(7, journal.ReplayResult{
		Runs:       []int{3, 11, 5},
		FinalMode:  dragon.ModePlaying,
		FinalScore: 2,
	})
	want := "#7: 3 runs [3 11 5], best 11, ended in Playing with score 2"
	if got != want {
		t.Errorf("FormatReplay() = %q, want %q", got, want)
	}
}
