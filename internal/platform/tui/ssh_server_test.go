package tui

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/journal"
)

func newTestSSHServer(t *testing.T, store *journal.Store) *SSHServer {
	t.Helper()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_key")

	srv, err := NewSSHServer(cfg, store, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	return srv
}

func TestNewSSHServerCreatesKeyDir(t *testing.T) {
	srv := newTestSSHServer(t, nil)

	if _, err := os.Stat(filepath.Dir(srv.config.HostKeyPath)); err != nil {
		t.Errorf("host key directory missing: %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}
	if srv.ActiveSessions() != 0 {
		t.Errorf("ActiveSessions() = %d, want 0", srv.ActiveSessions())
	}
}

func TestSSHSessionsAreIndependent(t *testing.T) {
	srv := newTestSSHServer(t, openTestJournal(t))

	a := srv.newSession("alice", 100, 40)
	b := srv.newSession("bob", 80, 24)

	if a.Recorder == nil || b.Recorder == nil {
		t.Fatal("every session should get a recorder when the journal is open")
	}
	if a.Recorder == b.Recorder {
		t.Error("sessions must not share a recorder")
	}
	if a.Runtime.ScreenW != 100 || a.Runtime.ScreenH != 40 {
		t.Errorf("session size = %dx%d, want 100x40", a.Runtime.ScreenW, a.Runtime.ScreenH)
	}
	if a.Runtime.TickRate != DefaultTickRate {
		t.Errorf("TickRate = %d, want %d", a.Runtime.TickRate, DefaultTickRate)
	}
	if got := a.Recorder.Recording().Shell; got != SSHShellName {
		t.Errorf("recording shell = %q, want %q", got, SSHShellName)
	}

	a.Advance(a.NewGame(), 0, core.ActionFlap)
	if a.Recorder.Len() != 1 || b.Recorder.Len() != 0 {
		t.Errorf("frames = %d/%d, want 1/0", a.Recorder.Len(), b.Recorder.Len())
	}
}

func TestSSHSessionWithoutJournal(t *testing.T) {
	srv := newTestSSHServer(t, nil)

	if s := srv.newSession("carol", 80, 24); s.Recorder != nil {
		t.Error("no journal means no recorder")
	}
}

func TestSaveOnCloseWritesRecording(t *testing.T) {
	store := openTestJournal(t)
	srv := newTestSSHServer(t, store)

	session := srv.newSession("dave", 80, 24)
	g := session.NewGame()
	session.Advance(g, 0, core.ActionFlap)
	for i := 0; i < 50; i++ {
		session.Advance(g, 21, core.ActionNone)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	srv.saveOnClose(ctx, "dave", session.Recorder)

	list, err := store.List(0)
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("List() = %d recordings, want 1", len(list))
	}
	if list[0].Shell != SSHShellName || list[0].FrameCount != 51 {
		t.Errorf("summary = %+v, want ssh with 51 frames", list[0])
	}

	rec, err := store.Load(list[0].ID)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	res, err := journal.Replay(rec)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if res.FinalMode != g.Mode() || res.FinalScore != g.Score() {
		t.Errorf("replay ended in %v/%d, live game in %v/%d", res.FinalMode, res.FinalScore, g.Mode(), g.Score())
	}
}

func TestSaveOnCloseSkipsEmptySession(t *testing.T) {
	store := openTestJournal(t)
	srv := newTestSSHServer(t, store)
	session := srv.newSession("erin", 80, 24)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	srv.saveOnClose(ctx, "erin", session.Recorder)

	list, err := store.List(0)
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("List() = %d recordings, want none for an idle session", len(list))
	}
}
