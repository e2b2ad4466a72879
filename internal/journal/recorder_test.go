package journal

import (
	"testing"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

func TestRecorderCapsFrames(t *testing.T) {
	rec, err := NewRecorder("tcell", 7, config.DefaultDragonConfig(), 3)
	if err != nil {
		t.Fatalf("NewRecorder() failed: %v", err)
	}

	for i := 0; i < 5; i++ {
		rec.Record(16, core.ActionNone)
	}

	if rec.Len() != 3 {
		t.Errorf("Len() = %d, want 3", rec.Len())
	}
	if !rec.Truncated() {
		t.Error("Truncated() should be true after exceeding the cap")
	}

	r := rec.Recording()
	if r.Shell != "tcell" || r.Seed != 7 || len(r.Frames) != 3 || !r.Truncated {
		t.Errorf("Recording() = %+v", r)
	}
}

func TestRecorderSnapshotIsCopy(t *testing.T) {
	rec, err := NewRecorder("tea", 1, config.DefaultDragonConfig(), 0)
	if err != nil {
		t.Fatalf("NewRecorder() failed: %v", err)
	}
	rec.Record(10, core.ActionFlap)

	r := rec.Recording()
	r.Frames[0].Action = core.ActionQuit

	if rec.Recording().Frames[0].Action != core.ActionFlap {
		t.Error("mutating a snapshot changed the recorder")
	}
	if rec.maxFrames != DefaultMaxFrames {
		t.Errorf("maxFrames = %d, want default", rec.maxFrames)
	}
}

func TestRecorderConfigParses(t *testing.T) {
	cfg := config.DefaultDragonConfig()
	config.ApplyPreset(&cfg, config.DifficultyHard)

	rec, err := NewRecorder("tea", 1, cfg, 0)
	if err != nil {
		t.Fatalf("NewRecorder() failed: %v", err)
	}

	parsed, err := config.Parse([]byte(rec.Recording().ConfigYAML))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if parsed != cfg {
		t.Errorf("recorded config does not round-trip:\n got %+v\nwant %+v", parsed, cfg)
	}
}
