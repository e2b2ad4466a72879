package journal

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// DefaultMaxFrames caps a recording at roughly half an hour at 60 fps.
const DefaultMaxFrames = 60 * 60 * 30

// Recorder accumulates frames for one session in memory. Safe for concurrent use.
type Recorder struct {
	mu sync.Mutex

	shell      string
	seed       int64
	configYAML string
	maxFrames  int
	frames     []Frame
	truncated  bool
}

// NewRecorder prepares a recorder for a session started with cfg and seed.
// maxFrames <= 0 selects DefaultMaxFrames.
func NewRecorder(shell string, seed int64, cfg config.DragonConfig, maxFrames int) (*Recorder, error) {
	data, err := cfg.Marshal()
	if err != nil {
		return nil, fmt.Errorf("journal: cannot marshal config: %w", err)
	}
	if maxFrames <= 0 {
		maxFrames = DefaultMaxFrames
	}
	return &Recorder{
		shell:      shell,
		seed:       seed,
		configYAML: string(data),
		maxFrames:  maxFrames,
	}, nil
}

// Record appends one Tick call. Frames past the cap are dropped and the recording
// is flagged as truncated.
func (r *Recorder) Record(elapsedMs float64, action core.Action) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.frames) >= r.maxFrames {
		r.truncated = true
		return
	}
	r.frames = append(r.frames, Frame{ElapsedMs: elapsedMs, Action: action})
}

// Len returns the number of recorded frames.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}

// Truncated reports whether frames were dropped.
func (r *Recorder) Truncated() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.truncated
}

// Recording returns a snapshot of everything recorded so far.
func (r *Recorder) Recording() Recording {
	r.mu.Lock()
	defer r.mu.Unlock()

	frames := make([]Frame, len(r.frames))
	copy(frames, r.frames)
	return Recording{
		Shell:      r.shell,
		Seed:       r.seed,
		ConfigYAML: r.configYAML,
		Frames:     frames,
		Truncated:  r.truncated,
	}
}
