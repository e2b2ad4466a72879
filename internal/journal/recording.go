package journal

import (
	"fmt"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Frame is one call to Game.Tick: the real time that elapsed and the key pressed.
type Frame struct {
	ElapsedMs float64     `msgpack:"e"`
	Action    core.Action `msgpack:"a"`
}

// Recording is a complete session: enough to rebuild the game and feed it the same
// input in the same order.
type Recording struct {
	ID         int64
	Shell      string
	Seed       int64
	ConfigYAML string
	Frames     []Frame
	Truncated  bool // The recorder hit its frame cap and dropped the tail
	CreatedAt  time.Time
}

// Summary describes a stored recording without its frames.
type Summary struct {
	ID         int64
	Shell      string
	Seed       int64
	FrameCount int
	Truncated  bool
	CreatedAt  time.Time
}

// EncodeFrames packs frames into the BLOB format stored in the database.
func EncodeFrames(frames []Frame) ([]byte, error) {
	if frames == nil {
		frames = []Frame{}
	}
	return msgpack.Marshal(frames)
}

// DecodeFrames is the inverse of EncodeFrames.
func DecodeFrames(data []byte) ([]Frame, error) {
	var frames []Frame
	if err := msgpack.Unmarshal(data, &frames); err != nil {
		return nil, fmt.Errorf("cannot decode frames: %w", err)
	}
	return frames, nil
}
