package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestStreamLength(t *testing.T) {
	tests := []struct {
		name string
		tone Tone
	}{
		{"flap", flapTone},
		{"crash", crashTone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Stream(sampleRate, tc.tone)
			if err != nil {
				t.Fatalf("Stream() failed: %v", err)
			}
			if got, want := drain(s), sampleRate.N(tc.tone.Duration); got != want {
				t.Errorf("streamed %d samples, want %d", got, want)
			}
		})
	}
}

func TestStreamAmplitude(t *testing.T) {
	s, err := Stream(sampleRate, Tone{Freq: 440, Duration: 10 * time.Millisecond, Volume: -1})
	if err != nil {
		t.Fatalf("Stream() failed: %v", err)
	}

	buf := make([][2]float64, 441)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] < -0.5001 || buf[i][0] > 0.5001 {
			t.Fatalf("sample %d = %f, want within half amplitude", i, buf[i][0])
		}
	}
}

func TestStreamRejectsBadFrequency(t *testing.T) {
	if _, err := Stream(sampleRate, Tone{Freq: float64(sampleRate), Duration: time.Millisecond}); err == nil {
		t.Error("frequency above Nyquist should fail")
	}
}

func TestZeroCuesAreSilent(t *testing.T) {
	var c Cues
	c.Flap()
	c.Crash()
	c.Close()
	if c.Enabled() {
		t.Error("zero Cues should not be enabled")
	}
}
