package core

import "testing"

func TestRandUniformRange(t *testing.T) {
	r := NewRand(42)
	for i := 0; i < 1000; i++ {
		v := r.Uniform(10, 40)
		if v < 10 || v >= 40 {
			t.Fatalf("Uniform(10, 40) = %f, out of range", v)
		}
	}
}

func TestRandDeterminism(t *testing.T) {
	a := NewRand(12345)
	b := NewRand(12345)
	for i := 0; i < 100; i++ {
		va, vb := a.Uniform(0, 1), b.Uniform(0, 1)
		if va != vb {
			t.Fatalf("draw %d differs: %f vs %f", i, va, vb)
		}
	}
}

func TestRandDegenerateRange(t *testing.T) {
	r := NewRand(1)
	if v := r.Uniform(7, 7); v != 7 {
		t.Errorf("Uniform(7, 7) = %f, expected 7", v)
	}
	if v := r.Uniform(9, 3); v != 9 {
		t.Errorf("Uniform(9, 3) = %f, expected 9", v)
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionNone, "None"},
		{ActionFlap, "Flap"},
		{ActionQuit, "Quit"},
		{Action(42), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("Action(%d).String() = %q, want %q", tc.a, got, tc.want)
		}
	}
	if Action(42).Valid() {
		t.Error("Action(42) should not be valid")
	}
}
