package maligui

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestColorTweenReachesTarget(t *testing.T) {
	from := Color{R: 200, G: 0, B: 100, A: 255}
	to := Color{R: 0, G: 200, B: 50, A: 128}
	tw := NewColorTween(from, to, 1.0, ease.Linear)

	if tw.Value() != from {
		t.Errorf("initial Value() = %v, want %v", tw.Value(), from)
	}

	// Exact halves avoid float32 accumulation drift.
	mid := tw.Update(0.5)
	if tw.Done {
		t.Fatal("should not be done halfway")
	}
	if mid != (Color{R: 100, G: 100, B: 75, A: 192}) {
		t.Errorf("halfway = %v, want {100 100 75 192}", mid)
	}

	end := tw.Update(0.5)
	if !tw.Done {
		t.Fatal("expected Done after full duration")
	}
	if end != to {
		t.Errorf("end = %v, want %v", end, to)
	}
	if got := tw.Update(1); got != to {
		t.Errorf("Update after Done = %v, want %v", got, to)
	}
}

func TestColorTweenOvershootClamped(t *testing.T) {
	tw := NewColorTween(ColorBlack, ColorWhite, 1.0, ease.OutBack)
	for i := 0; i < 10; i++ {
		c := tw.Update(0.1)
		if c.A != 255 {
			t.Fatalf("alpha = %d, want 255 throughout", c.A)
		}
	}
	if got := tw.Update(1); got != ColorWhite || !tw.Done {
		t.Errorf("final = %v (done %v), want white", got, tw.Done)
	}
}

func TestChannelClamp(t *testing.T) {
	tests := []struct {
		in   float32
		want uint8
	}{
		{-5, 0},
		{0, 0},
		{127.5, 128},
		{255, 255},
		{300, 255},
	}
	for _, tt := range tests {
		if got := channel(tt.in); got != tt.want {
			t.Errorf("channel(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
