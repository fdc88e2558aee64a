package asset

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestBallRegistryLoadsEveryNumber(t *testing.T) {
	r := NewBallRegistry(49)

	if r.Len() != 49 {
		t.Fatalf("Expected 49 sprites, got %d", r.Len())
	}

	for n := 1; n <= 49; n++ {
		s, err := r.Lookup(SpriteName(n))
		if err != nil {
			t.Fatalf("Lookup(%s) failed: %v", SpriteName(n), err)
		}
		if s.Width() != SpriteWidth || s.Height() != SpriteHeight {
			t.Errorf("Sprite %d is %dx%d, want %dx%d", n, s.Width(), s.Height(), SpriteWidth, SpriteHeight)
		}
	}
}

func TestLookupMissing(t *testing.T) {
	r := NewBallRegistry(6)

	_, err := r.Lookup(SpriteName(7))
	if !errors.Is(err, ErrSpriteNotFound) {
		t.Errorf("Expected ErrSpriteNotFound, got %v", err)
	}
}

func TestRenderBallFace(t *testing.T) {
	s := RenderBall(7)
	if s.Rows[1] != "│07│" {
		t.Errorf("Face row = %q, want %q", s.Rows[1], "│07│")
	}

	s = RenderBall(42)
	if s.Rows[1] != "│42│" {
		t.Errorf("Face row = %q, want %q", s.Rows[1], "│42│")
	}
}

func TestBallColorBands(t *testing.T) {
	tests := []struct {
		n    int
		want tcell.Color
	}{
		{1, tcell.ColorWhite},
		{9, tcell.ColorWhite},
		{10, tcell.ColorBlue},
		{25, tcell.ColorFuchsia},
		{39, tcell.ColorGreen},
		{49, tcell.ColorYellow},
		{77, tcell.ColorRed},
	}

	for _, tt := range tests {
		if got := BallColor(tt.n); got != tt.want {
			t.Errorf("BallColor(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}
