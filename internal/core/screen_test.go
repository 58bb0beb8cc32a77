package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("dimensions = %dx%d, expected 80x24", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, '$', ColorCoin)
	if c := s.GetCell(5, 5); c.Rune != '$' || c.Color != ColorCoin {
		t.Errorf("GetCell(5, 5) = %+v, expected coin cell", c)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(20, 2)
	s.DrawText(0, 0, "£12.50")

	if got := strings.TrimRight(s.Row(0), " "); got != "£12.50" {
		t.Errorf("Row(0) = %q, expected %q", got, "£12.50")
	}
	if s.Get(1, 0) != '1' {
		t.Errorf("multibyte rune should occupy one cell, got %q at x=1", s.Get(1, 0))
	}
}

func TestScreenDrawLines(t *testing.T) {
	s := NewScreen(20, 5)
	n := s.DrawLines(1, 1, "Deposit money?\n(y/n)\n", ColorPanel)

	if n != 2 {
		t.Errorf("DrawLines returned %d rows, expected 2", n)
	}
	if !strings.HasPrefix(s.Row(2), " (y/n)") {
		t.Errorf("Row(2) = %q", s.Row(2))
	}
	if s.GetCell(1, 1).Color != ColorPanel {
		t.Error("DrawLines should apply color")
	}
}

func TestScreenFillBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillBox(NewBox(2.6, 3.2, 3, 2), 1, 1, '#', ColorWall)

	// Box cell origin (2, 3) shifted by camera offset (1, 1)
	for y := 2; y < 4; y++ {
		for x := 1; x < 4; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("FillBox: expected '#' at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
	if s.Get(4, 2) != ' ' {
		t.Error("FillBox should not affect outside area")
	}
}

func TestScreenDrawFrame(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(3, 2, 'X')
	s.DrawFrame(1, 1, 5, 4, ColorPanel)

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' || s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("frame corners not drawn")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("frame edges not drawn")
	}
	if s.Get(3, 2) != ' ' {
		t.Error("frame interior should be cleared")
	}
}

func TestScreenStringAndResize(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "AAA")
	s.DrawText(0, 1, "BBB")

	if got := s.String(); got != "AAA\nBBB" {
		t.Errorf("String() = %q", got)
	}

	s.Resize(4, 3)
	if s.Width() != 4 || s.Height() != 3 {
		t.Errorf("after resize dimensions = %dx%d", s.Width(), s.Height())
	}
	if s.Row(-1) != "    " {
		t.Errorf("out of bounds row = %q", s.Row(-1))
	}
}
