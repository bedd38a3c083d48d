package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("dimensions = %dx%d, expected 12x4", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			c := s.GetCell(x, y)
			if c.Rune != ' ' || !c.Fg.IsDefault() || !c.Bg.IsDefault() {
				t.Fatalf("expected blank cell at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(4, 4)

	// None of these may panic
	s.Set(-1, 0, 'A')
	s.Set(4, 0, 'A')
	s.SetCell(0, -1, Cell{Rune: 'A'})
	s.SetCell(0, 4, Cell{Rune: 'A'})

	if s.Get(-1, 0) != ' ' || s.Get(10, 10) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenSetKeepsColours(t *testing.T) {
	s := NewScreen(3, 1)
	bg := RGB(10, 20, 30)
	s.SetCell(1, 0, Cell{Rune: '▀', Fg: ColorWhite, Bg: bg})

	s.Set(1, 0, 'x')
	c := s.GetCell(1, 0)
	if c.Rune != 'x' || c.Fg != ColorWhite || c.Bg != bg {
		t.Errorf("Set should only replace the rune, got %+v", c)
	}
}

func TestScreenClearDropsColours(t *testing.T) {
	s := NewScreen(3, 3)
	s.FillCell(Cell{Rune: '#', Fg: ColorWhite, Bg: ColorBlack})
	s.Clear()

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if s.GetCell(x, y) != blankCell {
				t.Fatalf("after Clear, expected blank at (%d, %d), got %+v", x, y, s.GetCell(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(8, 2)
	s.DrawText(5, 0, "Hello")

	if got := s.Row(0); got != "     Hel" {
		t.Errorf("Row(0) = %q, text should be clipped at the right edge", got)
	}

	s.DrawTextColor(0, 1, "HI", ColorGray, ColorBlack)
	if c := s.GetCell(1, 1); c.Rune != 'I' || c.Fg != ColorGray || c.Bg != ColorBlack {
		t.Errorf("DrawTextColor cell = %+v", c)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(8, 6)
	s.DrawBox(1, 1, 5, 4)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
}

func TestScreenLines(t *testing.T) {
	s := NewScreen(6, 6)
	s.DrawHLine(0, 0, 6, '-')
	s.DrawVLine(0, 1, 5, '|')

	if s.Row(0) != "------" {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
	for y := 1; y < 6; y++ {
		if s.Get(0, y) != '|' {
			t.Errorf("DrawVLine missing at y=%d", y)
		}
	}
	if s.Row(2) != "|     " {
		t.Errorf("Row(2) = %q", s.Row(2))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "def")

	if got := s.String(); got != "abc\ndef" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColor(0, 0, "Hello", ColorWhite, ColorDefault)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after resize dimensions = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if s.GetCell(0, 0).Fg != ColorWhite {
		t.Error("colours should survive a resize")
	}
	if s.Row(-1) != strings.Repeat(" ", 15) {
		t.Errorf("out of bounds row should be spaces, got %q", s.Row(-1))
	}
}

func TestScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("negative sizes should clamp to zero, got %dx%d", s.Width(), s.Height())
	}
	if s.String() != "" {
		t.Errorf("empty screen should render empty string")
	}
}
