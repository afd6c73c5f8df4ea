package core

import "testing"

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be blank, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X', ColorRed)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected X/red", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A', ColorRed)
	s.Set(100, 0, 'A', ColorRed)
	s.Set(0, 100, 'A', ColorRed)

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClearAndResize(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawText(0, 0, "abcd", ColorGreen)
	s.Clear()
	if got := s.String(); got != "    \n    \n    " {
		t.Errorf("String() after Clear = %q", got)
	}

	s.Resize(6, 2)
	if s.Width() != 6 || s.Height() != 2 {
		t.Errorf("Resize() = %dx%d, expected 6x2", s.Width(), s.Height())
	}
	s.Set(5, 1, '#', ColorDefault)
	if s.Get(5, 1) != '#' {
		t.Error("Set after Resize should write into the new area")
	}
}
