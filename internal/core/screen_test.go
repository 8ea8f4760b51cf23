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

	// Check that it's initialized with blank cells
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestNewScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("negative sizes should clamp to 0, got %dx%d", s.Width(), s.Height())
	}
}

func TestScreenSetGetCell(t *testing.T) {
	s := NewScreen(10, 10)

	want := Cell{Rune: '▀', Fg: ColorYellow, Bg: ColorGray}
	s.SetCell(5, 5, want)
	if c := s.GetCell(5, 5); c != want {
		t.Errorf("GetCell(5, 5) = %+v, expected %+v", c, want)
	}

	// Out of bounds should be silent
	s.SetCell(-1, 0, Cell{Rune: 'A'})
	s.SetCell(0, 100, Cell{Rune: 'A'})

	if s.GetCell(0, 100) != blankCell {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(3, 2)
	s.SetCell(1, 1, Cell{Rune: 'A', Fg: ColorYellow})

	s.Clear()

	if s.GetCell(1, 1) != blankCell {
		t.Errorf("Clear left %+v", s.GetCell(1, 1))
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetCell(1, 1, Cell{Rune: 'A'})
	s.SetCell(3, 3, Cell{Rune: 'B'})

	s.Resize(2, 6)

	if s.Width() != 2 || s.Height() != 6 {
		t.Fatalf("Resize() size = %dx%d, expected 2x6", s.Width(), s.Height())
	}
	if s.GetCell(1, 1).Rune != 'A' {
		t.Error("Resize should keep content inside the new bounds")
	}
	if s.GetCell(1, 5) != blankCell {
		t.Error("new rows should be blank")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawText(2, 1, "Score", ColorYellow, ColorDefault)

	for i, r := range "Score" {
		c := s.GetCell(2+i, 1)
		if c.Rune != r || c.Fg != ColorYellow || c.Bg != ColorDefault {
			t.Errorf("cell %d = %+v, expected %q in yellow", 2+i, c, r)
		}
	}
	if s.GetCell(1, 1) != blankCell || s.GetCell(7, 1) != blankCell {
		t.Error("DrawText should not touch neighbouring cells")
	}

	// Clipping at the right edge
	s.DrawText(18, 0, "Hello", ColorDefault, ColorDefault)
	if s.GetCell(18, 0).Rune != 'H' || s.GetCell(19, 0).Rune != 'e' {
		t.Error("DrawText should write visible part of clipped text")
	}

	// Multibyte runes take one cell each
	s.DrawText(0, 2, "▶ go", ColorGray, ColorDefault)
	if s.GetCell(0, 2).Rune != '▶' || s.GetCell(3, 2).Rune != 'o' {
		t.Error("DrawText placed multibyte text wrong")
	}
}

func TestColorHex(t *testing.T) {
	if got := RGB(0xfc, 0xb8, 0x00).Hex(); got != "#fcb800" {
		t.Errorf("Hex() = %q, expected #fcb800", got)
	}
	if got := ColorDefault.Hex(); got != "" {
		t.Errorf("default Hex() = %q, expected empty", got)
	}
}
