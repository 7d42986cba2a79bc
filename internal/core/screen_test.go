package core

import (
	"strings"
	"testing"
)

func TestScreenNewAndClear(t *testing.T) {
	s := NewScreen(10, 5)

	if s.Width() != 10 || s.Height() != 5 {
		t.Errorf("dimensions = (%d, %d), expected (10, 5)", s.Width(), s.Height())
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("cell (%d, %d) = %q, expected space", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '#')
	if s.Get(3, 2) != '#' {
		t.Errorf("Get(3, 2) = %q, expected '#'", s.Get(3, 2))
	}

	s.SetCell(4, 2, '●', ColorBrightRed)
	cell := s.GetCell(4, 2)
	if cell.Rune != '●' || cell.Color != ColorBrightRed {
		t.Errorf("GetCell(4, 2) = %+v, expected red dot", cell)
	}

	// Set leaves the default color.
	if s.GetCell(3, 2).Color != ColorDefault {
		t.Error("Set() should use the default color")
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)

	// Should not panic
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, -1, 'x')
	s.Set(0, 5, 'x')

	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' {
		t.Error("out-of-bounds Get() should return space")
	}
	if c := s.GetCell(100, 100); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("out-of-bounds GetCell() = %+v, expected empty default", c)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetCell(2, 2, 'A', ColorBrightGreen)
	s.Set(9, 4, 'B')

	s.Resize(6, 4)

	if s.Width() != 6 || s.Height() != 4 {
		t.Errorf("dimensions = (%d, %d), expected (6, 4)", s.Width(), s.Height())
	}

	// Content inside the new bounds survives
	cell := s.GetCell(2, 2)
	if cell.Rune != 'A' || cell.Color != ColorBrightGreen {
		t.Errorf("cell (2, 2) = %+v, expected preserved 'A'", cell)
	}

	// Content outside the new bounds is gone
	if s.Get(9, 4) != ' ' {
		t.Error("content outside new bounds should be dropped")
	}

	// Growing back leaves the revealed area blank
	s.Resize(12, 6)
	if s.Get(11, 5) != ' ' {
		t.Error("new area after grow should be blank")
	}
	if s.Get(2, 2) != 'A' {
		t.Error("content should survive a grow")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hi")
	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Error("DrawText() did not place characters")
	}

	// Clipped at the right edge without panicking
	s.DrawText(8, 0, "long")
	if s.Get(8, 0) != 'l' || s.Get(9, 0) != 'o' {
		t.Error("DrawText() should draw up to the edge")
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawTextColored(1, 1, "ok", ColorBrightCyan)
	for i, r := range "ok" {
		cell := s.GetCell(1+i, 1)
		if cell.Rune != r || cell.Color != ColorBrightCyan {
			t.Errorf("cell %d = %+v, expected colored %q", i, cell, r)
		}
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)

	s.DrawTextCentered(1, "abc")
	if s.Get(4, 1) != 'a' || s.Get(5, 1) != 'b' || s.Get(6, 1) != 'c' {
		t.Errorf("centered text misplaced: row = %q", rowString(s, 1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawBox(1, 1, 5, 3)

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' {
		t.Error("top corners missing")
	}
	if s.Get(1, 3) != '└' || s.Get(5, 3) != '┘' {
		t.Error("bottom corners missing")
	}
	if s.Get(3, 1) != '─' || s.Get(3, 3) != '─' {
		t.Error("horizontal edges missing")
	}
	if s.Get(1, 2) != '│' || s.Get(5, 2) != '│' {
		t.Error("vertical edges missing")
	}
	if s.Get(3, 2) != ' ' {
		t.Error("box interior should stay empty")
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(8, 4)
	s.FillRect(2, 1, 3, 2, '*')

	for y := 1; y <= 2; y++ {
		for x := 2; x <= 4; x++ {
			if s.Get(x, y) != '*' {
				t.Fatalf("cell (%d, %d) not filled", x, y)
			}
		}
	}
	if s.Get(1, 1) != ' ' || s.Get(5, 1) != ' ' {
		t.Error("fill leaked outside the rect")
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(8, 3)
	s.DrawHLine(1, 1, 5, '-')

	for x := 1; x <= 5; x++ {
		if s.Get(x, 1) != '-' {
			t.Fatalf("cell (%d, 1) = %q, expected '-'", x, s.Get(x, 1))
		}
	}
	if s.Get(6, 1) != ' ' {
		t.Error("line drew past its length")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "ab")
	s.DrawText(0, 1, "cd")

	got := s.String()
	expected := "ab  \ncd  "
	if got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("String() should contain exactly one newline for 2 rows")
	}
}

func rowString(s *Screen, y int) string {
	var sb strings.Builder
	for x := 0; x < s.Width(); x++ {
		sb.WriteRune(s.Get(x, y))
	}
	return sb.String()
}
