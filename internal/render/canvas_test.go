package render

import (
	"strings"
	"testing"
)

func TestNewCanvas(t *testing.T) {
	c := NewCanvas(10, 5)
	if c.Width() != 10 || c.Height() != 5 {
		t.Errorf("canvas size = %dx%d, want 10x5", c.Width(), c.Height())
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if c.At(x, y) != ' ' {
				t.Fatalf("fresh canvas cell (%d,%d) = %q", x, y, c.At(x, y))
			}
		}
	}
}

func TestCanvasSetBounds(t *testing.T) {
	c := NewCanvas(10, 5)

	c.Set(3, 2, '*', colorStarBright)
	if c.At(3, 2) != '*' {
		t.Errorf("At(3,2) = %q, want '*'", c.At(3, 2))
	}

	// Out-of-range writes are dropped, not panics.
	c.Set(-1, 0, 'x', colorStarBright)
	c.Set(0, -1, 'x', colorStarBright)
	c.Set(10, 0, 'x', colorStarBright)
	c.Set(0, 5, 'x', colorStarBright)
	c.Set(1000000, 1000000, 'x', colorStarBright)

	if strings.ContainsRune(c.Plain(), 'x') {
		t.Error("out-of-bounds write landed on the canvas")
	}
}

func TestCanvasAtOutOfBounds(t *testing.T) {
	c := NewCanvas(4, 4)
	if r := c.At(-1, 0); r != ' ' {
		t.Errorf("At(-1,0) = %q, want space", r)
	}
	if r := c.At(4, 4); r != ' ' {
		t.Errorf("At(4,4) = %q, want space", r)
	}
}

func TestCanvasSetString(t *testing.T) {
	c := NewCanvas(10, 3)
	c.SetString(2, 1, "abc", colorLabel)

	if c.At(2, 1) != 'a' || c.At(3, 1) != 'b' || c.At(4, 1) != 'c' {
		t.Errorf("SetString did not lay out runes: %q", c.Plain())
	}

	// Strings running off the edge are clipped.
	c.SetString(8, 0, "long", colorLabel)
	if c.At(8, 0) != 'l' || c.At(9, 0) != 'o' {
		t.Errorf("clipped string start missing: %q", c.Plain())
	}
}

func TestCanvasPlain(t *testing.T) {
	c := NewCanvas(5, 2)
	c.Set(0, 0, 'A', colorStarBright)
	c.Set(2, 1, 'B', colorStarBright)

	plain := c.Plain()
	lines := strings.Split(strings.TrimRight(plain, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Plain() has %d lines, want 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "A") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "B") {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestCanvasZeroSize(t *testing.T) {
	c := NewCanvas(0, 0)
	c.Set(0, 0, 'x', colorStarBright)
	if c.Plain() != "" && c.Plain() != "\n" {
		t.Errorf("zero canvas Plain() = %q", c.Plain())
	}
}
