package viz

import (
	"strings"
	"testing"
)

func TestNewCanvasRoundsUpCells(t *testing.T) {
	c := NewCanvas(220, 176)
	if c.Width != 110 || c.Height != 44 {
		t.Errorf("expected 110x44 cells, got %dx%d", c.Width, c.Height)
	}
	c = NewCanvas(221, 177)
	if c.Width != 111 || c.Height != 45 {
		t.Errorf("expected 111x45 cells, got %dx%d", c.Width, c.Height)
	}
}

func TestSetMapsToBrailleDot(t *testing.T) {
	c := NewCanvas(4, 8)
	c.Set(0, 0)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected dot 1 (0x2801), got %#x", c.Grid[0][0])
	}
	c.Set(3, 7)
	if c.Grid[1][1] != 0x2880 {
		t.Errorf("expected dot 8 (0x2880), got %#x", c.Grid[1][1])
	}
}

func TestSetIgnoresOutOfRange(t *testing.T) {
	c := NewCanvas(4, 8)
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(4, 0)
	c.Set(0, 8)
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatalf("out-of-range Set modified the grid: %#x", r)
			}
		}
	}
}

func TestFillRectCoversEveryPixel(t *testing.T) {
	c := NewCanvas(8, 8)
	c.FillRect(0, 0, 8, 8)
	// 8x8 pixels fill 4x2 cells completely.
	for i := 0; i < 2; i++ {
		for j := 0; j < 4; j++ {
			if c.Grid[i][j] != 0x28FF {
				t.Errorf("cell (%d,%d) = %#x, want full block 0x28ff", i, j, c.Grid[i][j])
			}
		}
	}
}

func TestStrokeRectLeavesInteriorEmpty(t *testing.T) {
	c := NewCanvas(8, 8)
	c.StrokeRect(0, 0, 8, 8)

	filled := NewCanvas(8, 8)
	filled.FillRect(0, 0, 8, 8)

	same := true
	for i := range c.Grid {
		for j := range c.Grid[i] {
			if c.Grid[i][j] != filled.Grid[i][j] {
				same = false
			}
		}
	}
	if same {
		t.Error("stroked rect should differ from filled rect")
	}

	// Interior pixel (3,3) is dot 2 of cell (0,1); it must stay off.
	if c.Grid[0][1]&rune(pixelMap[3][1]) != 0 {
		t.Error("interior pixel set by StrokeRect")
	}
}

func TestClear(t *testing.T) {
	c := NewCanvas(8, 8)
	c.FillRect(0, 0, 8, 8)
	c.Clear()
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatalf("Clear left %#x", r)
			}
		}
	}
}

func TestStringShape(t *testing.T) {
	c := NewCanvas(8, 8)
	s := c.String()
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 2 {
		t.Errorf("expected 2 rows, got %d", len(lines))
	}
	for _, line := range lines {
		if len([]rune(line)) != 4 {
			t.Errorf("expected 4 cells per row, got %d", len([]rune(line)))
		}
	}
}
