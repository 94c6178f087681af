package board

import (
	"math"

	"github.com/andyrewlee/qraw/internal/paint"
)

// Grid is a cell-resolution bitmap of plotted points, indexed [row][col].
type Grid [][]bool

// Plot maps projected points back onto a width x height screen whose
// vertical axis points down. A point (x, y) lands on column round(x) and
// row height - round(y), the inverse of Surface.RenderCoordinates with a zero
// origin. Points on row 0 (the title row) or outside the screen are dropped.
func Plot(points []paint.Point, width, height int) Grid {
	if width <= 0 || height <= 0 {
		return nil
	}
	grid := make(Grid, height)
	for i := range grid {
		grid[i] = make([]bool, width)
	}
	for _, p := range points {
		col := int(math.Round(p.X))
		row := height - int(math.Round(p.Y))
		if row < 1 || row >= height || col < 0 || col >= width {
			continue
		}
		grid[row][col] = true
	}
	return grid
}

// Count returns the number of plotted cells.
func (g Grid) Count() int {
	n := 0
	for _, row := range g {
		for _, on := range row {
			if on {
				n++
			}
		}
	}
	return n
}
