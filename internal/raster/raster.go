// Package raster turns a set of painted cells into a plain-text grid.
//
// Export runs three independent steps: Dedup orders the cells row-major and
// drops repeats, FillGrid emits one glyph or space per column and a newline
// per row, and TrimTrailing removes the spaces FillGrid left at line ends.
package raster

import (
	"sort"
	"strings"

	"github.com/andyrewlee/qraw/internal/paint"
)

// DefaultGlyph marks a painted cell in exported text.
const DefaultGlyph = "█"

// Bounds is the extent of the drawable grid. Rows 1..Height and columns
// 0..Width are rasterized; row 0 holds the title and is skipped.
type Bounds struct {
	Width  int
	Height int
}

// Options tunes Export.
type Options struct {
	// Glyph replaces DefaultGlyph when non-empty.
	Glyph string
}

// Export rasterizes cells using DefaultGlyph.
func Export(cells []paint.Cell, bounds Bounds) string {
	return ExportWith(cells, bounds, Options{})
}

// ExportWith rasterizes cells within bounds. The input slice is not modified,
// and duplicate cells in it produce a single glyph.
func ExportWith(cells []paint.Cell, bounds Bounds, opts Options) string {
	glyph := opts.Glyph
	if glyph == "" {
		glyph = DefaultGlyph
	}
	return TrimTrailing(FillGrid(Dedup(cells), bounds, glyph))
}

// Dedup returns a row-major sorted copy of cells with repeats removed.
// Membership of the result does not depend on the input order.
func Dedup(cells []paint.Cell) []paint.Cell {
	if len(cells) == 0 {
		return nil
	}
	sorted := append([]paint.Cell(nil), cells...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Less(sorted[j])
	})

	out := sorted[:1]
	for _, c := range sorted[1:] {
		if c != out[len(out)-1] {
			out = append(out, c)
		}
	}
	return out
}

// FillGrid emits Height lines of Width+1 characters each. sorted must be in
// row-major order without repeats, as returned by Dedup. Cells outside bounds
// are ignored.
func FillGrid(sorted []paint.Cell, bounds Bounds, glyph string) string {
	var b strings.Builder
	if bounds.Height > 0 && bounds.Width >= 0 {
		b.Grow(bounds.Height * (bounds.Width + 1 + len(glyph)))
	}

	i := 0
	for row := 1; row <= bounds.Height; row++ {
		for col := 0; col <= bounds.Width; col++ {
			at := paint.Cell{Col: col, Row: row}
			for i < len(sorted) && sorted[i].Less(at) {
				i++
			}
			if i < len(sorted) && sorted[i] == at {
				b.WriteString(glyph)
				i++
				continue
			}
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// TrimTrailing strips spaces and tabs immediately before every newline.
// Blank lines stay as a bare newline.
func TrimTrailing(text string) string {
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
