// Package board draws the canvas: a title row, then the painted cells.
// It knows nothing about the cell set; it plots whatever projected points it
// is handed.
package board

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"github.com/andyrewlee/qraw/internal/paint"
	"github.com/andyrewlee/qraw/internal/ui/common"
)

const hintZonePrefix = "hint:"

// Hint is a clickable key hint on the title row.
type Hint struct {
	ID    string
	Label string
}

// Frame is everything needed to draw one screen.
type Frame struct {
	Width  int
	Height int
	Points []paint.Point

	// Titles are drawn left to right from column 0.
	Titles []string
	// Status and Hints are right-aligned on the title row.
	Status string
	Hints  []Hint
	// Overlay is drawn right-aligned on the bottom row, e.g. a toast.
	Overlay string
}

// Renderer turns frames into terminal content.
type Renderer struct {
	styles common.Styles
	glyph  string
	zone   *zone.Manager
}

// New creates a renderer. z may be nil, in which case hints are not
// clickable.
func New(z *zone.Manager) *Renderer {
	return &Renderer{
		styles: common.DefaultStyles(),
		glyph:  "█",
		zone:   z,
	}
}

// SetStyles updates styles (for theme changes).
func (r *Renderer) SetStyles(styles common.Styles) {
	r.styles = styles
}

// SetGlyph sets the on-screen glyph for painted cells.
func (r *Renderer) SetGlyph(glyph string) {
	if glyph != "" {
		r.glyph = glyph
	}
}

// Render draws f. The result has exactly f.Height lines.
func (r *Renderer) Render(f Frame) string {
	if f.Width <= 0 || f.Height <= 0 {
		return ""
	}
	grid := Plot(f.Points, f.Width, f.Height)

	lines := make([]string, f.Height)
	lines[0] = r.titleRow(f)
	for row := 1; row < f.Height; row++ {
		lines[row] = r.paintRow(grid[row], f.Width)
	}

	if f.Overlay != "" && f.Height > 1 {
		last := f.Height - 1
		lines[last] = r.overlayRow(grid[last], f.Width, f.Overlay)
	}
	return strings.Join(lines, "\n")
}

// HintAt returns the hint ID under screen position (x, y), using zone
// positions recorded by the last Scan.
func (r *Renderer) HintAt(x, y int, hints []Hint) (string, bool) {
	if r.zone == nil {
		return "", false
	}
	for _, h := range hints {
		z := r.zone.Get(hintZonePrefix + h.ID)
		if z == nil || z.IsZero() {
			continue
		}
		if y >= z.StartY && y <= z.EndY && x >= z.StartX && x <= z.EndX {
			return h.ID, true
		}
	}
	return "", false
}

// Scan strips zone markers from a rendered screen and records their
// positions. Call it on the final view content.
func (r *Renderer) Scan(content string) string {
	if r.zone == nil {
		return content
	}
	return r.zone.Scan(content)
}

func (r *Renderer) titleRow(f Frame) string {
	var left strings.Builder
	for i, t := range f.Titles {
		if i == 0 {
			left.WriteString(r.styles.Title.Render(t))
			continue
		}
		left.WriteString(r.styles.Hint.Render(t))
	}
	leftText := ansi.Truncate(left.String(), f.Width, "")
	leftWidth := lipgloss.Width(leftText)

	// Drop hints from the end, then the status, until the right side fits.
	room := f.Width - leftWidth - 1
	hints := f.Hints
	status := f.Status
	for len(hints) > 0 && rightWidth(status, hints) > room {
		hints = hints[:len(hints)-1]
	}
	if rightWidth(status, hints) > room {
		status = ""
	}
	if rightWidth(status, hints) > room || (status == "" && len(hints) == 0) {
		return leftText + strings.Repeat(" ", f.Width-leftWidth)
	}

	var right strings.Builder
	if status != "" {
		right.WriteString(r.styles.Status.Render(status))
	}
	for _, h := range hints {
		label := r.styles.Hint.Render(" " + h.Label)
		if r.zone != nil {
			label = r.zone.Mark(hintZonePrefix+h.ID, label)
		}
		right.WriteString(label)
	}
	gap := f.Width - leftWidth - rightWidth(status, hints)
	return leftText + strings.Repeat(" ", gap) + right.String()
}

func rightWidth(status string, hints []Hint) int {
	w := lipgloss.Width(status)
	for _, h := range hints {
		w += 1 + lipgloss.Width(h.Label)
	}
	return w
}

func (r *Renderer) paintRow(cells []bool, width int) string {
	return r.paintCells(cells[:width])
}

func (r *Renderer) overlayRow(cells []bool, width int, overlay string) string {
	overlay = ansi.Truncate(overlay, width, "")
	keep := width - lipgloss.Width(overlay)
	if keep < 0 {
		keep = 0
	}
	return r.paintCells(cells[:keep]) + overlay
}

// paintCells renders runs of painted cells with one style call per run.
func (r *Renderer) paintCells(cells []bool) string {
	var b strings.Builder
	run := 0
	flush := func() {
		if run > 0 {
			b.WriteString(r.styles.Paint.Render(strings.Repeat(r.glyph, run)))
			run = 0
		}
	}
	for _, on := range cells {
		if on {
			run++
			continue
		}
		flush()
		b.WriteByte(' ')
	}
	flush()
	return b.String()
}
