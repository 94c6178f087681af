package board

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/andyrewlee/qraw/internal/paint"
)

func plainLines(t *testing.T, s string) []string {
	t.Helper()
	return strings.Split(ansi.Strip(s), "\n")
}

func TestPlotInvertsRenderCoordinates(t *testing.T) {
	const width, height = 10, 6
	s := paint.NewSurface()
	painted := []paint.Cell{{Col: 0, Row: 1}, {Col: 9, Row: 5}, {Col: 4, Row: 3}}
	for _, c := range painted {
		s.DragPaint(c)
	}

	grid := Plot(s.RenderCoordinates(paint.Cell{}, height), width, height)
	for _, c := range painted {
		if !grid[c.Row][c.Col] {
			t.Fatalf("expected %v to be plotted", c)
		}
	}
	if grid.Count() != len(painted) {
		t.Fatalf("expected %d plotted cells, got %d", len(painted), grid.Count())
	}
}

func TestPlotDropsTitleRowAndOffscreen(t *testing.T) {
	s := paint.NewSurface()
	for _, c := range []paint.Cell{{Col: 2, Row: 0}, {Col: 20, Row: 2}, {Col: 1, Row: 9}, {Col: -1, Row: 1}} {
		s.DragPaint(c)
	}
	grid := Plot(s.RenderCoordinates(paint.Cell{}, 5), 5, 5)
	if grid.Count() != 0 {
		t.Fatalf("expected nothing plotted, got %d", grid.Count())
	}
	if Plot(nil, 0, 5) != nil {
		t.Fatal("expected nil grid for zero width")
	}
}

func TestRenderDrawsTitleAndPoints(t *testing.T) {
	r := New(nil)
	s := paint.NewSurface()
	s.DragPaint(paint.Cell{Col: 1, Row: 1})
	s.DragPaint(paint.Cell{Col: 3, Row: 2})

	out := r.Render(Frame{
		Width:  30,
		Height: 3,
		Points: s.RenderCoordinates(paint.Cell{}, 3),
		Titles: []string{" ↓↓ Draw here ↓↓ "},
		Status: "2 cells",
	})
	lines := plainLines(t, out)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), lines)
	}
	if !strings.HasPrefix(lines[0], " ↓↓ Draw here ↓↓ ") || !strings.HasSuffix(lines[0], "2 cells") {
		t.Fatalf("unexpected title row %q", lines[0])
	}
	if lines[1] != " █"+strings.Repeat(" ", 28) {
		t.Fatalf("unexpected row 1 %q", lines[1])
	}
	if lines[2] != "   █"+strings.Repeat(" ", 26) {
		t.Fatalf("unexpected row 2 %q", lines[2])
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 30 {
			t.Fatalf("line %d has width %d, want 30", i, w)
		}
	}
}

func TestRenderUsesGlyph(t *testing.T) {
	r := New(nil)
	r.SetGlyph("#")
	r.SetGlyph("")
	out := r.Render(Frame{Width: 3, Height: 2, Points: []paint.Point{{X: 0, Y: 1}}})
	lines := plainLines(t, out)
	if lines[1] != "#  " {
		t.Fatalf("unexpected row %q", lines[1])
	}
}

func TestRenderDropsHintsThatDoNotFit(t *testing.T) {
	r := New(nil)
	hints := []Hint{{ID: "export", Label: "<s> save"}, {ID: "clear", Label: "<c> clear"}}

	wide := plainLines(t, r.Render(Frame{Width: 40, Height: 1, Titles: []string{"title"}, Hints: hints}))[0]
	if !strings.HasSuffix(wide, "<s> save <c> clear") {
		t.Fatalf("expected both hints, got %q", wide)
	}

	narrow := plainLines(t, r.Render(Frame{Width: 16, Height: 1, Titles: []string{"title"}, Hints: hints}))[0]
	if strings.Contains(narrow, "clear") || !strings.Contains(narrow, "save") {
		t.Fatalf("expected only the first hint, got %q", narrow)
	}

	tiny := plainLines(t, r.Render(Frame{Width: 4, Height: 1, Titles: []string{"title"}, Hints: hints}))[0]
	if tiny != "titl" {
		t.Fatalf("expected truncated title only, got %q", tiny)
	}
}

func TestRenderOverlayOnBottomRow(t *testing.T) {
	r := New(nil)
	out := r.Render(Frame{
		Width:   12,
		Height:  3,
		Points:  []paint.Point{{X: 0, Y: 1}, {X: 11, Y: 1}},
		Overlay: "saved",
	})
	lines := plainLines(t, out)
	if lines[2] != "█      saved" {
		t.Fatalf("unexpected bottom row %q", lines[2])
	}
}

func TestHintAtWithoutZone(t *testing.T) {
	r := New(nil)
	if _, ok := r.HintAt(0, 0, []Hint{{ID: "export", Label: "<s> save"}}); ok {
		t.Fatal("expected no hint without a zone manager")
	}
	if got := r.Scan("abc"); got != "abc" {
		t.Fatalf("Scan without zone changed content: %q", got)
	}
}

func TestRenderEmptyFrame(t *testing.T) {
	if got := New(nil).Render(Frame{}); got != "" {
		t.Fatalf("expected empty render, got %q", got)
	}
}
