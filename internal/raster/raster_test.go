package raster

import (
	"strings"
	"testing"

	"github.com/andyrewlee/qraw/internal/paint"
)

func TestExportRowSkipAndBounds(t *testing.T) {
	cells := []paint.Cell{{Col: 4, Row: 3}, {Col: 0, Row: 1}}
	got := Export(cells, Bounds{Width: 4, Height: 3})
	want := "█\n\n    █\n"
	if got != want {
		t.Fatalf("Export() = %q, want %q", got, want)
	}
	if n := strings.Count(got, "\n"); n != 3 {
		t.Fatalf("expected 3 lines, got %d", n)
	}
}

func TestExportIgnoresDuplicates(t *testing.T) {
	cells := []paint.Cell{{Col: 3, Row: 2}, {Col: 3, Row: 2}}
	got := Export(cells, Bounds{Width: 5, Height: 2})
	want := "\n   █\n"
	if got != want {
		t.Fatalf("Export() = %q, want %q", got, want)
	}
	if n := strings.Count(got, DefaultGlyph); n != 1 {
		t.Fatalf("expected exactly one glyph, got %d", n)
	}
}

func TestExportIsDeterministic(t *testing.T) {
	cells := []paint.Cell{{Col: 2, Row: 2}, {Col: 0, Row: 1}, {Col: 7, Row: 4}, {Col: 1, Row: 1}}
	bounds := Bounds{Width: 8, Height: 5}
	first := Export(cells, bounds)
	second := Export(cells, bounds)
	if first != second {
		t.Fatalf("export differs between calls:\n%q\n%q", first, second)
	}

	reversed := make([]paint.Cell, len(cells))
	for i, c := range cells {
		reversed[len(cells)-1-i] = c
	}
	if got := Export(reversed, bounds); got != first {
		t.Fatalf("export depends on input order:\n%q\n%q", first, got)
	}
}

func TestExportDoesNotMutateInput(t *testing.T) {
	cells := []paint.Cell{{Col: 3, Row: 3}, {Col: 1, Row: 1}, {Col: 3, Row: 3}}
	orig := append([]paint.Cell(nil), cells...)
	_ = Export(cells, Bounds{Width: 4, Height: 4})
	for i := range cells {
		if cells[i] != orig[i] {
			t.Fatalf("input slice mutated: %v -> %v", orig, cells)
		}
	}
}

func TestExportSkipsTitleRowAndOutOfBounds(t *testing.T) {
	cells := []paint.Cell{
		{Col: 0, Row: 0},  // title row
		{Col: -1, Row: 1}, // left of grid
		{Col: 3, Row: 1},  // right of grid
		{Col: 0, Row: 3},  // below grid
		{Col: 2, Row: 2},
	}
	got := Export(cells, Bounds{Width: 2, Height: 2})
	want := "\n  █\n"
	if got != want {
		t.Fatalf("Export() = %q, want %q", got, want)
	}
}

func TestExportEmpty(t *testing.T) {
	if got := Export(nil, Bounds{Width: 3, Height: 2}); got != "\n\n" {
		t.Fatalf("Export(nil) = %q, want two blank lines", got)
	}
	if got := Export([]paint.Cell{{Col: 0, Row: 1}}, Bounds{}); got != "" {
		t.Fatalf("Export with zero height = %q, want empty", got)
	}
}

func TestExportWithGlyph(t *testing.T) {
	got := ExportWith([]paint.Cell{{Col: 1, Row: 1}}, Bounds{Width: 2, Height: 1}, Options{Glyph: "#"})
	if got != " #\n" {
		t.Fatalf("ExportWith() = %q", got)
	}
}

func TestDedupMembershipIsOrderInsensitive(t *testing.T) {
	a := []paint.Cell{{Col: 1, Row: 2}, {Col: 0, Row: 2}, {Col: 1, Row: 2}, {Col: 5, Row: 1}}
	b := []paint.Cell{{Col: 5, Row: 1}, {Col: 1, Row: 2}, {Col: 0, Row: 2}, {Col: 5, Row: 1}}

	want := []paint.Cell{{Col: 5, Row: 1}, {Col: 0, Row: 2}, {Col: 1, Row: 2}}
	for _, in := range [][]paint.Cell{a, b} {
		got := Dedup(in)
		if len(got) != len(want) {
			t.Fatalf("Dedup(%v) = %v, want %v", in, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("Dedup(%v) = %v, want %v", in, got, want)
			}
		}
	}
	if Dedup(nil) != nil {
		t.Fatal("Dedup(nil) should be nil")
	}
}

func TestFillGridKeepsTrailingSpaces(t *testing.T) {
	got := FillGrid([]paint.Cell{{Col: 0, Row: 1}}, Bounds{Width: 2, Height: 2}, "x")
	want := "x  \n   \n"
	if got != want {
		t.Fatalf("FillGrid() = %q, want %q", got, want)
	}
}

func TestTrimTrailing(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "   \n", want: "\n"},
		{in: "a  \n\n  b \n", want: "a\n\n  b\n"},
		{in: "█ \t \n", want: "█\n"},
		{in: "  █  █   \n", want: "  █  █\n"},
	}
	for _, tt := range tests {
		if got := TrimTrailing(tt.in); got != tt.want {
			t.Errorf("TrimTrailing(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
