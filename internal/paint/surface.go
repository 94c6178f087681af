package paint

// Mode tracks whether the primary pointer button is held.
type Mode int

const (
	Idle Mode = iota
	Drawing
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Drawing:
		return "drawing"
	default:
		return "unknown"
	}
}

// Surface owns the painted cells and the current interaction mode.
//
// Paint and erase are driven by drag samples alone; the terminal only reports
// drags while a button is held, so Mode is informational and never gates
// mutation. None of the operations fail, and coordinates are not validated:
// a cell outside the visible grid is stored but never drawn or exported.
type Surface struct {
	cells *CellSet
	mode  Mode
}

// NewSurface returns an empty surface in Idle mode.
func NewSurface() *Surface {
	return &Surface{cells: NewCellSet()}
}

// PointerDown enters Drawing mode. It does not paint.
func (s *Surface) PointerDown(at Cell) {
	s.mode = Drawing
}

// PointerUp returns to Idle mode.
func (s *Surface) PointerUp() {
	s.mode = Idle
}

// DragPaint paints at.
func (s *Surface) DragPaint(at Cell) {
	s.cells.Add(at)
}

// DragErase erases at.
func (s *Surface) DragErase(at Cell) {
	s.cells.Remove(at)
}

// Clear erases every cell. There is no undo.
func (s *Surface) Clear() {
	s.cells.Reset()
}

// Mode returns the current interaction mode.
func (s *Surface) Mode() Mode {
	return s.mode
}

// Len returns the number of painted cells.
func (s *Surface) Len() int {
	return s.cells.Len()
}

// Contains reports whether c is painted.
func (s *Surface) Contains(c Cell) bool {
	return s.cells.Contains(c)
}

// Cells returns a snapshot of the painted cells in unspecified order.
func (s *Surface) Cells() []Cell {
	return s.cells.Slice()
}

// RenderCoordinates projects every painted cell into drawing-surface space,
// where the vertical axis grows upward from the bottom edge of an area of the
// given height whose top-left corner is origin:
//
//	X = col - origin.Col
//	Y = (origin.Row + height) - row
//
// The result is a fresh slice in unspecified order.
func (s *Surface) RenderCoordinates(origin Cell, height int) []Point {
	bottom := float64(origin.Row + height)
	left := float64(origin.Col)
	points := make([]Point, 0, s.cells.Len())
	for c := range s.cells.cells {
		points = append(points, Point{
			X: float64(c.Col) - left,
			Y: bottom - float64(c.Row),
		})
	}
	return points
}
