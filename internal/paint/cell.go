package paint

// Cell identifies one grid position. Equality is exact on both components.
type Cell struct {
	Col int
	Row int
}

// Less orders cells row-major: by row, then by column.
func (c Cell) Less(o Cell) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// Point is a cell projected into rendering-surface space.
type Point struct {
	X float64
	Y float64
}

// CellSet is an unordered set of cells.
type CellSet struct {
	cells map[Cell]struct{}
}

// NewCellSet returns an empty set.
func NewCellSet() *CellSet {
	return &CellSet{cells: make(map[Cell]struct{})}
}

// Add inserts c. Adding a present cell is a no-op.
func (s *CellSet) Add(c Cell) {
	if s.cells == nil {
		s.cells = make(map[Cell]struct{})
	}
	s.cells[c] = struct{}{}
}

// Remove deletes c. Removing an absent cell is a no-op.
func (s *CellSet) Remove(c Cell) {
	delete(s.cells, c)
}

// Contains reports whether c is in the set.
func (s *CellSet) Contains(c Cell) bool {
	_, ok := s.cells[c]
	return ok
}

// Len returns the number of cells.
func (s *CellSet) Len() int {
	return len(s.cells)
}

// Reset empties the set.
func (s *CellSet) Reset() {
	s.cells = make(map[Cell]struct{})
}

// Slice returns the cells in unspecified order. The returned slice is owned
// by the caller.
func (s *CellSet) Slice() []Cell {
	out := make([]Cell, 0, len(s.cells))
	for c := range s.cells {
		out = append(out, c)
	}
	return out
}
