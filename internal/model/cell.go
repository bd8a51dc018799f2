package model

// Mark is the symbol a player writes on a cell
type Mark string

const (
	MarkNone Mark = ""
	MarkX    Mark = "X"
	MarkO    Mark = "O"
)

// IsValid returns true for the two player marks
func (m Mark) IsValid() bool {
	return m == MarkX || m == MarkO
}

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// Cell is a single board position. Its mark can only be written once, through
// the owning Board.
type Cell struct {
	Position Position
	ID       int // 1-based, row-major
	mark     Mark
}

// Mark returns the mark written on the cell, or MarkNone
func (c *Cell) Mark() Mark {
	return c.mark
}

// IsEmpty returns true if no mark has been written yet
func (c *Cell) IsEmpty() bool {
	return c.mark == MarkNone
}

// CellGroup is an ordered view over cells owned by a Board
type CellGroup []*Cell

// AllCellsAreEmpty returns true if no cell in the group has a mark
func (g CellGroup) AllCellsAreEmpty() bool {
	for _, cell := range g {
		if !cell.IsEmpty() {
			return false
		}
	}
	return true
}

// AllCellsHaveMark returns true if every cell in the group has a mark
func (g CellGroup) AllCellsHaveMark() bool {
	for _, cell := range g {
		if cell.IsEmpty() {
			return false
		}
	}
	return true
}

// PresentMarks returns the distinct marks in the group, in first-seen order.
// Empty cells contribute nothing.
func (g CellGroup) PresentMarks() []Mark {
	var marks []Mark
	seen := make(map[Mark]bool, 2)
	for _, cell := range g {
		if cell.IsEmpty() || seen[cell.mark] {
			continue
		}
		seen[cell.mark] = true
		marks = append(marks, cell.mark)
	}
	return marks
}

// ThereIsOnlyOneMarkType returns true if exactly one distinct mark is present
func (g CellGroup) ThereIsOnlyOneMarkType() bool {
	return len(g.PresentMarks()) == 1
}

// IsWinning returns true if the group is fully marked with a single mark
func (g CellGroup) IsWinning() bool {
	return len(g) > 0 && g.AllCellsHaveMark() && g.ThereIsOnlyOneMarkType()
}

// Contains returns true if the cell is part of the group
func (g CellGroup) Contains(cell *Cell) bool {
	for _, c := range g {
		if c == cell {
			return true
		}
	}
	return false
}

// IDs returns the ids of the cells in group order
func (g CellGroup) IDs() []int {
	ids := make([]int, len(g))
	for i, cell := range g {
		ids[i] = cell.ID
	}
	return ids
}
