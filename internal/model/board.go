package model

import (
	"encoding/json"
	"fmt"
)

// Supported board dimensions
const (
	MinBoardSize     = 3
	MaxBoardSize     = 4
	DefaultBoardSize = 3
)

// LineKind identifies the orientation of a line of cells
type LineKind int

const (
	LineRow LineKind = iota
	LineColumn
	LineDiagonalMain // top-left to bottom-right
	LineDiagonalAnti // top-right to bottom-left
)

func (k LineKind) String() string {
	switch k {
	case LineRow:
		return "row"
	case LineColumn:
		return "column"
	case LineDiagonalMain:
		return "main diagonal"
	case LineDiagonalAnti:
		return "anti diagonal"
	default:
		return "unknown"
	}
}

// Line is a row, column or diagonal of the board
type Line struct {
	Kind  LineKind
	Index int // row or column index; 0 for diagonals
	Cells CellGroup
}

// Board owns every cell of a square grid. Cells are indexed both by position
// and by id; both indices point at the same cells.
type Board struct {
	size      int
	cells     [][]*Cell // cells[row][col]
	cellsByID []*Cell   // cellsByID[id-1]
}

// NewBoard creates an empty board of the given size
func NewBoard(size int) (*Board, error) {
	if !IsValidBoardSize(size) {
		return nil, fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidBoardSize, size, MinBoardSize, MaxBoardSize)
	}

	cells := make([][]*Cell, size)
	cellsByID := make([]*Cell, 0, size*size)
	nextID := 1
	for row := 0; row < size; row++ {
		cells[row] = make([]*Cell, size)
		for col := 0; col < size; col++ {
			cell := &Cell{Position: Position{Row: row, Col: col}, ID: nextID}
			cells[row][col] = cell
			cellsByID = append(cellsByID, cell)
			nextID++
		}
	}

	return &Board{
		size:      size,
		cells:     cells,
		cellsByID: cellsByID,
	}, nil
}

// IsValidBoardSize returns true if a board of this size can be created
func IsValidBoardSize(size int) bool {
	return size >= MinBoardSize && size <= MaxBoardSize
}

// Size returns the grid dimension
func (b *Board) Size() int {
	return b.size
}

// FirstCellID returns the smallest cell id
func (b *Board) FirstCellID() int {
	return 1
}

// LastCellID returns the largest cell id
func (b *Board) LastCellID() int {
	return b.size * b.size
}

// IsValidCellID returns true if the id addresses a cell of this board
func (b *Board) IsValidCellID(id int) bool {
	return id >= b.FirstCellID() && id <= b.LastCellID()
}

// Cell returns the cell with the given id
func (b *Board) Cell(id int) (*Cell, error) {
	if !b.IsValidCellID(id) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCell, id)
	}
	return b.cellsByID[id-1], nil
}

// CellAt returns the cell at the given position, or nil if out of bounds
func (b *Board) CellAt(pos Position) *Cell {
	if pos.Row < 0 || pos.Row >= b.size || pos.Col < 0 || pos.Col >= b.size {
		return nil
	}
	return b.cells[pos.Row][pos.Col]
}

// Cells returns every cell in id order
func (b *Board) Cells() CellGroup {
	result := make(CellGroup, len(b.cellsByID))
	copy(result, b.cellsByID)
	return result
}

// Rows returns the cells grouped by row, top to bottom
func (b *Board) Rows() []CellGroup {
	rows := make([]CellGroup, b.size)
	for row := 0; row < b.size; row++ {
		rows[row] = b.cellsInLine(LineRow, row)
	}
	return rows
}

// WriteMarkOnCellIfEmpty writes the mark on the cell with the given id.
// A cell that already holds a mark is left untouched.
func (b *Board) WriteMarkOnCellIfEmpty(id int, mark Mark) error {
	if !mark.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidMark, mark)
	}
	cell, err := b.Cell(id)
	if err != nil {
		return err
	}
	if !cell.IsEmpty() {
		return fmt.Errorf("%w: %d", ErrCellOccupied, id)
	}
	cell.mark = mark
	return nil
}

// Lines returns all columns, all rows and both diagonals
func (b *Board) Lines() []Line {
	lines := make([]Line, 0, 2*b.size+2)
	for col := 0; col < b.size; col++ {
		lines = append(lines, Line{Kind: LineColumn, Index: col, Cells: b.cellsInLine(LineColumn, col)})
	}
	for row := 0; row < b.size; row++ {
		lines = append(lines, Line{Kind: LineRow, Index: row, Cells: b.cellsInLine(LineRow, row)})
	}
	lines = append(lines,
		Line{Kind: LineDiagonalMain, Cells: b.cellsInLine(LineDiagonalMain, 0)},
		Line{Kind: LineDiagonalAnti, Cells: b.cellsInLine(LineDiagonalAnti, 0)},
	)
	return lines
}

func (b *Board) cellsInLine(kind LineKind, index int) CellGroup {
	group := make(CellGroup, b.size)
	for i := 0; i < b.size; i++ {
		switch kind {
		case LineRow:
			group[i] = b.cells[index][i]
		case LineColumn:
			group[i] = b.cells[i][index]
		case LineDiagonalMain:
			group[i] = b.cells[i][i]
		case LineDiagonalAnti:
			group[i] = b.cells[i][b.size-1-i]
		}
	}
	return group
}

// winningLine returns the first line, in Lines order, that is a winning combination
func (b *Board) winningLine() (Line, bool) {
	for _, line := range b.Lines() {
		if line.Cells.IsWinning() {
			return line, true
		}
	}
	return Line{}, false
}

// HasWinningCombo returns true if any line is fully marked with a single mark
func (b *Board) HasWinningCombo() bool {
	_, ok := b.winningLine()
	return ok
}

// WinningLine returns the first winning line in Lines order
func (b *Board) WinningLine() (Line, error) {
	line, ok := b.winningLine()
	if !ok {
		return Line{}, ErrNoWinner
	}
	return line, nil
}

// WinningMark returns the mark of the first winning line
func (b *Board) WinningMark() (Mark, error) {
	line, ok := b.winningLine()
	if !ok {
		return MarkNone, ErrNoWinner
	}
	return line.Cells[0].Mark(), nil
}

// WinningCells returns the cells of the first winning line
func (b *Board) WinningCells() (CellGroup, error) {
	line, ok := b.winningLine()
	if !ok {
		return nil, ErrNoWinner
	}
	return line.Cells, nil
}

// IsFull returns true if every cell has a mark
func (b *Board) IsFull() bool {
	return CellGroup(b.cellsByID).AllCellsHaveMark()
}

// EmptyCount returns the number of cells without a mark
func (b *Board) EmptyCount() int {
	count := 0
	for _, cell := range b.cellsByID {
		if cell.IsEmpty() {
			count++
		}
	}
	return count
}

// IsStalemate returns true if the board is full and no line wins
func (b *Board) IsStalemate() bool {
	return !b.HasWinningCombo() && b.IsFull()
}

// boardJSON is the serialised form of a Board: its size and the marks in id order
type boardJSON struct {
	Size  int    `json:"size"`
	Marks []Mark `json:"marks"`
}

// MarshalJSON implements json.Marshaler
func (b *Board) MarshalJSON() ([]byte, error) {
	marks := make([]Mark, len(b.cellsByID))
	for i, cell := range b.cellsByID {
		marks[i] = cell.mark
	}
	return json.Marshal(boardJSON{Size: b.size, Marks: marks})
}

// UnmarshalJSON implements json.Unmarshaler
func (b *Board) UnmarshalJSON(data []byte) error {
	var raw boardJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	restored, err := NewBoard(raw.Size)
	if err != nil {
		return err
	}
	if len(raw.Marks) != len(restored.cellsByID) {
		return fmt.Errorf("board of size %d needs %d marks, got %d", raw.Size, len(restored.cellsByID), len(raw.Marks))
	}
	for i, mark := range raw.Marks {
		if mark == MarkNone {
			continue
		}
		if err := restored.WriteMarkOnCellIfEmpty(i+1, mark); err != nil {
			return err
		}
	}

	*b = *restored
	return nil
}
