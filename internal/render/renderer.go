// Package render draws boards as ASCII grids.
package render

import (
	"strconv"
	"strings"

	"github.com/mcoot/tictactoe-go/internal/model"
)

const (
	columnDivider = "|"
	rowDivider    = "-"
)

// CellFilter decides whether a cell's content is shown. Hidden cells render blank.
type CellFilter func(cell *model.Cell) bool

// OnlyCells keeps the cells of the given group and hides every other cell
func OnlyCells(group model.CellGroup) CellFilter {
	return func(cell *model.Cell) bool {
		return group.Contains(cell)
	}
}

// BoardRenderer renders a board as a bordered grid. Empty cells show their id,
// marked cells their mark.
type BoardRenderer struct {
	board *model.Board
	width int // width of the widest cell id
}

// NewBoardRenderer creates a renderer for the given board
func NewBoardRenderer(board *model.Board) *BoardRenderer {
	return &BoardRenderer{
		board: board,
		width: len(strconv.Itoa(board.LastCellID())),
	}
}

// Render draws the whole board. A nil filter shows every cell.
func (r *BoardRenderer) Render(filter CellFilter) string {
	var sb strings.Builder

	sb.WriteString(r.dividerRow())
	for _, row := range r.board.Rows() {
		sb.WriteString("\n")
		sb.WriteString(r.cellRow(row, filter))
		sb.WriteString("\n")
		sb.WriteString(r.dividerRow())
	}

	return sb.String()
}

func (r *BoardRenderer) cellRow(row model.CellGroup, filter CellFilter) string {
	var sb strings.Builder
	sb.WriteString(columnDivider)
	for _, cell := range row {
		sb.WriteString(" ")
		sb.WriteString(r.pad(r.cellContent(cell, filter)))
		sb.WriteString(" ")
		sb.WriteString(columnDivider)
	}
	return sb.String()
}

func (r *BoardRenderer) cellContent(cell *model.Cell, filter CellFilter) string {
	if filter != nil && !filter(cell) {
		return " "
	}
	if cell.IsEmpty() {
		return strconv.Itoa(cell.ID)
	}
	return string(cell.Mark())
}

// pad left-aligns content to the id width so columns line up on 4x4 boards
func (r *BoardRenderer) pad(content string) string {
	if len(content) >= r.width {
		return content
	}
	return content + strings.Repeat(" ", r.width-len(content))
}

func (r *BoardRenderer) dividerRow() string {
	return rowDivider + strings.Repeat(rowDivider, r.board.Size()*(r.width+3))
}
