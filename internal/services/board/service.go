package board

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/tictactoe-go/internal/model"
)

// Service provides board operations
type Service struct {
	logger *slog.Logger
}

// New creates a new BoardService
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// CreateBoard initializes an empty board of the given size
func (s *Service) CreateBoard(size int) (*model.Board, error) {
	board, err := model.NewBoard(size)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("board created", slog.Int("size", size))
	return board, nil
}

// PlaceMark writes a mark on the cell with the given id
func (s *Service) PlaceMark(board *model.Board, cellID int, mark model.Mark) error {
	if err := s.ValidatePlacement(board, cellID); err != nil {
		return err
	}
	if err := board.WriteMarkOnCellIfEmpty(cellID, mark); err != nil {
		return err
	}

	s.logger.Debug("mark placed",
		slog.Int("cell_id", cellID),
		slog.String("mark", string(mark)),
	)
	return nil
}

// ValidatePlacement checks if a cell id is on the board and the cell is empty
func (s *Service) ValidatePlacement(board *model.Board, cellID int) error {
	cell, err := board.Cell(cellID)
	if err != nil {
		return err
	}
	if !cell.IsEmpty() {
		return fmt.Errorf("%w: %d", model.ErrCellOccupied, cellID)
	}
	return nil
}

// IsFull checks if all cells are filled
func (s *Service) IsFull(board *model.Board) bool {
	return board.IsFull()
}

// Interface for dependency injection
type ServiceInterface interface {
	CreateBoard(size int) (*model.Board, error)
	PlaceMark(board *model.Board, cellID int, mark model.Mark) error
	ValidatePlacement(board *model.Board, cellID int) error
	IsFull(board *model.Board) bool
}

var _ ServiceInterface = (*Service)(nil)
