package model

import "errors"

// Common errors used across the application
var (
	// Board errors
	ErrInvalidBoardSize = errors.New("invalid board size")
	ErrInvalidCell      = errors.New("invalid cell id")
	ErrInvalidMark      = errors.New("invalid mark")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrNoWinner         = errors.New("board has no winning line")

	// Player errors
	ErrInvalidPlayer = errors.New("invalid player number")

	// Match errors
	ErrMatchNotFound   = errors.New("match not found")
	ErrMatchFinished   = errors.New("match is already finished")
	ErrMatchInProgress = errors.New("match is still in progress")
	ErrMissingBoard    = errors.New("match has no board")
)
