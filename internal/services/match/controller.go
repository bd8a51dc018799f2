package match

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/tictactoe-go/internal/dependencies/clock"
	"github.com/mcoot/tictactoe-go/internal/dependencies/random"
	"github.com/mcoot/tictactoe-go/internal/model"
	"github.com/mcoot/tictactoe-go/internal/services/board"
	"github.com/mcoot/tictactoe-go/internal/storage"
)

const matchIDLength = 8

// Result describes how a finished match ended
type Result struct {
	MatchID      model.MatchID
	Board        *model.Board // final board; WinningCells point into it
	Outcome      model.MatchOutcome
	Winner       *model.Player   // nil on stalemate
	WinningCells model.CellGroup // nil on stalemate
	Moves        int
}

// Controller manages the match state machine and turn flow
type Controller struct {
	storage      storage.Storage
	boardService *board.Service
	clock        clock.Clock
	random       random.Random
	logger       *slog.Logger
}

// NewController creates a new match Controller
func NewController(
	storage storage.Storage,
	boardService *board.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:      storage,
		boardService: boardService,
		clock:        clock,
		random:       random,
		logger:       logger,
	}
}

// PickFirstPlayer tosses a coin for who moves first
func (c *Controller) PickFirstPlayer() model.PlayerNumber {
	if c.random.Intn(2) == 0 {
		return model.PlayerOne
	}
	return model.PlayerTwo
}

// CreateMatch starts a new match on an empty board of the given size
func (c *Controller) CreateMatch(ctx context.Context, first model.PlayerNumber, boardSize int) (*model.Match, error) {
	b, err := c.boardService.CreateBoard(boardSize)
	if err != nil {
		return nil, err
	}

	matchID := model.MatchID(c.random.ID(matchIDLength))
	match, err := model.NewMatch(matchID, b, first, c.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := c.storage.SaveMatch(ctx, match); err != nil {
		c.logger.Error("failed to save match",
			slog.String("match_id", string(match.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("match created",
		slog.String("match_id", string(matchID)),
		slog.Int("board_size", boardSize),
		slog.Int("first_player", int(first)),
	)

	return match, nil
}

// GetMatch retrieves a match by ID
func (c *Controller) GetMatch(ctx context.Context, matchID model.MatchID) (*model.Match, error) {
	return c.storage.GetMatch(ctx, matchID)
}

// PlayMove writes the current player's mark on the given cell, then passes the
// turn to the other player. The match finishes when the move completes a line
// or fills the board. A rejected move leaves the match untouched.
func (c *Controller) PlayMove(ctx context.Context, matchID model.MatchID, cellID int) (*model.Match, error) {
	match, err := c.storage.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	if match.IsFinished() {
		return nil, model.ErrMatchFinished
	}

	player := match.Current()
	if err := c.boardService.PlaceMark(match.Board, cellID, player.Mark); err != nil {
		return nil, err
	}

	match.MoveCount++
	match.CurrentPlayer = match.CurrentPlayer.Other()
	match.UpdatedAt = c.clock.Now()

	c.logger.Debug("move played",
		slog.String("match_id", string(match.ID)),
		slog.Int("player", int(player.Number)),
		slog.Int("cell_id", cellID),
		slog.Int("move", match.MoveCount),
	)

	c.settle(match)

	if err := c.storage.SaveMatch(ctx, match); err != nil {
		return nil, err
	}
	return match, nil
}

// settle moves the match to finished if the board is decided
func (c *Controller) settle(match *model.Match) {
	attrs := []any{
		slog.String("match_id", string(match.ID)),
		slog.Int("moves", match.MoveCount),
	}

	if line, err := match.Board.WinningLine(); err == nil {
		match.Outcome = model.MatchOutcomeWon
		attrs = append(attrs,
			slog.String("line", line.Kind.String()),
			slog.Int("line_index", line.Index),
		)
	} else if match.Board.IsStalemate() {
		match.Outcome = model.MatchOutcomeStalemate
	} else {
		return
	}
	match.State = model.MatchStateFinished

	attrs = append(attrs, slog.String("outcome", string(match.Outcome)))
	c.logger.Info("match finished", attrs...)
}

// GetResult reports how a finished match ended
func (c *Controller) GetResult(ctx context.Context, matchID model.MatchID) (*Result, error) {
	match, err := c.storage.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	if !match.IsFinished() {
		return nil, fmt.Errorf("match %s: %w", matchID, model.ErrMatchInProgress)
	}

	result := &Result{
		MatchID: match.ID,
		Board:   match.Board,
		Outcome: match.Outcome,
		Moves:   match.MoveCount,
	}
	if match.Outcome != model.MatchOutcomeWon {
		return result, nil
	}

	winner, err := match.Winner()
	if err != nil {
		return nil, err
	}
	line, err := match.Board.WinningLine()
	if err != nil {
		return nil, err
	}
	result.Winner = &winner
	result.WinningCells = line.Cells
	return result, nil
}

// EndMatch discards a match and its board
func (c *Controller) EndMatch(ctx context.Context, matchID model.MatchID) error {
	if err := c.storage.DeleteMatch(ctx, matchID); err != nil {
		return err
	}
	c.logger.Debug("match discarded", slog.String("match_id", string(matchID)))
	return nil
}
