package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/mcoot/tictactoe-go/internal/model"
	"github.com/mcoot/tictactoe-go/internal/render"
	"github.com/mcoot/tictactoe-go/internal/services/match"
)

// SessionOptions preset answers that would otherwise be asked for
type SessionOptions struct {
	BoardSize   int    // 0 asks before every match
	FirstPlayer string // FirstPlayerAsk, "1", "2" or FirstPlayerRandom
}

// Session plays matches one after another until the players stop
type Session struct {
	controller *match.Controller
	prompter   *Prompter
	out        *Output
	opts       SessionOptions
	logger     *slog.Logger
}

// NewSession creates a Session reading answers from in and writing to out
func NewSession(controller *match.Controller, in io.Reader, out io.Writer, opts SessionOptions, logger *slog.Logger) *Session {
	return &Session{
		controller: controller,
		prompter:   NewPrompter(in, out),
		out:        NewOutput(out),
		opts:       opts,
		logger:     logger,
	}
}

// Run plays until the players decline another match
func (s *Session) Run(ctx context.Context) error {
	for {
		first, err := s.chooseFirstPlayer()
		if err != nil {
			return err
		}
		size, err := s.chooseBoardSize()
		if err != nil {
			return err
		}

		if err := s.playMatch(ctx, first, size); err != nil {
			return err
		}

		again, err := s.prompter.Ask("Do you want to play again? (y/n)", OneOf("y", "n"), true)
		if err != nil {
			return err
		}
		if again == "n" {
			break
		}
	}

	s.out.PrintMessage("Press enter to exit")
	return s.prompter.WaitForEnter()
}

func (s *Session) chooseFirstPlayer() (model.PlayerNumber, error) {
	switch s.opts.FirstPlayer {
	case "1":
		return model.PlayerOne, nil
	case "2":
		return model.PlayerTwo, nil
	case FirstPlayerRandom:
		first := s.controller.PickFirstPlayer()
		s.out.PrintMessagef("Player %d goes first", first)
		return first, nil
	}

	answer, err := s.prompter.Ask("Pick the first player [1, 2]:", OneOf("1", "2"), true)
	if err != nil {
		return 0, err
	}
	n, _ := strconv.Atoi(answer)
	return model.PlayerNumber(n), nil
}

func (s *Session) chooseBoardSize() (int, error) {
	if s.opts.BoardSize != 0 {
		return s.opts.BoardSize, nil
	}

	prompt := fmt.Sprintf("Pick the board size [%d, %d]:", model.MinBoardSize, model.MaxBoardSize)
	answer, err := s.prompter.Ask(prompt, OneOf(strconv.Itoa(model.MinBoardSize), strconv.Itoa(model.MaxBoardSize)), true)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(answer)
}

func (s *Session) playMatch(ctx context.Context, first model.PlayerNumber, size int) error {
	m, err := s.controller.CreateMatch(ctx, first, size)
	if err != nil {
		return err
	}
	defer func() {
		if err := s.controller.EndMatch(ctx, m.ID); err != nil {
			s.logger.Warn("failed to discard match",
				slog.String("match_id", string(m.ID)),
				slog.String("error", err.Error()),
			)
		}
	}()

	for !m.IsFinished() {
		m, err = s.playTurn(ctx, m)
		if err != nil {
			return err
		}
	}

	return s.printClosingInfo(ctx, m.ID)
}

// playTurn asks the current player for a cell until the move is accepted
func (s *Session) playTurn(ctx context.Context, m *model.Match) (*model.Match, error) {
	s.out.PrintBoard(render.NewBoardRenderer(m.Board).Render(nil))
	s.out.PrintMessagef("Next move: Player %d", m.CurrentPlayer)

	first, last := m.Board.FirstCellID(), m.Board.LastCellID()
	prompt := fmt.Sprintf("Which cell to mark?[%d-%d]", first, last)

	for {
		answer, err := s.prompter.Ask(prompt, IntInRange(first, last), true)
		if err != nil {
			return nil, err
		}
		cellID, _ := strconv.Atoi(answer)

		updated, err := s.controller.PlayMove(ctx, m.ID, cellID)
		if errors.Is(err, model.ErrCellOccupied) {
			s.out.PrintMessage("Can't write on that cell, it already has a mark.")
			s.out.PrintMessage("Try again")
			continue
		}
		if err != nil {
			return nil, err
		}

		s.out.PrintSeparator()
		return updated, nil
	}
}

func (s *Session) printClosingInfo(ctx context.Context, matchID model.MatchID) error {
	result, err := s.controller.GetResult(ctx, matchID)
	if err != nil {
		return err
	}

	renderer := render.NewBoardRenderer(result.Board)
	switch result.Outcome {
	case model.MatchOutcomeWon:
		s.out.PrintBoard(renderer.Render(render.OnlyCells(result.WinningCells)))
		s.out.PrintMessagef("Player %d has won!", result.Winner.Number)
	case model.MatchOutcomeStalemate:
		s.out.PrintBoard(renderer.Render(nil))
		s.out.PrintMessage("Stalemate. Nobody wins this time!")
	}
	return nil
}
