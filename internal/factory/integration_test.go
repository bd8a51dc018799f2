package factory

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/tictactoe-go/internal/model"
	redisstorage "github.com/mcoot/tictactoe-go/internal/storage/redis"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// Test: Complete match from creation to a win
func (s *IntegrationSuite) TestCompleteMatchFlow() {
	s.app.MockRandom.QueueID("MATCH001")

	// Step 1: Player 1 starts on a 3x3 board
	match, err := s.app.MatchController.CreateMatch(s.ctx, model.PlayerOne, 3)
	s.Require().NoError(err)
	s.Equal(model.MatchID("MATCH001"), match.ID)
	s.Equal(1, s.app.MemoryStore.Count())

	// Step 2: Player 2 tries to reuse a taken cell and keeps the turn
	_, err = s.app.MatchController.PlayMove(s.ctx, match.ID, 1)
	s.Require().NoError(err)
	_, err = s.app.MatchController.PlayMove(s.ctx, match.ID, 1)
	s.ErrorIs(err, model.ErrCellOccupied)

	// Step 3: Play on until X completes the left column
	for _, cellID := range []int{2, 4, 3} {
		s.app.MockClock.Advance(time.Second)
		_, err = s.app.MatchController.PlayMove(s.ctx, match.ID, cellID)
		s.Require().NoError(err)
	}
	final, err := s.app.MatchController.PlayMove(s.ctx, match.ID, 7)
	s.Require().NoError(err)
	s.True(final.IsFinished())

	// Step 4: Check the result
	result, err := s.app.MatchController.GetResult(s.ctx, match.ID)
	s.Require().NoError(err)
	s.Equal(model.MatchOutcomeWon, result.Outcome)
	s.Equal(model.PlayerOne, result.Winner.Number)
	s.Equal([]int{1, 4, 7}, result.WinningCells.IDs())
	s.Equal(5, result.Moves)
	s.Equal(s.app.MockClock.Now(), final.UpdatedAt)

	// Step 5: Ending the match discards it
	s.Require().NoError(s.app.MatchController.EndMatch(s.ctx, match.ID))
	s.Equal(0, s.app.MemoryStore.Count())
}

// Test: Several matches in a row get distinct ids
func (s *IntegrationSuite) TestConsecutiveMatches() {
	first, err := s.app.MatchController.CreateMatch(s.ctx, model.PlayerOne, 3)
	s.Require().NoError(err)
	second, err := s.app.MatchController.CreateMatch(s.ctx, model.PlayerTwo, 4)
	s.Require().NoError(err)

	s.NotEqual(first.ID, second.ID)
	s.Equal(4, second.Board.Size())
	s.Equal(2, s.app.MemoryStore.Count())
}

func (s *IntegrationSuite) TestNewMemoryApp() {
	app, err := New(Config{})
	s.Require().NoError(err)
	defer func() { s.NoError(app.Close()) }()

	match, err := app.MatchController.CreateMatch(s.ctx, model.PlayerOne, 3)
	s.Require().NoError(err)
	s.Len(match.ID, 8)
}

func (s *IntegrationSuite) TestNewRedisApp() {
	mr := miniredis.RunT(s.T())
	cfg := redisstorage.DefaultConfig()
	cfg.URL = "redis://" + mr.Addr()

	app, err := New(Config{StorageType: StorageTypeRedis, RedisConfig: &cfg})
	s.Require().NoError(err)
	defer func() { s.NoError(app.Close()) }()

	match, err := app.MatchController.CreateMatch(s.ctx, model.PlayerTwo, 4)
	s.Require().NoError(err)
	updated, err := app.MatchController.PlayMove(s.ctx, match.ID, 16)
	s.Require().NoError(err)

	cell, err := updated.Board.Cell(16)
	s.Require().NoError(err)
	s.Equal(model.MarkO, cell.Mark())
	s.True(mr.Exists("tictactoe:match:" + string(match.ID)))
}

func (s *IntegrationSuite) TestNewRejectsBadStorageConfig() {
	_, err := New(Config{StorageType: StorageTypeRedis})
	s.Error(err)

	_, err = New(Config{StorageType: "postgres"})
	s.Error(err)
}
