package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/tictactoe-go/internal/factory"
	redisstorage "github.com/mcoot/tictactoe-go/internal/storage/redis"
	"github.com/mcoot/tictactoe-go/internal/testutil"
)

type SessionSuite struct {
	suite.Suite
	app *factory.TestApp
	out *bytes.Buffer
	ctx context.Context
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func (s *SessionSuite) SetupTest() {
	s.app = factory.NewTestApp()
	s.out = &bytes.Buffer{}
	s.ctx = context.Background()
}

// run plays a session fed with the given input lines
func (s *SessionSuite) run(opts SessionOptions, lines ...string) error {
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	session := NewSession(s.app.MatchController, in, s.out, opts, testutil.NopLogger())
	return session.Run(s.ctx)
}

func (s *SessionSuite) TestWinningMatch() {
	err := s.run(SessionOptions{},
		"1", "3", // first player, board size
		"1", "5", "2", "6", "3",
		"n", "",
	)
	s.Require().NoError(err)

	output := s.out.String()
	s.Contains(output, "Pick the first player [1, 2]:")
	s.Contains(output, "Pick the board size [3, 4]:")
	s.Contains(output, "Which cell to mark?[1-9]")
	s.Contains(output, "Next move: Player 2")
	s.Contains(output, "Player 1 has won!")
	s.NotContains(output, "Stalemate")
	s.Equal(5, strings.Count(output, turnSeparator))

	// Only the winning row keeps its marks on the final board
	s.Contains(output, "| X | X | X |\n-------------\n|   |   |   |")
	s.True(strings.HasSuffix(output, "Press enter to exit\n"))

	s.Equal(0, s.app.MemoryStore.Count())
}

func (s *SessionSuite) TestStalemateMatch() {
	err := s.run(SessionOptions{BoardSize: 3, FirstPlayer: "1"},
		"1", "2", "3", "5", "4", "6", "8", "7", "9",
		"n", "",
	)
	s.Require().NoError(err)

	output := s.out.String()
	s.NotContains(output, "Pick the first player")
	s.NotContains(output, "Pick the board size")
	s.Contains(output, "Stalemate. Nobody wins this time!")
	s.NotContains(output, "has won")
	s.Contains(output, "| X | O | X |\n-------------\n| X | O | O |\n-------------\n| O | X | X |")
}

func (s *SessionSuite) TestInvalidAndOccupiedCellsAreRetried() {
	err := s.run(SessionOptions{BoardSize: 3, FirstPlayer: "2"},
		"1",
		"1",     // occupied
		"0",     // out of range
		"hello", // not a number
		"4", "2", "7", "3",
		"n", "",
	)
	s.Require().NoError(err)

	output := s.out.String()
	s.Equal(1, strings.Count(output, "Can't write on that cell, it already has a mark."))
	s.Contains(output, "Try again")
	s.Equal(2, strings.Count(output, "Value is not valid. Please, try again."))
	// Player 2 plays O and completes the top row
	s.Contains(output, "Player 2 has won!")
	s.Contains(output, "| O | O | O |")
}

func (s *SessionSuite) TestPlayAgain() {
	err := s.run(SessionOptions{FirstPlayer: "1"},
		"3", "1", "5", "2", "6", "3",
		"y",
		"4", "1", "5", "2", "6", "3", "7", "4",
		"n", "",
	)
	s.Require().NoError(err)

	output := s.out.String()
	s.Equal(2, strings.Count(output, "Pick the board size [3, 4]:"))
	s.Equal(2, strings.Count(output, "Player 1 has won!"))
	s.Contains(output, "Which cell to mark?[1-16]")
	s.Equal(2, strings.Count(output, "Do you want to play again? (y/n)"))
	s.Equal(0, s.app.MemoryStore.Count())
}

func (s *SessionSuite) TestRandomFirstPlayer() {
	s.app.MockRandom.QueueIntn(1)

	err := s.run(SessionOptions{BoardSize: 3, FirstPlayer: FirstPlayerRandom},
		"1", "5", "2", "6", "3",
		"n", "",
	)
	s.Require().NoError(err)

	output := s.out.String()
	s.Contains(output, "Player 2 goes first")
	s.Contains(output, "Player 2 has won!")
}

func (s *SessionSuite) TestInputClosedMidMatch() {
	err := s.run(SessionOptions{BoardSize: 3, FirstPlayer: "1"}, "1", "5")
	s.ErrorIs(err, ErrInputClosed)

	// The abandoned match is still discarded
	s.Equal(0, s.app.MemoryStore.Count())
}

func (s *SessionSuite) TestWinningLineShownWithRedisStorage() {
	mr := miniredis.RunT(s.T())
	cfg := redisstorage.DefaultConfig()
	cfg.URL = "redis://" + mr.Addr()

	app, err := factory.New(factory.Config{StorageType: factory.StorageTypeRedis, RedisConfig: &cfg})
	s.Require().NoError(err)
	defer func() { s.NoError(app.Close()) }()

	in := strings.NewReader("1\n5\n2\n6\n3\nn\n\n")
	session := NewSession(app.MatchController, in, s.out, SessionOptions{BoardSize: 3, FirstPlayer: "1"}, testutil.NopLogger())
	s.Require().NoError(session.Run(s.ctx))

	output := s.out.String()
	s.Contains(output, "| X | X | X |\n-------------\n|   |   |   |")
	s.Contains(output, "Player 1 has won!")
	s.Empty(mr.Keys())
}
