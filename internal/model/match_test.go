package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatch(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("starts in progress with the chosen player", func(t *testing.T) {
		board, err := NewBoard(4)
		require.NoError(t, err)

		match, err := NewMatch("M1", board, PlayerTwo, now)
		require.NoError(t, err)

		assert.Equal(t, MatchStateInProgress, match.State)
		assert.Equal(t, MatchOutcomeNone, match.Outcome)
		assert.Equal(t, PlayerTwo, match.FirstPlayer)
		assert.Equal(t, Player{Number: PlayerTwo, Mark: MarkO}, match.Current())
		assert.Equal(t, Player{Number: PlayerOne, Mark: MarkX}, match.Player(PlayerOne))
		assert.Equal(t, 0, match.MoveCount)
		assert.Equal(t, now, match.CreatedAt)
		assert.False(t, match.IsFinished())
	})

	t.Run("rejects invalid first player", func(t *testing.T) {
		board, err := NewBoard(3)
		require.NoError(t, err)

		_, err = NewMatch("M1", board, 0, now)
		assert.ErrorIs(t, err, ErrInvalidPlayer)
	})

	t.Run("rejects a missing board", func(t *testing.T) {
		_, err := NewMatch("M1", nil, PlayerOne, now)
		assert.ErrorIs(t, err, ErrMissingBoard)
	})

	t.Run("winner is the owner of the winning mark", func(t *testing.T) {
		board, err := NewBoard(3)
		require.NoError(t, err)
		match, err := NewMatch("M1", board, PlayerOne, now)
		require.NoError(t, err)

		_, err = match.Winner()
		assert.ErrorIs(t, err, ErrNoWinner)

		for _, id := range []int{3, 5, 7} {
			require.NoError(t, board.WriteMarkOnCellIfEmpty(id, MarkO))
		}

		winner, err := match.Winner()
		require.NoError(t, err)
		assert.Equal(t, PlayerTwo, winner.Number)

		byMark, ok := match.PlayerByMark(MarkX)
		assert.True(t, ok)
		assert.Equal(t, PlayerOne, byMark.Number)
	})
}
