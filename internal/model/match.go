package model

import (
	"fmt"
	"time"
)

// MatchID uniquely identifies a match
type MatchID string

// MatchState represents the current phase of a match
type MatchState string

const (
	MatchStateInProgress MatchState = "in_progress"
	MatchStateFinished   MatchState = "finished" // Terminal, see Outcome
)

// MatchOutcome explains why a finished match ended
type MatchOutcome string

const (
	MatchOutcomeNone      MatchOutcome = ""
	MatchOutcomeWon       MatchOutcome = "won"
	MatchOutcomeStalemate MatchOutcome = "stalemate"
)

// Match is a single game between two players on one board
type Match struct {
	ID      MatchID      `json:"id"`
	Board   *Board       `json:"board"`
	Players [2]Player    `json:"players"` // Players[n-1] is player n
	State   MatchState   `json:"state"`
	Outcome MatchOutcome `json:"outcome,omitempty"`

	// Turn management
	FirstPlayer   PlayerNumber `json:"first_player"`
	CurrentPlayer PlayerNumber `json:"current_player"`
	MoveCount     int          `json:"move_count"`

	// Timing
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewMatch creates an in-progress match on the given board, with first to move
func NewMatch(id MatchID, board *Board, first PlayerNumber, now time.Time) (*Match, error) {
	if board == nil {
		return nil, ErrMissingBoard
	}
	if !first.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPlayer, first)
	}

	var players [2]Player
	for _, number := range []PlayerNumber{PlayerOne, PlayerTwo} {
		player, err := NewPlayer(number)
		if err != nil {
			return nil, err
		}
		players[number-1] = player
	}

	return &Match{
		ID:            id,
		Board:         board,
		Players:       players,
		State:         MatchStateInProgress,
		Outcome:       MatchOutcomeNone,
		FirstPlayer:   first,
		CurrentPlayer: first,
		MoveCount:     0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Player returns the player with the given number
func (m *Match) Player(number PlayerNumber) Player {
	return m.Players[number-1]
}

// Current returns the player whose turn it is
func (m *Match) Current() Player {
	return m.Player(m.CurrentPlayer)
}

// PlayerByMark returns the player using the given mark
func (m *Match) PlayerByMark(mark Mark) (Player, bool) {
	for _, p := range m.Players {
		if p.Mark == mark {
			return p, true
		}
	}
	return Player{}, false
}

// IsFinished returns true once the match has been won or stalemated
func (m *Match) IsFinished() bool {
	return m.State == MatchStateFinished
}

// Winner returns the player owning the winning line
func (m *Match) Winner() (Player, error) {
	mark, err := m.Board.WinningMark()
	if err != nil {
		return Player{}, err
	}
	player, ok := m.PlayerByMark(mark)
	if !ok {
		return Player{}, ErrNoWinner
	}
	return player, nil
}
