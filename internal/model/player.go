package model

import "fmt"

// PlayerNumber identifies one of the two players
type PlayerNumber int

const (
	PlayerOne PlayerNumber = 1
	PlayerTwo PlayerNumber = 2
)

// IsValid returns true for player 1 and player 2
func (n PlayerNumber) IsValid() bool {
	return n == PlayerOne || n == PlayerTwo
}

// Other returns the opponent's number
func (n PlayerNumber) Other() PlayerNumber {
	if n == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

// Player is a match participant. Its mark is fixed for the whole match.
type Player struct {
	Number PlayerNumber `json:"number"`
	Mark   Mark         `json:"mark"`
}

// NewPlayer creates a player with the mark assigned to its number:
// player 1 plays X, player 2 plays O.
func NewPlayer(number PlayerNumber) (Player, error) {
	switch number {
	case PlayerOne:
		return Player{Number: PlayerOne, Mark: MarkX}, nil
	case PlayerTwo:
		return Player{Number: PlayerTwo, Mark: MarkO}, nil
	default:
		return Player{}, fmt.Errorf("%w: %d", ErrInvalidPlayer, number)
	}
}
