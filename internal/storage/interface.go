package storage

import (
	"context"

	"github.com/mcoot/tictactoe-go/internal/model"
)

// Storage holds the state of matches that are being played.
// A match is deleted when it ends; nothing outlives it.
type Storage interface {
	SaveMatch(ctx context.Context, match *model.Match) error
	GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error)
	DeleteMatch(ctx context.Context, id model.MatchID) error
}
