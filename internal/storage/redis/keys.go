package redis

import (
	"fmt"

	"github.com/mcoot/tictactoe-go/internal/model"
)

// Key prefix for all match data
const keyPrefix = "tictactoe"

// matchKey returns the Redis key for a Match
func matchKey(id model.MatchID) string {
	return fmt.Sprintf("%s:match:%s", keyPrefix, id)
}
