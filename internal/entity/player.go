package entity

import (
	"fmt"
	"strings"

	"github.com/Juansebayala/react-clase-dos-master/internal/apperror"
)

// Player identifies one of the two sides of the game.
type Player uint8

const (
	PlayerX Player = iota + 1
	PlayerO
)

// ParsePlayer reads "X" or "O" (any case). An empty string yields PlayerX.
func ParsePlayer(value string) (Player, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "", "X":
		return PlayerX, nil
	case "O":
		return PlayerO, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidPlayer, value)
	}
}

// Opponent returns the other player.
func (that Player) Opponent() Player {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Mark returns the cell value this player writes on the board.
func (that Player) Mark() Cell {
	if that == PlayerO {
		return MarkedO
	}
	return MarkedX
}

func (that Player) IsValid() bool {
	return that == PlayerX || that == PlayerO
}

func (that Player) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}
