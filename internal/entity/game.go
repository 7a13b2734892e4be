package entity

import (
	"fmt"

	"github.com/Juansebayala/react-clase-dos-master/internal/apperror"
)

// Game is the authoritative board/turn/outcome state of one match.
// It does no locking: callers sharing a Game must serialize access.
type Game struct {
	board   Board
	current Player
	outcome Outcome
}

// NewGame returns an empty board with starting to move. An invalid starting player falls back to X.
func NewGame(starting Player) *Game {
	game := &Game{}
	game.Restart(starting)

	return game
}

// Restart discards the current state and returns to an empty board.
func (that *Game) Restart(starting Player) {
	if !starting.IsValid() {
		starting = PlayerX
	}

	that.board = Board{}
	that.current = starting
	that.outcome = InProgress()
}

// ApplyMove marks cell for the current player. On error the game is left unchanged.
func (that *Game) ApplyMove(cell int) error {
	if cell < 0 || cell >= BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrOutOfRange, cell)
	}

	if !that.Outcome().IsInProgress() {
		return apperror.ErrGameAlreadyEnded
	}

	if that.board[cell] != Empty {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	player := that.CurrentPlayer()
	that.board[cell] = player.Mark()
	that.current = player

	that.outcome = DeriveOutcome(that.board)

	// the turn no longer matters once the game has ended
	if that.outcome.IsInProgress() {
		that.current = player.Opponent()
	}

	return nil
}

// Outcome never goes stale: it is refreshed by every mutation.
func (that *Game) Outcome() Outcome {
	if that.outcome.Status == "" {
		return DeriveOutcome(that.board)
	}

	return that.outcome
}

func (that *Game) CurrentPlayer() Player {
	if !that.current.IsValid() {
		return PlayerX
	}

	return that.current
}

func (that *Game) Board() Board {
	return that.board
}

func (that *Game) IsEnded() bool {
	return !that.Outcome().IsInProgress()
}

func (that *Game) MoveCount() int {
	return BoardSize - that.board.Count(Empty)
}
