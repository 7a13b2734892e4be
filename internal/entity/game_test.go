package entity

import (
	"math/rand"
	"testing"

	"github.com/Juansebayala/react-clase-dos-master/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playMoves(t *testing.T, game *Game, cells ...int) {
	t.Helper()

	for _, cell := range cells {
		require.NoError(t, game.ApplyMove(cell), "move to cell %d", cell)
	}
}

func TestNewGame(t *testing.T) {
	t.Run("Starts empty with the chosen player", func(t *testing.T) {
		// When: a new game is created with O to move
		game := NewGame(PlayerO)

		// Then: the board is empty, O is current and the game is in progress
		assert.Equal(t, Board{}, game.Board())
		assert.Equal(t, PlayerO, game.CurrentPlayer())
		assert.Equal(t, InProgress(), game.Outcome())
		assert.Equal(t, 0, game.MoveCount())
	})

	t.Run("Falls back to X for an invalid starting player", func(t *testing.T) {
		// When: a new game is created with an unknown player
		game := NewGame(Player(42))

		// Then: X is current
		assert.Equal(t, PlayerX, game.CurrentPlayer())
	})
}

func TestGame_ApplyMove(t *testing.T) {
	t.Run("Marks the cell for the current player and passes the turn", func(t *testing.T) {
		// Given: a new game
		game := NewGame(PlayerX)

		// When: a move is applied to the centre
		err := game.ApplyMove(4)
		require.NoError(t, err)

		// Then: the centre holds X and O is to move
		expected := Board{}
		expected[4] = MarkedX
		assert.Equal(t, expected, game.Board())
		assert.Equal(t, PlayerO, game.CurrentPlayer())
		assert.Equal(t, InProgress(), game.Outcome())
	})

	t.Run("Top row win keeps the winner as current player", func(t *testing.T) {
		// Given: a new game
		game := NewGame(PlayerX)

		// When: X completes the top row
		playMoves(t, game, 0, 3, 1, 4, 2)

		// Then: X has won and the turn did not toggle
		assert.Equal(t, Won(PlayerX), game.Outcome())
		assert.Equal(t, PlayerX, game.CurrentPlayer())
		assert.True(t, game.IsEnded())
	})

	t.Run("Full board with no triple is a draw", func(t *testing.T) {
		// Given: a new game
		game := NewGame(PlayerX)

		// When: the board is filled without a completed triple
		playMoves(t, game, 0, 1, 2, 4, 3, 5, 7, 6, 8)

		// Then: the outcome is a draw and the last mover stays current
		assert.Equal(t, Draw(), game.Outcome())
		assert.Equal(t, PlayerX, game.CurrentPlayer())
		assert.True(t, IsFull(game.Board()))
	})

	t.Run("Ninth move completing a diagonal is a win, not a draw", func(t *testing.T) {
		// Given: a new game
		game := NewGame(PlayerX)

		// When: the last free cell completes the 0-4-8 diagonal
		playMoves(t, game, 0, 1, 2, 3, 4, 6, 7, 5, 8)

		// Then: the winner takes precedence over the full board
		assert.True(t, IsFull(game.Board()))
		assert.Equal(t, Won(PlayerX), game.Outcome())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: X has taken cell 0
		game := NewGame(PlayerX)
		playMoves(t, game, 0)
		before := *game

		// When: O tries the same cell
		err := game.ApplyMove(0)

		// Then: ErrCellOccupied is returned and nothing changed
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, *game)
		assert.Equal(t, PlayerO, game.CurrentPlayer())
	})

	t.Run("Error on cell index out of range", func(t *testing.T) {
		for _, cell := range []int{-1, 9, 20} {
			// Given: a new game
			game := NewGame(PlayerX)
			before := *game

			// When: the index is outside [0, 8]
			err := game.ApplyMove(cell)

			// Then: ErrOutOfRange is returned and nothing changed
			require.ErrorIs(t, err, apperror.ErrOutOfRange, "cell %d", cell)
			assert.Equal(t, before, *game)
		}
	})

	t.Run("Error on move after a win", func(t *testing.T) {
		// Given: X has won on the top row
		game := NewGame(PlayerX)
		playMoves(t, game, 0, 3, 1, 4, 2)
		before := *game

		// When: a move targets an empty cell
		err := game.ApplyMove(5)

		// Then: ErrGameAlreadyEnded is returned and nothing changed
		require.ErrorIs(t, err, apperror.ErrGameAlreadyEnded)
		assert.Equal(t, before, *game)
		assert.Equal(t, Empty, game.Board()[5])
	})

	t.Run("Error on move after a draw", func(t *testing.T) {
		// Given: a drawn game
		game := NewGame(PlayerX)
		playMoves(t, game, 0, 1, 2, 4, 3, 5, 7, 6, 8)
		before := *game

		// When: a move targets an occupied cell
		err := game.ApplyMove(3)

		// Then: the end of the game is reported first
		require.ErrorIs(t, err, apperror.ErrGameAlreadyEnded)
		assert.Equal(t, before, *game)
	})

	t.Run("Zero value game behaves like a new game with X", func(t *testing.T) {
		// Given: an uninitialised game
		var game Game

		// When: a move is applied
		require.NoError(t, game.ApplyMove(8))

		// Then: X was written and O is to move
		assert.Equal(t, MarkedX, game.Board()[8])
		assert.Equal(t, PlayerO, game.CurrentPlayer())
	})
}

func TestGame_Restart(t *testing.T) {
	t.Run("Restart after a win returns to an empty board", func(t *testing.T) {
		// Given: a finished game
		game := NewGame(PlayerX)
		playMoves(t, game, 0, 3, 1, 4, 2)

		// When: restarting with O to move
		game.Restart(PlayerO)

		// Then: the board is empty, O is current and the game is in progress again
		assert.Equal(t, Board{}, game.Board())
		assert.Equal(t, PlayerO, game.CurrentPlayer())
		assert.Equal(t, InProgress(), game.Outcome())
		assert.Equal(t, *NewGame(PlayerO), *game)
	})

	t.Run("Restart mid game", func(t *testing.T) {
		// Given: a game in progress
		game := NewGame(PlayerX)
		playMoves(t, game, 4, 0)

		// When: restarting with the default player
		game.Restart(PlayerX)

		// Then: moves are accepted again from the start
		assert.Equal(t, 0, game.MoveCount())
		require.NoError(t, game.ApplyMove(4))
	})
}

func TestGame_TurnAlternation(t *testing.T) {
	rnd := rand.New(rand.NewSource(7)) //nolint: gosec // deterministic test input

	for i := 0; i < 500; i++ {
		starting := PlayerX
		if i%2 == 1 {
			starting = PlayerO
		}

		game := NewGame(starting)
		for !game.IsEnded() {
			mover := game.CurrentPlayer()

			free := make([]int, 0, BoardSize)
			for cell, value := range game.Board() {
				if value == Empty {
					free = append(free, cell)
				}
			}
			require.NotEmpty(t, free)

			require.NoError(t, game.ApplyMove(free[rnd.Intn(len(free))]))

			board := game.Board()
			diff := board.Count(starting.Mark()) - board.Count(starting.Opponent().Mark())
			assert.GreaterOrEqual(t, diff, 0)
			assert.LessOrEqual(t, diff, 1)

			if game.IsEnded() {
				assert.Equal(t, mover, game.CurrentPlayer())
			} else {
				assert.Equal(t, mover.Opponent(), game.CurrentPlayer())
			}

			assert.Equal(t, DeriveOutcome(board), game.Outcome())
		}

		before := *game
		for cell := 0; cell < BoardSize; cell++ {
			require.ErrorIs(t, game.ApplyMove(cell), apperror.ErrGameAlreadyEnded)
		}
		assert.Equal(t, before, *game)
	}
}

func TestGame_OutcomeDependsOnlyOnBoard(t *testing.T) {
	// Given: two games reaching the same position through different move orders
	first := NewGame(PlayerX)
	playMoves(t, first, 0, 4, 8, 2, 6)

	second := NewGame(PlayerX)
	playMoves(t, second, 6, 2, 0, 4, 8)

	// Then: boards and outcomes are identical
	require.Equal(t, first.Board(), second.Board())
	assert.Equal(t, first.Outcome(), second.Outcome())
	assert.Equal(t, DeriveOutcome(first.Board()), first.Outcome())
}
