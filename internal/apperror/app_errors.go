package apperror

import "errors"

var (
	ErrOutOfRange       = errors.New("cell index is out of range")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrGameAlreadyEnded = errors.New("game has already ended")

	ErrGameNotFound  = errors.New("game not found")
	ErrInvalidPlayer = errors.New("invalid player")
	ErrTooManyGames  = errors.New("too many active games")
)
