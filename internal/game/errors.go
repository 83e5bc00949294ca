package game

import (
	"errors"

	"github.com/JusticeJJackson/ChessBot/internal/board"
)

var (
	// ErrMalformedMove is returned when the input is neither UCI nor SAN.
	ErrMalformedMove = errors.New("malformed move")
	// ErrIllegalMove is returned when a well-formed move cannot be played.
	ErrIllegalMove = board.ErrIllegalMove
	// ErrGameOver is returned by Play once the game has ended.
	ErrGameOver = errors.New("game is over")
)
