package board

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFEN is wrapped by every ParseFEN failure.
	ErrInvalidFEN = errors.New("invalid FEN")
	// ErrInvalidMove is wrapped by every ParseMove failure.
	ErrInvalidMove = errors.New("invalid move notation")
	// ErrIllegalMove is wrapped by every ValidateMove and MakeMove rejection.
	ErrIllegalMove = errors.New("illegal move")
)

func illegal(reason string) error {
	return fmt.Errorf("%w: %s", ErrIllegalMove, reason)
}

// Rejection reasons. Kept as values so validation does not allocate.
var (
	errOffBoard          = illegal("square off the board")
	errNullMove          = illegal("origin and destination are the same square")
	errNoPiece           = illegal("no piece on the origin square")
	errWrongColor        = illegal("piece belongs to the side not on move")
	errPromotionNotPawn  = illegal("only pawns promote")
	errOwnPiece          = illegal("destination holds a friendly piece")
	errKingCapture       = illegal("the king cannot be captured")
	errPawnPattern       = illegal("pawns move straight forward or capture diagonally forward")
	errPawnBlocked       = illegal("pawn push is blocked")
	errPawnDoubleStep    = illegal("double step only from the starting rank")
	errPawnCaptureEmpty  = illegal("pawn capture needs an enemy piece or the en-passant square")
	errPromotionRequired = illegal("pawn reaching the last rank must promote")
	errPromotionRank     = illegal("promotion only on the last rank")
	errKnightPattern     = illegal("knights move in an L shape")
	errSliderPath        = illegal("destination not reachable along an open line")
	errKingPattern       = illegal("kings move one square")
	errCastleRights      = illegal("castling right has been lost")
	errCastleBlocked     = illegal("squares between king and rook are occupied")
	errCastleAttacked    = illegal("king may not castle across an attacked square")
	errKingExposed       = illegal("move leaves the king in check")
)
