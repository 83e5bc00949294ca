// Package game runs a single game on top of the board rules: it accepts moves
// in UCI or SAN, keeps the move history and reports the outcome.
package game

import (
	"fmt"
	"time"

	"github.com/apex/log"

	"github.com/JusticeJJackson/ChessBot/internal/board"
	"github.com/JusticeJJackson/ChessBot/internal/storage"
)

// Outcome describes how a game stands.
type Outcome struct {
	Status board.Status
	Winner board.Color // NoColor unless checkmate
	Result string      // "1-0", "0-1", "1/2-1/2" or "*"
}

func (o Outcome) String() string {
	switch {
	case o.Status == board.Checkmate:
		return fmt.Sprintf("%s, %s wins (%s)", o.Status, o.Winner, o.Result)
	case o.Status.IsOver():
		return fmt.Sprintf("draw by %s (%s)", o.Status, o.Result)
	}
	return "in progress"
}

// Game is a position plus the moves that led to it.
type Game struct {
	pos       *board.Position
	startFEN  string
	moves     []board.Move
	san       []string
	hashes    []uint64
	startedAt time.Time
	endedAt   time.Time
}

// New starts a game from pos. The game takes ownership of pos.
func New(pos *board.Position) *Game {
	g := &Game{
		pos:       pos,
		startFEN:  pos.ToFEN(),
		hashes:    []uint64{pos.Hash()},
		startedAt: time.Now(),
	}
	if g.pos.Status().IsOver() {
		g.endedAt = g.startedAt
	}
	return g
}

// NewFromFEN starts a game from a FEN string.
func NewFromFEN(fen string) (*Game, error) {
	pos, err := board.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return New(pos), nil
}

// Position returns a copy of the current position.
func (g *Game) Position() *board.Position {
	return g.pos.Copy()
}

// SideToMove returns the color to play.
func (g *Game) SideToMove() board.Color {
	return g.pos.SideToMove
}

// LegalMoves lists the moves available in the current position.
func (g *Game) LegalMoves() []board.Move {
	if g.IsOver() {
		return nil
	}
	return g.pos.GenerateLegalMoves()
}

// Moves returns the moves played so far.
func (g *Game) Moves() []board.Move {
	return append([]board.Move(nil), g.moves...)
}

// SAN returns the moves played so far in algebraic notation.
func (g *Game) SAN() []string {
	return append([]string(nil), g.san...)
}

// IsOver reports whether the game has ended.
func (g *Game) IsOver() bool {
	return g.pos.Status().IsOver()
}

// Play parses s as a UCI move, falling back to SAN, and plays it.
func (g *Game) Play(s string) error {
	if g.IsOver() {
		return ErrGameOver
	}
	m, err := g.parse(s)
	if err != nil {
		return err
	}
	return g.PlayMove(m)
}

// PlayMove plays an already decoded move.
func (g *Game) PlayMove(m board.Move) error {
	if g.IsOver() {
		return ErrGameOver
	}
	san := m.ToSAN(g.pos)
	if err := g.pos.MakeMove(m); err != nil {
		log.WithFields(log.Fields{
			"move":  m.String(),
			"error": err.Error(),
		}).Debug("move refused")
		return fmt.Errorf("%s: %w", m, err)
	}

	g.moves = append(g.moves, m)
	g.san = append(g.san, san)
	g.hashes = append(g.hashes, g.pos.Hash())

	if out := g.Outcome(); out.Status.IsOver() {
		g.endedAt = time.Now()
		log.WithFields(log.Fields{
			"status": out.Status.String(),
			"result": out.Result,
			"plies":  len(g.moves),
		}).Info("game over")
	}
	return nil
}

func (g *Game) parse(s string) (board.Move, error) {
	m, uciErr := board.ParseMove(s)
	if uciErr == nil {
		return m, nil
	}
	m, sanErr := board.ParseSAN(s, g.pos)
	if sanErr == nil {
		return m, nil
	}
	return board.NoMove, fmt.Errorf("%w: %q", ErrMalformedMove, s)
}

// Outcome reports the current status, the winner and the result string.
func (g *Game) Outcome() Outcome {
	status := g.pos.Status()
	switch {
	case status == board.Checkmate:
		winner := g.pos.SideToMove.Other()
		result := storage.ResultWhiteWins
		if winner == board.Black {
			result = storage.ResultBlackWins
		}
		return Outcome{Status: status, Winner: winner, Result: result}
	case status.IsDraw():
		return Outcome{Status: status, Winner: board.NoColor, Result: storage.ResultDraw}
	}
	return Outcome{Status: status, Winner: board.NoColor, Result: storage.ResultUnfinished}
}

// Record converts the game into an archive record.
func (g *Game) Record() *storage.GameRecord {
	out := g.Outcome()
	moves := make([]string, len(g.moves))
	for i, m := range g.moves {
		moves[i] = m.String()
	}
	return &storage.GameRecord{
		StartFEN:  g.startFEN,
		FinalFEN:  g.pos.ToFEN(),
		Moves:     moves,
		SAN:       g.SAN(),
		Status:    out.Status.String(),
		Result:    out.Result,
		StartedAt: g.startedAt,
		EndedAt:   g.endedAt,
		Positions: append([]uint64(nil), g.hashes...),
	}
}

// Replay rebuilds a game from an archive record.
func Replay(rec *storage.GameRecord) (*Game, error) {
	g, err := NewFromFEN(rec.StartFEN)
	if err != nil {
		return nil, err
	}
	for i, s := range rec.Moves {
		m, err := board.ParseMove(s)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		if err := g.PlayMove(m); err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
	}
	g.startedAt, g.endedAt = rec.StartedAt, rec.EndedAt
	return g, nil
}
