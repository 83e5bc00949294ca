// Package console runs an interactive game over a line-oriented reader and
// writer.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/apex/log"

	"github.com/JusticeJJackson/ChessBot/internal/board"
	"github.com/JusticeJJackson/ChessBot/internal/game"
	"github.com/JusticeJJackson/ChessBot/internal/render"
	"github.com/JusticeJJackson/ChessBot/internal/storage"
)

// Archive receives finished games.
type Archive interface {
	SaveGame(rec *storage.GameRecord) error
}

// Config wires optional collaborators into a Console.
type Config struct {
	Archive Archive // nil disables archiving
	// Snapshot is called with the position after every move, e.g. to write
	// an image of the board.
	Snapshot func(pos *board.Position) error
}

// Console is the interactive loop.
type Console struct {
	in   *bufio.Scanner
	out  io.Writer
	game *game.Game
	cfg  Config
}

// New creates a console playing g.
func New(g *game.Game, in io.Reader, out io.Writer, cfg Config) *Console {
	return &Console{
		in:   bufio.NewScanner(in),
		out:  out,
		game: g,
		cfg:  cfg,
	}
}

// Game returns the game being played.
func (c *Console) Game() *game.Game {
	return c.game
}

// Run reads commands until the game ends, "quit" is entered or input runs
// out. Games with at least one move are archived on the way out.
func (c *Console) Run() error {
	c.showBoard()
	for {
		if c.game.IsOver() {
			fmt.Fprintf(c.out, "Game over: %s\n", c.game.Outcome())
			return c.archive()
		}

		fmt.Fprintf(c.out, "%s to move> ", c.game.SideToMove())
		if !c.in.Scan() {
			fmt.Fprintln(c.out)
			if err := c.in.Err(); err != nil {
				return err
			}
			return c.archive()
		}

		line := strings.TrimSpace(c.in.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "quit", "exit":
			return c.archive()
		case "help":
			c.handleHelp()
		case "moves":
			c.handleMoves()
		case "fen":
			fmt.Fprintln(c.out, c.game.Position().ToFEN())
		case "board", "d":
			c.showBoard()
		case "history":
			c.handleHistory()
		case "new":
			c.handlePosition([]string{"startpos"})
		case "position":
			c.handlePosition(args)
		case "perft":
			c.handlePerft(args)
		default:
			c.handleMove(line)
		}
	}
}

func (c *Console) showBoard() {
	fmt.Fprint(c.out, render.Text(c.game.Position()))
}

func (c *Console) handleHelp() {
	fmt.Fprint(c.out, `Enter a move in UCI (e2e4, e7e8q) or SAN (Nf3, O-O) form, or a command:
  moves      list legal moves
  fen        print the current FEN
  board      draw the board
  history    list the moves played
  new        start over from the initial position
  position   startpos|fen <fen> [moves <m1> <m2> ...]
  perft <n>  count leaf nodes to depth n
  quit       leave, archiving the game
`)
}

func (c *Console) handleMoves() {
	var list []string
	for _, m := range c.game.LegalMoves() {
		list = append(list, m.String())
	}
	slices.Sort(list)
	fmt.Fprintf(c.out, "%d legal moves: %s\n", len(list), strings.Join(list, " "))
}

func (c *Console) handleHistory() {
	san := c.game.SAN()
	if len(san) == 0 {
		fmt.Fprintln(c.out, "no moves played")
		return
	}
	var sb strings.Builder
	for i, s := range san {
		if i%2 == 0 {
			fmt.Fprintf(&sb, "%d. ", i/2+1)
		}
		sb.WriteString(s)
		sb.WriteByte(' ')
	}
	fmt.Fprintln(c.out, strings.TrimSpace(sb.String()))
}

func (c *Console) handleMove(input string) {
	err := c.game.Play(input)
	switch {
	case errors.Is(err, game.ErrMalformedMove):
		fmt.Fprintf(c.out, "Invalid input %q. Type \"help\" for commands.\n", input)
		return
	case errors.Is(err, game.ErrIllegalMove):
		fmt.Fprintf(c.out, "Illegal move: %v\n", err)
		return
	case err != nil:
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}

	moves := c.game.SAN()
	fmt.Fprintf(c.out, "Played %s\n", moves[len(moves)-1])
	c.showBoard()
	c.snapshot()
}

// handlePosition replaces the game. Formats:
//   - position startpos
//   - position startpos moves e2e4 e7e5
//   - position fen <fen>
//   - position fen <fen> moves e2e4 e7e5
func (c *Console) handlePosition(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(c.out, "usage: position startpos|fen <fen> [moves ...]")
		return
	}

	fenArgs, moves := args[1:], []string(nil)
	if i := slices.Index(fenArgs, "moves"); i >= 0 {
		fenArgs, moves = fenArgs[:i], fenArgs[i+1:]
	}

	var fen string
	switch args[0] {
	case "startpos":
		fen = board.StartFEN
	case "fen":
		fen = strings.Join(fenArgs, " ")
	default:
		fmt.Fprintf(c.out, "unknown position source %q\n", args[0])
		return
	}

	g, err := game.NewFromFEN(fen)
	if err != nil {
		fmt.Fprintf(c.out, "Invalid FEN: %v\n", err)
		return
	}
	for _, s := range moves {
		if err := g.Play(s); err != nil {
			fmt.Fprintf(c.out, "Invalid move %s: %v\n", s, err)
			return
		}
	}

	if err := c.archive(); err != nil {
		log.WithError(err).Warn("archive previous game")
	}
	c.game = g
	c.showBoard()
	c.snapshot()
}

func (c *Console) handlePerft(args []string) {
	depth := 1
	if len(args) > 0 {
		d, err := strconv.Atoi(args[0])
		if err != nil || d < 1 {
			fmt.Fprintf(c.out, "bad depth %q\n", args[0])
			return
		}
		depth = d
	}
	fmt.Fprintf(c.out, "perft(%d) = %d\n", depth, board.Perft(c.game.Position(), depth))
}

func (c *Console) snapshot() {
	if c.cfg.Snapshot == nil {
		return
	}
	if err := c.cfg.Snapshot(c.game.Position()); err != nil {
		log.WithError(err).Warn("board snapshot failed")
	}
}

func (c *Console) archive() error {
	if c.cfg.Archive == nil || len(c.game.Moves()) == 0 {
		return nil
	}
	rec := c.game.Record()
	if err := c.cfg.Archive.SaveGame(rec); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Game saved as #%d\n", rec.ID)
	return nil
}
