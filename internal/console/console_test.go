package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/JusticeJJackson/ChessBot/internal/board"
	"github.com/JusticeJJackson/ChessBot/internal/game"
	"github.com/JusticeJJackson/ChessBot/internal/storage"
)

type memArchive struct {
	saved []*storage.GameRecord
}

func (a *memArchive) SaveGame(rec *storage.GameRecord) error {
	rec.ID = uint64(len(a.saved) + 1)
	a.saved = append(a.saved, rec)
	return nil
}

func run(t *testing.T, input string, cfg Config) (string, *Console) {
	t.Helper()
	var out bytes.Buffer
	c := New(game.New(board.NewPosition()), strings.NewReader(input), &out, cfg)
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String(), c
}

func TestPlayToMate(t *testing.T) {
	archive := &memArchive{}
	snapshots := 0
	cfg := Config{
		Archive:  archive,
		Snapshot: func(*board.Position) error { snapshots++; return nil },
	}
	out, _ := run(t, "f3\ne7e5\nhello\ne2e5\ng4\nQh4\nthis is never read\n", cfg)

	for _, want := range []string{
		`Invalid input "hello"`,
		"Illegal move: ",
		"Played Qh4#",
		"Game over: checkmate, Black wins (0-1)",
		"Game saved as #1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
	if len(archive.saved) != 1 {
		t.Fatalf("%d games archived, want 1", len(archive.saved))
	}
	if rec := archive.saved[0]; rec.Result != storage.ResultBlackWins || rec.Plies() != 4 {
		t.Errorf("archived %s after %d plies", rec.Result, rec.Plies())
	}
	if snapshots != 4 {
		t.Errorf("%d snapshots, want one per move", snapshots)
	}
}

func TestQuitWithoutMovesArchivesNothing(t *testing.T) {
	archive := &memArchive{}
	run(t, "quit\n", Config{Archive: archive})
	if len(archive.saved) != 0 {
		t.Errorf("empty game archived")
	}
}

func TestEndOfInputArchivesUnfinishedGame(t *testing.T) {
	archive := &memArchive{}
	run(t, "e4\ne5\n", Config{Archive: archive})
	if len(archive.saved) != 1 {
		t.Fatalf("%d games archived, want 1", len(archive.saved))
	}
	if got := archive.saved[0].Result; got != storage.ResultUnfinished {
		t.Errorf("result = %s, want *", got)
	}
}

func TestCommands(t *testing.T) {
	out, c := run(t, strings.Join([]string{
		"moves",
		"perft 2",
		"e4",
		"fen",
		"history",
		"position fen 4k3/8/8/8/8/8/8/R3K3 w Q - 0 1 moves e1c1",
		"position nowhere",
		"perft zero",
		"quit",
	}, "\n"), Config{})

	for _, want := range []string{
		"20 legal moves: ",
		"perft(2) = 400",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"1. e4",
		`unknown position source "nowhere"`,
		`bad depth "zero"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
	if got, want := c.Game().Position().ToFEN(), "4k3/8/8/8/8/8/8/2KR4 b - - 1 1"; got != want {
		t.Errorf("position after setup = %s, want %s", got, want)
	}
}
