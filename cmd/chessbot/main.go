package main

import (
	"flag"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"github.com/JusticeJJackson/ChessBot/internal/board"
	"github.com/JusticeJJackson/ChessBot/internal/console"
	"github.com/JusticeJJackson/ChessBot/internal/game"
	"github.com/JusticeJJackson/ChessBot/internal/render"
	"github.com/JusticeJJackson/ChessBot/internal/storage"
)

var (
	fenFlag  = flag.String("fen", "", "starting position (default: the standard start, or $CHESSBOT_FEN)")
	dbFlag   = flag.String("db", "", "archive directory (default: platform data dir or $CHESSBOT_DATA_DIR; \"-\" disables)")
	svgFlag  = flag.String("svg", "", "write an SVG of the board to this file after every move")
	pngFlag  = flag.String("png", "", "write a PNG of the board to this file after every move")
	debug    = flag.Bool("debug", false, "debug logging, including rejected move traces")
	flipFlag = flag.Bool("flip", false, "draw images from Black's side")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	log.SetHandler(cli.New(os.Stderr))
	log.SetLevel(log.InfoLevel)
	if *debug {
		log.SetLevel(log.DebugLevel)
		board.DebugMoveValidation = true
	}

	fen := *fenFlag
	if fen == "" {
		fen = os.Getenv("CHESSBOT_FEN")
	}
	if fen == "" {
		fen = board.StartFEN
	}
	g, err := game.NewFromFEN(fen)
	if err != nil {
		log.WithError(err).WithField("fen", fen).Error("cannot start game")
		return 2
	}

	cfg := console.Config{Snapshot: snapshotter()}
	if archive := openArchive(*dbFlag); archive != nil {
		defer archive.Close()
		cfg.Archive = archive
	}

	if err := console.New(g, os.Stdin, os.Stdout, cfg).Run(); err != nil {
		log.WithError(err).Error("session ended with an error")
		return 1
	}
	return 0
}

// openArchive returns nil when archiving is disabled or unavailable; the game
// is still playable without it.
func openArchive(dir string) *storage.Storage {
	if dir == "-" {
		return nil
	}
	var (
		s   *storage.Storage
		err error
	)
	if dir == "" {
		s, err = storage.OpenDefault()
	} else {
		s, err = storage.Open(dir)
	}
	if err != nil {
		log.WithError(err).Warn("archive unavailable, games will not be saved")
		return nil
	}
	return s
}

func snapshotter() func(*board.Position) error {
	if *svgFlag == "" && *pngFlag == "" {
		return nil
	}
	opts := render.DefaultOptions()
	opts.Flip = *flipFlag
	return func(pos *board.Position) error {
		if *svgFlag != "" {
			if err := writeFile(*svgFlag, func(f *os.File) error { return render.SVG(f, pos, opts) }); err != nil {
				return err
			}
		}
		if *pngFlag != "" {
			return writeFile(*pngFlag, func(f *os.File) error { return render.PNG(f, pos, opts) })
		}
		return nil
	}
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	log.WithField("path", path).Debug("board image written")
	return f.Close()
}
