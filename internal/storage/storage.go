package storage

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/apex/log"
	"github.com/dgraph-io/badger/v4"
)

// Storage keys
var (
	keyStats     = []byte("stats")
	keySequence  = []byte("seq/game")
	prefixGame   = []byte("game/")
	prefixPosKey = []byte("pos/")
)

// ErrNotFound is returned when no game has the requested ID.
var ErrNotFound = errors.New("game not found")

// Result strings, as in PGN.
const (
	ResultWhiteWins  = "1-0"
	ResultBlackWins  = "0-1"
	ResultDraw       = "1/2-1/2"
	ResultUnfinished = "*"
)

// GameRecord is one archived game.
type GameRecord struct {
	ID        uint64    `json:"id"`
	StartFEN  string    `json:"start_fen"`
	FinalFEN  string    `json:"final_fen"`
	Moves     []string  `json:"moves"` // UCI
	SAN       []string  `json:"san"`
	Status    string    `json:"status"`
	Result    string    `json:"result"`
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
	// Positions holds the key of every position of the game, the start
	// position included.
	Positions []uint64 `json:"positions"`
}

// Plies returns the number of half-moves played.
func (r *GameRecord) Plies() int {
	return len(r.Moves)
}

// GameStats aggregates every archived game.
type GameStats struct {
	GamesPlayed   int            `json:"games_played"`
	WhiteWins     int            `json:"white_wins"`
	BlackWins     int            `json:"black_wins"`
	Draws         int            `json:"draws"`
	Unfinished    int            `json:"unfinished"`
	ByStatus      map[string]int `json:"by_status"`
	TotalPlies    int            `json:"total_plies"`
	LongestGame   int            `json:"longest_game"`
	TotalPlayTime time.Duration  `json:"total_play_time"`
}

// NewGameStats returns empty game statistics
func NewGameStats() *GameStats {
	return &GameStats{ByStatus: make(map[string]int)}
}

func (s *GameStats) add(rec *GameRecord) {
	s.GamesPlayed++
	switch rec.Result {
	case ResultWhiteWins:
		s.WhiteWins++
	case ResultBlackWins:
		s.BlackWins++
	case ResultDraw:
		s.Draws++
	default:
		s.Unfinished++
	}
	s.ByStatus[rec.Status]++
	s.TotalPlies += rec.Plies()
	s.LongestGame = max(s.LongestGame, rec.Plies())
	if !rec.StartedAt.IsZero() && rec.EndedAt.After(rec.StartedAt) {
		s.TotalPlayTime += rec.EndedAt.Sub(rec.StartedAt)
	}
}

// DecisiveRate returns the share of finished games that had a winner, as a
// percentage (0-100).
func (s *GameStats) DecisiveRate() float64 {
	finished := s.GamesPlayed - s.Unfinished
	if finished == 0 {
		return 0
	}
	return float64(s.WhiteWins+s.BlackWins) / float64(finished) * 100
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db  *badger.DB
	seq *badger.Sequence
}

// OpenDefault opens the archive in the platform data directory.
func OpenDefault() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Open opens or creates the archive in dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = badgerLogger{log.WithField("component", "badger")}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", dir, err)
	}
	seq, err := db.GetSequence(keySequence, 16)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("open archive %s: %w", dir, err)
	}

	log.WithField("dir", dir).Debug("archive opened")
	return &Storage{db: db, seq: seq}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.seq != nil {
		if err := s.seq.Release(); err != nil {
			log.WithError(err).Warn("release game sequence")
		}
	}
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func gameKey(id uint64) []byte {
	return binary.BigEndian.AppendUint64(append([]byte(nil), prefixGame...), id)
}

func positionPrefix(hash uint64) []byte {
	return binary.BigEndian.AppendUint64(append([]byte(nil), prefixPosKey...), hash)
}

func positionKey(hash, id uint64) []byte {
	return binary.BigEndian.AppendUint64(positionPrefix(hash), id)
}

// SaveGame stores rec, assigning it an ID if it has none. Saving a record
// that already has an ID overwrites it; stats count each ID once.
func (s *Storage) SaveGame(rec *GameRecord) error {
	isNew := rec.ID == 0
	if isNew {
		next, err := s.seq.Next()
		if err != nil {
			return fmt.Errorf("allocate game id: %w", err)
		}
		rec.ID = next + 1
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(gameKey(rec.ID), data); err != nil {
			return err
		}
		for _, h := range rec.Positions {
			if err := txn.Set(positionKey(h, rec.ID), nil); err != nil {
				return err
			}
		}
		if !isNew {
			return nil
		}

		stats, err := loadStats(txn)
		if err != nil {
			return err
		}
		stats.add(rec)
		statsData, err := json.Marshal(stats)
		if err != nil {
			return err
		}
		return txn.Set(keyStats, statsData)
	})
	if err != nil {
		return fmt.Errorf("save game %d: %w", rec.ID, err)
	}

	log.WithFields(log.Fields{
		"id":     rec.ID,
		"result": rec.Result,
		"plies":  rec.Plies(),
	}).Info("game archived")
	return nil
}

// LoadGame returns the game with the given ID, or ErrNotFound.
func (s *Storage) LoadGame(id uint64) (*GameRecord, error) {
	rec := &GameRecord{}
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, rec)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("load game %d: %w", id, err)
	}
	return rec, nil
}

// ListGames returns every archived game in ID order.
func (s *Storage) ListGames() ([]*GameRecord, error) {
	var games []*GameRecord
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefixGame); it.ValidForPrefix(prefixGame); it.Next() {
			rec := &GameRecord{}
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, rec)
			})
			if err != nil {
				return err
			}
			games = append(games, rec)
		}
		return nil
	})
	return games, err
}

// GamesWithPosition returns the IDs of the games that passed through the
// position with the given key, in ID order.
func (s *Storage) GamesWithPosition(hash uint64) ([]uint64, error) {
	prefix := positionPrefix(hash)
	var ids []uint64
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			key := it.Item().Key()
			ids = append(ids, binary.BigEndian.Uint64(key[len(prefix):]))
		}
		return nil
	})
	return ids, err
}

// Stats returns the aggregated statistics, empty if nothing was archived.
func (s *Storage) Stats() (*GameStats, error) {
	var stats *GameStats
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		stats, err = loadStats(txn)
		return err
	})
	return stats, err
}

func loadStats(txn *badger.Txn) (*GameStats, error) {
	stats := NewGameStats()
	item, err := txn.Get(keyStats)
	if err == badger.ErrKeyNotFound {
		return stats, nil // Use empty stats
	}
	if err != nil {
		return nil, err
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, stats)
	})
	return stats, err
}

// badgerLogger routes badger's internal logging through apex/log. Badger is
// chatty at info level, so its info lines are demoted to debug.
type badgerLogger struct {
	log.Interface
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.Interface.Warnf(format, args...)
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.Interface.Debugf(format, args...)
}
