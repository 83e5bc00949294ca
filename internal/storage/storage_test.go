package storage

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func openTemp(t *testing.T) *Storage {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleGame() *GameRecord {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return &GameRecord{
		StartFEN:  "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		FinalFEN:  "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
		Moves:     []string{"f2f3", "e7e5", "g2g4", "d8h4"},
		SAN:       []string{"f3", "e5", "g4", "Qh4#"},
		Status:    "checkmate",
		Result:    ResultBlackWins,
		StartedAt: start,
		EndedAt:   start.Add(90 * time.Second),
		Positions: []uint64{10, 11, 12, 13, 14},
	}
}

func TestSaveAndLoadGame(t *testing.T) {
	s := openTemp(t)

	rec := sampleGame()
	if err := s.SaveGame(rec); err != nil {
		t.Fatalf("SaveGame: %v", err)
	}
	if rec.ID == 0 {
		t.Fatal("SaveGame did not assign an ID")
	}

	got, err := s.LoadGame(rec.ID)
	if err != nil {
		t.Fatalf("LoadGame: %v", err)
	}
	if diff := cmp.Diff(rec, got); diff != "" {
		t.Errorf("loaded game differs (-saved +loaded):\n%s", diff)
	}

	if _, err := s.LoadGame(rec.ID + 100); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadGame(missing) error = %v, want ErrNotFound", err)
	}
}

func TestIDsAreDistinctAndOrdered(t *testing.T) {
	s := openTemp(t)

	var ids []uint64
	for i := 0; i < 3; i++ {
		rec := sampleGame()
		if err := s.SaveGame(rec); err != nil {
			t.Fatalf("SaveGame: %v", err)
		}
		ids = append(ids, rec.ID)
	}
	if !(ids[0] < ids[1] && ids[1] < ids[2]) {
		t.Fatalf("ids not increasing: %v", ids)
	}

	games, err := s.ListGames()
	if err != nil {
		t.Fatalf("ListGames: %v", err)
	}
	var listed []uint64
	for _, g := range games {
		listed = append(listed, g.ID)
	}
	if diff := cmp.Diff(ids, listed); diff != "" {
		t.Errorf("ListGames order (-want +got):\n%s", diff)
	}
}

func TestIDsSurviveReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	first := sampleGame()
	if err := s.SaveGame(first); err != nil {
		t.Fatalf("SaveGame: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s, err = Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	second := sampleGame()
	if err := s.SaveGame(second); err != nil {
		t.Fatalf("SaveGame: %v", err)
	}
	if second.ID <= first.ID {
		t.Errorf("id %d reused after reopen (first was %d)", second.ID, first.ID)
	}
	if _, err := s.LoadGame(first.ID); err != nil {
		t.Errorf("first game lost: %v", err)
	}
}

func TestGamesWithPosition(t *testing.T) {
	s := openTemp(t)

	a := sampleGame()
	a.Positions = []uint64{1, 2, 3}
	b := sampleGame()
	b.Positions = []uint64{1, 4}
	for _, rec := range []*GameRecord{a, b} {
		if err := s.SaveGame(rec); err != nil {
			t.Fatalf("SaveGame: %v", err)
		}
	}

	tests := []struct {
		hash uint64
		want []uint64
	}{
		{1, []uint64{a.ID, b.ID}},
		{3, []uint64{a.ID}},
		{4, []uint64{b.ID}},
		{99, nil},
	}
	for _, tc := range tests {
		got, err := s.GamesWithPosition(tc.hash)
		if err != nil {
			t.Fatalf("GamesWithPosition(%d): %v", tc.hash, err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("GamesWithPosition(%d) (-want +got):\n%s", tc.hash, diff)
		}
	}
}

func TestStats(t *testing.T) {
	s := openTemp(t)

	stats, err := s.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.GamesPlayed != 0 || stats.DecisiveRate() != 0 {
		t.Errorf("fresh archive stats = %+v", stats)
	}

	draw := sampleGame()
	draw.Result, draw.Status = ResultDraw, "stalemate"
	draw.Moves = append(draw.Moves, "e1f2", "h4f2")
	open := sampleGame()
	open.Result, open.Status = ResultUnfinished, "ongoing"
	for _, rec := range []*GameRecord{sampleGame(), draw, open} {
		if err := s.SaveGame(rec); err != nil {
			t.Fatalf("SaveGame: %v", err)
		}
	}
	// Re-saving an archived game does not count it twice.
	if err := s.SaveGame(draw); err != nil {
		t.Fatalf("SaveGame again: %v", err)
	}

	stats, err = s.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	want := &GameStats{
		GamesPlayed:   3,
		BlackWins:     1,
		Draws:         1,
		Unfinished:    1,
		ByStatus:      map[string]int{"checkmate": 1, "stalemate": 1, "ongoing": 1},
		TotalPlies:    14,
		LongestGame:   6,
		TotalPlayTime: 270 * time.Second,
	}
	if diff := cmp.Diff(want, stats); diff != "" {
		t.Errorf("stats (-want +got):\n%s", diff)
	}
	if rate := stats.DecisiveRate(); rate != 50 {
		t.Errorf("DecisiveRate() = %.2f, want 50", rate)
	}
}

func TestDataDirOverride(t *testing.T) {
	dir := t.TempDir() + "/nested"
	t.Setenv(DataDirEnv, dir)

	got, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir: %v", err)
	}
	if got != dir {
		t.Errorf("GetDataDir() = %s, want %s", got, dir)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("data directory was not created: %v", err)
	}

	s, err := OpenDefault()
	if err != nil {
		t.Fatalf("OpenDefault: %v", err)
	}
	defer s.Close()
	if _, err := os.Stat(dir + "/games"); err != nil {
		t.Errorf("archive not under the override: %v", err)
	}
}
