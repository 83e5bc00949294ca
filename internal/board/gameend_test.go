package board

import "testing"

func TestCheckmate(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		// Queen and rook box in a lone king; h8 stays covered along the eighth rank.
		{"queen and rook", "q5K1/r7/8/8/8/8/8/8 w - - 0 1", true},
		{"pawn wall", "8/8/8/8/8/5pp1/5pp1/7K w - - 0 1", true},
		{"back rank", "R6k/6pp/8/8/8/8/8/K7 b - - 0 1", true},
		{"fool's mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", true},
		{"king takes the checker", "6Rk/8/8/8/8/8/8/K7 b - - 0 1", false},
		{"block available", "R5k1/5ppp/8/8/8/8/3r4/K7 b - - 0 1", false},
		{"not in check", StartFEN, false},
		{"stalemate is not mate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos := mustParseFEN(t, tc.fen)
			if got := pos.IsCheckmate(); got != tc.want {
				t.Errorf("IsCheckmate() = %v, want %v%v", got, tc.want, pos)
			}
		})
	}
}

func TestIsCheckmateDoesNotMutate(t *testing.T) {
	pos := mustParseFEN(t, "q5K1/r7/8/8/8/8/8/8 w - - 0 1")
	before := *pos
	pos.IsCheckmate()
	if *pos != before {
		t.Error("IsCheckmate changed the position")
	}
}

func TestIsStalemate(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		color Color
		want  bool
	}{
		{"no moves", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", Black, true},
		{"cornered by pawn", "k7/P7/1K6/8/8/8/8/8 b - - 0 1", Black, true},
		{"bare kings", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", White, true},
		{"king and bishop", "4k3/8/8/8/8/8/8/2B1K3 b - - 0 1", Black, true},
		{"fifty moves", "4k3/8/8/8/8/8/8/R3K3 w - - 50 80", White, true},
		{"clock below limit", "4k3/8/8/8/8/8/8/R3K3 w - - 49 80", White, false},
		{"in check", "4k3/8/8/8/8/8/8/4K2r w - - 60 80", White, false},
		{"start", StartFEN, White, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos := mustParseFEN(t, tc.fen)
			if got := pos.IsStalemate(tc.color); got != tc.want {
				t.Errorf("IsStalemate(%v) = %v, want %v", tc.color, got, tc.want)
			}
		})
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		fen  string
		want Status
	}{
		{StartFEN, Ongoing},
		{"8/8/8/8/8/5pp1/5pp1/7K w - - 0 1", Checkmate},
		{"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", Stalemate},
		{"4k3/8/8/8/8/8/8/4KN2 w - - 0 1", InsufficientMaterial},
		{"4k3/8/8/8/8/8/8/R3K3 b - - 50 80", FiftyMoveRule},
		// Mate on the move that reaches the limit still counts as mate.
		{"R6k/6pp/8/8/8/8/8/K7 b - - 50 80", Checkmate},
	}
	for _, tc := range tests {
		got := mustParseFEN(t, tc.fen).Status()
		if got != tc.want {
			t.Errorf("Status(%s) = %v, want %v", tc.fen, got, tc.want)
		}
		if got.IsOver() != (tc.want != Ongoing) {
			t.Errorf("%v.IsOver() = %v", got, got.IsOver())
		}
	}
}

func TestThreefoldRepetitionIsStubbed(t *testing.T) {
	pos := NewPosition()
	for _, s := range []string{"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1", "f6g8"} {
		if !pos.Apply(mustParseMove(t, s)) {
			t.Fatalf("%s rejected", s)
		}
	}
	if pos.IsThreefoldRepetition() {
		t.Error("repetition reported without a position history")
	}
	if pos.Status() != Ongoing {
		t.Errorf("Status() = %v, want ongoing", pos.Status())
	}
}
