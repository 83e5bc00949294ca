package board

import (
	"errors"
	"testing"
)

func TestValidateMove(t *testing.T) {
	const (
		lonePawnWhite = "4k3/8/8/8/4P3/8/8/4K3 w - - 0 1"
		promoting     = "4k3/P7/8/8/8/8/8/4K3 w - - 0 1"
	)
	tests := []struct {
		name string
		fen  string
		move Move
		want error
	}{
		{"off board", StartFEN, Move{From: NoSquare, To: E4, Promotion: NoPieceType}, errOffBoard},
		{"null move", StartFEN, NewMove(E2, E2), errNullMove},
		{"empty origin", StartFEN, NewMove(E3, E4), errNoPiece},
		{"wrong color", StartFEN, NewMove(E7, E5), errWrongColor},
		{"knight with promotion", StartFEN, NewPromotion(G1, F3, Queen), errPromotionNotPawn},
		{"own piece", StartFEN, NewMove(D1, D2), errOwnPiece},
		{"king capture", "4k3/8/8/8/8/8/8/4K2r b - - 0 1", NewMove(H1, E1), errKingCapture},

		{"single push", StartFEN, NewMove(E2, E3), nil},
		{"double push", StartFEN, NewMove(E2, E4), nil},
		{"triple push", StartFEN, NewMove(E2, E5), errPawnPattern},
		{"backwards", lonePawnWhite, NewMove(E4, E3), errPawnPattern},
		{"sideways", lonePawnWhite, NewMove(E4, D4), errPawnPattern},
		{"push blocked", "4k3/8/8/8/8/4p3/4P3/4K3 w - - 0 1", NewMove(E2, E3), errPawnBlocked},
		{"double push jumps", "4k3/8/8/8/8/4p3/4P3/4K3 w - - 0 1", NewMove(E2, E4), errPawnBlocked},
		{"double push off start", lonePawnWhite, NewMove(E4, E6), errPawnDoubleStep},
		{"diagonal onto empty", StartFEN, NewMove(E2, D3), errPawnCaptureEmpty},
		{"black push", "4k3/4p3/8/8/8/8/8/4K3 b - - 0 1", NewMove(E7, E5), nil},
		{"black capture", "4k3/4p3/3N4/8/8/8/8/4K3 b - - 0 1", NewMove(E7, D6), nil},
		{"en passant", "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", NewMove(E5, D6), nil},
		{"en passant expired", "4k3/8/8/3pP3/8/8/8/4K3 w - - 0 1", NewMove(E5, D6), errPawnCaptureEmpty},
		{"promotion", promoting, NewPromotion(A7, A8, Queen), nil},
		{"under-promotion", promoting, NewPromotion(A7, A8, Knight), nil},
		{"promotion missing", promoting, NewMove(A7, A8), errPromotionRequired},
		{"promotion to king", promoting, NewPromotion(A7, A8, King), errPromotionRequired},
		{"promotion to pawn", promoting, NewPromotion(A7, A8, Pawn), errPromotionRequired},
		{"early promotion", StartFEN, NewPromotion(E2, E4, Queen), errPromotionRank},

		{"knight jump", StartFEN, NewMove(G1, F3), nil},
		{"knight straight", StartFEN, NewMove(G1, G3), errKnightPattern},
		{"bishop blocked", StartFEN, NewMove(F1, C4), errSliderPath},
		{"bishop open", "4k3/8/8/8/8/8/4P3/4KB2 w - - 0 1", NewMove(F1, H3), nil},
		{"bishop straight", "4k3/8/8/8/8/8/8/4KB2 w - - 0 1", NewMove(F1, F4), errSliderPath},
		{"rook capture", "4k3/8/8/8/r7/8/8/R3K3 w - - 0 1", NewMove(A1, A4), nil},
		{"rook through piece", "4k3/8/8/8/r7/8/8/R3K3 w - - 0 1", NewMove(A1, A5), errSliderPath},
		{"queen diagonal", "4k3/8/8/8/8/8/8/3QK3 w - - 0 1", NewMove(D1, H5), nil},
		{"queen knight jump", "4k3/8/8/8/8/8/8/3QK3 w - - 0 1", NewMove(D1, E3), errSliderPath},

		{"king step", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", NewMove(E1, F2), nil},
		{"king leap", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", NewMove(E1, E3), errKingPattern},
		{"castle", "4k3/8/8/8/8/8/8/4K2R w K - 0 1", NewMove(E1, G1), nil},
		{"castle no right", "4k3/8/8/8/8/8/8/4K2R w - - 0 1", NewMove(E1, G1), errCastleRights},
		{"castle no rook", "4k3/8/8/8/8/8/8/4K3 w K - 0 1", NewMove(E1, G1), errCastleRights},
		{"castle blocked", "4k3/8/8/8/8/8/8/R2QK3 w Q - 0 1", NewMove(E1, C1), errCastleBlocked},
		{"castle attacked", "4kr2/8/8/8/8/8/8/4K2R w K - 0 1", NewMove(E1, G1), errCastleAttacked},
		{"black castle", "r3k3/8/8/8/8/8/8/4K3 b q - 0 1", NewMove(E8, C8), nil},

		// Movement rules only: the pin is Apply's business.
		{"pinned knight", "4k3/4r3/8/8/8/8/4N3/4K3 w - - 0 1", NewMove(E2, C3), nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos := mustParseFEN(t, tc.fen)
			before := *pos
			err := pos.ValidateMove(tc.move)
			if err != tc.want {
				t.Fatalf("ValidateMove(%v) = %v, want %v", tc.move, err, tc.want)
			}
			if err != nil && !errors.Is(err, ErrIllegalMove) {
				t.Errorf("%v does not wrap ErrIllegalMove", err)
			}
			if pos.IsValidMove(tc.move) != (tc.want == nil) {
				t.Error("IsValidMove disagrees with ValidateMove")
			}
			if *pos != before {
				t.Error("validation modified the position")
			}
		})
	}
}

func TestMakeMoveReportsExposedKing(t *testing.T) {
	pos := mustParseFEN(t, "4k3/4r3/8/8/8/8/4N3/4K3 w - - 0 1")
	err := pos.MakeMove(NewMove(E2, C3))
	if err != errKingExposed {
		t.Fatalf("MakeMove = %v, want %v", err, errKingExposed)
	}
	if !errors.Is(err, ErrIllegalMove) {
		t.Error("exposure error does not wrap ErrIllegalMove")
	}
}

func TestSlidingDestinations(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		pt   PieceType
		from Square
		want Bitboard
	}{
		{"bishop captures blocker", "7B/8/5p2/8/8/8/8/8 w - - 0 1", Bishop, H8, bb(G7, F6)},
		{"bishop stops before friend", "7B/8/5P2/8/8/8/8/8 w - - 0 1", Bishop, H8, bb(G7)},
		{"rook in the corner", "8/8/8/8/8/8/1p6/Rp6 w - - 0 1", Rook, A1, bb(B1, A2, A3, A4, A5, A6, A7, A8)},
		{"black rook", "8/8/8/8/8/8/8/rP6 b - - 0 1", Rook, A1, bb(B1, A2, A3, A4, A5, A6, A7, A8)},
		{"non-slider", StartFEN, Knight, B1, 0},
	}
	for _, tc := range tests {
		pos := mustParseFEN(t, tc.fen)
		if got := pos.SlidingDestinations(tc.pt, tc.from); got != tc.want {
			t.Errorf("%s:\n%v\nwant\n%v", tc.name, got, tc.want)
		}
	}
}
