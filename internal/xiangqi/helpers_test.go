package xiangqi

import "testing"

func pc(c Color, pt PieceType, row, col int) *Piece {
	return NewPiece(pt, c, Pos(row, col))
}

func boardWith(t *testing.T, pieces ...*Piece) *Board {
	t.Helper()
	b := NewBoard()
	for _, p := range pieces {
		if err := b.Place(p); err != nil {
			t.Fatalf("Place(%v at %v) error: %v", p, p.Position, err)
		}
	}
	return b
}

// mirror 上下翻转并交换颜色
func mirror(p Position) Position { return Pos(Rows+1-p.Row, p.Col) }

func mirrorPieces(pieces []*Piece) []*Piece {
	out := make([]*Piece, len(pieces))
	for i, p := range pieces {
		out[i] = NewPiece(p.Type, p.Color.Opponent(), mirror(p.Position))
	}
	return out
}
