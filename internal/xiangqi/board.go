package xiangqi

import (
	"strings"
	"unicode"
)

const (
	Rows       = 10
	Cols       = 9
	NumSquares = Rows * Cols

	RiverRow = 5 // 红方最后一行；第 5、6 行之间是河
)

func onBoard(row, col int) bool {
	return row >= 1 && row <= Rows && col >= 1 && col <= Cols
}

func indexOf(pos Position) int { return (pos.Row-1)*Cols + (pos.Col - 1) }

// Board 10×9，每格至多一个棋子，nil 表示空位。
// 不维护跨棋子的约束（例如每方只有一个帅），由调用方保证。
type Board struct {
	squares [NumSquares]*Piece
}

func NewBoard() *Board {
	return &Board{}
}

// Place 把棋子放到 piece.Position，原有棋子直接被覆盖。
func (b *Board) Place(piece *Piece) error {
	if piece == nil {
		return ErrNilPiece
	}
	if err := checkPosition(piece.Position); err != nil {
		return err
	}
	b.squares[indexOf(piece.Position)] = piece
	return nil
}

// Get 返回该格的棋子，空位返回 nil。
func (b *Board) Get(pos Position) (*Piece, error) {
	if err := checkPosition(pos); err != nil {
		return nil, err
	}
	return b.squares[indexOf(pos)], nil
}

// Remove 清空该格，空位时什么都不做。
func (b *Board) Remove(pos Position) error {
	if err := checkPosition(pos); err != nil {
		return err
	}
	b.squares[indexOf(pos)] = nil
	return nil
}

// at 只给规则内部用，调用前坐标已经校验过
func (b *Board) at(row, col int) *Piece {
	return b.squares[(row-1)*Cols+(col-1)]
}

func (b *Board) occupied(row, col int) bool {
	return b.at(row, col) != nil
}

// Pieces 按行列顺序返回棋盘上所有棋子
func (b *Board) Pieces() []*Piece {
	out := make([]*Piece, 0, 32)
	for _, pc := range b.squares {
		if pc != nil {
			out = append(out, pc)
		}
	}
	return out
}

var pieceLetters = map[PieceType]rune{
	General:  'k',
	Guard:    'a',
	Rook:     'r',
	Horse:    'h',
	Cannon:   'c',
	Elephant: 'e',
	Soldier:  's',
}

// PieceLetter 红方大写，黑方小写
func PieceLetter(p *Piece) rune {
	if p == nil {
		return '.'
	}
	ch, ok := pieceLetters[p.Type]
	if !ok {
		return '?'
	}
	if p.Color == Red {
		return unicode.ToUpper(ch)
	}
	return ch
}

// ParsePieceLetter 是 PieceLetter 的反向
func ParsePieceLetter(ch rune) (PieceType, Color, bool) {
	base := unicode.ToLower(ch)
	for pt, l := range pieceLetters {
		if l == base {
			if unicode.IsUpper(ch) {
				return pt, Red, true
			}
			return pt, Black, true
		}
	}
	return 0, 0, false
}

// String 从第 10 行画到第 1 行，红方在下
func (b *Board) String() string {
	var sb strings.Builder
	for r := Rows; r >= 1; r-- {
		for c := 1; c <= Cols; c++ {
			sb.WriteRune(PieceLetter(b.at(r, c)))
		}
		if r > 1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
