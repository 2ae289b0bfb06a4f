// Package setup builds boards for the rules core: the standard opening layout
// and the human-readable placement rows ("Red General" at "(2, 4)") used by
// fixtures and the API.
package setup

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"xiangqi/internal/xiangqi"
)

// ErrInvalidPlacement is returned for rows that cannot be parsed or placed.
var ErrInvalidPlacement = errors.New("invalid placement")

// Placement is one "<Color> <PieceType>" at "(<row>, <col>)" row.
type Placement struct {
	Piece    string `json:"piece"`
	Position string `json:"position"`
}

// 第 10 行在最上面，和 Board.String() 一致
const initialLayout = `rheakaehr
.........
.c.....c.
s.s.s.s.s
.........
.........
S.S.S.S.S
.C.....C.
.........
RHEAKAEHR`

// NewInitialBoard returns the standard opening position.
func NewInitialBoard() *xiangqi.Board {
	b, err := FromLayout(initialLayout)
	if err != nil {
		panic("setup: bad initial layout: " + err.Error())
	}
	return b
}

// FromLayout parses a 10-line grid, row 10 first, '.' for empty squares.
func FromLayout(layout string) (*xiangqi.Board, error) {
	lines := make([]string, 0, xiangqi.Rows)
	for _, line := range strings.Split(layout, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) != xiangqi.Rows {
		return nil, fmt.Errorf("%w: layout has %d rows, want %d", ErrInvalidPlacement, len(lines), xiangqi.Rows)
	}

	b := xiangqi.NewBoard()
	for i, line := range lines {
		row := xiangqi.Rows - i
		if len(line) != xiangqi.Cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidPlacement, row, len(line), xiangqi.Cols)
		}
		for c, ch := range line {
			if ch == '.' {
				continue
			}
			pt, color, ok := xiangqi.ParsePieceLetter(ch)
			if !ok {
				return nil, fmt.Errorf("%w: unknown piece letter %q", ErrInvalidPlacement, ch)
			}
			if err := b.Place(xiangqi.NewPiece(pt, color, xiangqi.Pos(row, c+1))); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

// ParseColor accepts "Red" or "Black".
func ParseColor(s string) (xiangqi.Color, error) {
	switch s {
	case xiangqi.Red.String():
		return xiangqi.Red, nil
	case xiangqi.Black.String():
		return xiangqi.Black, nil
	}
	return 0, fmt.Errorf("%w: unknown colour %q", ErrInvalidPlacement, s)
}

// ParsePieceType accepts the type names General, Guard, Rook, Horse, Cannon,
// Elephant and Soldier.
func ParsePieceType(s string) (xiangqi.PieceType, error) {
	for _, pt := range xiangqi.PieceTypes {
		if pt.String() == s {
			return pt, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown piece type %q", ErrInvalidPlacement, s)
}

// ParsePosition parses "(row, col)"; the parentheses are optional.
// Range is not checked here, Board.Place does that.
func ParsePosition(s string) (xiangqi.Position, error) {
	s = strings.Trim(strings.TrimSpace(s), "()")
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return xiangqi.Position{}, fmt.Errorf("%w: position %q", ErrInvalidPlacement, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return xiangqi.Position{}, fmt.Errorf("%w: row in %q", ErrInvalidPlacement, s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return xiangqi.Position{}, fmt.Errorf("%w: column in %q", ErrInvalidPlacement, s)
	}
	return xiangqi.Pos(row, col), nil
}

// ParsePiece turns one placement row into a piece.
func ParsePiece(p Placement) (*xiangqi.Piece, error) {
	fields := strings.Fields(p.Piece)
	if len(fields) != 2 {
		return nil, fmt.Errorf("%w: piece %q, want \"<Color> <Type>\"", ErrInvalidPlacement, p.Piece)
	}
	color, err := ParseColor(fields[0])
	if err != nil {
		return nil, err
	}
	pt, err := ParsePieceType(fields[1])
	if err != nil {
		return nil, err
	}
	pos, err := ParsePosition(p.Position)
	if err != nil {
		return nil, err
	}
	return xiangqi.NewPiece(pt, color, pos), nil
}

// FromPlacements builds a board from placement rows. Later rows overwrite
// earlier ones on the same square.
func FromPlacements(rows []Placement) (*xiangqi.Board, error) {
	b := xiangqi.NewBoard()
	for i, row := range rows {
		pc, err := ParsePiece(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if err := b.Place(pc); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	return b, nil
}
