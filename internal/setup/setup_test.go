package setup

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"xiangqi/internal/xiangqi"
)

func TestNewInitialBoard(t *testing.T) {
	b := NewInitialBoard()
	if n := len(b.Pieces()); n != 32 {
		t.Fatalf("len(Pieces()) = %d, want 32", n)
	}

	tests := []struct {
		pos   xiangqi.Position
		want  xiangqi.PieceType
		color xiangqi.Color
	}{
		{xiangqi.Pos(1, 1), xiangqi.Rook, xiangqi.Red},
		{xiangqi.Pos(1, 5), xiangqi.General, xiangqi.Red},
		{xiangqi.Pos(1, 4), xiangqi.Guard, xiangqi.Red},
		{xiangqi.Pos(3, 2), xiangqi.Cannon, xiangqi.Red},
		{xiangqi.Pos(4, 9), xiangqi.Soldier, xiangqi.Red},
		{xiangqi.Pos(10, 5), xiangqi.General, xiangqi.Black},
		{xiangqi.Pos(10, 3), xiangqi.Elephant, xiangqi.Black},
		{xiangqi.Pos(10, 8), xiangqi.Horse, xiangqi.Black},
		{xiangqi.Pos(8, 8), xiangqi.Cannon, xiangqi.Black},
		{xiangqi.Pos(7, 1), xiangqi.Soldier, xiangqi.Black},
	}
	for _, tt := range tests {
		pc, err := b.Get(tt.pos)
		if err != nil {
			t.Fatalf("Get(%v) error: %v", tt.pos, err)
		}
		if pc == nil || pc.Type != tt.want || pc.Color != tt.color {
			t.Errorf("Get(%v) = %v, want %v %v", tt.pos, pc, tt.color, tt.want)
		}
		if pc != nil && pc.Position != tt.pos {
			t.Errorf("piece at %v reports Position %v", tt.pos, pc.Position)
		}
	}

	if xiangqi.GeneralsFacing(b) {
		t.Errorf("GeneralsFacing(initial) = true, want false")
	}
}

func TestFromLayoutRoundTripsBoardString(t *testing.T) {
	b := NewInitialBoard()
	again, err := FromLayout(b.String())
	if err != nil {
		t.Fatalf("FromLayout error: %v", err)
	}
	if diff := cmp.Diff(b.String(), again.String()); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestFromLayoutErrors(t *testing.T) {
	tests := []struct {
		name   string
		layout string
	}{
		{"too few rows", "rheakaehr\n........."},
		{"short row", initialLayout[:len(initialLayout)-1]},
		{"unknown letter", "x" + initialLayout[1:]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromLayout(tt.layout); !errors.Is(err, ErrInvalidPlacement) {
				t.Errorf("FromLayout error = %v, want ErrInvalidPlacement", err)
			}
		})
	}
}

func TestParsePiece(t *testing.T) {
	got, err := ParsePiece(Placement{Piece: "Red General", Position: "(2, 4)"})
	if err != nil {
		t.Fatalf("ParsePiece error: %v", err)
	}
	want := xiangqi.NewPiece(xiangqi.General, xiangqi.Red, xiangqi.Pos(2, 4))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParsePiece mismatch (-want +got):\n%s", diff)
	}

	bad := []Placement{
		{Piece: "Red", Position: "(2, 4)"},
		{Piece: "Green General", Position: "(2, 4)"},
		{Piece: "Red Queen", Position: "(2, 4)"},
		{Piece: "Black Horse", Position: "(2 4)"},
		{Piece: "Black Horse", Position: "(a, 4)"},
		{Piece: "Black Horse", Position: "(2, b)"},
	}
	for _, p := range bad {
		if _, err := ParsePiece(p); !errors.Is(err, ErrInvalidPlacement) {
			t.Errorf("ParsePiece(%+v) error = %v, want ErrInvalidPlacement", p, err)
		}
	}
}

func TestFromPlacementsOutOfRange(t *testing.T) {
	_, err := FromPlacements([]Placement{{Piece: "Red Rook", Position: "(11, 1)"}})
	if !errors.Is(err, xiangqi.ErrInvalidPosition) {
		t.Fatalf("FromPlacements error = %v, want ErrInvalidPosition", err)
	}
}

// 按原验收用例的写法：先摆子，再走一步，判定是否合法以及是否直接获胜
func TestScenarios(t *testing.T) {
	tests := []struct {
		name     string
		rows     []Placement
		from, to xiangqi.Position
		legal    bool
		win      bool
	}{
		{
			name:  "red general steps inside palace",
			rows:  []Placement{{"Red General", "(1, 5)"}},
			from:  xiangqi.Pos(1, 5), to: xiangqi.Pos(2, 5),
			legal: true,
		},
		{
			name: "red general leaves palace",
			rows: []Placement{{"Red General", "(3, 5)"}},
			from: xiangqi.Pos(3, 5), to: xiangqi.Pos(4, 5),
		},
		{
			name:  "rook captures along a clear rank",
			rows:  []Placement{{"Red Rook", "(1, 1)"}, {"Black Soldier", "(1, 5)"}},
			from:  xiangqi.Pos(1, 1), to: xiangqi.Pos(1, 5),
			legal: true,
		},
		{
			name: "rook blocked",
			rows: []Placement{{"Red Rook", "(1, 1)"}, {"Black Horse", "(1, 3)"}, {"Black Soldier", "(1, 5)"}},
			from: xiangqi.Pos(1, 1), to: xiangqi.Pos(1, 5),
		},
		{
			name:  "cannon captures general over a screen",
			rows:  []Placement{{"Red Cannon", "(1, 1)"}, {"Red Soldier", "(1, 3)"}, {"Black General", "(1, 5)"}},
			from:  xiangqi.Pos(1, 1), to: xiangqi.Pos(1, 5),
			legal: true, win: true,
		},
		{
			name: "generals face each other",
			rows: []Placement{{"Red General", "(1, 5)"}, {"Black General", "(10, 5)"}},
			from: xiangqi.Pos(1, 5), to: xiangqi.Pos(2, 5),
		},
		{
			name:  "horse captures a guard, game continues",
			rows:  []Placement{{"Red Horse", "(6, 4)"}, {"Black Guard", "(8, 5)"}, {"Black General", "(10, 5)"}},
			from:  xiangqi.Pos(6, 4), to: xiangqi.Pos(8, 5),
			legal: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := FromPlacements(tt.rows)
			if err != nil {
				t.Fatalf("FromPlacements error: %v", err)
			}
			legal, err := xiangqi.IsValidMove(b, tt.from, tt.to)
			if err != nil {
				t.Fatalf("IsValidMove error: %v", err)
			}
			if legal != tt.legal {
				t.Fatalf("IsValidMove = %v, want %v", legal, tt.legal)
			}
			if !legal {
				return
			}
			win, err := xiangqi.CheckWin(b, tt.from, tt.to)
			if err != nil {
				t.Fatalf("CheckWin error: %v", err)
			}
			if win != tt.win {
				t.Errorf("CheckWin = %v, want %v", win, tt.win)
			}
		})
	}
}
