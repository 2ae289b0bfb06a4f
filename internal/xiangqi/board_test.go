package xiangqi

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBoardPlaceGetRemove(t *testing.T) {
	b := NewBoard()
	rook := pc(Red, Rook, 1, 1)
	if err := b.Place(rook); err != nil {
		t.Fatalf("Place error: %v", err)
	}

	got, err := b.Get(Pos(1, 1))
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got != rook {
		t.Fatalf("Get(1,1) = %v, want %v", got, rook)
	}

	empty, err := b.Get(Pos(5, 5))
	if err != nil || empty != nil {
		t.Fatalf("Get(5,5) = %v, %v; want nil, nil", empty, err)
	}

	if err := b.Remove(Pos(1, 1)); err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if got, _ := b.Get(Pos(1, 1)); got != nil {
		t.Fatalf("Get after Remove = %v, want nil", got)
	}
	// 空位再删一次也没事
	if err := b.Remove(Pos(1, 1)); err != nil {
		t.Fatalf("Remove on empty square error: %v", err)
	}
}

func TestBoardPlaceOverwrites(t *testing.T) {
	b := boardWith(t, pc(Red, Rook, 3, 3))
	horse := pc(Black, Horse, 3, 3)
	if err := b.Place(horse); err != nil {
		t.Fatalf("Place error: %v", err)
	}
	got, _ := b.Get(Pos(3, 3))
	if got != horse {
		t.Fatalf("Get(3,3) = %v, want %v", got, horse)
	}
	if n := len(b.Pieces()); n != 1 {
		t.Fatalf("len(Pieces()) = %d, want 1", n)
	}
}

func TestBoardInvalidPosition(t *testing.T) {
	bad := []Position{{0, 1}, {11, 1}, {1, 0}, {1, 10}, {-3, -3}}
	b := NewBoard()
	for _, pos := range bad {
		if _, err := b.Get(pos); !errors.Is(err, ErrInvalidPosition) {
			t.Errorf("Get(%v) error = %v, want ErrInvalidPosition", pos, err)
		}
		if err := b.Remove(pos); !errors.Is(err, ErrInvalidPosition) {
			t.Errorf("Remove(%v) error = %v, want ErrInvalidPosition", pos, err)
		}
		if err := b.Place(NewPiece(Rook, Red, pos)); !errors.Is(err, ErrInvalidPosition) {
			t.Errorf("Place(%v) error = %v, want ErrInvalidPosition", pos, err)
		}
	}
	if err := b.Place(nil); !errors.Is(err, ErrNilPiece) {
		t.Errorf("Place(nil) error = %v, want ErrNilPiece", err)
	}
}

func TestBoardPiecesAndString(t *testing.T) {
	b := boardWith(t,
		pc(Black, General, 10, 5),
		pc(Red, General, 1, 5),
		pc(Red, Cannon, 3, 2),
	)

	var got []string
	for _, p := range b.Pieces() {
		got = append(got, p.String())
	}
	want := []string{"Red General", "Red Cannon", "Black General"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Pieces() mismatch (-want +got):\n%s", diff)
	}

	wantBoard := "....k....\n" +
		".........\n" +
		".........\n" +
		".........\n" +
		".........\n" +
		".........\n" +
		".........\n" +
		".C.......\n" +
		".........\n" +
		"....K...."
	if diff := cmp.Diff(wantBoard, b.String()); diff != "" {
		t.Errorf("String() mismatch (-want +got):\n%s", diff)
	}
}
