package xiangqi

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPosition 坐标越界（行 1..10，列 1..9 之外）
	ErrInvalidPosition = errors.New("invalid position")
	// ErrNilPiece Place 传入了 nil
	ErrNilPiece = errors.New("nil piece")
)

func checkPosition(pos Position) error {
	if !onBoard(pos.Row, pos.Col) {
		return fmt.Errorf("%w: (%d, %d)", ErrInvalidPosition, pos.Row, pos.Col)
	}
	return nil
}
