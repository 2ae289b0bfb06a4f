package game

import (
	"time"

	"xiangqi/internal/xiangqi"
)

type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusWon     Status = "won"
)

type GameState struct {
	ID         string
	Board      *xiangqi.Board
	SideToMove xiangqi.Color
	Status     Status
	Winner     *xiangqi.Color
	Moves      int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// MoveResult 描述一步已经落下的棋
type MoveResult struct {
	From     xiangqi.Position
	To       xiangqi.Position
	Mover    xiangqi.Piece
	Captured *xiangqi.Piece
	Win      bool
}
