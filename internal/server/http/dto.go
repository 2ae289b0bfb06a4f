package httpserver

import (
	"xiangqi/internal/server/game"
	"xiangqi/internal/setup"
	"xiangqi/internal/xiangqi"
)

// NewGameRequest 不带摆子表时是标准开局
type NewGameRequest struct {
	Placements []setup.Placement `json:"placements,omitempty"`
	ToMove     int               `json:"to_move"` // 0=红, 1=黑
}

type StateRequest struct {
	GameID string `json:"game_id"`
}

// MoveRequest 用于 /api/validate 和 /api/play
type MoveRequest struct {
	GameID string           `json:"game_id"`
	From   xiangqi.Position `json:"from"`
	To     xiangqi.Position `json:"to"`
}

type PieceDTO struct {
	Type     string           `json:"type"`
	Color    string           `json:"color"`
	Position xiangqi.Position `json:"position"`
}

type GameResponse struct {
	GameID string     `json:"game_id"`
	Layout string     `json:"layout"` // Board.String()，第 10 行在前
	Pieces []PieceDTO `json:"pieces"`
	ToMove int        `json:"to_move"`
	Status string     `json:"status"` // "ongoing" / "won"
	Winner *int       `json:"winner,omitempty"`
	Moves  int        `json:"moves"`
}

type ValidateResponse struct {
	Legal bool `json:"legal"`
	Win   bool `json:"win"`
}

type PlayResponse struct {
	GameResponse
	Captured *PieceDTO `json:"captured,omitempty"`
	Win      bool      `json:"win"`
}

func colorToInt(c xiangqi.Color) int {
	if c == xiangqi.Black {
		return 1
	}
	return 0
}

func intToColor(v int) xiangqi.Color {
	if v == 1 {
		return xiangqi.Black
	}
	return xiangqi.Red
}

func pieceToDTO(p *xiangqi.Piece) PieceDTO {
	return PieceDTO{Type: p.Type.String(), Color: p.Color.String(), Position: p.Position}
}

func gameToResponse(g game.GameState) GameResponse {
	pieces := g.Board.Pieces()
	resp := GameResponse{
		GameID: g.ID,
		Layout: g.Board.String(),
		Pieces: make([]PieceDTO, len(pieces)),
		ToMove: colorToInt(g.SideToMove),
		Status: string(g.Status),
		Moves:  g.Moves,
	}
	for i, p := range pieces {
		resp.Pieces[i] = pieceToDTO(p)
	}
	if g.Winner != nil {
		w := colorToInt(*g.Winner)
		resp.Winner = &w
	}
	return resp
}
