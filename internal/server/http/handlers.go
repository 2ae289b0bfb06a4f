package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"xiangqi/internal/server/game"
	"xiangqi/internal/server/ws"
	"xiangqi/internal/setup"
	"xiangqi/internal/xiangqi"
)

const maxBodyBytes = 1 << 20

// Handler 实现 http.Handler，用于 /api/* 路由
type Handler struct {
	games *game.Manager
	hub   *ws.Hub
}

func NewHandler(games *game.Manager, hub *ws.Hub) *Handler {
	return &Handler{games: games, hub: hub}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/api/ws" {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handleWS(w, r)
		return
	}

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	switch r.URL.Path {
	case "/api/new_game":
		h.handleNewGame(w, r)
	case "/api/state":
		h.handleState(w, r)
	case "/api/validate":
		h.handleValidate(w, r)
	case "/api/play":
		h.handlePlay(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	if !decodeOptionalJSON(w, r, &req) {
		return
	}

	var (
		g   game.GameState
		err error
	)
	if len(req.Placements) == 0 {
		g = h.games.NewGame()
	} else {
		g, err = h.games.NewGameFrom(req.Placements, intToColor(req.ToMove))
		if err != nil {
			writeError(w, err)
			return
		}
	}
	log.Printf("game %s created (%d pieces)", g.ID, len(g.Board.Pieces()))
	writeJSON(w, gameToResponse(g))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	state, err := h.games.Get(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, gameToResponse(state))
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	legal, win, err := h.games.Validate(req.GameID, req.From, req.To)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, ValidateResponse{Legal: legal, Win: win})
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	state, res, err := h.games.Play(req.GameID, req.From, req.To)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := PlayResponse{GameResponse: gameToResponse(state), Win: res.Win}
	if res.Captured != nil {
		c := pieceToDTO(res.Captured)
		resp.Captured = &c
	}
	if res.Win {
		log.Printf("game %s won by %s after %d moves", state.ID, res.Mover.Color, state.Moves)
	}
	if h.hub != nil {
		h.hub.Publish(state.ID, resp)
	}
	writeJSON(w, resp)
}

func (h *Handler) handleWS(w http.ResponseWriter, r *http.Request) {
	if h.hub == nil {
		http.NotFound(w, r)
		return
	}
	id := r.URL.Query().Get("game_id")
	state, err := h.games.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	h.hub.ServeWS(w, r, id, gameToResponse(state))
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return false
	}
	return true
}

// decodeOptionalJSON 空 body 当作零值请求
func decodeOptionalJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "bad json", http.StatusBadRequest)
		return false
	}
	return true
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrGameOver),
		errors.Is(err, game.ErrNotYourTurn):
		return http.StatusConflict
	case errors.Is(err, game.ErrNoPiece),
		errors.Is(err, game.ErrFriendlyCapture),
		errors.Is(err, game.ErrIllegalMove),
		errors.Is(err, xiangqi.ErrInvalidPosition),
		errors.Is(err, setup.ErrInvalidPlacement):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
	}
	http.Error(w, err.Error(), status)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}
