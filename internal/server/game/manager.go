package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"xiangqi/internal/setup"
	"xiangqi/internal/xiangqi"
)

var (
	ErrGameNotFound    = errors.New("game not found")
	ErrGameOver        = errors.New("game is over")
	ErrNoPiece         = errors.New("no piece at source square")
	ErrNotYourTurn     = errors.New("not your turn")
	ErrFriendlyCapture = errors.New("cannot capture a friendly piece")
	ErrIllegalMove     = errors.New("illegal move")
)

// Manager 内存里的对局表。每个对局的读写都在 mu 下完成，
// 规则校验期间棋盘不会被别的请求改动。
type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameState)}
}

// NewGame 标准开局，红先
func (m *Manager) NewGame() GameState {
	return m.add(setup.NewInitialBoard(), xiangqi.Red)
}

// NewGameFrom 按摆子表开一局残局
func (m *Manager) NewGameFrom(rows []setup.Placement, toMove xiangqi.Color) (GameState, error) {
	b, err := setup.FromPlacements(rows)
	if err != nil {
		return GameState{}, err
	}
	return m.add(b, toMove), nil
}

func (m *Manager) add(b *xiangqi.Board, toMove xiangqi.Color) GameState {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	g := &GameState{
		ID:         uuid.NewString(),
		Board:      b,
		SideToMove: toMove,
		Status:     StatusOngoing,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	m.games[g.ID] = g
	return snapshot(g)
}

// Get 返回对局快照，Board 是拷贝，调用方随便改不影响对局
func (m *Manager) Get(id string) (GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return GameState{}, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return snapshot(g), nil
}

// Validate 只判断，不落子
func (m *Manager) Validate(id string, from, to xiangqi.Position) (legal, win bool, err error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return false, false, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	legal, err = xiangqi.IsValidMove(g.Board, from, to)
	if err != nil || !legal {
		return false, false, err
	}
	win, err = xiangqi.CheckWin(g.Board, from, to)
	return legal, win, err
}

// Play 校验并执行一步棋：轮次、吃己方子在这一层拦截，走法交给规则引擎。
// 吃掉对方帅（将）直接结束对局。
func (m *Manager) Play(id string, from, to xiangqi.Position) (GameState, MoveResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.games[id]
	if !ok {
		return GameState{}, MoveResult{}, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	if g.Status != StatusOngoing {
		return GameState{}, MoveResult{}, ErrGameOver
	}

	mover, err := g.Board.Get(from)
	if err != nil {
		return GameState{}, MoveResult{}, err
	}
	if mover == nil {
		return GameState{}, MoveResult{}, ErrNoPiece
	}
	if mover.Color != g.SideToMove {
		return GameState{}, MoveResult{}, fmt.Errorf("%w: %s to move", ErrNotYourTurn, g.SideToMove)
	}
	target, err := g.Board.Get(to)
	if err != nil {
		return GameState{}, MoveResult{}, err
	}
	if target != nil && target.Color == mover.Color {
		return GameState{}, MoveResult{}, ErrFriendlyCapture
	}

	legal, err := xiangqi.IsValidMove(g.Board, from, to)
	if err != nil {
		return GameState{}, MoveResult{}, err
	}
	if !legal {
		return GameState{}, MoveResult{}, fmt.Errorf("%w: %s %v -> %v", ErrIllegalMove, mover, from, to)
	}
	win, err := xiangqi.CheckWin(g.Board, from, to)
	if err != nil {
		return GameState{}, MoveResult{}, err
	}

	// 先吃子再挪子
	if err := g.Board.Remove(to); err != nil {
		return GameState{}, MoveResult{}, err
	}
	if err := g.Board.Remove(from); err != nil {
		return GameState{}, MoveResult{}, err
	}
	mover.Position = to
	if err := g.Board.Place(mover); err != nil {
		return GameState{}, MoveResult{}, err
	}

	res := MoveResult{From: from, To: to, Mover: *mover, Win: win}
	if target != nil {
		captured := *target
		res.Captured = &captured
	}

	g.Moves++
	g.UpdatedAt = time.Now()
	if win {
		winner := mover.Color
		g.Status = StatusWon
		g.Winner = &winner
	} else {
		g.SideToMove = g.SideToMove.Opponent()
	}
	return snapshot(g), res, nil
}

// snapshot 深拷贝棋盘，棋子也复制一份
func snapshot(g *GameState) GameState {
	out := *g
	b := xiangqi.NewBoard()
	for _, pc := range g.Board.Pieces() {
		cp := *pc
		_ = b.Place(&cp)
	}
	out.Board = b
	if g.Winner != nil {
		w := *g.Winner
		out.Winner = &w
	}
	return out
}
