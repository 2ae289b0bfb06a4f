package xiangqi

// 兵：每次一格。未过河只能前进；过河后可前进或横走，永远不能后退。
func validSoldierMove(b *Board, pc *Piece, from, to Position) bool {
	dr, dc := to.Row-from.Row, to.Col-from.Col
	if abs(dr)+abs(dc) != 1 {
		return false
	}

	fwd := forwardDir(pc.Color)
	if !crossedRiver(pc.Color, from) {
		return dr == fwd && dc == 0
	}
	return dr == fwd || dr == 0
}
