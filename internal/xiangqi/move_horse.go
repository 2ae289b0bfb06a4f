package xiangqi

// 马：日字，长边方向紧挨着的一格（马腿）有子则蹩马腿
func validHorseMove(b *Board, pc *Piece, from, to Position) bool {
	dr, dc := to.Row-from.Row, to.Col-from.Col
	switch {
	case abs(dr) == 2 && abs(dc) == 1:
		return !b.occupied(from.Row+sign(dr), from.Col)
	case abs(dr) == 1 && abs(dc) == 2:
		return !b.occupied(from.Row, from.Col+sign(dc))
	}
	return false
}
