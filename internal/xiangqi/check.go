package xiangqi

// FindGeneral 全盘扫描找 c 方的帅（将）所在格。
// 不缓存位置：Place / Remove 随时可能改盘面，每次现算。
func FindGeneral(b *Board, c Color) (Position, bool) {
	for r := 1; r <= Rows; r++ {
		for col := 1; col <= Cols; col++ {
			pc := b.at(r, col)
			if pc != nil && pc.Type == General && pc.Color == c {
				return Pos(r, col), true
			}
		}
	}
	return Position{}, false
}

// wouldFaceGeneral 帅从 from 走到 to 后是否与对方将“照面”。
// from 视为已空出；两端（to 和对方将所在格）不算挡子。
func wouldFaceGeneral(b *Board, mover *Piece, from, to Position) bool {
	opp, ok := FindGeneral(b, mover.Color.Opponent())
	if !ok {
		return false
	}
	if to.Col != opp.Col {
		return false
	}

	lo, hi := to.Row, opp.Row
	if lo > hi {
		lo, hi = hi, lo
	}
	for r := lo + 1; r < hi; r++ {
		if r == from.Row && to.Col == from.Col {
			continue
		}
		if b.occupied(r, to.Col) {
			return false // 中间有子，不算照面
		}
	}
	return true
}

// GeneralsFacing 当前盘面两将是否同列且中间无子
func GeneralsFacing(b *Board) bool {
	red, okR := FindGeneral(b, Red)
	black, okB := FindGeneral(b, Black)
	if !okR || !okB || red.Col != black.Col {
		return false
	}
	return pathClear(b, red, black)
}
