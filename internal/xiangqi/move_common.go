package xiangqi

// 帅：九宫内上下左右一格，且不能与对方将照面
func validGeneralMove(b *Board, pc *Piece, from, to Position) bool {
	if abs(to.Row-from.Row)+abs(to.Col-from.Col) != 1 {
		return false
	}
	if !inPalace(pc.Color, to) {
		return false
	}
	return !wouldFaceGeneral(b, pc, from, to)
}

// 仕：九宫内斜走一格
func validGuardMove(b *Board, pc *Piece, from, to Position) bool {
	if abs(to.Row-from.Row) != 1 || abs(to.Col-from.Col) != 1 {
		return false
	}
	return inPalace(pc.Color, to)
}

// 车：横竖随便走，中间不能有子
func validRookMove(b *Board, pc *Piece, from, to Position) bool {
	if !isStraight(from, to) {
		return false
	}
	return pathClear(b, from, to)
}

// 炮：不吃子同车；吃子必须隔一个炮架
func validCannonMove(b *Board, pc *Piece, from, to Position) bool {
	if !isStraight(from, to) {
		return false
	}
	if !b.occupied(to.Row, to.Col) {
		return pathClear(b, from, to)
	}
	return hasOneScreen(b, from, to)
}

// 相：田字，塞象眼不能走，不过河
func validElephantMove(b *Board, pc *Piece, from, to Position) bool {
	dr, dc := to.Row-from.Row, to.Col-from.Col
	if abs(dr) != 2 || abs(dc) != 2 {
		return false
	}
	if !onOwnSide(pc.Color, to) {
		return false
	}
	return !b.occupied(from.Row+dr/2, from.Col+dc/2)
}
