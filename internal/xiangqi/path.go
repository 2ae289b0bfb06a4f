package xiangqi

// countBetween 沿 from→to 的直线数中间的棋子，不含两端。
// from、to 必须在同一行、同一列或同一斜线上。
func countBetween(b *Board, from, to Position) int {
	dr := sign(to.Row - from.Row)
	dc := sign(to.Col - from.Col)

	n := 0
	r, c := from.Row+dr, from.Col+dc
	for r != to.Row || c != to.Col {
		if b.occupied(r, c) {
			n++
		}
		r += dr
		c += dc
	}
	return n
}

// 车 / 炮平移：中间必须全空
func pathClear(b *Board, from, to Position) bool {
	return countBetween(b, from, to) == 0
}

// 炮吃子：中间恰好一个炮架
func hasOneScreen(b *Board, from, to Position) bool {
	return countBetween(b, from, to) == 1
}
