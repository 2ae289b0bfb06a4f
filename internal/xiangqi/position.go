package xiangqi

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// 兵的前进方向：红 +1，黑 -1
func forwardDir(c Color) int {
	if c == Red {
		return +1
	}
	return -1
}

// 是否在本方九宫：红 1..3 行，黑 8..10 行，列 4..6
func inPalace(c Color, pos Position) bool {
	if pos.Col < 4 || pos.Col > 6 {
		return false
	}
	if c == Red {
		return pos.Row >= 1 && pos.Row <= 3
	}
	return pos.Row >= Rows-2 && pos.Row <= Rows
}

// 是否仍在本方半场（相不能过河）
func onOwnSide(c Color, pos Position) bool {
	if c == Red {
		return pos.Row >= 1 && pos.Row <= RiverRow
	}
	return pos.Row > RiverRow && pos.Row <= Rows
}

// 兵是否已经过河
func crossedRiver(c Color, pos Position) bool {
	return !onOwnSide(c, pos)
}

// 纯横或纯竖，且至少走一格
func isStraight(from, to Position) bool {
	dr, dc := to.Row-from.Row, to.Col-from.Col
	return (dr == 0) != (dc == 0)
}
