package xiangqi

// IsValidMove 判断 from→to 是否符合该棋子的走法。
//
// from 没有棋子时返回 false。坐标越界返回 ErrInvalidPosition。
// 不检查轮到谁走，也不禁止吃己方棋子，也不管走后本方是否被将军：
// 这些由上层对局逻辑负责。不会修改棋盘。
func IsValidMove(b *Board, from, to Position) (bool, error) {
	if err := checkPosition(from); err != nil {
		return false, err
	}
	if err := checkPosition(to); err != nil {
		return false, err
	}
	if from == to {
		return false, nil
	}
	pc := b.at(from.Row, from.Col)
	if pc == nil {
		return false, nil
	}

	switch pc.Type {
	case General:
		return validGeneralMove(b, pc, from, to), nil
	case Guard:
		return validGuardMove(b, pc, from, to), nil
	case Rook:
		return validRookMove(b, pc, from, to), nil
	case Horse:
		return validHorseMove(b, pc, from, to), nil
	case Cannon:
		return validCannonMove(b, pc, from, to), nil
	case Elephant:
		return validElephantMove(b, pc, from, to), nil
	case Soldier:
		return validSoldierMove(b, pc, from, to), nil
	}
	// 未实现的兵种一律判非法
	return false, nil
}

// CheckWin 对一步已经判定合法的走法，返回 to 上（被吃之前）是否是帅 / 将。
// 调用方负责先调 IsValidMove，之后再执行吃子。
func CheckWin(b *Board, from, to Position) (bool, error) {
	if err := checkPosition(from); err != nil {
		return false, err
	}
	target, err := b.Get(to)
	if err != nil {
		return false, err
	}
	return target != nil && target.Type == General, nil
}
