package xiangqi

import "sync"

var (
	zobristOnce sync.Once

	zobristPieces [2][len(PieceTypes)][NumSquares]uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for side := 0; side < 2; side++ {
			for pt := range PieceTypes {
				for sq := 0; sq < NumSquares; sq++ {
					zobristPieces[side][pt][sq] = next()
				}
			}
		}
	})
}

func pieceHashKey(pc *Piece, sq int) uint64 {
	if pc == nil || sq < 0 || sq >= NumSquares {
		return 0
	}
	if pc.Color != Red && pc.Color != Black {
		return 0
	}
	pt := int(pc.Type)
	if pt < 0 || pt >= len(PieceTypes) {
		return 0
	}
	return zobristPieces[pc.Color][pt][sq]
}

// Hash 盘面的 Zobrist 指纹，只看格子占用，不含轮到谁走。
// 同样的摆子得到同样的值，用来确认校验前后棋盘没被改动。
func (b *Board) Hash() uint64 {
	initZobrist()

	var h uint64
	for sq, pc := range b.squares {
		h ^= pieceHashKey(pc, sq)
	}
	return h
}
