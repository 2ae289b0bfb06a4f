package xiangqi

type Color int8

const (
	Red   Color = 0 // 从第 1 行往第 10 行走
	Black Color = 1 // 从第 10 行往第 1 行走
)

func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Black:
		return "Black"
	default:
		return "Unknown"
	}
}

// Opponent 返回对方颜色
func (c Color) Opponent() Color {
	if c == Red {
		return Black
	}
	return Red
}

type PieceType int8

const (
	General  PieceType = iota // 帅 / 将
	Guard                     // 仕 / 士
	Rook                      // 车
	Horse                     // 马
	Cannon                    // 炮
	Elephant                  // 相 / 象
	Soldier                   // 兵 / 卒
)

// PieceTypes 按声明顺序列出全部兵种
var PieceTypes = [...]PieceType{General, Guard, Rook, Horse, Cannon, Elephant, Soldier}

var pieceTypeNames = [...]string{
	General:  "General",
	Guard:    "Guard",
	Rook:     "Rook",
	Horse:    "Horse",
	Cannon:   "Cannon",
	Elephant: "Elephant",
	Soldier:  "Soldier",
}

func (pt PieceType) String() string {
	if pt < 0 || int(pt) >= len(pieceTypeNames) {
		return "Unknown"
	}
	return pieceTypeNames[pt]
}

// Position 是 1 起始的 (行, 列)，行 1..10，列 1..9。构造时不做校验。
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func Pos(row, col int) Position { return Position{Row: row, Col: col} }

// Piece 的 Type / Color 终身不变，Position 随所在格子变化。
type Piece struct {
	Type     PieceType
	Color    Color
	Position Position
}

func NewPiece(pt PieceType, c Color, pos Position) *Piece {
	return &Piece{Type: pt, Color: c, Position: pos}
}

func (p *Piece) String() string {
	return p.Color.String() + " " + p.Type.String()
}
