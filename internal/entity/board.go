package entity

import (
	"errors"
	"fmt"
	"strings"
)

const Size = 3

// Cell - state of a single square.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

func (that Cell) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Mark - wire form of a cell: "X", "O" or "" for an empty square.
func (that Cell) Mark() string {
	switch that {
	case X:
		return PlayerX
	case O:
		return PlayerO
	default:
		return EmptyCell
	}
}

// Side - one of the two players.
type Side uint8

const (
	SideX Side = iota
	SideO
)

func (that Side) Cell() Cell {
	if that == SideO {
		return O
	}
	return X
}

func (that Side) Opponent() Side {
	if that == SideO {
		return SideX
	}
	return SideO
}

func (that Side) String() string {
	return that.Cell().Mark()
}

// Move - a (row, col) coordinate on the board.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

var ErrInvalidBoard = errors.New("invalid board")

// lines - the 8 winning lines: 3 rows, 3 columns and 2 diagonals.
var lines = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board - a fixed 3x3 grid. It is a value type: assigning a Board copies the grid.
type Board [Size][Size]Cell

func inBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// IsWin - reports whether side owns all three cells of any line.
func (that *Board) IsWin(side Side) bool {
	mark := side.Cell()
	for _, line := range lines {
		if that[line[0].Row][line[0].Col] == mark &&
			that[line[1].Row][line[1].Col] == mark &&
			that[line[2].Row][line[2].Col] == mark {
			return true
		}
	}
	return false
}

// IsDraw - reports whether every cell is taken. It does not check for a winner,
// callers must test IsWin for both sides first.
func (that *Board) IsDraw() bool {
	for row := range Size {
		for col := range Size {
			if that[row][col] == Empty {
				return false
			}
		}
	}
	return true
}

func (that *Board) IsEmpty(row, col int) bool {
	return inBounds(row, col) && that[row][col] == Empty
}

// Place - puts side's mark on a free cell. It returns false and leaves the board
// untouched when the cell is taken or out of range.
func (that *Board) Place(row, col int, side Side) bool {
	if !that.IsEmpty(row, col) {
		return false
	}
	that[row][col] = side.Cell()
	return true
}

func (that *Board) Clear(row, col int) {
	if inBounds(row, col) {
		that[row][col] = Empty
	}
}

// At - read accessor used for rendering. Out-of-range coordinates read as Empty.
func (that *Board) At(row, col int) Cell {
	if !inBounds(row, col) {
		return Empty
	}
	return that[row][col]
}

// EmptyCells - free cells in row-major order.
func (that *Board) EmptyCells() []Move {
	moves := make([]Move, 0, Size*Size)
	for row := range Size {
		for col := range Size {
			if that[row][col] == Empty {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	return moves
}

// Count - number of cells holding side's mark.
func (that *Board) Count(side Side) int {
	mark := side.Cell()
	n := 0
	for row := range Size {
		for col := range Size {
			if that[row][col] == mark {
				n++
			}
		}
	}
	return n
}

// Code - compact 9-character row-major form, "." for empty cells.
func (that *Board) Code() string {
	var sb strings.Builder
	sb.Grow(Size * Size)
	for row := range Size {
		for col := range Size {
			if that[row][col] == Empty {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(that[row][col].String())
		}
	}
	return sb.String()
}

// Marks - the board as rows of wire marks.
func (that *Board) Marks() [][]string {
	rows := make([][]string, Size)
	for row := range Size {
		rows[row] = make([]string, Size)
		for col := range Size {
			rows[row][col] = that[row][col].Mark()
		}
	}
	return rows
}

func (that *Board) String() string {
	var sb strings.Builder
	for row := range Size {
		cells := make([]string, Size)
		for col := range Size {
			cells[col] = that[row][col].String()
		}
		sb.WriteString(strings.Join(cells, "|"))
		sb.WriteString("\n-----\n")
	}
	return sb.String()
}

// ParseBoard - builds a Board from rows of wire marks.
func ParseBoard(rows [][]string) (Board, error) {
	var board Board

	if len(rows) != Size {
		return board, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidBoard, Size, len(rows))
	}

	for row, cells := range rows {
		if len(cells) != Size {
			return board, fmt.Errorf("%w: row %d has %d cells", ErrInvalidBoard, row, len(cells))
		}

		for col, mark := range cells {
			switch strings.ToUpper(strings.TrimSpace(mark)) {
			case PlayerX:
				board[row][col] = X
			case PlayerO:
				board[row][col] = O
			case EmptyCell:
				board[row][col] = Empty
			default:
				return board, fmt.Errorf("%w: unknown mark %q at (%d, %d)", ErrInvalidBoard, mark, row, col)
			}
		}
	}

	return board, nil
}
