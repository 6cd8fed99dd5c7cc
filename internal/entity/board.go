package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
)

type Mark string

const (
	MarkX Mark = "X"
	MarkO Mark = "O"

	EmptyCell Mark = ""
)

const (
	BoardSize = 9
	NoCell    = -1
	Center    = 4
)

var (
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrCellOccupied = errors.New("cell is already occupied")

	WinCombos = [][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}

	Corners = [4]int{0, 2, 6, 8}
)

// Opponent returns the other mark. EmptyCell has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return EmptyCell
	}
}

func (that Mark) IsValid() bool {
	return that == MarkX || that == MarkO
}

// Board is a 3x3 grid stored row by row. It is a value: queries never mutate it
// and Place returns a modified copy.
type Board [BoardSize]Mark

// Winner returns the mark that completes any of the eight lines, or EmptyCell.
func (that Board) Winner() Mark {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

func (that Board) IsTerminal() bool {
	return that.Winner() != EmptyCell || that.IsFull()
}

// EmptyCells lists free cells in ascending order. Every search iterates in this order.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that Board) Count(mark Mark) int {
	count := 0
	for _, cell := range that {
		if cell == mark {
			count++
		}
	}

	return count
}

// ToMove derives the mover from mark counts: X while X has not placed more marks than O.
func (that Board) ToMove() Mark {
	if that.Count(MarkX) <= that.Count(MarkO) {
		return MarkX
	}

	return MarkO
}

// Place returns a copy of the board with mark set at cell. Turn order is not checked here.
func (that Board) Place(cell int, mark Mark) (Board, error) {
	if cell < 0 || cell >= BoardSize {
		return that, fmt.Errorf("%w: %w: cell %d", apperror.ErrInvalidMove, ErrInvalidCell, cell)
	}

	if that[cell] != EmptyCell {
		return that, fmt.Errorf("%w: %w: cell %d", apperror.ErrInvalidMove, ErrCellOccupied, cell)
	}

	that[cell] = mark

	return that, nil
}

// String renders the board as nine characters with '-' for empty cells, e.g. "XO-------".
func (that Board) String() string {
	var sb strings.Builder
	for _, cell := range that {
		if cell == EmptyCell {
			sb.WriteByte('-')
			continue
		}
		sb.WriteString(string(cell))
	}

	return sb.String()
}

func ParseBoard(raw string) (Board, error) {
	var board Board
	if len(raw) != BoardSize {
		return board, fmt.Errorf("%w: board must have %d cells, got %d", ErrInvalidCell, BoardSize, len(raw))
	}

	for i, ch := range raw {
		switch ch {
		case '-', ' ', '_':
			board[i] = EmptyCell
		case 'X', 'x':
			board[i] = MarkX
		case 'O', 'o':
			board[i] = MarkO
		default:
			return board, fmt.Errorf("%w: unexpected symbol %q at %d", ErrInvalidCell, ch, i)
		}
	}

	return board, nil
}
