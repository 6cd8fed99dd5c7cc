package tictactoe

import "github.com/rocketscienceinc/tictactoe-rooms/internal/entity"

const (
	supportPoints   = 2
	centerBonus     = 3
	cornerBonus     = 2
	strategicMargin = 5
)

var (
	mainDiagonal = [3]int{0, 4, 8}
	antiDiagonal = [3]int{2, 4, 6}
)

// Positional scores every free cell by how many of the mover's marks share its row,
// column and diagonals, plus a bonus for center and corners. The first best cell wins.
func Positional(board entity.Board, mover entity.Mark) entity.Prediction {
	empty := board.EmptyCells()
	if len(empty) == 0 {
		return entity.NoMove(entity.SourcePositional)
	}
	bestCell, bestScore := entity.NoCell, -1

	for _, cell := range empty {
		score := protectionScore(board, cell, mover)
		if score > bestScore {
			bestCell, bestScore = cell, score
		}
	}

	tag := entity.TagDefault
	if bestScore > strategicMargin {
		tag = entity.TagStrategic
	}

	return entity.Prediction{
		Cell:   bestCell,
		Tag:    tag,
		Source: entity.SourcePositional,
		Score:  bestScore,
	}
}

func protectionScore(board entity.Board, cell int, mover entity.Mark) int {
	row, col := cell/3, cell%3
	score := 0

	for i := range board {
		if i == cell || board[i] != mover {
			continue
		}

		if i/3 == row {
			score += supportPoints
		}

		if i%3 == col {
			score += supportPoints
		}
	}

	for _, diagonal := range [][3]int{mainDiagonal, antiDiagonal} {
		if !onLine(diagonal, cell) {
			continue
		}

		for _, i := range diagonal {
			if i != cell && board[i] == mover {
				score += supportPoints
			}
		}
	}

	switch {
	case cell == entity.Center:
		score += centerBonus
	case isCorner(cell):
		score += cornerBonus
	}

	return score
}

func onLine(line [3]int, cell int) bool {
	return line[0] == cell || line[1] == cell || line[2] == cell
}

func isCorner(cell int) bool {
	for _, corner := range entity.Corners {
		if corner == cell {
			return true
		}
	}

	return false
}
