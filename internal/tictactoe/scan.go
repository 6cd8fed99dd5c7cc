package tictactoe

import "github.com/rocketscienceinc/tictactoe-rooms/internal/entity"

// Strategy selects one of the one-ply heuristics.
type Strategy int

const (
	StrategyScan Strategy = iota
	StrategyPositional
)

func (that Strategy) String() string {
	switch that {
	case StrategyScan:
		return string(entity.SourceScan)
	case StrategyPositional:
		return string(entity.SourcePositional)
	default:
		return "unknown"
	}
}

// Suggest runs the chosen heuristic for the mover derived from mark counts.
func Suggest(board entity.Board, strategy Strategy) entity.Prediction {
	mover := board.ToMove()

	if strategy == StrategyPositional {
		return Positional(board, mover)
	}

	return WinThenBlock(board, mover)
}

// WinThenBlock returns the first winning cell for the mover, else the first cell that
// blocks the opponent, else center, else the first free corner, else the lowest free cell.
func WinThenBlock(board entity.Board, mover entity.Mark) entity.Prediction {
	empty := board.EmptyCells()
	if len(empty) == 0 {
		return entity.NoMove(entity.SourceScan)
	}

	if cell, ok := completingCell(board, empty, mover); ok {
		return scanResult(cell, entity.TagWin)
	}

	if cell, ok := completingCell(board, empty, mover.Opponent()); ok {
		return scanResult(cell, entity.TagBlock)
	}

	if board[entity.Center] == entity.EmptyCell {
		return scanResult(entity.Center, entity.TagCenter)
	}

	for _, corner := range entity.Corners {
		if board[corner] == entity.EmptyCell {
			return scanResult(corner, entity.TagCorner)
		}
	}

	return scanResult(empty[0], entity.TagDefault)
}

func completingCell(board entity.Board, empty []int, mark entity.Mark) (int, bool) {
	for _, cell := range empty {
		next, err := board.Place(cell, mark)
		if err != nil {
			continue
		}

		if next.Winner() == mark {
			return cell, true
		}
	}

	return entity.NoCell, false
}

func scanResult(cell int, tag entity.Tag) entity.Prediction {
	return entity.Prediction{
		Cell:   cell,
		Tag:    tag,
		Source: entity.SourceScan,
	}
}
