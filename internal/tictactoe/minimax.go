package tictactoe

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
)

const (
	winScore       = 10
	skillPerPly    = 500
	baseDepth      = 2
	confidenceSpan = 2 * winScore
)

// Minimax advises a move for O no matter whose turn it is. Rooms and bots that need
// the real mover call MinimaxFor.
func Minimax(board entity.Board, skillLevel int) entity.Prediction {
	return MinimaxFor(board, skillLevel, entity.MarkO)
}

// MinimaxFor runs a depth-bounded alpha-beta search with maximizer as the maximizing side.
// Depth grows by one ply for every 500 skill points. Among equal scores the lowest cell wins.
func MinimaxFor(board entity.Board, skillLevel int, maximizer entity.Mark) entity.Prediction {
	empty := board.EmptyCells()
	if len(empty) == 0 {
		return entity.NoMove(entity.SourceMinimax)
	}

	depth := SearchDepth(len(empty), skillLevel)
	bestCell, bestScore := empty[0], math.MinInt

	for _, cell := range empty {
		next, err := board.Place(cell, maximizer)
		if err != nil {
			continue
		}

		score := Evaluate(next, depth-1, false, maximizer)
		if score > bestScore {
			bestCell, bestScore = cell, score
		}
	}

	return entity.Prediction{
		Cell:       bestCell,
		Tag:        entity.TagScored,
		Source:     entity.SourceMinimax,
		Confidence: float64(bestScore+winScore) / confidenceSpan,
		Score:      bestScore,
	}
}

func SearchDepth(emptyCells, skillLevel int) int {
	return max(min(emptyCells, skillLevel/skillPerPly+baseDepth), 1)
}

// Evaluate scores a position for maximizer: +10 when it has won, -10 when the opponent
// has, 0 for a draw or when depth runs out.
func Evaluate(board entity.Board, depth int, maximizing bool, maximizer entity.Mark) int {
	return alphaBeta(board, depth, maximizing, maximizer, math.MinInt, math.MaxInt)
}

func alphaBeta(board entity.Board, depth int, maximizing bool, maximizer entity.Mark, alpha, beta int) int {
	switch board.Winner() {
	case maximizer:
		return winScore
	case maximizer.Opponent():
		return -winScore
	}

	if board.IsFull() || depth <= 0 {
		return 0
	}

	if maximizing {
		best := math.MinInt
		for _, cell := range board.EmptyCells() {
			board[cell] = maximizer
			score := alphaBeta(board, depth-1, false, maximizer, alpha, beta)
			board[cell] = entity.EmptyCell

			best = max(best, score)
			alpha = max(alpha, score)
			if beta <= alpha {
				break
			}
		}

		return best
	}

	best := math.MaxInt
	for _, cell := range board.EmptyCells() {
		board[cell] = maximizer.Opponent()
		score := alphaBeta(board, depth-1, true, maximizer, alpha, beta)
		board[cell] = entity.EmptyCell

		best = min(best, score)
		beta = min(beta, score)
		if beta <= alpha {
			break
		}
	}

	return best
}
