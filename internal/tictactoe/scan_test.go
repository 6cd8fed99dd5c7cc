package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
)

const (
	X = entity.MarkX
	O = entity.MarkO
	E = entity.EmptyCell
)

func TestWinThenBlock(t *testing.T) {
	t.Run("Completes own line first", func(t *testing.T) {
		// Given: X holds two cells of the top row
		board := entity.Board{X, X, E, E, E, E, E, E, E}

		// When: scanning for X
		prediction := WinThenBlock(board, X)

		// Then: cell 2 wins
		assert.Equal(t, 2, prediction.Cell)
		assert.Equal(t, entity.TagWin, prediction.Tag)
		assert.Equal(t, entity.SourceScan, prediction.Source)
	})

	t.Run("Blocks the opponent when it cannot win", func(t *testing.T) {
		// Given: X threatens the top row and O has no line
		board := entity.Board{X, X, E, O, E, E, E, E, E}

		// When: scanning for O
		prediction := WinThenBlock(board, O)

		// Then: O occupies the cell X would win on
		assert.Equal(t, 2, prediction.Cell)
		assert.Equal(t, entity.TagBlock, prediction.Tag)
	})

	t.Run("Prefers center on a quiet board", func(t *testing.T) {
		prediction := WinThenBlock(entity.Board{}, X)

		assert.Equal(t, entity.Center, prediction.Cell)
		assert.Equal(t, entity.TagCenter, prediction.Tag)
	})

	t.Run("Takes the first free corner when center is gone", func(t *testing.T) {
		// Given: only the center is occupied
		board := entity.Board{E, E, E, E, X, E, E, E, E}

		// When: scanning for O
		prediction := WinThenBlock(board, O)

		// Then: corner 0 is chosen
		assert.Equal(t, 0, prediction.Cell)
		assert.Equal(t, entity.TagCorner, prediction.Tag)
	})

	t.Run("Returns no move on a full board", func(t *testing.T) {
		board := entity.Board{X, O, X, X, O, O, O, X, X}

		prediction := WinThenBlock(board, X)

		assert.Equal(t, entity.NoCell, prediction.Cell)
		assert.False(t, prediction.HasMove())
	})
}

func TestSuggest_DerivesMoverFromCounts(t *testing.T) {
	// Given: X has one more mark, so O is to move and X threatens cell 2
	board := entity.Board{X, X, E, O, E, E, E, E, E}

	// When: suggesting with the scan strategy
	prediction := Suggest(board, StrategyScan)

	// Then: the suggestion blocks for O
	assert.Equal(t, 2, prediction.Cell)
	assert.Equal(t, entity.TagBlock, prediction.Tag)
}

func TestPositional(t *testing.T) {
	t.Run("Empty board picks center with default tag", func(t *testing.T) {
		// When: scoring an empty board
		prediction := Positional(entity.Board{}, X)

		// Then: the center bonus dominates but stays below the strategic margin
		assert.Equal(t, entity.Center, prediction.Cell)
		assert.Equal(t, entity.TagDefault, prediction.Tag)
		assert.Equal(t, 3, prediction.Score)
		assert.Equal(t, entity.SourcePositional, prediction.Source)
	})

	t.Run("Supported cell above the margin is strategic", func(t *testing.T) {
		// Given: X on both ends of the main diagonal, O on the middle column
		board := entity.Board{
			X, O, E,
			E, E, E,
			E, O, X,
		}

		// When: scoring for X
		prediction := Positional(board, X)

		// Then: the center collects two diagonal supports plus its bonus
		assert.Equal(t, entity.Center, prediction.Cell)
		assert.Equal(t, 7, prediction.Score)
		assert.Equal(t, entity.TagStrategic, prediction.Tag)
	})

	t.Run("Ties go to the lowest cell", func(t *testing.T) {
		// Given: center taken by O, no X marks
		board := entity.Board{E, E, E, E, O, E, E, E, E}

		// When: scoring for X
		prediction := Positional(board, X)

		// Then: every corner scores 2 and corner 0 comes first
		assert.Equal(t, 0, prediction.Cell)
		assert.Equal(t, 2, prediction.Score)
	})
}
