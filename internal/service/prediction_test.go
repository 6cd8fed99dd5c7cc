package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
	mockedService "github.com/rocketscienceinc/tictactoe-rooms/mocks/service"
)

var errRedisDown = errors.New("redis down")

var testPredictionConfig = PredictionConfig{RatingBand: 200, HistoryLimit: 5}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestPredictionService_Predict(t *testing.T) {
	ctx := context.Background()

	t.Run("Prefers the heaviest legal historical move", func(t *testing.T) {
		// Given: a SILVER player and three records, one of them on an occupied cell
		ratings := mockedService.NewMockratingSource(t)
		history := mockedService.NewMockhistorySource(t)
		predictionService := NewPredictionService(discardLogger(), ratings, history, testPredictionConfig)

		board := entity.Board{entity.MarkX}
		ratings.EXPECT().GetRating(mock.Anything, "p1").Return(1500, nil).Once()
		history.EXPECT().
			FindSimilarStates(mock.Anything, board, 1300, 1700, 5).
			Return([]entity.HistoryRecord{
				{NextMove: 4, Result: entity.ResultLoss},
				{NextMove: 0, Result: entity.ResultWin},
				{NextMove: 2, Result: entity.ResultWin},
			}, nil).
			Once()

		// When: predicting
		prediction := predictionService.Predict(ctx, board, "p1")

		// Then: the winning record on a free cell is chosen
		assert.Equal(t, 2, prediction.Cell)
		assert.Equal(t, entity.SourceHistorical, prediction.Source)
		assert.Equal(t, entity.TagWeighted, prediction.Tag)
		assert.InDelta(t, 1.5, prediction.Confidence, 1e-9)
		assert.Equal(t, entity.LeagueSilver, prediction.League)
	})

	t.Run("High rating without history uses the positional heuristic", func(t *testing.T) {
		ratings := mockedService.NewMockratingSource(t)
		history := mockedService.NewMockhistorySource(t)
		predictionService := NewPredictionService(discardLogger(), ratings, history, testPredictionConfig)

		ratings.EXPECT().GetRating(mock.Anything, "p1").Return(3500, nil).Once()
		history.EXPECT().
			FindSimilarStates(mock.Anything, entity.Board{}, 3300, 3700, 5).
			Return(nil, nil).
			Once()

		prediction := predictionService.Predict(ctx, entity.Board{}, "p1")

		assert.Equal(t, entity.Center, prediction.Cell)
		assert.Equal(t, entity.SourcePositional, prediction.Source)
		assert.Equal(t, entity.LeaguePlatinum, prediction.League)
	})

	t.Run("Mid rating without history uses the win-then-block scan", func(t *testing.T) {
		// Given: a GOLD player facing an X threat with O to move
		ratings := mockedService.NewMockratingSource(t)
		history := mockedService.NewMockhistorySource(t)
		predictionService := NewPredictionService(discardLogger(), ratings, history, testPredictionConfig)

		board := entity.Board{entity.MarkX, entity.MarkX, entity.EmptyCell, entity.MarkO}
		ratings.EXPECT().GetRating(mock.Anything, "p1").Return(2500, nil).Once()
		history.EXPECT().
			FindSimilarStates(mock.Anything, board, 2300, 2700, 5).
			Return([]entity.HistoryRecord{}, nil).
			Once()

		// When: predicting
		prediction := predictionService.Predict(ctx, board, "p1")

		// Then: the scan blocks cell 2
		assert.Equal(t, 2, prediction.Cell)
		assert.Equal(t, entity.TagBlock, prediction.Tag)
		assert.Equal(t, entity.SourceScan, prediction.Source)
		assert.Equal(t, entity.LeagueGold, prediction.League)
	})

	t.Run("Rating failure falls back to a random legal cell", func(t *testing.T) {
		// Given: the profile store is down
		ratings := mockedService.NewMockratingSource(t)
		history := mockedService.NewMockhistorySource(t)
		predictionService := NewPredictionService(discardLogger(), ratings, history, testPredictionConfig)

		board := entity.Board{entity.MarkX, entity.MarkO, entity.MarkX}
		ratings.EXPECT().
			GetRating(mock.Anything, "p1").
			Return(1000, errors.Join(apperror.ErrCollaboratorUnavailable, errRedisDown)).
			Once()

		// When: predicting
		prediction := predictionService.Predict(ctx, board, "p1")

		// Then: the fallback picks a free cell with low confidence
		assert.Equal(t, entity.SourceFallback, prediction.Source)
		assert.Contains(t, board.EmptyCells(), prediction.Cell)
		assert.InDelta(t, fallbackConfidence, prediction.Confidence, 1e-9)
	})

	t.Run("History failure falls back but keeps the league", func(t *testing.T) {
		ratings := mockedService.NewMockratingSource(t)
		history := mockedService.NewMockhistorySource(t)
		predictionService := NewPredictionService(discardLogger(), ratings, history, testPredictionConfig)

		ratings.EXPECT().GetRating(mock.Anything, "p1").Return(4500, nil).Once()
		history.EXPECT().
			FindSimilarStates(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, apperror.ErrCollaboratorUnavailable).
			Once()

		prediction := predictionService.Predict(ctx, entity.Board{}, "p1")

		assert.Equal(t, entity.SourceFallback, prediction.Source)
		assert.True(t, prediction.HasMove())
		assert.Equal(t, entity.LeagueDiamond, prediction.League)
	})

	t.Run("Full board yields a fallback without a cell", func(t *testing.T) {
		ratings := mockedService.NewMockratingSource(t)
		history := mockedService.NewMockhistorySource(t)
		predictionService := NewPredictionService(discardLogger(), ratings, history, testPredictionConfig)

		board := entity.Board{"X", "O", "X", "X", "O", "O", "O", "X", "X"}
		ratings.EXPECT().GetRating(mock.Anything, "p1").Return(1000, nil).Once()
		history.EXPECT().
			FindSimilarStates(mock.Anything, board, 800, 1200, 5).
			Return(nil, nil).
			Once()

		prediction := predictionService.Predict(ctx, board, "p1")

		assert.Equal(t, entity.NoCell, prediction.Cell)
		assert.Equal(t, entity.SourceFallback, prediction.Source)
	})
}

func TestBotService_ChooseCell(t *testing.T) {
	t.Run("Takes the win before anything else", func(t *testing.T) {
		// Given: O can complete the middle row
		board := entity.Board{"X", "X", "", "O", "O", "", "", "", "X"}

		// When: the bot picks a reply for O
		cell, err := NewBotService(4000).ChooseCell(board, entity.MarkO)

		// Then: it wins on cell 5
		assert.NoError(t, err)
		assert.Equal(t, 5, cell)
	})

	t.Run("Blocks an immediate threat", func(t *testing.T) {
		// Given: X threatens the top row and O cannot win
		board := entity.Board{"X", "X", "", "", "O", "", "", "", ""}

		// When: the bot picks a reply for O
		cell, err := NewBotService(4000).ChooseCell(board, entity.MarkO)

		// Then: it blocks cell 2
		assert.NoError(t, err)
		assert.Equal(t, 2, cell)
	})

	t.Run("Fails on a full board", func(t *testing.T) {
		board := entity.Board{"X", "O", "X", "X", "O", "O", "O", "X", "X"}

		_, err := NewBotService(4000).ChooseCell(board, entity.MarkO)

		assert.ErrorIs(t, err, ErrNoAvailableMoves)
	})
}
