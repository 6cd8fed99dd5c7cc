package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/tictactoe"
)

const (
	positionalRating   = 3000
	fallbackConfidence = 0.1
)

type ratingSource interface {
	GetRating(ctx context.Context, id string) (int, error)
}

type historySource interface {
	FindSimilarStates(ctx context.Context, board entity.Board, ratingLow, ratingHigh, limit int) ([]entity.HistoryRecord, error)
}

type PredictionConfig struct {
	RatingBand   int
	HistoryLimit int
}

type PredictionService struct {
	logger *slog.Logger

	ratings ratingSource
	history historySource
	conf    PredictionConfig
}

func NewPredictionService(logger *slog.Logger, ratings ratingSource, history historySource, conf PredictionConfig) *PredictionService {
	return &PredictionService{
		logger:  logger,
		ratings: ratings,
		history: history,
		conf:    conf,
	}
}

// Predict suggests the next move for the player who asked. It never fails: any
// collaborator error or an empty answer degrades to a random legal cell.
func (that *PredictionService) Predict(ctx context.Context, board entity.Board, playerID string) entity.Prediction {
	log := that.logger.With("method", "Predict", "playerID", playerID)

	prediction, err := that.predict(ctx, board, playerID)
	if err != nil {
		log.Warn("falling back to random move", "error", err)
		return fallback(board, prediction.League)
	}

	return prediction
}

func (that *PredictionService) predict(ctx context.Context, board entity.Board, playerID string) (entity.Prediction, error) {
	rating, err := that.ratings.GetRating(ctx, playerID)
	if err != nil {
		return entity.Prediction{}, fmt.Errorf("failed to resolve rating: %w", err)
	}

	league := entity.LeagueFor(rating)

	records, err := that.history.FindSimilarStates(ctx, board, rating-that.conf.RatingBand, rating+that.conf.RatingBand, that.conf.HistoryLimit)
	if err != nil {
		return entity.Prediction{League: league}, fmt.Errorf("failed to find similar states: %w", err)
	}

	if prediction, ok := bestRecorded(board, records); ok {
		prediction.League = league
		return prediction, nil
	}

	prediction := tictactoe.Suggest(board, strategyFor(rating))
	if !prediction.HasMove() {
		return entity.Prediction{League: league}, fmt.Errorf("%s: %w", strategyFor(rating), ErrNoAvailableMoves)
	}

	prediction.League = league

	return prediction, nil
}

// bestRecorded picks the legal recorded move with the highest weight. The first record wins ties.
func bestRecorded(board entity.Board, records []entity.HistoryRecord) (entity.Prediction, bool) {
	var best *entity.HistoryRecord

	for i := range records {
		record := &records[i]
		if record.NextMove < 0 || record.NextMove >= entity.BoardSize || board[record.NextMove] != entity.EmptyCell {
			continue
		}

		if best == nil || record.Weight() > best.Weight() {
			best = record
		}
	}

	if best == nil {
		return entity.Prediction{}, false
	}

	return entity.Prediction{
		Cell:       best.NextMove,
		Tag:        entity.TagWeighted,
		Source:     entity.SourceHistorical,
		Confidence: best.Weight(),
	}, true
}

func strategyFor(rating int) tictactoe.Strategy {
	if rating > positionalRating {
		return tictactoe.StrategyPositional
	}

	return tictactoe.StrategyScan
}

func fallback(board entity.Board, league entity.League) entity.Prediction {
	empty := board.EmptyCells()
	if len(empty) == 0 {
		prediction := entity.NoMove(entity.SourceFallback)
		prediction.League = league
		return prediction
	}

	return entity.Prediction{
		Cell:       empty[rand.IntN(len(empty))], //nolint: gosec // advisory only
		Tag:        entity.TagRandom,
		Source:     entity.SourceFallback,
		Confidence: fallbackConfidence,
		League:     league,
	}
}
