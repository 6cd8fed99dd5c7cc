package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
)

const (
	winRatingDelta  = 25
	lossRatingDelta = -25
	drawRatingDelta = 0
)

type playerRepo interface {
	CreateOrUpdate(ctx context.Context, profile *entity.Profile) error
	GetByID(ctx context.Context, id string) (*entity.Profile, error)
	ApplyOutcome(ctx context.Context, id string, result entity.Result, ratingDelta int) (*entity.Profile, error)
	Leaderboard(ctx context.Context, limit int) ([]*entity.Profile, error)
}

type PlayerService struct {
	logger *slog.Logger

	playerRepo    playerRepo
	defaultRating int
}

func NewPlayerService(logger *slog.Logger, playerRepo playerRepo, defaultRating int) *PlayerService {
	return &PlayerService{
		logger:        logger,
		playerRepo:    playerRepo,
		defaultRating: defaultRating,
	}
}

// GetOrCreate loads the profile for id. A missing or malformed id gets a fresh uuid.
func (that *PlayerService) GetOrCreate(ctx context.Context, id, name string) (*entity.Profile, error) {
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}

	profile, err := that.playerRepo.GetByID(ctx, id)
	if err == nil {
		return profile, nil
	}

	if !errors.Is(err, apperror.ErrPlayerNotFound) {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	profile = entity.NewProfile(id, name)
	profile.Rating = that.defaultRating

	if err = that.playerRepo.CreateOrUpdate(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return profile, nil
}

func (that *PlayerService) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	profile, err := that.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return profile, nil
}

// GetRating returns the stored rating, or the default rating for unknown players.
func (that *PlayerService) GetRating(ctx context.Context, id string) (int, error) {
	profile, err := that.playerRepo.GetByID(ctx, id)
	if errors.Is(err, apperror.ErrPlayerNotFound) {
		return that.defaultRating, nil
	}

	if err != nil {
		return that.defaultRating, fmt.Errorf("failed to get rating: %w", err)
	}

	return profile.Rating, nil
}

// RecordOutcome persists one finished game for the player and moves its rating.
func (that *PlayerService) RecordOutcome(ctx context.Context, id, opponentID string, result entity.Result, finalScore, algorithm string) error {
	log := that.logger.With("method", "RecordOutcome", "playerID", id)

	profile, err := that.playerRepo.ApplyOutcome(ctx, id, result, ratingDelta(result))
	if err != nil {
		return fmt.Errorf("failed to apply outcome: %w", err)
	}

	log.Info("outcome recorded",
		"opponentID", opponentID,
		"result", result,
		"finalScore", finalScore,
		"algorithm", algorithm,
		"rating", profile.Rating,
	)

	return nil
}

func (that *PlayerService) Leaderboard(ctx context.Context, limit int) ([]*entity.Profile, error) {
	profiles, err := that.playerRepo.Leaderboard(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	return profiles, nil
}

func ratingDelta(result entity.Result) int {
	switch result {
	case entity.ResultWin:
		return winRatingDelta
	case entity.ResultLoss:
		return lossRatingDelta
	default:
		return drawRatingDelta
	}
}
