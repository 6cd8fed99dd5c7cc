package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
)

const (
	playerKeyPrefix = "player:"
	leaderboardKey  = "leaderboard"

	maxOutcomeRetries = 5
)

var ErrTooManyRetries = errors.New("too many concurrent updates")

// PlayerRepository keeps profiles as JSON under player:<id> and mirrors every rating
// into the leaderboard sorted set.
type PlayerRepository struct {
	client        *redis.Client
	defaultRating int
}

// NewPlayerRepository creates profiles for unknown players with defaultRating.
func NewPlayerRepository(client *redis.Client, defaultRating int) *PlayerRepository {
	return &PlayerRepository{
		client:        client,
		defaultRating: defaultRating,
	}
}

func (that *PlayerRepository) CreateOrUpdate(ctx context.Context, profile *entity.Profile) error {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, playerKey(profile.ID), profileJSON, 0)
		pipe.ZAdd(ctx, leaderboardKey, redis.Z{Score: float64(profile.Rating), Member: profile.ID})
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: failed to set player: %w", apperror.ErrCollaboratorUnavailable, err)
	}

	return nil
}

func (that *PlayerRepository) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	response, err := that.client.Get(ctx, playerKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrPlayerNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("%w: failed to get player by ID: %w", apperror.ErrCollaboratorUnavailable, err)
	}

	var profile entity.Profile
	if err = json.Unmarshal([]byte(response), &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return &profile, nil
}

// ApplyOutcome updates counters and rating in one optimistic transaction. Unknown
// players are created with the repository's default rating first.
func (that *PlayerRepository) ApplyOutcome(ctx context.Context, id string, result entity.Result, ratingDelta int) (*entity.Profile, error) {
	key := playerKey(id)

	for range maxOutcomeRetries {
		var updated *entity.Profile

		err := that.client.Watch(ctx, func(tx *redis.Tx) error {
			profile, err := that.loadProfile(ctx, tx, id)
			if err != nil {
				return err
			}

			profile.Apply(result, ratingDelta)

			profileJSON, err := json.Marshal(profile)
			if err != nil {
				return fmt.Errorf("failed to marshal player: %w", err)
			}

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, key, profileJSON, 0)
				pipe.ZAdd(ctx, leaderboardKey, redis.Z{Score: float64(profile.Rating), Member: id})
				return nil
			})

			updated = profile

			return err
		}, key)

		if errors.Is(err, redis.TxFailedErr) {
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("%w: failed to apply outcome: %w", apperror.ErrCollaboratorUnavailable, err)
		}

		return updated, nil
	}

	return nil, fmt.Errorf("%w: player %s: %w", apperror.ErrCollaboratorUnavailable, id, ErrTooManyRetries)
}

// Leaderboard returns up to limit profiles ordered by rating, highest first.
func (that *PlayerRepository) Leaderboard(ctx context.Context, limit int) ([]*entity.Profile, error) {
	if limit <= 0 {
		return []*entity.Profile{}, nil
	}

	ids, err := that.client.ZRevRange(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read leaderboard: %w", apperror.ErrCollaboratorUnavailable, err)
	}

	if len(ids) == 0 {
		return []*entity.Profile{}, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, playerKey(id))
	}

	values, err := that.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get players: %w", apperror.ErrCollaboratorUnavailable, err)
	}

	profiles := make([]*entity.Profile, 0, len(values))
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}

		var profile entity.Profile
		if err = json.Unmarshal([]byte(raw), &profile); err != nil {
			return nil, fmt.Errorf("failed to unmarshal player: %w", err)
		}

		profiles = append(profiles, &profile)
	}

	return profiles, nil
}

func (that *PlayerRepository) loadProfile(ctx context.Context, tx *redis.Tx, id string) (*entity.Profile, error) {
	response, err := tx.Get(ctx, playerKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		profile := entity.NewProfile(id, "")
		profile.Rating = that.defaultRating
		return profile, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	var profile entity.Profile
	if err = json.Unmarshal([]byte(response), &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return &profile, nil
}

func playerKey(id string) string {
	return playerKeyPrefix + id
}
