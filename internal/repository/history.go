package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
)

const (
	historyCollection = "game_states"
	queryTimeout      = 5 * time.Second
)

// HistoryRepository stores per-move records of finished games in MongoDB.
type HistoryRepository struct {
	collection *mongo.Collection
}

func NewHistoryRepository(db *mongo.Database) *HistoryRepository {
	return &HistoryRepository{
		collection: db.Collection(historyCollection),
	}
}

// EnsureIndexes creates the index backing FindSimilarStates.
func (that *HistoryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := that.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "board_state", Value: 1},
			{Key: "skill_level", Value: 1},
			{Key: "created_at", Value: -1},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create history index: %w", err)
	}

	return nil
}

// FindSimilarStates returns the newest records played on the same board by players
// rated within [ratingLow, ratingHigh].
func (that *HistoryRepository) FindSimilarStates(ctx context.Context, board entity.Board, ratingLow, ratingHigh, limit int) ([]entity.HistoryRecord, error) {
	// mongo treats a zero limit as unlimited
	if limit <= 0 {
		return []entity.HistoryRecord{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{
		"board_state": board.String(),
		"skill_level": bson.M{
			"$gte": ratingLow,
			"$lte": ratingHigh,
		},
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := that.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to find similar states: %w", apperror.ErrCollaboratorUnavailable, err)
	}
	defer cursor.Close(ctx)

	records := make([]entity.HistoryRecord, 0, limit)
	if err = cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("%w: failed to decode states: %w", apperror.ErrCollaboratorUnavailable, err)
	}

	return records, nil
}

func (that *HistoryRepository) SaveStates(ctx context.Context, records []entity.HistoryRecord) error {
	if len(records) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	documents := make([]interface{}, 0, len(records))
	for _, record := range records {
		documents = append(documents, record)
	}

	if _, err := that.collection.InsertMany(ctx, documents); err != nil {
		return fmt.Errorf("%w: failed to save states: %w", apperror.ErrCollaboratorUnavailable, err)
	}

	return nil
}
