package service

import (
	"context"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
)

type outcomeSink interface {
	GetRating(ctx context.Context, id string) (int, error)
	RecordOutcome(ctx context.Context, id, opponentID string, result entity.Result, finalScore, algorithm string) error
}

type historySink interface {
	SaveStates(ctx context.Context, records []entity.HistoryRecord) error
}

// RecorderService stores finished games: one outcome per seated human and one
// history record per move. Failures are logged and never reach the room.
type RecorderService struct {
	logger *slog.Logger

	players outcomeSink
	history historySink
}

func NewRecorderService(logger *slog.Logger, players outcomeSink, history historySink) *RecorderService {
	return &RecorderService{
		logger:  logger,
		players: players,
		history: history,
	}
}

func (that *RecorderService) RecordGame(ctx context.Context, room entity.Room, algorithm string) {
	log := that.logger.With("method", "RecordGame", "roomCode", room.Code)

	for _, seat := range []entity.Mark{entity.MarkX, entity.MarkO} {
		playerID := room.PlayerAt(seat)
		if playerID == "" || entity.IsBot(playerID) {
			continue
		}

		opponentID := room.PlayerAt(seat.Opponent())
		if err := that.players.RecordOutcome(ctx, playerID, opponentID, room.ResultFor(seat), room.Scores.String(), algorithm); err != nil {
			log.Error("failed to record outcome", "playerID", playerID, "error", err)
		}
	}

	records := that.historyRecords(ctx, room, algorithm)
	if len(records) == 0 {
		return
	}

	if err := that.history.SaveStates(ctx, records); err != nil {
		log.Error("failed to save history", "records", len(records), "error", err)
		return
	}

	log.Debug("history saved", "records", len(records))
}

// historyRecords replays the move log and pairs every pre-move board with the human move taken.
func (that *RecorderService) historyRecords(ctx context.Context, room entity.Room, algorithm string) []entity.HistoryRecord {
	ratings := make(map[string]int)
	records := make([]entity.HistoryRecord, 0, len(room.MoveLog))

	var board entity.Board
	for _, move := range room.MoveLog {
		if entity.IsBot(move.PlayerID) {
			board[move.Position] = move.Mark
			continue
		}

		rating, ok := ratings[move.PlayerID]
		if !ok {
			// GetRating hands back the default rating alongside any error
			rating, _ = that.players.GetRating(ctx, move.PlayerID)
			ratings[move.PlayerID] = rating
		}

		records = append(records, entity.HistoryRecord{
			Board:      board.String(),
			NextMove:   move.Position,
			Result:     room.ResultFor(move.Mark),
			PlayerID:   move.PlayerID,
			SkillLevel: rating,
			Algorithm:  algorithm,
			CreatedAt:  move.At,
		})

		board[move.Position] = move.Mark
	}

	return records
}
