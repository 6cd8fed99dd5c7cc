package usecase

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
)

type predictor interface {
	Predict(ctx context.Context, board entity.Board, playerID string) entity.Prediction
}

type gameRecorder interface {
	RecordGame(ctx context.Context, room entity.Room, algorithm string)
}

type botPlayer interface {
	ChooseCell(board entity.Board, mark entity.Mark) (int, error)
}

type notifier interface {
	Notify(playerIDs []string, event string, payload any)
}

// roomEntry guards one room. A closed entry has been removed from the table and
// must not be mutated again; joiners that raced with the removal retry.
// generation grows on every reset so late predictions of an old game can be told apart.
type roomEntry struct {
	mu            sync.Mutex
	room          *entity.Room
	closed        bool
	generation    uint64
	lastAlgorithm entity.Source
}

// RoomManager owns the room table. Operations on one room are serialized by that
// room's mutex; different rooms never block each other.
type RoomManager struct {
	logger *slog.Logger

	predictor predictor
	recorder  gameRecorder
	bot       botPlayer
	notifier  notifier
	now       func() time.Time

	roomsMutex sync.RWMutex
	rooms      map[string]*roomEntry

	tasks sync.WaitGroup
}

func NewRoomManager(logger *slog.Logger, predictor predictor, recorder gameRecorder, bot botPlayer, notifier notifier) *RoomManager {
	return &RoomManager{
		logger: logger,

		predictor: predictor,
		recorder:  recorder,
		bot:       bot,
		notifier:  notifier,
		now:       time.Now,

		rooms: make(map[string]*roomEntry),
	}
}

// JoinRoom seats the player in the room, creating the room on first join. With vsBot
// on a fresh room the bot takes the O seat.
func (that *RoomManager) JoinRoom(_ context.Context, playerID, code string, vsBot bool) (entity.Room, error) {
	log := that.logger.With("method", "JoinRoom", "roomCode", code, "playerID", playerID)

	if playerID == "" {
		return entity.Room{}, apperror.ErrNotAuthenticated
	}

	if code == "" {
		return entity.Room{}, fmt.Errorf("%w: empty room code", apperror.ErrRoomNotFound)
	}

	for {
		entry := that.getOrCreateRoom(code)

		entry.mu.Lock()
		if entry.closed {
			entry.mu.Unlock()
			continue
		}

		room, err := that.join(entry, playerID, vsBot)
		entry.mu.Unlock()

		if err != nil {
			log.Info("join rejected", "error", err)
			return entity.Room{}, err
		}

		log.Info("player joined", "seat", room.SeatOf(playerID))

		return room, nil
	}
}

func (that *RoomManager) join(entry *roomEntry, playerID string, vsBot bool) (entity.Room, error) {
	room := entry.room
	fresh := room.IsEmpty() && room.Seats == (entity.Seats{})

	seat, err := room.Join(playerID)
	if err != nil {
		return entity.Room{}, fmt.Errorf("failed to join room %s: %w", room.Code, err)
	}

	if fresh && vsBot {
		room.SeatBot()
	}

	that.notify(room, EventPlayerJoined, PlayerJoinedPayload{
		RoomCode:    room.Code,
		PlayerID:    playerID,
		Seat:        seat,
		Seats:       room.Seats,
		Board:       room.Board,
		Turn:        room.Turn,
		Scores:      room.Scores,
		PlayerCount: len(room.Participants),
	})

	return room.Snapshot(), nil
}

// MakeMove applies the player's move and, in a bot room, the bot's reply.
func (that *RoomManager) MakeMove(ctx context.Context, playerID, code string, cell int) (entity.Room, error) {
	log := that.logger.With("method", "MakeMove", "roomCode", code, "playerID", playerID)

	if playerID == "" {
		return entity.Room{}, apperror.ErrNotAuthenticated
	}

	entry, err := that.lockRoom(code)
	if err != nil {
		return entity.Room{}, err
	}
	defer entry.mu.Unlock()

	if err = that.applyMove(ctx, entry, playerID, cell); err != nil {
		log.Info("move rejected", "cell", cell, "error", err)
		return entity.Room{}, err
	}

	if botToMove(entry.room) {
		that.playBot(ctx, entry)
	}

	return entry.room.Snapshot(), nil
}

func (that *RoomManager) applyMove(ctx context.Context, entry *roomEntry, playerID string, cell int) error {
	room := entry.room

	move, err := room.MakeMove(playerID, cell, that.now())
	if err != nil {
		return fmt.Errorf("failed to make move: %w", err)
	}

	that.notify(room, EventMoveMade, MoveMadePayload{
		RoomCode:  room.Code,
		CellIndex: move.Position,
		Mark:      move.Mark,
		PlayerID:  playerID,
		Board:     room.Board,
		MoveLog:   slices.Clone(room.MoveLog),
	})

	that.schedulePrediction(ctx, entry, room.Board, predictionTarget(room, move), len(room.MoveLog))

	if room.Board.IsTerminal() {
		that.notify(room, EventGameOver, GameOverPayload{
			RoomCode:    room.Code,
			WinningMark: winningMark(room.Board),
			Board:       room.Board,
			Scores:      room.Scores,
		})

		that.scheduleRecording(ctx, room.Snapshot(), string(entry.lastAlgorithm))

		return nil
	}

	that.notify(room, EventPlayerTurn, PlayerTurnPayload{
		RoomCode: room.Code,
		Turn:     room.Turn,
	})

	return nil
}

// predictionTarget is the identity the suggestion is computed for. After a bot move
// that is the human facing it.
func predictionTarget(room *entity.Room, move entity.Move) string {
	if entity.IsBot(move.PlayerID) {
		return room.PlayerAt(move.Mark.Opponent())
	}

	return move.PlayerID
}

func botToMove(room *entity.Room) bool {
	return room.VsBot && !room.Board.IsTerminal() && room.Turn == room.SeatOf(entity.BotID)
}

func (that *RoomManager) playBot(ctx context.Context, entry *roomEntry) {
	log := that.logger.With("method", "playBot", "roomCode", entry.room.Code)

	cell, err := that.bot.ChooseCell(entry.room.Board, entry.room.Turn)
	if err != nil {
		log.Error("bot failed to choose a cell", "error", err)
		return
	}

	if err = that.applyMove(ctx, entry, entity.BotID, cell); err != nil {
		log.Error("bot failed to move", "cell", cell, "error", err)
	}
}

// schedulePrediction computes the advisory move off the room lock. A prediction that
// arrives after the room is gone or the game was reset is dropped.
// Called with entry.mu held.
func (that *RoomManager) schedulePrediction(ctx context.Context, entry *roomEntry, board entity.Board, playerID string, moveNumber int) {
	ctx = context.WithoutCancel(ctx)
	generation := entry.generation

	that.tasks.Add(1)
	go func() {
		defer that.tasks.Done()

		prediction := that.predictor.Predict(ctx, board, playerID)

		entry.mu.Lock()
		defer entry.mu.Unlock()

		if entry.closed || entry.generation != generation || moveNumber > len(entry.room.MoveLog) {
			return
		}

		entry.lastAlgorithm = prediction.Source

		that.notify(entry.room, EventPrediction, PredictionPayload{
			Prediction: prediction,
			RoomCode:   entry.room.Code,
			MoveNumber: moveNumber,
		})
	}()
}

func (that *RoomManager) scheduleRecording(ctx context.Context, room entity.Room, algorithm string) {
	ctx = context.WithoutCancel(ctx)

	that.tasks.Add(1)
	go func() {
		defer that.tasks.Done()

		that.recorder.RecordGame(ctx, room, algorithm)
	}()
}

// ResetRoom clears board, turn and move log. Scores are kept.
func (that *RoomManager) ResetRoom(_ context.Context, code string) (entity.Room, error) {
	entry, err := that.lockRoom(code)
	if err != nil {
		return entity.Room{}, err
	}
	defer entry.mu.Unlock()

	room := entry.room
	room.Reset()
	entry.startGame()

	that.notify(room, EventBoardReset, BoardResetPayload{
		RoomCode: room.Code,
		Board:    room.Board,
		Turn:     room.Turn,
	})

	return room.Snapshot(), nil
}

// NewGame resets the room like ResetRoom and announces the new game with the running scores.
func (that *RoomManager) NewGame(_ context.Context, code string) (entity.Room, error) {
	entry, err := that.lockRoom(code)
	if err != nil {
		return entity.Room{}, err
	}
	defer entry.mu.Unlock()

	room := entry.room
	room.Reset()
	entry.startGame()

	that.notify(room, EventGameStarted, GameStartedPayload{
		RoomCode: room.Code,
		Board:    room.Board,
		Turn:     room.Turn,
		Scores:   room.Scores,
	})

	return room.Snapshot(), nil
}

// LeaveRoom removes the player from the room. The last participant out destroys the room.
// Leaving a room the player is not in does nothing.
func (that *RoomManager) LeaveRoom(_ context.Context, playerID, code string) {
	log := that.logger.With("method", "LeaveRoom", "roomCode", code, "playerID", playerID)

	entry, err := that.lockRoom(code)
	if err != nil {
		return
	}
	defer entry.mu.Unlock()

	room := entry.room
	if !room.Leave(playerID) {
		return
	}

	if room.IsEmpty() {
		entry.closed = true
		that.removeRoom(code, entry)
		log.Info("room destroyed")

		return
	}

	that.notify(room, EventPlayerLeft, PlayerLeftPayload{
		RoomCode:       room.Code,
		PlayerID:       playerID,
		RemainingCount: len(room.Participants),
		Seats:          room.Seats,
	})

	log.Info("player left", "remaining", len(room.Participants))
}

// Disconnect applies LeaveRoom to every room.
func (that *RoomManager) Disconnect(ctx context.Context, playerID string) {
	if playerID == "" {
		return
	}

	for _, code := range that.roomCodes() {
		that.LeaveRoom(ctx, playerID, code)
	}
}

func (that *RoomManager) GetRoom(code string) (entity.Room, error) {
	entry, err := that.lockRoom(code)
	if err != nil {
		return entity.Room{}, err
	}
	defer entry.mu.Unlock()

	return entry.room.Snapshot(), nil
}

// Rooms lists live rooms ordered by code.
func (that *RoomManager) Rooms() []RoomSummary {
	that.roomsMutex.RLock()
	entries := make([]*roomEntry, 0, len(that.rooms))
	for _, entry := range that.rooms {
		entries = append(entries, entry)
	}
	that.roomsMutex.RUnlock()

	summaries := make([]RoomSummary, 0, len(entries))
	for _, entry := range entries {
		entry.mu.Lock()
		if !entry.closed {
			summaries = append(summaries, RoomSummary{
				Code:        entry.room.Code,
				Status:      entry.room.Status(),
				PlayerCount: len(entry.room.Participants),
				VsBot:       entry.room.VsBot,
				Scores:      entry.room.Scores,
			})
		}
		entry.mu.Unlock()
	}

	slices.SortFunc(summaries, func(a, b RoomSummary) int {
		return cmp.Compare(a.Code, b.Code)
	})

	return summaries
}

// Wait blocks until every scheduled prediction and recording has finished.
func (that *RoomManager) Wait() {
	that.tasks.Wait()
}

func (that *RoomManager) getOrCreateRoom(code string) *roomEntry {
	that.roomsMutex.Lock()
	defer that.roomsMutex.Unlock()

	entry, ok := that.rooms[code]
	if !ok {
		entry = &roomEntry{room: entity.NewRoom(code)}
		that.rooms[code] = entry
	}

	return entry
}

// lockRoom returns the live entry with its mutex held.
func (that *RoomManager) lockRoom(code string) (*roomEntry, error) {
	that.roomsMutex.RLock()
	entry, ok := that.rooms[code]
	that.roomsMutex.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrRoomNotFound, code)
	}

	entry.mu.Lock()
	if entry.closed {
		entry.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", apperror.ErrRoomNotFound, code)
	}

	return entry, nil
}

// startGame is called with entry.mu held.
func (that *roomEntry) startGame() {
	that.generation++
	that.lastAlgorithm = ""
}

// removeRoom is called with entry.mu held.
func (that *RoomManager) removeRoom(code string, entry *roomEntry) {
	that.roomsMutex.Lock()
	defer that.roomsMutex.Unlock()

	if that.rooms[code] == entry {
		delete(that.rooms, code)
	}
}

func (that *RoomManager) roomCodes() []string {
	that.roomsMutex.RLock()
	defer that.roomsMutex.RUnlock()

	codes := make([]string, 0, len(that.rooms))
	for code := range that.rooms {
		codes = append(codes, code)
	}

	return codes
}

func (that *RoomManager) notify(room *entity.Room, event string, payload any) {
	that.notifier.Notify(slices.Clone(room.Participants), event, payload)
}
