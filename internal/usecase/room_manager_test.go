package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-rooms/mocks/usecase"
)

type sentEvent struct {
	playerIDs []string
	event     string
	payload   any
}

type fakeNotifier struct {
	mu     sync.Mutex
	events []sentEvent
}

func (that *fakeNotifier) Notify(playerIDs []string, event string, payload any) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.events = append(that.events, sentEvent{playerIDs: playerIDs, event: event, payload: payload})
}

// gameEvents returns everything except the asynchronous predictions.
func (that *fakeNotifier) gameEvents() []sentEvent {
	that.mu.Lock()
	defer that.mu.Unlock()

	events := make([]sentEvent, 0, len(that.events))
	for _, e := range that.events {
		if e.event != EventPrediction {
			events = append(events, e)
		}
	}

	return events
}

func (that *fakeNotifier) count(event string) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	n := 0
	for _, e := range that.events {
		if e.event == event {
			n++
		}
	}

	return n
}

func eventNames(events []sentEvent) []string {
	names := make([]string, 0, len(events))
	for _, e := range events {
		names = append(names, e.event)
	}

	return names
}

// firstFreeBot always answers with the lowest free cell.
type firstFreeBot struct{}

func (firstFreeBot) ChooseCell(board entity.Board, _ entity.Mark) (int, error) {
	return board.EmptyCells()[0], nil
}

type testManager struct {
	*RoomManager

	notifier  *fakeNotifier
	predictor *mockedUseCase.Mockpredictor
	recorder  *mockedUseCase.MockgameRecorder
}

func newTestManager(t *testing.T) *testManager {
	t.Helper()

	notifier := &fakeNotifier{}
	predictorMock := mockedUseCase.NewMockpredictor(t)
	recorderMock := mockedUseCase.NewMockgameRecorder(t)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	return &testManager{
		RoomManager: NewRoomManager(logger, predictorMock, recorderMock, firstFreeBot{}, notifier),
		notifier:    notifier,
		predictor:   predictorMock,
		recorder:    recorderMock,
	}
}

func (that *testManager) expectPredictions() {
	that.predictor.EXPECT().
		Predict(mock.Anything, mock.Anything, mock.Anything).
		Return(entity.Prediction{Cell: entity.Center, Tag: entity.TagCenter, Source: entity.SourceScan})
}

func (that *testManager) seatTwo(t *testing.T, code string) {
	t.Helper()

	ctx := context.Background()
	_, err := that.JoinRoom(ctx, "alice", code, false)
	require.NoError(t, err)
	_, err = that.JoinRoom(ctx, "bob", code, false)
	require.NoError(t, err)
}

func (that *testManager) play(t *testing.T, code string, cells ...int) entity.Room {
	t.Helper()

	var room entity.Room
	for _, cell := range cells {
		current, err := that.GetRoom(code)
		require.NoError(t, err)

		room, err = that.MakeMove(context.Background(), current.PlayerAt(current.Turn), code, cell)
		require.NoError(t, err)
	}

	return room
}

func TestRoomManager_JoinAndMove(t *testing.T) {
	ctx := context.Background()

	t.Run("Two players join, X moves and O is rejected on the same cell", func(t *testing.T) {
		// Given: alice and bob join room ABCD
		manager := newTestManager(t)
		manager.expectPredictions()

		first, err := manager.JoinRoom(ctx, "alice", "ABCD", false)
		require.NoError(t, err)
		second, err := manager.JoinRoom(ctx, "bob", "ABCD", false)
		require.NoError(t, err)

		assert.Equal(t, entity.MarkX, first.SeatOf("alice"))
		assert.Equal(t, entity.MarkO, second.SeatOf("bob"))

		// When: X plays cell 0
		room, err := manager.MakeMove(ctx, "alice", "ABCD", 0)
		require.NoError(t, err)

		// Then: moveMade and playerTurn are broadcast in order to both players
		events := manager.notifier.gameEvents()
		assert.Equal(t, []string{EventPlayerJoined, EventPlayerJoined, EventMoveMade, EventPlayerTurn}, eventNames(events))

		moveMade := events[2].payload.(MoveMadePayload)
		assert.Equal(t, entity.Board{entity.MarkX}, moveMade.Board)
		assert.Equal(t, []string{"alice", "bob"}, events[2].playerIDs)
		assert.Equal(t, entity.MarkO, events[3].payload.(PlayerTurnPayload).Turn)

		// When: O plays the occupied cell
		_, err = manager.MakeMove(ctx, "bob", "ABCD", 0)

		// Then: it is rejected without any broadcast and the board is unchanged
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Len(t, manager.notifier.gameEvents(), 4)

		current, err := manager.GetRoom("ABCD")
		require.NoError(t, err)
		assert.Equal(t, room.Board, current.Board)

		// And: the advisory prediction reaches the room
		manager.Wait()
		assert.Equal(t, 1, manager.notifier.count(EventPrediction))
	})

	t.Run("Third player gets RoomFull and nothing is broadcast", func(t *testing.T) {
		manager := newTestManager(t)
		manager.seatTwo(t, "ABCD")

		_, err := manager.JoinRoom(ctx, "carol", "ABCD", false)

		require.ErrorIs(t, err, apperror.ErrRoomFull)
		assert.Len(t, manager.notifier.gameEvents(), 2)
	})

	t.Run("Moving out of turn is NotYourTurn", func(t *testing.T) {
		manager := newTestManager(t)
		manager.seatTwo(t, "ABCD")

		_, err := manager.MakeMove(ctx, "bob", "ABCD", 4)

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Unknown room is RoomNotFound", func(t *testing.T) {
		manager := newTestManager(t)

		_, err := manager.MakeMove(ctx, "alice", "NOPE", 4)
		require.ErrorIs(t, err, apperror.ErrRoomNotFound)

		_, err = manager.ResetRoom(ctx, "NOPE")
		require.ErrorIs(t, err, apperror.ErrRoomNotFound)
	})

	t.Run("Missing identity is NotAuthenticated", func(t *testing.T) {
		manager := newTestManager(t)

		_, err := manager.JoinRoom(ctx, "", "ABCD", false)
		require.ErrorIs(t, err, apperror.ErrNotAuthenticated)

		_, err = manager.MakeMove(ctx, "", "ABCD", 0)
		require.ErrorIs(t, err, apperror.ErrNotAuthenticated)
	})
}

func TestRoomManager_GameOver(t *testing.T) {
	t.Run("Completing a line ends the game and records the outcome", func(t *testing.T) {
		// Given: two seated players
		manager := newTestManager(t)
		manager.expectPredictions()
		manager.seatTwo(t, "ABCD")

		var recorded entity.Room
		manager.recorder.EXPECT().
			RecordGame(mock.Anything, mock.Anything, mock.Anything).
			Run(func(_ context.Context, room entity.Room, _ string) { recorded = room }).
			Once()

		// When: X completes the left column
		room := manager.play(t, "ABCD", 0, 1, 3, 2, 6)
		manager.Wait()

		// Then: gameOver carries X and only X's score moved
		events := manager.notifier.gameEvents()
		last := events[len(events)-1]
		require.Equal(t, EventGameOver, last.event)
		gameOver := last.payload.(GameOverPayload)
		assert.Equal(t, "X", gameOver.WinningMark)
		assert.Equal(t, entity.Scores{X: 1}, gameOver.Scores)
		assert.Equal(t, entity.Scores{X: 1}, room.Scores)

		// And: the recorder received the final room
		assert.Equal(t, "ABCD", recorded.Code)
		assert.Len(t, recorded.MoveLog, 5)
		assert.Equal(t, 5, manager.notifier.count(EventPrediction))
	})

	t.Run("Draw ends the game without a score", func(t *testing.T) {
		manager := newTestManager(t)
		manager.expectPredictions()
		manager.seatTwo(t, "ABCD")
		manager.recorder.EXPECT().RecordGame(mock.Anything, mock.Anything, mock.Anything).Once()

		room := manager.play(t, "ABCD", 0, 1, 2, 4, 3, 5, 7, 6, 8)
		manager.Wait()

		events := manager.notifier.gameEvents()
		gameOver := events[len(events)-1].payload.(GameOverPayload)
		assert.Equal(t, NoWinner, gameOver.WinningMark)
		assert.Equal(t, entity.Scores{}, room.Scores)
	})

	t.Run("Reset after game over keeps scores", func(t *testing.T) {
		// Given: X won once
		manager := newTestManager(t)
		manager.expectPredictions()
		manager.seatTwo(t, "ABCD")
		manager.recorder.EXPECT().RecordGame(mock.Anything, mock.Anything, mock.Anything).Once()
		manager.play(t, "ABCD", 0, 3, 1, 4, 2)

		// When: the room is reset
		room, err := manager.ResetRoom(context.Background(), "ABCD")
		require.NoError(t, err)
		manager.Wait()

		// Then: a cleared board with X to move and the same scores
		assert.Equal(t, entity.Board{}, room.Board)
		assert.Equal(t, entity.MarkX, room.Turn)
		assert.Empty(t, room.MoveLog)
		assert.Equal(t, entity.Scores{X: 1}, room.Scores)

		events := manager.notifier.gameEvents()
		assert.Equal(t, EventBoardReset, events[len(events)-1].event)
	})

	t.Run("New game announces the running scores", func(t *testing.T) {
		manager := newTestManager(t)
		manager.seatTwo(t, "ABCD")

		room, err := manager.NewGame(context.Background(), "ABCD")
		require.NoError(t, err)

		events := manager.notifier.gameEvents()
		started := events[len(events)-1].payload.(GameStartedPayload)
		assert.Equal(t, room.Scores, started.Scores)
		assert.Equal(t, entity.MarkX, started.Turn)
	})
}

func TestRoomManager_Leave(t *testing.T) {
	ctx := context.Background()

	t.Run("Departure is broadcast and leaving twice is a no-op", func(t *testing.T) {
		// Given: two seated players
		manager := newTestManager(t)
		manager.seatTwo(t, "ABCD")

		// When: bob leaves twice
		manager.LeaveRoom(ctx, "bob", "ABCD")
		manager.LeaveRoom(ctx, "bob", "ABCD")

		// Then: exactly one playerLeft with one remaining player
		events := manager.notifier.gameEvents()
		assert.Equal(t, 1, manager.notifier.count(EventPlayerLeft))
		left := events[len(events)-1].payload.(PlayerLeftPayload)
		assert.Equal(t, 1, left.RemainingCount)
		assert.Equal(t, []string{"alice"}, events[len(events)-1].playerIDs)
	})

	t.Run("Last player out destroys the room", func(t *testing.T) {
		manager := newTestManager(t)
		manager.seatTwo(t, "ABCD")

		manager.LeaveRoom(ctx, "bob", "ABCD")
		manager.LeaveRoom(ctx, "alice", "ABCD")

		_, err := manager.GetRoom("ABCD")
		require.ErrorIs(t, err, apperror.ErrRoomNotFound)
		assert.Empty(t, manager.Rooms())

		// And: the code can be reused for a brand new room
		room, err := manager.JoinRoom(ctx, "carol", "ABCD", false)
		require.NoError(t, err)
		assert.Equal(t, entity.Scores{}, room.Scores)
		assert.Equal(t, "carol", room.Seats.X)
	})

	t.Run("Leaving an unknown room is a no-op", func(t *testing.T) {
		manager := newTestManager(t)

		manager.LeaveRoom(ctx, "alice", "NOPE")

		assert.Empty(t, manager.notifier.gameEvents())
	})

	t.Run("Disconnect leaves every room of the player", func(t *testing.T) {
		// Given: alice sits in two rooms, bob in one of them
		manager := newTestManager(t)
		manager.seatTwo(t, "ROOM1")
		_, err := manager.JoinRoom(ctx, "alice", "ROOM2", false)
		require.NoError(t, err)

		// When: alice disconnects
		manager.Disconnect(ctx, "alice")

		// Then: ROOM2 is gone and ROOM1 is waiting for a new X
		rooms := manager.Rooms()
		require.Len(t, rooms, 1)
		assert.Equal(t, "ROOM1", rooms[0].Code)
		assert.Equal(t, entity.StatusWaiting, rooms[0].Status)
		assert.Equal(t, 1, rooms[0].PlayerCount)
	})
}

func TestRoomManager_Bot(t *testing.T) {
	// Given: alice opens a room against the bot
	ctx := context.Background()
	manager := newTestManager(t)

	// the suggestion after the bot's reply is still computed for alice
	manager.predictor.EXPECT().
		Predict(mock.Anything, mock.Anything, "alice").
		Return(entity.Prediction{Cell: entity.Center, Tag: entity.TagCenter, Source: entity.SourceScan}).
		Twice()

	room, err := manager.JoinRoom(ctx, "alice", "BOT", true)
	require.NoError(t, err)
	assert.Equal(t, entity.BotID, room.Seats.O)

	// When: alice plays the center
	room, err = manager.MakeMove(ctx, "alice", "BOT", entity.Center)
	require.NoError(t, err)
	manager.Wait()

	// Then: the bot answered in the same operation and it is X's turn again
	assert.Len(t, room.MoveLog, 2)
	assert.Equal(t, entity.BotID, room.MoveLog[1].PlayerID)
	assert.Equal(t, entity.MarkX, room.Turn)
	assert.Equal(t, []string{
		EventPlayerJoined,
		EventMoveMade, EventPlayerTurn,
		EventMoveMade, EventPlayerTurn,
	}, eventNames(manager.notifier.gameEvents()))
	assert.Equal(t, 2, manager.notifier.count(EventPrediction))
}

// gatedPredictor answers with a minimax suggestion, holding every answer back while closed.
type gatedPredictor struct {
	closed  atomic.Bool
	release chan struct{}
}

func newGatedPredictor() *gatedPredictor {
	return &gatedPredictor{release: make(chan struct{})}
}

func (that *gatedPredictor) predict(context.Context, entity.Board, string) entity.Prediction {
	if that.closed.Load() {
		<-that.release
	}

	return entity.Prediction{Cell: entity.Center, Tag: entity.TagScored, Source: entity.SourceMinimax}
}

func TestRoomManager_PredictionsAcrossGames(t *testing.T) {
	t.Run("Late prediction of a reset game is dropped", func(t *testing.T) {
		// Given: alice's move is waiting for its prediction
		ctx := context.Background()
		manager := newTestManager(t)
		gate := newGatedPredictor()
		gate.closed.Store(true)
		manager.predictor.EXPECT().Predict(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(gate.predict)
		manager.seatTwo(t, "ABCD")
		manager.play(t, "ABCD", 0)

		// When: the room is reset before the prediction arrives
		_, err := manager.ResetRoom(ctx, "ABCD")
		require.NoError(t, err)
		close(gate.release)
		manager.Wait()

		// Then: nobody sees the stale suggestion
		assert.Zero(t, manager.notifier.count(EventPrediction))
	})

	t.Run("Algorithm tag does not leak into the next game", func(t *testing.T) {
		// Given: a first game whose predictions all arrived
		ctx := context.Background()
		manager := newTestManager(t)
		gate := newGatedPredictor()
		manager.predictor.EXPECT().Predict(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(gate.predict)
		manager.seatTwo(t, "ABCD")

		var (
			mu         sync.Mutex
			algorithms []string
		)
		manager.recorder.EXPECT().
			RecordGame(mock.Anything, mock.Anything, mock.Anything).
			Run(func(_ context.Context, _ entity.Room, algorithm string) {
				mu.Lock()
				defer mu.Unlock()
				algorithms = append(algorithms, algorithm)
			}).
			Twice()

		for _, cell := range []int{0, 3, 1, 4, 2} {
			manager.play(t, "ABCD", cell)
			manager.Wait()
		}

		// When: a new game is finished before any of its predictions arrive
		_, err := manager.NewGame(ctx, "ABCD")
		require.NoError(t, err)
		gate.closed.Store(true)
		manager.play(t, "ABCD", 0, 3, 1, 4, 2)
		close(gate.release)
		manager.Wait()

		// Then: only the first game is tagged with the prediction source
		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, []string{string(entity.SourceMinimax), ""}, algorithms)
	})
}

func TestRoomManager_ConcurrentRooms(t *testing.T) {
	// Given: many rooms played at the same time
	manager := newTestManager(t)
	manager.expectPredictions()
	manager.recorder.EXPECT().RecordGame(mock.Anything, mock.Anything, mock.Anything)

	const rooms = 20

	var wg sync.WaitGroup
	for i := range rooms {
		wg.Add(1)
		go func() {
			defer wg.Done()

			ctx := context.Background()
			code := fmt.Sprintf("ROOM%d", i)
			x, o := code+"-x", code+"-o"

			_, _ = manager.JoinRoom(ctx, x, code, false)
			_, _ = manager.JoinRoom(ctx, o, code, false)

			// X wins on the top row
			for _, step := range []struct {
				player string
				cell   int
			}{{x, 0}, {o, 3}, {x, 1}, {o, 4}, {x, 2}} {
				_, _ = manager.MakeMove(ctx, step.player, code, step.cell)
			}
		}()
	}

	// When: every game has finished
	wg.Wait()
	manager.Wait()

	// Then: each room holds exactly one X win
	summaries := manager.Rooms()
	require.Len(t, summaries, rooms)
	for _, summary := range summaries {
		assert.Equal(t, entity.Scores{X: 1}, summary.Scores, summary.Code)
		assert.Equal(t, entity.StatusOver, summary.Status, summary.Code)
	}
	assert.Equal(t, rooms, manager.notifier.count(EventGameOver))
}
