package entity

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
)

type RoomStatus string

const (
	StatusWaiting    RoomStatus = "waiting"
	StatusInProgress RoomStatus = "in_progress"
	StatusOver       RoomStatus = "over"
)

var ErrGameOver = errors.New("game is already over")

type Seats struct {
	X string `json:"X"`
	O string `json:"O"`
}

type Scores struct {
	X int `json:"X"`
	O int `json:"O"`
}

func (that *Scores) increment(mark Mark) {
	switch mark {
	case MarkX:
		that.X++
	case MarkO:
		that.O++
	}
}

func (that Scores) String() string {
	return fmt.Sprintf("X %d - O %d", that.X, that.O)
}

type Move struct {
	Position int       `json:"position"`
	Mark     Mark      `json:"mark"`
	PlayerID string    `json:"playerId"`
	At       time.Time `json:"timestamp"`
}

// Room holds the state of one game session. It does no locking; the owner
// serializes every call for a given room.
type Room struct {
	Code         string   `json:"code"`
	Board        Board    `json:"board"`
	Turn         Mark     `json:"turn"`
	Seats        Seats    `json:"seats"`
	Participants []string `json:"participants"`
	Scores       Scores   `json:"scores"`
	MoveLog      []Move   `json:"moveLog"`
	VsBot        bool     `json:"vsBot,omitempty"`
}

func NewRoom(code string) *Room {
	return &Room{
		Code:    code,
		Turn:    MarkX,
		MoveLog: []Move{},
	}
}

func (that *Room) Status() RoomStatus {
	switch {
	case that.Board.IsTerminal():
		return StatusOver
	case that.Seats.X == "" || that.Seats.O == "":
		return StatusWaiting
	default:
		return StatusInProgress
	}
}

// SeatOf returns the mark held by the player, or EmptyCell.
func (that *Room) SeatOf(playerID string) Mark {
	switch {
	case playerID == "":
		return EmptyCell
	case that.Seats.X == playerID:
		return MarkX
	case that.Seats.O == playerID:
		return MarkO
	default:
		return EmptyCell
	}
}

func (that *Room) PlayerAt(mark Mark) string {
	switch mark {
	case MarkX:
		return that.Seats.X
	case MarkO:
		return that.Seats.O
	default:
		return ""
	}
}

func (that *Room) HasParticipant(playerID string) bool {
	return slices.Contains(that.Participants, playerID)
}

func (that *Room) IsEmpty() bool {
	return len(that.Participants) == 0
}

// Join seats the player at the first open seat, X before O. A player already in the room keeps its seat.
func (that *Room) Join(playerID string) (Mark, error) {
	if that.HasParticipant(playerID) {
		return that.SeatOf(playerID), nil
	}

	var seat Mark

	switch {
	case that.Seats.X == "":
		that.Seats.X = playerID
		seat = MarkX
	case that.Seats.O == "":
		that.Seats.O = playerID
		seat = MarkO
	default:
		return EmptyCell, apperror.ErrRoomFull
	}

	that.Participants = append(that.Participants, playerID)

	return seat, nil
}

// SeatBot gives the O seat to the built-in opponent. The bot is never a participant.
func (that *Room) SeatBot() {
	that.VsBot = true
	that.Seats.O = BotID
}

// MakeMove validates and applies a move for the player. On a terminal result the
// winner's score is incremented and the turn stays put; otherwise the turn flips.
func (that *Room) MakeMove(playerID string, cell int, now time.Time) (Move, error) {
	seat := that.SeatOf(playerID)
	if seat == EmptyCell || seat != that.Turn {
		return Move{}, apperror.ErrNotYourTurn
	}

	if that.Board.IsTerminal() {
		return Move{}, fmt.Errorf("%w: %w", apperror.ErrInvalidMove, ErrGameOver)
	}

	board, err := that.Board.Place(cell, seat)
	if err != nil {
		return Move{}, err
	}

	move := Move{
		Position: cell,
		Mark:     seat,
		PlayerID: playerID,
		At:       now,
	}

	that.Board = board
	that.MoveLog = append(that.MoveLog, move)

	if that.Board.IsTerminal() {
		that.Scores.increment(that.Board.Winner())
		return move, nil
	}

	that.Turn = seat.Opponent()

	return move, nil
}

// Reset clears board, turn and move log. Scores and seats survive.
func (that *Room) Reset() {
	that.Board = Board{}
	that.Turn = MarkX
	that.MoveLog = []Move{}
}

// Leave removes the player and frees its seat. It reports whether the player was present.
func (that *Room) Leave(playerID string) bool {
	idx := slices.Index(that.Participants, playerID)
	if idx < 0 {
		return false
	}

	that.Participants = slices.Delete(that.Participants, idx, idx+1)

	switch playerID {
	case that.Seats.X:
		that.Seats.X = ""
	case that.Seats.O:
		that.Seats.O = ""
	}

	return true
}

// ResultFor reports the outcome of a terminal board from the seat's perspective.
func (that *Room) ResultFor(seat Mark) Result {
	switch that.Board.Winner() {
	case EmptyCell:
		return ResultDraw
	case seat:
		return ResultWin
	default:
		return ResultLoss
	}
}

// Snapshot returns a deep copy safe to hand to other goroutines.
func (that *Room) Snapshot() Room {
	snapshot := *that
	snapshot.Participants = slices.Clone(that.Participants)
	snapshot.MoveLog = slices.Clone(that.MoveLog)

	return snapshot
}
