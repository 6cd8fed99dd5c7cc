package usecase

import "github.com/rocketscienceinc/tictactoe-rooms/internal/entity"

const (
	EventPlayerJoined = "playerJoined"
	EventMoveMade     = "moveMade"
	EventPrediction   = "prediction"
	EventPlayerTurn   = "playerTurn"
	EventGameOver     = "gameOver"
	EventBoardReset   = "boardReset"
	EventGameStarted  = "gameStarted"
	EventPlayerLeft   = "playerLeft"
	EventInvalidMove  = "invalidMove"
	EventError        = "error"
)

const NoWinner = "none"

type PlayerJoinedPayload struct {
	RoomCode    string        `json:"roomId"`
	PlayerID    string        `json:"playerId"`
	Seat        entity.Mark   `json:"seat"`
	Seats       entity.Seats  `json:"seats"`
	Board       entity.Board  `json:"board"`
	Turn        entity.Mark   `json:"turn"`
	Scores      entity.Scores `json:"scores"`
	PlayerCount int           `json:"playerCount"`
}

type MoveMadePayload struct {
	RoomCode  string        `json:"roomId"`
	CellIndex int           `json:"cellIndex"`
	Mark      entity.Mark   `json:"mark"`
	PlayerID  string        `json:"playerId"`
	Board     entity.Board  `json:"board"`
	MoveLog   []entity.Move `json:"moveLog"`
}

type PredictionPayload struct {
	entity.Prediction

	RoomCode   string `json:"roomId"`
	MoveNumber int    `json:"moveNumber"`
}

type PlayerTurnPayload struct {
	RoomCode string      `json:"roomId"`
	Turn     entity.Mark `json:"turn"`
}

type GameOverPayload struct {
	RoomCode    string        `json:"roomId"`
	WinningMark string        `json:"winningMark"`
	Board       entity.Board  `json:"board"`
	Scores      entity.Scores `json:"scores"`
}

type BoardResetPayload struct {
	RoomCode string       `json:"roomId"`
	Board    entity.Board `json:"board"`
	Turn     entity.Mark  `json:"turn"`
}

type GameStartedPayload struct {
	RoomCode string        `json:"roomId"`
	Board    entity.Board  `json:"board"`
	Turn     entity.Mark   `json:"turn"`
	Scores   entity.Scores `json:"scores"`
}

type PlayerLeftPayload struct {
	RoomCode       string       `json:"roomId"`
	PlayerID       string       `json:"playerId"`
	RemainingCount int          `json:"remainingCount"`
	Seats          entity.Seats `json:"seats"`
}

type RoomSummary struct {
	Code        string            `json:"roomId"`
	Status      entity.RoomStatus `json:"status"`
	PlayerCount int               `json:"playerCount"`
	VsBot       bool              `json:"vsBot"`
	Scores      entity.Scores     `json:"scores"`
}

func winningMark(board entity.Board) string {
	if winner := board.Winner(); winner != entity.EmptyCell {
		return string(winner)
	}

	return NoWinner
}
