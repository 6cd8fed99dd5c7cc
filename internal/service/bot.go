package service

import (
	"errors"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/tictactoe"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService struct {
	skillLevel int
}

func NewBotService(skillLevel int) *BotService {
	return &BotService{
		skillLevel: skillLevel,
	}
}

// ChooseCell picks the bot's reply for mark with the minimax engine.
func (that *BotService) ChooseCell(board entity.Board, mark entity.Mark) (int, error) {
	prediction := tictactoe.MinimaxFor(board, that.skillLevel, mark)
	if !prediction.HasMove() {
		return entity.NoCell, ErrNoAvailableMoves
	}

	return prediction.Cell, nil
}
