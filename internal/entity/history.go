package entity

import "time"

// HistoryRecord is one move taken from a finished game, with the result it led to
// from the mover's perspective.
type HistoryRecord struct {
	Board      string    `json:"board_state" bson:"board_state"`
	NextMove   int       `json:"next_move" bson:"next_move"`
	Result     Result    `json:"result" bson:"result"`
	PlayerID   string    `json:"player_id" bson:"player_id"`
	SkillLevel int       `json:"skill_level" bson:"skill_level"`
	Algorithm  string    `json:"algorithm" bson:"algorithm"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

const winWeight = 1.5

// Weight ranks records during historical lookup: wins count one and a half times.
func (that HistoryRecord) Weight() float64 {
	if that.Result == ResultWin {
		return winWeight
	}

	return 1.0
}
