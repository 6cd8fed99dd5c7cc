package entity

const (
	DefaultRating = 1000
	BotID         = "bot"
)

type Result string

const (
	ResultWin  Result = "win"
	ResultLoss Result = "loss"
	ResultDraw Result = "draw"
)

// Profile is the persisted view of a player: identity, rating and lifetime counters.
type Profile struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Rating      int    `json:"rating"`
	Wins        int    `json:"wins"`
	Losses      int    `json:"losses"`
	Draws       int    `json:"draws"`
	GamesPlayed int    `json:"games_played"`
}

func NewProfile(id, name string) *Profile {
	if name == "" {
		name = "Player-" + shortID(id)
	}

	return &Profile{
		ID:     id,
		Name:   name,
		Rating: DefaultRating,
	}
}

// Apply adds one finished game to the counters and moves the rating by the given delta.
// Rating never goes below zero.
func (that *Profile) Apply(result Result, delta int) {
	switch result {
	case ResultWin:
		that.Wins++
	case ResultLoss:
		that.Losses++
	case ResultDraw:
		that.Draws++
	}

	that.GamesPlayed++
	that.Rating = max(that.Rating+delta, 0)
}

func (that *Profile) League() League {
	return LeagueFor(that.Rating)
}

func IsBot(playerID string) bool {
	return playerID == BotID
}

func shortID(id string) string {
	if len(id) > 6 {
		return id[:6]
	}

	return id
}
