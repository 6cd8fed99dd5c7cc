package entity

type League string

const (
	LeagueBronze   League = "BRONZE"
	LeagueSilver   League = "SILVER"
	LeagueGold     League = "GOLD"
	LeaguePlatinum League = "PLATINUM"
	LeagueDiamond  League = "DIAMOND"
)

type leagueRange struct {
	league   League
	min, max int
}

// inclusive on both ends
var leagueTable = []leagueRange{
	{LeagueBronze, 0, 1000},
	{LeagueSilver, 1001, 2000},
	{LeagueGold, 2001, 3000},
	{LeaguePlatinum, 3001, 4000},
	{LeagueDiamond, 4001, 5000},
}

// LeagueFor maps a rating to its tier. Ratings outside every range are BRONZE.
func LeagueFor(rating int) League {
	for _, r := range leagueTable {
		if rating >= r.min && rating <= r.max {
			return r.league
		}
	}

	return LeagueBronze
}
