package tictactoe

import "github.com/rocketscienceinc/tictactoe-rooms/internal/entity"

type Phase string

const (
	PhaseEarly Phase = "early"
	PhaseMid   Phase = "mid"
	PhaseLate  Phase = "late"
)

const (
	noviceSkill       = 1000
	intermediateSkill = 1500
)

type Analysis struct {
	Prediction      entity.Prediction `json:"prediction"`
	MovesLeft       int               `json:"movesLeft"`
	Phase           Phase             `json:"currentPhase"`
	Winning         bool              `json:"isWinningPosition"`
	Losing          bool              `json:"isLosingPosition"`
	Recommendations []string          `json:"recommendations"`
}

// Analyze suggests a move for the mover and reports game progress with advice tuned to
// the player's skill. Winning and Losing are judged for O, the engine's side.
func Analyze(board entity.Board, skillLevel int) Analysis {
	movesLeft := len(board.EmptyCells())
	winner := board.Winner()

	analysis := Analysis{
		Prediction:      MinimaxFor(board, skillLevel, board.ToMove()),
		MovesLeft:       movesLeft,
		Phase:           phaseOf(movesLeft),
		Winning:         winner == entity.MarkO,
		Losing:          winner == entity.MarkX,
		Recommendations: []string{},
	}

	switch {
	case analysis.Winning:
		analysis.Recommendations = append(analysis.Recommendations, "Winning move available!")
	case analysis.Losing:
		analysis.Recommendations = append(analysis.Recommendations, "Defensive move needed!")
	case movesLeft == 1:
		analysis.Recommendations = append(analysis.Recommendations, "Final move - choose carefully!")
	}

	switch {
	case skillLevel < noviceSkill:
		analysis.Recommendations = append(analysis.Recommendations, "Focus on blocking opponent's winning moves")
	case skillLevel < intermediateSkill:
		analysis.Recommendations = append(analysis.Recommendations, "Look for fork opportunities")
	default:
		analysis.Recommendations = append(analysis.Recommendations, "Consider advanced strategies like forcing draws")
	}

	return analysis
}

func phaseOf(movesLeft int) Phase {
	switch {
	case movesLeft > 6:
		return PhaseEarly
	case movesLeft > 3:
		return PhaseMid
	default:
		return PhaseLate
	}
}
