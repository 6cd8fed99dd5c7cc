package entity

// Tag describes why a cell was suggested.
type Tag string

const (
	TagWin       Tag = "win"
	TagBlock     Tag = "block"
	TagCenter    Tag = "center"
	TagCorner    Tag = "corner"
	TagStrategic Tag = "strategic"
	TagDefault   Tag = "default"
	TagScored    Tag = "scored"
	TagWeighted  Tag = "weighted"
	TagRandom    Tag = "random"
)

// Source names the algorithm that produced a suggestion.
type Source string

const (
	SourceScan       Source = "scan"
	SourcePositional Source = "positional"
	SourceMinimax    Source = "minimax"
	SourceHistorical Source = "historical"
	SourceFallback   Source = "fallback"
)

// Prediction is an advisory next move. Cell is NoCell when the board has no legal move.
type Prediction struct {
	Cell       int     `json:"cellIndex"`
	Tag        Tag     `json:"confidenceTag"`
	Source     Source  `json:"sourceTag"`
	Confidence float64 `json:"confidence"`
	Score      int     `json:"score,omitempty"`
	League     League  `json:"leagueTier,omitempty"`
}

func NoMove(source Source) Prediction {
	return Prediction{Cell: NoCell, Tag: TagDefault, Source: source}
}

func (that Prediction) HasMove() bool {
	return that.Cell >= 0 && that.Cell < BoardSize
}
