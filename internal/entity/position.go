package entity

// Position is a solved search node: its score normalized to depth 0 and the move chosen there.
type Position struct {
	Score int   `json:"score"`
	Move  *Move `json:"move,omitempty"`
}
