package entity

type Outcome string

const (
	OutcomeNone  Outcome = ""
	OutcomeXWins Outcome = "x-wins"
	OutcomeOWins Outcome = "o-wins"
	OutcomeDraw  Outcome = "draw"
)

// OutcomeFor returns the winning outcome for mark.
func OutcomeFor(mark Mark) Outcome {
	switch mark {
	case MarkX:
		return OutcomeXWins
	case MarkO:
		return OutcomeOWins
	default:
		return OutcomeNone
	}
}

// Tally accumulates round results for the whole session.
type Tally struct {
	XWins int
	OWins int
	Draws int
}

// Record counts one finished round. OutcomeNone is ignored.
func (that *Tally) Record(outcome Outcome) {
	switch outcome {
	case OutcomeXWins:
		that.XWins++
	case OutcomeOWins:
		that.OWins++
	case OutcomeDraw:
		that.Draws++
	case OutcomeNone:
	}
}

func (that *Tally) Rounds() int {
	return that.XWins + that.OWins + that.Draws
}
