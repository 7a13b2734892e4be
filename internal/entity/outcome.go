package entity

const (
	StatusInProgress = "in_progress"
	StatusWon        = "won"
	StatusDraw       = "draw"
)

// Outcome is always derived from a Board, see DeriveOutcome.
type Outcome struct {
	Status string
	Winner Player
}

func InProgress() Outcome {
	return Outcome{Status: StatusInProgress}
}

func Won(winner Player) Outcome {
	return Outcome{Status: StatusWon, Winner: winner}
}

func Draw() Outcome {
	return Outcome{Status: StatusDraw}
}

func (that Outcome) IsInProgress() bool {
	return that.Status == StatusInProgress
}

func (that Outcome) IsWon() bool {
	return that.Status == StatusWon
}

func (that Outcome) IsDraw() bool {
	return that.Status == StatusDraw
}

func (that Outcome) String() string {
	switch that.Status {
	case StatusWon:
		return "won(" + that.Winner.String() + ")"
	case StatusDraw:
		return "draw"
	default:
		return "in progress"
	}
}
