package bridge

// Status is the lifecycle state of a game.
type Status uint8

const (
	StatusNone    Status = iota // not started
	StatusRunning               // accepting moves
	StatusLose                  // last move was wrong; retry or quit pending
	StatusWin                   // crossed the whole bridge
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusNone:
		return "None"
	case StatusRunning:
		return "Running"
	case StatusLose:
		return "Lose"
	case StatusWin:
		return "Win"
	default:
		return "Unknown"
	}
}
