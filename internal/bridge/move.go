package bridge

// Move is one recorded step of an attempt.
type Move struct {
	Position  int // 0-indexed tile
	Direction Direction
	Correct   bool
}
