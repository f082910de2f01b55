package bridge

import "fmt"

// Game is the rules engine for one play session over a fixed bridge.
// It is not safe for concurrent use; one caller drives it.
type Game struct {
	bridge   *Bridge
	history  []Move
	status   Status
	attempts int
}

// Result is a snapshot of a game, used for summaries and persistence.
type Result struct {
	Size     int
	Layout   string
	Won      bool
	Attempts int
	Moves    []Move
}

// NewGame starts a game on b with an empty history.
func NewGame(b *Bridge) *Game {
	return &Game{
		bridge:   b,
		history:  make([]Move, 0, b.Len()),
		status:   StatusRunning,
		attempts: 1,
	}
}

// Move steps onto the next tile on side d and records the outcome.
// A wrong side loses the attempt; a correct step onto the last tile wins.
func (g *Game) Move(d Direction) (Move, error) {
	if g.status != StatusRunning {
		return Move{}, fmt.Errorf("%w: status is %s", ErrGameNotMovable, g.status)
	}

	position := len(g.history)
	m := Move{
		Position:  position,
		Direction: d,
		Correct:   g.bridge.IsCorrect(position, d),
	}
	g.history = append(g.history, m)

	switch {
	case !m.Correct:
		g.status = StatusLose
	case position+1 == g.bridge.Len():
		g.status = StatusWin
	}
	return m, nil
}

// Retry discards the current attempt and restarts at the first tile of the
// same bridge. Only a lost attempt can be retried.
func (g *Game) Retry() error {
	if g.status != StatusLose {
		return fmt.Errorf("%w: status is %s", ErrGameNotRetryable, g.status)
	}
	g.history = g.history[:0]
	g.status = StatusRunning
	g.attempts++
	return nil
}

// Status returns the current status.
func (g *Game) Status() Status {
	return g.status
}

// Moves returns a copy of the current attempt's history.
func (g *Game) Moves() []Move {
	cp := make([]Move, len(g.history))
	copy(cp, g.history)
	return cp
}

// Position returns the index of the next tile to step on.
func (g *Game) Position() int {
	return len(g.history)
}

// Attempts returns the number of attempts so far (retries + 1).
func (g *Game) Attempts() int {
	return g.attempts
}

// Bridge returns the bridge being crossed.
func (g *Game) Bridge() *Bridge {
	return g.bridge
}

// Finished reports whether the bridge has been crossed.
func (g *Game) Finished() bool {
	return g.status == StatusWin
}

// Result returns a snapshot of the game.
func (g *Game) Result() Result {
	return Result{
		Size:     g.bridge.Len(),
		Layout:   g.bridge.Symbols(),
		Won:      g.status == StatusWin,
		Attempts: g.attempts,
		Moves:    g.Moves(),
	}
}
