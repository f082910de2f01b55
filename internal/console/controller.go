// Package console runs the bridge game as a line-based conversation on an
// input and output stream: the classic way to play it in a plain terminal.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bridge/internal/bridge"
)

// state is a step of the controller loop.
type state int

const (
	stateSetup state = iota
	stateMoving
	stateRetryPrompt
	stateDone
)

// Controller drives one bridge game over a reader and writer.
type Controller struct {
	maker  *bridge.Maker
	in     *bufio.Scanner
	out    io.Writer
	logger *log.Logger
	marks  Marks

	// Size skips the length prompt when non-zero.
	Size int

	game *bridge.Game
}

// NewController creates a controller reading answers from in and writing
// prompts and maps to out.
func NewController(maker *bridge.Maker, in io.Reader, out io.Writer, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{
		maker:  maker,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
		marks:  DefaultMarks(),
	}
}

// SetMarks changes the map marks.
func (c *Controller) SetMarks(m Marks) {
	c.marks = m
}

// Game returns the game being played, or nil before setup.
func (c *Controller) Game() *bridge.Game {
	return c.game
}

// Run plays one session until the player wins or quits, then prints the
// summary and returns the final result. Invalid answers are reported and the
// question repeated. Running out of input ends the session with an error.
func (c *Controller) Run() (bridge.Result, error) {
	c.println(msgGameStart)

	st := stateSetup
	for st != stateDone {
		var err error
		switch st {
		case stateSetup:
			st, err = c.setup()
		case stateMoving:
			st, err = c.move()
		case stateRetryPrompt:
			st, err = c.retryPrompt()
		}
		if err != nil {
			return bridge.Result{}, err
		}
	}

	c.printResult()
	return c.game.Result(), nil
}

func (c *Controller) setup() (state, error) {
	size := c.Size
	if size == 0 {
		c.println("")
		c.println(msgEnterSize)
		line, err := c.readLine()
		if err != nil {
			return stateDone, err
		}
		size, err = ParseSize(line)
		if err != nil {
			c.printError(err)
			return stateSetup, nil
		}
	}

	b, err := c.maker.MakeBridge(size)
	if err != nil {
		if c.Size != 0 {
			// Nothing is read for a preset size, so asking again would not help.
			return stateDone, err
		}
		c.printError(err)
		return stateSetup, nil
	}

	c.game = bridge.NewGame(b)
	c.logger.Debug("bridge created", "size", size)
	return stateMoving, nil
}

func (c *Controller) move() (state, error) {
	c.println("")
	c.println(msgEnterMove)
	line, err := c.readLine()
	if err != nil {
		return stateDone, err
	}

	dir, err := ParseMove(line)
	if err != nil {
		c.printError(err)
		return stateMoving, nil
	}

	m, err := c.game.Move(dir)
	if err != nil {
		c.printError(err)
		return c.next(), nil
	}
	c.logger.Debug("move", "position", m.Position, "direction", m.Direction, "correct", m.Correct)
	c.println(RenderMap(c.game.Moves(), c.marks))

	return c.next(), nil
}

func (c *Controller) retryPrompt() (state, error) {
	c.println("")
	c.println(msgEnterCommand)
	line, err := c.readLine()
	if err != nil {
		return stateDone, err
	}

	cmd, err := ParseCommand(line)
	if err != nil {
		c.printError(err)
		return stateRetryPrompt, nil
	}
	if cmd == CommandQuit {
		c.logger.Debug("quit", "attempts", c.game.Attempts())
		return stateDone, nil
	}

	if err := c.game.Retry(); err != nil {
		return stateDone, err
	}
	c.logger.Debug("retry", "attempt", c.game.Attempts())
	return stateMoving, nil
}

// next picks the loop state from the game status.
func (c *Controller) next() state {
	switch c.game.Status() {
	case bridge.StatusLose:
		return stateRetryPrompt
	case bridge.StatusWin:
		return stateDone
	default:
		return stateMoving
	}
}

func (c *Controller) printResult() {
	outcome := msgFailure
	if c.game.Finished() {
		outcome = msgSuccess
	}

	c.println("")
	c.println(msgFinalResult)
	c.println(RenderMap(c.game.Moves(), c.marks))
	c.println("")
	c.println(fmt.Sprintf(msgResultFormat, outcome))
	c.println(fmt.Sprintf(msgAttemptsFormat, c.game.Attempts()))
}

// printError shows a recoverable error as a player-facing message.
func (c *Controller) printError(err error) {
	c.logger.Debug("rejected input", "error", err)
	c.println(errPrefix + ErrorMessage(err))
}

// ErrorMessage maps an error to player-facing text.
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrNotNumber):
		return errNotNumber
	case errors.Is(err, bridge.ErrInvalidBridgeSize):
		return errInvalidSize
	case errors.Is(err, bridge.ErrInvalidDirectionSymbol):
		return errInvalidMove
	case errors.Is(err, ErrCommandNotFound):
		return errInvalidCommand
	case errors.Is(err, bridge.ErrGameNotMovable), errors.Is(err, bridge.ErrGameNotRetryable):
		return errCannotMove
	default:
		return errUnexpectedInput + err.Error()
	}
}

func (c *Controller) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("console: read input: %w", err)
		}
		return "", fmt.Errorf("console: %w", io.ErrUnexpectedEOF)
	}
	return c.in.Text(), nil
}

func (c *Controller) println(s string) {
	fmt.Fprintln(c.out, s)
}
