package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-bridge/internal/bridge"
)

// Command is the answer to the retry prompt.
type Command int

const (
	CommandRetry Command = iota
	CommandQuit
)

// External command symbols.
const (
	SymbolRetry = "R"
	SymbolQuit  = "Q"
)

// Input errors. Direction and size errors come from the bridge package.
var (
	ErrNotNumber       = errors.New("input is not a number")
	ErrCommandNotFound = errors.New("unsupported command")
)

// ParseSize parses a bridge length. Surrounding whitespace is ignored; the
// range check is left to the bridge package.
func ParseSize(line string) (int, error) {
	trimmed := strings.TrimSpace(line)
	size, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumber, trimmed)
	}
	return size, nil
}

// ParseMove parses a direction symbol. Line endings are stripped; the symbol
// itself must match exactly.
func ParseMove(line string) (bridge.Direction, error) {
	return bridge.DirectionOf(strings.TrimRight(line, "\r\n"))
}

// ParseCommand parses the retry prompt answer.
func ParseCommand(line string) (Command, error) {
	switch strings.TrimRight(line, "\r\n") {
	case SymbolRetry:
		return CommandRetry, nil
	case SymbolQuit:
		return CommandQuit, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrCommandNotFound, line)
	}
}
