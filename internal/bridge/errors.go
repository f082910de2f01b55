package bridge

import "errors"

// Errors returned by the rules engine. Callers match them with errors.Is;
// constructors wrap them with the offending value.
var (
	ErrInvalidBridgeSize      = errors.New("bridge size must be between 3 and 20")
	ErrInvalidDirectionSymbol = errors.New("no direction matches the symbol")
	ErrInvalidBridgeNumber    = errors.New("number cannot be converted to a direction")
	ErrGameNotMovable         = errors.New("cannot move in the current game status")
	ErrGameNotRetryable       = errors.New("cannot retry in the current game status")
)
