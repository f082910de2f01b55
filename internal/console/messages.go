package console

// Player-facing text.
const (
	msgGameStart      = "Bridge crossing game started."
	msgEnterSize      = "Enter the bridge length."
	msgEnterMove      = "Select the tile to move to. (Up: U, Down: D)"
	msgEnterCommand   = "Enter whether to retry the game. (Retry: R, Quit: Q)"
	msgFinalResult    = "Final game result"
	msgResultFormat   = "Game result: %s"
	msgAttemptsFormat = "Total attempts: %d"
	msgSuccess        = "Success"
	msgFailure        = "Failure"

	errPrefix          = "[ERROR] "
	errNotNumber       = "Bridge length must be a number."
	errInvalidSize     = "Bridge length must be between 3 and 20."
	errInvalidMove     = "Enter U to move up or D to move down."
	errInvalidCommand  = "Enter R to retry or Q to quit."
	errCannotMove      = "You cannot move in the current game state."
	errUnexpectedInput = "Unexpected error: "
)
