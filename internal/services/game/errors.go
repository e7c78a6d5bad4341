package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrRoundInProgress      GameError = "round already in progress"
	ErrInvalidPlayerCount   GameError = "invalid player count"
	ErrInvalidPlayerName    GameError = "invalid player or name"
	ErrHistoryNotFound      GameError = "no stored history found"
	ErrNilConfig            GameError = "config cannot be nil"
	ErrNilInput             GameError = "input cannot be nil"
	ErrInvalidMaxPlayers    GameError = "max players must be positive"
	ErrInvalidPhaseRange    GameError = "phase range is invalid"
	ErrInvalidPollInterval  GameError = "poll interval must be positive"
	ErrChannelCountMismatch GameError = "channel count must match max players"
)
