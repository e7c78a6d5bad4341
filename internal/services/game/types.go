package game

import (
	"time"

	"github.com/navadeep2604/Reflex-Rush/internal/common/clock"
	"github.com/navadeep2604/Reflex-Rush/internal/common/uuid"
	"github.com/navadeep2604/Reflex-Rush/internal/display"
	"github.com/navadeep2604/Reflex-Rush/internal/history"
	"github.com/navadeep2604/Reflex-Rush/internal/leaderboard"
	"github.com/navadeep2604/Reflex-Rush/internal/models"
	archiveRepo "github.com/navadeep2604/Reflex-Rush/internal/repositories/archive"
	historyRepo "github.com/navadeep2604/Reflex-Rush/internal/repositories/history"
	leaderboardRepo "github.com/navadeep2604/Reflex-Rush/internal/repositories/leaderboard"
	"github.com/navadeep2604/Reflex-Rush/internal/services/messaging"
	"github.com/navadeep2604/Reflex-Rush/internal/timing"
	"github.com/navadeep2604/Reflex-Rush/internal/touch"
)

// Game tuning defaults, matching the board firmware's constants
const (
	// DefaultMaxPlayers is the number of touch channels on the board
	DefaultMaxPlayers = 4

	// DefaultPollInterval is how often the sequencer polls channels
	// during the red and yellow phases
	DefaultPollInterval = 10 * time.Millisecond
)

// Default phase duration ranges, half-open [Min, Max)
var (
	DefaultRedRange    = PhaseRange{Min: 1000 * time.Millisecond, Max: 5000 * time.Millisecond}
	DefaultYellowRange = PhaseRange{Min: 500 * time.Millisecond, Max: 2000 * time.Millisecond}
	DefaultGreenRange  = PhaseRange{Min: 1000 * time.Millisecond, Max: 3000 * time.Millisecond}
)

// PhaseRange bounds a randomized phase duration, half-open [Min, Max)
type PhaseRange struct {
	Min time.Duration
	Max time.Duration
}

// Valid reports whether the range can be drawn from
func (r PhaseRange) Valid() bool {
	return r.Min > 0 && r.Min < r.Max
}

// Config holds configuration and dependencies for the game service
type Config struct {
	// MaxPlayers is the number of slots on the board.
	// Defaults to DefaultMaxPlayers when zero.
	MaxPlayers int

	// RedRange, YellowRange and GreenRange bound the randomized phase
	// durations. Zero values use the firmware defaults.
	RedRange    PhaseRange
	YellowRange PhaseRange
	GreenRange  PhaseRange

	// PollInterval is the sequencer's tick while waiting out a phase.
	// Defaults to DefaultPollInterval when zero.
	PollInterval time.Duration

	// Clock is the time source for phase waits and capture scoring
	Clock clock.Clock

	// UUID generates round identifiers for the archive
	UUID uuid.UUID

	// Roller draws the randomized phase durations
	Roller timing.Roller

	// Channels are the per-slot touch channels, in slot order.
	// Must hold exactly MaxPlayers channels.
	Channels []*touch.Channel

	// History is the in-memory bounded result log
	History *history.Log

	// Board is the in-memory best-time-per-slot store
	Board *leaderboard.Store

	// Device is the board output surface. Optional; defaults to a
	// no-op device.
	Device display.Device

	// Messaging fans result blocks and warnings out to connected
	// clients. Optional.
	Messaging messaging.Service

	// HistoryRepo persists the history blob. Optional; without it the
	// service runs with in-memory history only.
	HistoryRepo historyRepo.Repository

	// LeaderboardRepo persists the encoded leaderboard. Optional.
	LeaderboardRepo leaderboardRepo.Repository

	// ArchiveRepo stores completed rounds as structured rows. Optional.
	ArchiveRepo archiveRepo.Repository
}

// SelectPlayersInput holds parameters for setting the player count
type SelectPlayersInput struct {
	// Count is the requested number of players
	Count int
}

// SelectPlayersOutput holds the result of setting the player count
type SelectPlayersOutput struct {
	// Count is the number of players now active
	Count int
}

// SetPlayerNameInput holds parameters for renaming a slot
type SetPlayerNameInput struct {
	// Player is the one-based player number, as used on the wire
	Player int

	// Name is the new display name
	Name string
}

// SetPlayerNameOutput holds the result of renaming a slot
type SetPlayerNameOutput struct {
	// Player is the one-based player number that was renamed
	Player int

	// Name is the name now assigned
	Name string
}

// StartRoundInput holds parameters for running a round
type StartRoundInput struct{}

// StartRoundOutput holds the result of a completed round
type StartRoundOutput struct {
	// Round is the scored round, one result per active slot
	Round *models.Round

	// ResultBlock is the rendered multi-line result text
	ResultBlock string

	// HistoryTruncated is true if appending this round's block
	// restarted the history log
	HistoryTruncated bool
}

// GetSessionInput holds parameters for reading the session
type GetSessionInput struct{}

// GetSessionOutput holds the current session configuration
type GetSessionOutput struct {
	// Session is a copy of the current player configuration
	Session *models.Session
}

// GetHistoryInput holds parameters for reading the history
type GetHistoryInput struct {
	// ChunkSize overrides the transmission chunk size.
	// Non-positive uses the log's configured default.
	ChunkSize int
}

// GetHistoryOutput holds the accumulated history
type GetHistoryOutput struct {
	// Snapshot is the full history text
	Snapshot string

	// Chunks is the history split into transmission-sized pieces
	Chunks []string
}

// GetLeaderboardInput holds parameters for reading the leaderboard
type GetLeaderboardInput struct{}

// GetLeaderboardOutput holds the leaderboard rows
type GetLeaderboardOutput struct {
	// Entries are the slots with a recorded best time, in slot order
	Entries []leaderboard.Entry
}

// DeleteHistoryInput holds parameters for clearing the history
type DeleteHistoryInput struct{}

// DeleteHistoryOutput holds the result of clearing the history
type DeleteHistoryOutput struct{}
