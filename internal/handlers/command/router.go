package command

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/navadeep2604/Reflex-Rush/internal/services/game"
)

// Wire responses. The command set is closed and case-sensitive; every
// accepted line yields exactly one of these, except START whose result
// block is broadcast once the round finishes.
const (
	respGameStarted        = "OK: Game started"
	respGameHistory        = "OK: Game history"
	respLeaderboard        = "OK: Leaderboard"
	respHistoryDeleted     = "OK: History deleted"
	respNoHistory          = "No history file found"
	respInvalidPlayerCount = "ERROR: Invalid player count"
	respInvalidPlayerName  = "ERROR: Invalid player or name"
	respUnknownCommand     = "ERROR: Unknown command"
)

// Config holds configuration for the command router
type Config struct {
	// GameService handles the dispatched operations
	GameService game.Service

	// RemoteStart controls whether START is honored over the wire.
	// The local menu can always start a round; the remote path can be
	// administratively disabled.
	RemoteStart bool
}

// Router translates inbound command lines into game service calls
type Router struct {
	game        game.Service
	remoteStart bool
}

// NewRouter creates a new command router
func NewRouter(cfg *Config) (*Router, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	return &Router{
		game:        cfg.GameService,
		remoteStart: cfg.RemoteStart,
	}, nil
}

// HandleLine dispatches one inbound line and returns the responses to
// send back. A nil slice means no response: blank lines, and START
// when the remote path is disabled.
func (r *Router) HandleLine(ctx context.Context, line string) []string {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	switch {
	case strings.HasPrefix(line, "SELECT_PLAYERS_"):
		return r.selectPlayers(ctx, strings.TrimPrefix(line, "SELECT_PLAYERS_"))

	case strings.HasPrefix(line, "SET_PLAYER_"):
		return r.setPlayerName(ctx, strings.TrimPrefix(line, "SET_PLAYER_"))

	case line == "START":
		return r.start(ctx)

	case line == "VIEW_HISTORY":
		return r.viewHistory(ctx)

	case line == "VIEW_LEADERBOARD":
		return r.viewLeaderboard(ctx)

	case line == "DELETE_HISTORY":
		return r.deleteHistory(ctx)

	default:
		return []string{respUnknownCommand}
	}
}

func (r *Router) selectPlayers(ctx context.Context, arg string) []string {
	// Strict parse: trailing garbage after the count is an error, not
	// a shorter number.
	count, err := strconv.Atoi(arg)
	if err != nil {
		return []string{respInvalidPlayerCount}
	}

	out, err := r.game.SelectPlayers(ctx, &game.SelectPlayersInput{Count: count})
	if err != nil {
		return []string{respInvalidPlayerCount}
	}

	return []string{fmt.Sprintf("OK: Players set to %d", out.Count)}
}

// setPlayerName parses "<i> <name>" or "<i>_<name>": a single digit,
// one separator character, then the name.
func (r *Router) setPlayerName(ctx context.Context, arg string) []string {
	if len(arg) < 3 || arg[0] < '0' || arg[0] > '9' {
		return []string{respInvalidPlayerName}
	}
	if arg[1] != ' ' && arg[1] != '_' {
		return []string{respInvalidPlayerName}
	}

	player := int(arg[0] - '0')
	name := arg[2:]

	out, err := r.game.SetPlayerName(ctx, &game.SetPlayerNameInput{
		Player: player,
		Name:   name,
	})
	if err != nil {
		return []string{respInvalidPlayerName}
	}

	return []string{fmt.Sprintf("OK: Player %d set to %s", out.Player, out.Name)}
}

func (r *Router) start(ctx context.Context) []string {
	if !r.remoteStart {
		log.Printf("command: remote START ignored, disabled by configuration")
		return nil
	}

	// The round outlives the command that started it. Its result block
	// reaches clients through the messaging hub, not this response.
	go func() {
		if _, err := r.game.StartRound(context.WithoutCancel(ctx), &game.StartRoundInput{}); err != nil {
			log.Printf("command: round failed to run: %v", err)
		}
	}()

	return []string{respGameStarted}
}

func (r *Router) viewHistory(ctx context.Context) []string {
	out, err := r.game.GetHistory(ctx, &game.GetHistoryInput{})
	if err != nil {
		log.Printf("command: failed to read history: %v", err)
		return []string{respNoHistory}
	}

	responses := make([]string, 0, len(out.Chunks)+1)
	responses = append(responses, respGameHistory)
	responses = append(responses, out.Chunks...)
	return responses
}

func (r *Router) viewLeaderboard(ctx context.Context) []string {
	out, err := r.game.GetLeaderboard(ctx, &game.GetLeaderboardInput{})
	if err != nil {
		log.Printf("command: failed to read leaderboard: %v", err)
		return []string{respLeaderboard}
	}

	responses := make([]string, 0, len(out.Entries)+1)
	responses = append(responses, respLeaderboard)
	for _, entry := range out.Entries {
		responses = append(responses, entry.Line())
	}
	return responses
}

func (r *Router) deleteHistory(ctx context.Context) []string {
	if _, err := r.game.DeleteHistory(ctx, &game.DeleteHistoryInput{}); err != nil {
		return []string{respNoHistory}
	}

	return []string{respHistoryDeleted}
}
