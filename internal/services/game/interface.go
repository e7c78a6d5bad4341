package game

import (
	"context"

	"github.com/navadeep2604/Reflex-Rush/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/navadeep2604/Reflex-Rush/internal/services/game Service

// Service defines the interface for game operations
type Service interface {
	// SelectPlayers sets how many slots take part in the next round
	SelectPlayers(ctx context.Context, input *SelectPlayersInput) (*SelectPlayersOutput, error)

	// SetPlayerName renames an active slot
	SetPlayerName(ctx context.Context, input *SetPlayerNameInput) (*SetPlayerNameOutput, error)

	// StartRound runs one full red/yellow/green sequence and returns the
	// scored result. It blocks until the round is over.
	StartRound(ctx context.Context, input *StartRoundInput) (*StartRoundOutput, error)

	// GetSession returns the current player configuration
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// GetHistory returns the accumulated result history
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)

	// GetLeaderboard returns the best recorded time per slot
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// DeleteHistory clears the stored history
	DeleteHistory(ctx context.Context, input *DeleteHistoryInput) (*DeleteHistoryOutput, error)

	// TriggerTouch fires a touch edge on a slot's channel. It is the
	// interrupt analog: callable from any goroutine, never blocks, and
	// reports whether the edge was latched.
	TriggerTouch(slot int) bool

	// Phase returns the traffic light phase currently showing
	Phase() models.Phase
}
