package leaderboard

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/navadeep2604/Reflex-Rush/internal/repositories/leaderboard Repository

// Repository defines the interface for persisting the encoded leaderboard
type Repository interface {
	// Load retrieves the stored leaderboard snapshot
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)

	// Save stores the encoded leaderboard, replacing what was there
	Save(ctx context.Context, input *SaveInput) error
}
