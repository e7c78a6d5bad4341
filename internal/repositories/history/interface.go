package history

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/navadeep2604/Reflex-Rush/internal/repositories/history Repository

// Repository defines the interface for persisting the game history blob
type Repository interface {
	// Load retrieves the stored history contents
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)

	// Save stores the full history contents, replacing what was there
	Save(ctx context.Context, input *SaveInput) error

	// Delete removes the stored history
	Delete(ctx context.Context, input *DeleteInput) error
}
