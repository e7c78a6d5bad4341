package archive

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/navadeep2604/Reflex-Rush/internal/repositories/archive Repository

// Repository defines the interface for the relational round archive.
// Unlike the history blob, the archive keeps every round as structured
// rows so results survive history truncation.
type Repository interface {
	// SaveRound stores a completed round and all of its results
	SaveRound(ctx context.Context, input *SaveRoundInput) error

	// RecentRounds retrieves the most recently played rounds, newest first
	RecentRounds(ctx context.Context, input *RecentRoundsInput) (*RecentRoundsOutput, error)
}
