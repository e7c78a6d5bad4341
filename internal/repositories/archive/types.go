package archive

import (
	"github.com/navadeep2604/Reflex-Rush/internal/models"
)

// SaveRoundInput holds parameters for archiving a round
type SaveRoundInput struct {
	// Round is the completed round to store
	Round *models.Round
}

// RecentRoundsInput holds parameters for listing recent rounds
type RecentRoundsInput struct {
	// Limit caps the number of rounds returned.
	// Defaults to DefaultRecentLimit when zero or negative.
	Limit int
}

// RecentRoundsOutput holds the result of listing recent rounds
type RecentRoundsOutput struct {
	// Rounds are the stored rounds, newest first
	Rounds []*models.Round
}
