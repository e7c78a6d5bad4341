package models

import "time"

// LeaderboardEntry represents the best recorded reaction for one slot
type LeaderboardEntry struct {
	// Name is the player name that set the best time
	Name string

	// Best is the fastest valid reaction recorded for the slot.
	// A zero value means the slot has no recorded time yet.
	Best time.Duration
}

// HasBest reports whether the entry holds a recorded time
func (e LeaderboardEntry) HasBest() bool {
	return e.Best > 0
}
