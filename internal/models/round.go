package models

import "time"

// Round represents one completed run of the traffic light sequence
type Round struct {
	// ID is the unique identifier for the round
	ID string

	// PlayedAt is when the round finished
	PlayedAt time.Time

	// Results contains one entry per active slot, in slot order
	Results []SlotResult
}

// SlotResult represents one player's scored result within a round
type SlotResult struct {
	// Slot is the zero-based player position
	Slot int

	// Name is the player name at the time the round was played
	Name string

	// Outcome is the scored classification for the slot
	Outcome Outcome
}
