package models

import "fmt"

// Slot represents one of the fixed player positions on the board
type Slot struct {
	// Index is the zero-based position of the slot
	Index int

	// Name is the display name assigned to the slot
	Name string
}

// DefaultSlotName returns the name a slot carries before anyone renames it
func DefaultSlotName(index int) string {
	return fmt.Sprintf("Player %d", index+1)
}
