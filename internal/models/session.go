package models

// Session represents the configurable state of the game board between rounds
type Session struct {
	// NumberOfPlayers is how many slots take part in the next round
	NumberOfPlayers int

	// Slots holds every slot on the board, in slot order, including
	// slots that are not currently active
	Slots []Slot
}

// ActiveSlots returns the slots that take part in the next round
func (s *Session) ActiveSlots() []Slot {
	if s.NumberOfPlayers > len(s.Slots) {
		return s.Slots
	}
	return s.Slots[:s.NumberOfPlayers]
}
