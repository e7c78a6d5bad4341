package tui

import (
	"github.com/navadeep2604/Reflex-Rush/internal/models"
)

// displayEvent carries board output from the round goroutine into the
// bubbletea update loop
type displayEvent struct {
	phase    models.Phase
	results  string
	message  string
	hasPhase bool
}

// Screen implements display.Device by feeding events into the running
// tea program. Pushes never block: if the UI falls behind, stale
// frames are dropped rather than stalling the sequencer.
type Screen struct {
	events chan displayEvent
}

// NewScreen creates the board display surface for the terminal UI
func NewScreen() *Screen {
	return &Screen{
		events: make(chan displayEvent, 16),
	}
}

func (s *Screen) ShowMessage(text string) {
	s.push(displayEvent{message: text})
}

func (s *Screen) ShowMenu(options []string, selected int) {
	// The model renders the menu itself; nothing to forward.
}

func (s *Screen) ShowPhase(phase models.Phase) {
	s.push(displayEvent{phase: phase, hasPhase: true})
}

func (s *Screen) ShowResults(block string) {
	s.push(displayEvent{results: block})
}

func (s *Screen) push(event displayEvent) {
	select {
	case s.events <- event:
	default:
	}
}
