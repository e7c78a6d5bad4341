package display

import (
	"log"

	"github.com/navadeep2604/Reflex-Rush/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_device.go github.com/navadeep2604/Reflex-Rush/internal/display Device

// Device is the board-facing output surface. Implementations render to
// whatever the build is driving: the terminal front-end, a log, or
// nothing at all.
type Device interface {
	// ShowMessage displays a short status message
	ShowMessage(text string)

	// ShowMenu displays the menu options with one highlighted
	ShowMenu(options []string, selected int)

	// ShowPhase displays the current traffic light phase
	ShowPhase(phase models.Phase)

	// ShowResults displays a round's result block
	ShowResults(block string)
}

// Noop is a Device that drops all output
type Noop struct{}

func (Noop) ShowMessage(text string) {}

func (Noop) ShowMenu(options []string, selected int) {}

func (Noop) ShowPhase(phase models.Phase) {}

func (Noop) ShowResults(block string) {}

// LogDevice is a Device that mirrors board output to the process log,
// used when running without a terminal front-end
type LogDevice struct{}

func (LogDevice) ShowMessage(text string) {
	log.Printf("display: %s", text)
}

func (LogDevice) ShowMenu(options []string, selected int) {
	for i, option := range options {
		marker := "  "
		if i == selected {
			marker = "> "
		}
		log.Printf("display: %s%s", marker, option)
	}
}

func (LogDevice) ShowPhase(phase models.Phase) {
	log.Printf("display: %s", phase.Label())
}

func (LogDevice) ShowResults(block string) {
	log.Printf("display: %s", block)
}
