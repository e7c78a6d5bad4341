package scoring

import (
	"fmt"
	"strings"
	"time"

	"github.com/navadeep2604/Reflex-Rush/internal/models"
)

// Score classifies one player's capture against the green light start.
// A jumpstart flag always wins. A capture strictly after the green light
// is a valid reaction. Everything else, including a capture that somehow
// carries a timestamp at or before the green light, counts as no response.
func Score(capture models.Capture, greenStart time.Time) models.Outcome {
	if capture.Jumpstart {
		return models.Outcome{Kind: models.OutcomeJumpstart}
	}

	if capture.Captured && capture.CapturedAt.After(greenStart) {
		return models.Outcome{
			Kind:     models.OutcomeReaction,
			Reaction: capture.CapturedAt.Sub(greenStart),
		}
	}

	return models.Outcome{Kind: models.OutcomeNoResponse}
}

// RenderBlock formats a round's outcomes as the multi-line result block
// that is broadcast to clients, shown on the board, and appended to the
// game history.
func RenderBlock(names []string, outcomes []models.Outcome) string {
	var b strings.Builder
	b.WriteString("Game result: \n")

	for i, outcome := range outcomes {
		var name string
		if i < len(names) {
			name = names[i]
		}

		switch outcome.Kind {
		case models.OutcomeJumpstart:
			fmt.Fprintf(&b, "%s: JS (Jumpstart)\n", name)
		case models.OutcomeReaction:
			fmt.Fprintf(&b, "%s: %d ms\n", name, outcome.Reaction.Milliseconds())
		default:
			fmt.Fprintf(&b, "%s: No response\n", name)
		}
	}

	return b.String()
}
