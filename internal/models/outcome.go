package models

import "time"

// OutcomeKind represents how a player's round is classified
type OutcomeKind string

const (
	// OutcomeJumpstart indicates the player touched before the green light
	OutcomeJumpstart OutcomeKind = "jumpstart"

	// OutcomeReaction indicates the player touched after the green light
	OutcomeReaction OutcomeKind = "reaction"

	// OutcomeNoResponse indicates the player never touched during the round
	OutcomeNoResponse OutcomeKind = "no_response"
)

// Outcome represents the scored result for a single player in one round
type Outcome struct {
	// Kind is the classification of the player's result
	Kind OutcomeKind

	// Reaction is the time from green light to touch.
	// Only meaningful when Kind is OutcomeReaction.
	Reaction time.Duration
}
