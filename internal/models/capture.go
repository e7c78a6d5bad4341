package models

import "time"

// Capture represents a point-in-time snapshot of one touch channel's state
type Capture struct {
	// Captured is true once the channel has latched a touch this round
	Captured bool

	// CapturedAt is when the touch was latched.
	// The zero value means no usable timestamp was recorded.
	CapturedAt time.Time

	// Jumpstart is true if the touch was flagged during a red or yellow phase
	Jumpstart bool
}
