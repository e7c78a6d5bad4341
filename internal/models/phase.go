package models

// Phase represents the current stage of the traffic light sequence
type Phase string

const (
	// PhaseIdle indicates no round is currently running
	PhaseIdle Phase = "idle"

	// PhaseRed indicates the red light is showing and touches are penalized
	PhaseRed Phase = "red"

	// PhaseYellow indicates the yellow light is showing and touches are still penalized
	PhaseYellow Phase = "yellow"

	// PhaseGreen indicates the green light is showing and touches count as reactions
	PhaseGreen Phase = "green"
)

// Label returns the text shown on the board for this phase
func (p Phase) Label() string {
	switch p {
	case PhaseRed:
		return "RED LIGHT"
	case PhaseYellow:
		return "YELLOW LIGHT"
	case PhaseGreen:
		return "GREEN LIGHT"
	default:
		return ""
	}
}
