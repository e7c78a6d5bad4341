package leaderboard

// LoadInput holds parameters for loading the stored leaderboard
type LoadInput struct{}

// LoadOutput holds the result of loading the stored leaderboard
type LoadOutput struct {
	// Encoded is the leaderboard snapshot, one "name,milliseconds" line
	// per slot in slot order
	Encoded string
}

// SaveInput holds parameters for storing the leaderboard
type SaveInput struct {
	// Encoded is the leaderboard snapshot to store
	Encoded string
}
