package history

// LoadInput holds parameters for loading the stored history
type LoadInput struct{}

// LoadOutput holds the result of loading the stored history
type LoadOutput struct {
	// Contents is the full history text
	Contents string
}

// SaveInput holds parameters for storing the history
type SaveInput struct {
	// Contents is the full history text to store
	Contents string
}

// DeleteInput holds parameters for deleting the stored history
type DeleteInput struct{}
