package messaging

// Config holds configuration for the messaging hub
type Config struct{}
