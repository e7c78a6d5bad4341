package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/navadeep2604/Reflex-Rush/internal/services/messaging Service

// Service is the interface for the outbound messaging hub. It fans
// text blocks out to every connected command client, whatever transport
// they arrived over.
type Service interface {
	// Register adds a client to the hub
	Register(client Client)

	// Unregister removes a client from the hub
	Unregister(id string)

	// Announce sends a text block to every connected client
	Announce(text string)

	// ClientCount returns the number of connected clients
	ClientCount() int
}

// Client is one connected command channel endpoint
type Client interface {
	// ID uniquely identifies the client within the hub
	ID() string

	// Send delivers a text block to the client
	Send(text string) error
}
