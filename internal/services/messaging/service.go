package messaging

import (
	"log"
	"sync"
)

// service implements the Service interface
type service struct {
	mu      sync.Mutex
	clients map[string]Client
}

// NewService creates a new messaging hub
func NewService(cfg *Config) (Service, error) {
	return &service{
		clients: make(map[string]Client),
	}, nil
}

// Register adds a client to the hub, replacing any previous client
// with the same ID
func (s *service) Register(client Client) {
	if client == nil {
		return
	}

	s.mu.Lock()
	s.clients[client.ID()] = client
	s.mu.Unlock()

	log.Printf("messaging: client %s connected", client.ID())
}

// Unregister removes a client from the hub
func (s *service) Unregister(id string) {
	s.mu.Lock()
	_, known := s.clients[id]
	delete(s.clients, id)
	s.mu.Unlock()

	if known {
		log.Printf("messaging: client %s disconnected", id)
	}
}

// Announce sends a text block to every connected client. Delivery is
// best effort: a failed send is logged and the client dropped, so one
// dead connection never stalls the round sequencer.
func (s *service) Announce(text string) {
	s.mu.Lock()
	clients := make([]Client, 0, len(s.clients))
	for _, c := range s.clients {
		clients = append(clients, c)
	}
	s.mu.Unlock()

	for _, c := range clients {
		if err := c.Send(text); err != nil {
			log.Printf("messaging: failed to send to client %s: %v", c.ID(), err)
			s.Unregister(c.ID())
		}
	}
}

// ClientCount returns the number of connected clients
func (s *service) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}
