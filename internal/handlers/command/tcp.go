package command

import (
	"bufio"
	"context"
	"errors"
	"log"
	"net"
	"strings"
	"sync"

	"github.com/navadeep2604/Reflex-Rush/internal/services/messaging"
)

// ServerConfig holds configuration for the TCP command server
type ServerConfig struct {
	// Addr is the listen address, e.g. ":7777"
	Addr string

	// Router dispatches inbound lines
	Router *Router

	// Messaging receives a client registration per connection so
	// broadcasts reach it
	Messaging messaging.Service
}

// Server accepts raw TCP connections carrying line-delimited commands.
// It is the serial-port analog: one line in, response lines out, plus
// whatever the hub broadcasts in between.
type Server struct {
	addr      string
	router    *Router
	messaging messaging.Service
}

// NewServer creates a new TCP command server
func NewServer(cfg *ServerConfig) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Addr == "" {
		return nil, errors.New("addr cannot be empty")
	}

	if cfg.Router == nil {
		return nil, errors.New("router cannot be nil")
	}

	if cfg.Messaging == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	return &Server{
		addr:      cfg.Addr,
		router:    cfg.Router,
		messaging: cfg.Messaging,
	}, nil
}

// ListenAndServe accepts connections until the context is canceled
func (s *Server) ListenAndServe(ctx context.Context) error {
	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	log.Printf("command: listening on %s", s.addr)

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		go s.handleConn(ctx, conn)
	}
}

func (s *Server) handleConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	client := &lineClient{
		id:   conn.RemoteAddr().String(),
		conn: conn,
	}
	s.messaging.Register(client)
	defer s.messaging.Unregister(client.ID())

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		for _, response := range s.router.HandleLine(ctx, scanner.Text()) {
			if err := client.Send(response); err != nil {
				return
			}
		}
	}
}

// lineClient adapts a net.Conn to the messaging hub. Sends are
// serialized because broadcasts and command responses come from
// different goroutines.
type lineClient struct {
	id   string
	mu   sync.Mutex
	conn net.Conn
}

func (c *lineClient) ID() string {
	return c.id
}

func (c *lineClient) Send(text string) error {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := c.conn.Write([]byte(text))
	return err
}
