package command

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/navadeep2604/Reflex-Rush/internal/services/messaging"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The command set is harmless and unauthenticated, same as the
	// serial port it replaces.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WebSocketHandler serves the command channel over a websocket. Each
// text message may carry one or more newline-separated command lines.
type WebSocketHandler struct {
	router    *Router
	messaging messaging.Service
}

// NewWebSocketHandler creates a new websocket command handler
func NewWebSocketHandler(cfg *ServerConfig) (*WebSocketHandler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Router == nil {
		return nil, errors.New("router cannot be nil")
	}

	if cfg.Messaging == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	return &WebSocketHandler{
		router:    cfg.Router,
		messaging: cfg.Messaging,
	}, nil
}

func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("command: websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	client := &wsClient{
		id:   "ws:" + conn.RemoteAddr().String(),
		conn: conn,
	}
	h.messaging.Register(client)
	defer h.messaging.Unregister(client.ID())

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		for _, line := range strings.Split(string(data), "\n") {
			for _, response := range h.router.HandleLine(r.Context(), line) {
				if err := client.Send(response); err != nil {
					return
				}
			}
		}
	}
}

// wsClient adapts a websocket connection to the messaging hub
type wsClient struct {
	id   string
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsClient) ID() string {
	return c.id
}

func (c *wsClient) Send(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, []byte(text))
}
