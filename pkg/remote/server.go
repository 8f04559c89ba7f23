// Package remote exposes the hotkey system over a websocket. Connected
// clients press and release triggers by name and receive every command
// the scheduler dispatches, so a browser page or a script on another
// machine can act as an input backend.
package remote

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/tidwall/sjson"

	"github.com/leon22heart/dolphin/internal/hotkey"
	"github.com/leon22heart/dolphin/pkg/event"
	"github.com/leon22heart/dolphin/pkg/log"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Server bridges websocket clients to a Keypad and broadcasts dispatched
// commands back to them.
type Server struct {
	keypad *hotkey.Keypad
	logger log.Logger

	clients    map[*client]bool
	register   chan *client
	unregister chan *client
	broadcast  chan []byte

	mu   sync.Mutex
	once sync.Once
	http *http.Server
}

// NewServer returns a Server driving keypad. Call Listen to serve.
func NewServer(keypad *hotkey.Keypad, logger log.Logger) *Server {
	return &Server{
		keypad:     keypad,
		logger:     logger,
		clients:    make(map[*client]bool),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, 64),
	}
}

// HandleEvent broadcasts a dispatched command to every connected client.
// Attach it to the scheduler's dispatcher.
func (s *Server) HandleEvent(e event.Event) {
	msg, _ := sjson.SetBytes(nil, "command", e.Command.String())
	if e.Slot > 0 {
		msg, _ = sjson.SetBytes(msg, "slot", e.Slot)
	}

	select {
	case s.broadcast <- msg:
	default:
		// a stalled client set must not stall the scheduler
		s.logger.Debugf("remote: broadcast queue full, dropping %s", msg)
	}
}

// Handler returns the websocket endpoint, mounted at /ws.
func (s *Server) Handler() http.Handler {
	s.once.Do(func() {
		go s.run()
	})

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			s.logger.Errorf("remote: upgrade failed: %v", err)
			return
		}

		c := &client{
			server: s,
			conn:   conn,
			send:   make(chan []byte, 16),
		}
		s.register <- c

		go c.readPump()
		go c.writePump()
	})
	return mux
}

// Listen serves websocket connections on addr until Close is called. It
// blocks, like http.ListenAndServe.
func (s *Server) Listen(addr string) error {
	s.mu.Lock()
	s.http = &http.Server{Addr: addr, Handler: s.Handler()}
	s.mu.Unlock()

	s.logger.Infof("remote: listening on %s", addr)
	return s.http.ListenAndServe()
}

// Close shuts the listener down and disconnects every client.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.http == nil {
		return nil
	}
	return s.http.Close()
}

func (s *Server) run() {
	for {
		select {
		case c := <-s.register:
			s.clients[c] = true
		case c := <-s.unregister:
			if s.clients[c] {
				delete(s.clients, c)
				close(c.send)
			}
		case msg := <-s.broadcast:
			for c := range s.clients {
				select {
				case c.send <- msg:
				default:
					// slow client, drop it rather than block the rest
					delete(s.clients, c)
					close(c.send)
				}
			}
		}
	}
}
