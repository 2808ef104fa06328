package handlers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Relay rebroadcasts every message a client sends to the other connected clients
type Relay struct {
	clients map[*websocket.Conn]struct{}
	mutex   sync.Mutex
}

// NewRelay returns an empty relay hub
func NewRelay() *Relay {
	return &Relay{clients: make(map[*websocket.Conn]struct{})}
}

// RelayHandler upgrades the request and relays its messages until the client leaves
func (h *Relay) RelayHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().Warnw("websocket upgrade failed", "error", err)
		return
	}

	h.mutex.Lock()
	h.clients[conn] = struct{}{}
	h.mutex.Unlock()
	zap.S().Debugw("relay client connected", "remote", r.RemoteAddr)

	defer func() {
		h.mutex.Lock()
		delete(h.clients, conn)
		h.mutex.Unlock()
		_ = conn.Close()
		zap.S().Debugw("relay client disconnected", "remote", r.RemoteAddr)
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		h.broadcast(conn, msg)
	}
}

// Clients returns the number of connected clients
func (h *Relay) Clients() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

func (h *Relay) broadcast(from *websocket.Conn, msg []byte) {
	var data interface{} = string(msg)
	if json.Valid(msg) {
		data = json.RawMessage(msg)
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()
	for conn := range h.clients {
		if conn == from {
			continue
		}
		err := conn.WriteJSON(map[string]interface{}{
			"event": "answer",
			"data":  data,
		})
		if err != nil {
			zap.S().Warnw("error relaying message", "remote", conn.RemoteAddr().String(), "error", err)
			delete(h.clients, conn)
			_ = conn.Close()
		}
	}
}
