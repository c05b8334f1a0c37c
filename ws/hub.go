package ws

import (
	"sync"

	"github.com/gorilla/websocket"
)

type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

// Hub fans out roster-change events to connected admin dashboards.
type Hub struct {
	Clients map[*websocket.Conn]*Client
	Mutex   sync.RWMutex
}

var H = Hub{
	Clients: make(map[*websocket.Conn]*Client),
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	client := &Client{
		Conn: conn,
		Send: make(chan []byte, 256),
	}
	h.Clients[conn] = client

	go h.writePump(conn)
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	if client, ok := h.Clients[conn]; ok {
		close(client.Send)
		delete(h.Clients, conn)
	}
	conn.Close()
}

func (h *Hub) Broadcast(data []byte) {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()

	for _, client := range h.Clients {
		select {
		case client.Send <- data:
		default:
		}
	}
}

func (h *Hub) writePump(conn *websocket.Conn) {
	h.Mutex.RLock()
	client, ok := h.Clients[conn]
	h.Mutex.RUnlock()
	if !ok {
		return
	}

	for msg := range client.Send {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

// GetStats reports connection counts for the health endpoint.
func (h *Hub) GetStats() map[string]int {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()
	return map[string]int{
		"connected_clients": len(h.Clients),
	}
}

// BroadcastRosterChanged signals admin dashboards that the consultant roster
// (profiles, skills, trainings) changed and should be refetched.
func BroadcastRosterChanged() {
	H.Broadcast([]byte(`{"type": "roster_changed"}`))
}
