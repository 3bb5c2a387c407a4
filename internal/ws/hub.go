// Package ws pushes boarding check-in changes to connected dispatch boards.
package ws

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// BoardingEvent is broadcast whenever a passenger's boarding status changes.
type BoardingEvent struct {
	TripID      int64  `json:"trip_id"`
	PassengerID int64  `json:"passenger_id"`
	Status      string `json:"status"`
}

type session struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *session) send(ev BoardingEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(ev)
}

// Hub holds connected board sessions. Broadcast is best-effort: a session
// whose write fails is dropped.
type Hub struct {
	mu       sync.RWMutex
	nextID   int64
	sessions map[int64]*session
}

func NewHub() *Hub {
	return &Hub{sessions: make(map[int64]*session)}
}

// Add registers a connection and returns its id for later removal.
func (h *Hub) Add(conn *websocket.Conn) int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	h.sessions[h.nextID] = &session{conn: conn}
	return h.nextID
}

func (h *Hub) Remove(id int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if s, ok := h.sessions[id]; ok {
		_ = s.conn.Close()
		delete(h.sessions, id)
	}
}

func (h *Hub) Broadcast(ev BoardingEvent) {
	h.mu.RLock()
	targets := make(map[int64]*session, len(h.sessions))
	for id, s := range h.sessions {
		targets[id] = s
	}
	h.mu.RUnlock()

	for id, s := range targets {
		if err := s.send(ev); err != nil {
			log.Printf("ws send error: %v", err)
			h.Remove(id)
		}
	}
}
