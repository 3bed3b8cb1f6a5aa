package app

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/dwbrown115/GameServerTestGame-sub004/internal/world"
	"github.com/dwbrown115/GameServerTestGame-sub004/mechanics/contract"
)

const writeWait = 10 * time.Second

// Hub owns the live world and the websocket subscribers watching it. The
// simulation mutates the world on the tick goroutine; the hub copies
// snapshots out under its lock before broadcasting.
type Hub struct {
	mu          sync.Mutex
	world       *world.World
	subscribers map[string]*subscriber
	nextID      atomic.Uint64
	upgrader    websocket.Upgrader
}

type subscriber struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

type joinResponse struct {
	ID       string             `json:"id"`
	Actors   []world.Actor      `json:"actors"`
	Payloads []world.Payload    `json:"payloads"`
	Triggers []contract.Trigger `json:"triggers,omitempty"`
}

type stateMessage struct {
	Type       string             `json:"type"`
	Actors     []world.Actor      `json:"actors"`
	Payloads   []world.Payload    `json:"payloads"`
	Triggers   []contract.Trigger `json:"triggers,omitempty"`
	ServerTime int64              `json:"serverTime"`
}

// NewHub wraps the given world.
func NewHub(w *world.World) *Hub {
	return &Hub{
		world:       w,
		subscribers: make(map[string]*subscriber),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Step advances the simulation by one frame and broadcasts the resulting
// snapshot, including any visual triggers drained from the world.
func (h *Hub) Step(dt float64) {
	h.mu.Lock()
	h.world.Step(dt)
	msg := stateMessage{
		Type:       "state",
		Actors:     h.world.SnapshotActors(),
		Payloads:   h.world.SnapshotPayloads(),
		Triggers:   h.world.DrainTriggers(),
		ServerTime: time.Now().UnixMilli(),
	}
	h.mu.Unlock()

	h.broadcast(msg)
}

// With runs fn with exclusive access to the world. Used by handlers and the
// demo driver so all world mutation stays serialized.
func (h *Hub) With(fn func(w *world.World)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	fn(h.world)
}

// HandleJoin registers a spectator and returns the current snapshot.
func (h *Hub) HandleJoin(w http.ResponseWriter, r *http.Request) {
	id := fmt.Sprintf("spectator-%d", h.nextID.Add(1))

	h.mu.Lock()
	resp := joinResponse{
		ID:       id,
		Actors:   h.world.SnapshotActors(),
		Payloads: h.world.SnapshotPayloads(),
	}
	h.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("join: encode response: %v", err)
	}
}

// HandleWS upgrades the connection and streams state messages until the
// client disconnects.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws: upgrade: %v", err)
		return
	}
	id := fmt.Sprintf("subscriber-%d", h.nextID.Add(1))
	sub := &subscriber{conn: conn}

	h.mu.Lock()
	h.subscribers[id] = sub
	h.mu.Unlock()

	go h.readLoop(id, sub)
}

func (h *Hub) readLoop(id string, sub *subscriber) {
	defer func() {
		h.mu.Lock()
		delete(h.subscribers, id)
		h.mu.Unlock()
		sub.conn.Close()
	}()
	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) broadcast(msg stateMessage) {
	h.mu.Lock()
	subs := make([]*subscriber, 0, len(h.subscribers))
	for _, sub := range h.subscribers {
		subs = append(subs, sub)
	}
	h.mu.Unlock()

	for _, sub := range subs {
		sub.mu.Lock()
		sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := sub.conn.WriteJSON(msg); err != nil {
			log.Printf("broadcast: %v", err)
		}
		sub.mu.Unlock()
	}
}
