// Package push fans dispatch events out to browser sessions over websockets.
package push

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"dispatch/pkg/logger"
)

const broadcastBufferSize = 256

var (
	ErrUnknownAudience = errors.New("unknown audience")
	ErrHubStopped      = errors.New("push hub stopped")
)

// Audience is a room of connected sessions that receive the same events.
type Audience string

const (
	AudienceStaff Audience = "staff"
	AudienceAdmin Audience = "admin"
)

func (a Audience) String() string {
	return string(a)
}

func ParseAudience(s string) (Audience, error) {
	switch Audience(s) {
	case AudienceStaff, AudienceAdmin:
		return Audience(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAudience, s)
	}
}

type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type audienceEvent struct {
	audience Audience
	event    Event
}

// Hub keeps the connected clients per audience and broadcasts events to them.
type Hub struct {
	log hubLogger

	rooms map[Audience]map[*Client]struct{}

	register   chan *Client
	unregister chan *Client
	broadcast  chan audienceEvent
	done       chan struct{}

	mu sync.RWMutex
}

func NewHub(log hubLogger) *Hub {
	return &Hub{
		log:        log.With(logger.NewField("component", "push_hub")),
		rooms:      make(map[Audience]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan audienceEvent, broadcastBufferSize),
		done:       make(chan struct{}),
	}
}

// Run serves register, unregister and broadcast requests until ctx is done.
// On exit every client's send channel is closed, which ends its write pump.
func (h *Hub) Run(ctx context.Context) {
	defer h.stop()

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.mu.Lock()
			if h.rooms[client.audience] == nil {
				h.rooms[client.audience] = make(map[*Client]struct{})
			}
			h.rooms[client.audience][client] = struct{}{}
			h.mu.Unlock()

			ConnectedClients.WithLabelValues(client.audience.String()).Inc()
			h.log.Debug("client registered", logger.NewField("audience", client.audience))

		case client := <-h.unregister:
			h.mu.Lock()
			h.dropLocked(client)
			h.mu.Unlock()

		case e := <-h.broadcast:
			message, err := json.Marshal(e.event)
			if err != nil {
				h.log.With(
					logger.NewField("error", err),
					logger.NewField("type", e.event.Type),
				).Error("marshal event")
				continue
			}

			h.mu.Lock()
			for client := range h.rooms[e.audience] {
				select {
				case client.send <- message:
				default:
					h.log.Warn("client send buffer full, dropping client",
						logger.NewField("audience", e.audience),
					)
					h.dropLocked(client)
				}
			}
			h.mu.Unlock()

			EventsTotal.WithLabelValues(e.audience.String(), e.event.Type).Inc()
		}
	}
}

// Broadcast queues an event for every client of the audience.
func (h *Hub) Broadcast(ctx context.Context, audience Audience, event Event) error {
	select {
	case <-h.done:
		return ErrHubStopped
	default:
	}

	select {
	case h.broadcast <- audienceEvent{audience: audience, event: event}:
		return nil
	case <-h.done:
		return ErrHubStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Clients reports how many sessions are connected to the audience.
func (h *Hub) Clients(audience Audience) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.rooms[audience])
}

func (h *Hub) join(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) leave(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) dropLocked(client *Client) {
	clients, ok := h.rooms[client.audience]
	if !ok {
		return
	}
	if _, exists := clients[client]; !exists {
		return
	}

	delete(clients, client)
	close(client.send)
	ConnectedClients.WithLabelValues(client.audience.String()).Dec()

	if len(clients) == 0 {
		delete(h.rooms, client.audience)
	}
}

func (h *Hub) stop() {
	h.mu.Lock()
	defer h.mu.Unlock()

	close(h.done)
	for _, clients := range h.rooms {
		for client := range clients {
			h.dropLocked(client)
		}
	}
}
