package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/averyld/teamtalk/internal/models"
)

// StreamMessage is the wire format of one pushed notification.
type StreamMessage struct {
	Type         string              `json:"type"`
	Notification models.Notification `json:"notification"`
	Timestamp    time.Time           `json:"timestamp"`
}

type push struct {
	userID int
	data   []byte
}

// Hub fans freshly created notifications out to the live connections of their
// target users. A user may hold several connections at once (multi-device
// login), each tracked as its own client.
type Hub struct {
	clients     map[uuid.UUID]*Client
	userClients map[int]map[uuid.UUID]*Client

	register   chan *Client
	unregister chan *Client
	pushes     chan push

	mu sync.RWMutex

	ctx    context.Context
	cancel context.CancelFunc
}

func NewHub() *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		clients:     make(map[uuid.UUID]*Client),
		userClients: make(map[int]map[uuid.UUID]*Client),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		pushes:      make(chan push, 64),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Run processes registrations and pushes until Stop is called.
func (h *Hub) Run() {
	for {
		select {
		case <-h.ctx.Done():
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case p := <-h.pushes:
			h.deliver(p)
		}
	}
}

// Stop shuts the hub down and closes every connection.
func (h *Hub) Stop() {
	h.cancel()

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, client := range h.clients {
		close(client.Send)
		client.Conn.Close()
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// Push implements services.Streamer. It never blocks the caller: if the hub
// is saturated the notification is dropped from the stream, the stored copy
// still reaches the user through notifications/get.
func (h *Hub) Push(userID int, n models.Notification) {
	msg := StreamMessage{Type: "notification", Notification: n, Timestamp: time.Now()}
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case h.pushes <- push{userID: userID, data: data}:
	default:
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client.ID] = client
	if _, ok := h.userClients[client.UserID]; !ok {
		h.userClients[client.UserID] = make(map[uuid.UUID]*Client)
	}
	h.userClients[client.UserID][client.ID] = client

	log.Printf("Stream client registered: %s (user %d)", client.ID, client.UserID)
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.ID]; !ok {
		return
	}
	if userClients, ok := h.userClients[client.UserID]; ok {
		delete(userClients, client.ID)
		if len(userClients) == 0 {
			delete(h.userClients, client.UserID)
		}
	}
	delete(h.clients, client.ID)
	close(client.Send)

	log.Printf("Stream client unregistered: %s (user %d)", client.ID, client.UserID)
}

func (h *Hub) deliver(p push) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.userClients[p.userID] {
		select {
		case client.Send <- p.data:
		default:
			// Slow consumer, skip rather than stall the hub.
		}
	}
}

// ConnectedUsers returns the ids of users with at least one live connection.
func (h *Hub) ConnectedUsers() []int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	users := make([]int, 0, len(h.userClients))
	for id := range h.userClients {
		users = append(users, id)
	}
	return users
}
