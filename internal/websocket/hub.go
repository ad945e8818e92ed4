package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/thereayou/devconnector/internal/logger"
)

// EventType тип события ленты постов
type EventType string

const (
	// Системные типы
	TypeConnect EventType = "connect"
	TypePing    EventType = "ping"

	// События постов
	TypePostCreated    EventType = "post_created"
	TypePostDeleted    EventType = "post_deleted"
	TypePostLiked      EventType = "post_liked"
	TypePostUnliked    EventType = "post_unliked"
	TypeCommentAdded   EventType = "comment_added"
	TypeCommentRemoved EventType = "comment_removed"
)

type Event struct {
	Type      EventType       `json:"type"`
	PostID    string          `json:"post_id,omitempty"`
	UserID    string          `json:"user_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

type Client struct {
	ID     string
	UserID string
	Conn   *websocket.Conn
	Send   chan []byte
	Hub    *Hub
}

// Hub раздает события постов всем подписчикам ленты
type Hub struct {
	clients map[string]*Client

	register   chan *Client
	unregister chan *Client

	pingInterval time.Duration

	mu sync.RWMutex

	ctx    context.Context
	cancel context.CancelFunc
}

// NewHub создает новый Hub
func NewHub() *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		clients:      make(map[string]*Client),
		register:     make(chan *Client),
		unregister:   make(chan *Client),
		pingInterval: 30 * time.Second,
		ctx:          ctx,
		cancel:       cancel,
	}
}

// Run запускает hub
func (h *Hub) Run() {
	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-h.ctx.Done():
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case <-ticker.C:
			h.broadcast(Event{Type: TypePing, Timestamp: time.Now()})
		}
	}
}

// Stop останавливает hub и закрывает все соединения
func (h *Hub) Stop() {
	h.cancel()

	h.mu.Lock()
	defer h.mu.Unlock()

	for id, client := range h.clients {
		delete(h.clients, id)
		close(client.Send)
		if client.Conn != nil {
			client.Conn.Close()
		}
	}
}

// Register регистрирует нового клиента
func (h *Hub) Register(client *Client) error {
	select {
	case h.register <- client:
		return nil
	case <-h.ctx.Done():
		return ErrHubStopped
	}
}

// Unregister отменяет регистрацию клиента
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.ctx.Done():
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client.ID] = client
	logger.LogIf("feed client registered: %s (user: %s)", client.ID, client.UserID)

	// Приветствие: после него клиент гарантированно получает события
	if err := h.sendTo(client, Event{Type: TypeConnect, UserID: client.UserID, Timestamp: time.Now()}); err != nil {
		logger.LogEf("feed client %s: %v", client.ID, err)
	}
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.ID]; ok {
		delete(h.clients, client.ID)
		close(client.Send)
		logger.LogIf("feed client unregistered: %s (user: %s)", client.ID, client.UserID)
	}
}

// Publish рассылает событие по посту всем подключенным клиентам
func (h *Hub) Publish(eventType EventType, postID, userID string, data interface{}) {
	event := Event{
		Type:      eventType,
		PostID:    postID,
		UserID:    userID,
		Timestamp: time.Now(),
	}

	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			logger.LogEf("feed event %s: %v", eventType, err)
			return
		}
		event.Data = raw
	}

	h.broadcast(event)
}

func (h *Hub) broadcast(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients {
		if err := h.sendTo(client, event); err != nil {
			logger.LogEf("feed client %s: %v", client.ID, err)
		}
	}
}

// sendTo вызывается под h.mu; медленный клиент теряет событие
func (h *Hub) sendTo(client *Client, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	select {
	case client.Send <- data:
		return nil
	default:
		return ErrClientQueueFull
	}
}

// ClientsCount количество подключенных клиентов
func (h *Hub) ClientsCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
