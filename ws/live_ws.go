package ws

import (
	"log"
	"net/http"
	"sync"

	"stallpos/pkg/resp"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	TopicMenu   = "menu"
	TopicOrders = "orders"
)

// Event tells subscribers that something on a topic changed; clients refetch
// rather than patching local state.
type Event struct {
	Topic  string `json:"topic"`
	Action string `json:"action"`
	ID     uint   `json:"id"`
}

type subscription struct {
	Conn  *websocket.Conn
	Topic string
}

// LiveHub fans change events out to screens watching the menu or the order
// list, so they update right after a commit without polling.
type LiveHub struct {
	clients    map[string]map[*websocket.Conn]bool // topic -> set of clients
	broadcast  chan Event
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

func NewLiveHub() *LiveHub {
	return &LiveHub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan Event, 32),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

func (h *LiveHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.Topic] == nil {
				h.clients[sub.Topic] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.Topic][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.Topic][sub.Conn]; ok {
				delete(h.clients[sub.Topic], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[ev.Topic] {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[ev.Topic], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish never blocks the write path: events are refresh hints, dropping
// one under pressure only delays a refetch.
func (h *LiveHub) Publish(topic, action string, id uint) {
	select {
	case h.broadcast <- Event{Topic: topic, Action: action, ID: id}:
	default:
		log.Printf("live hub backlogged, dropping %s/%s", topic, action)
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/live?topic=menu|orders
func (h *LiveHub) HandleWebSocket(c *gin.Context) {
	topic := c.Query("topic")
	if topic != TopicMenu && topic != TopicOrders {
		resp.BadRequest(c, "unknown topic")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{Conn: conn, Topic: topic}
	h.register <- sub

	go h.drain(sub)
}

// drain keeps the read side alive to notice disconnects; subscribers have
// nothing to say to us.
func (h *LiveHub) drain(sub subscription) {
	defer func() { h.unregister <- sub }()
	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
