package notify

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/ankurdhir/laddu/internal/cart"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // storefront origins are filtered by CORS on the API side
	},
}

// Hub fans cart-updated snapshots out to connected websocket clients. It
// subscribes to the cart once and pushes every mutation; consumers
// resubscribe by reconnecting.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]chan []byte
}

func NewHub(c *cart.Cart) *Hub {
	h := &Hub{clients: make(map[*websocket.Conn]chan []byte)}
	c.Subscribe(h.broadcast)
	return h
}

type event struct {
	Type string        `json:"type"`
	Data cart.Snapshot `json:"data"`
}

func (h *Hub) broadcast(snap cart.Snapshot) {
	msg, err := json.Marshal(event{Type: "cart:updated", Data: snap})
	if err != nil {
		log.Printf("notify: marshal failed: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn, send := range h.clients {
		select {
		case send <- msg:
		default:
			// Slow consumer: drop it rather than block cart mutations.
			close(send)
			delete(h.clients, conn)
		}
	}
}

// ServeWS upgrades the request and streams cart updates until the client
// disconnects.
func (h *Hub) ServeWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("notify: upgrade failed: %v", err)
		return
	}

	send := make(chan []byte, 16)
	h.mu.Lock()
	h.clients[conn] = send
	h.mu.Unlock()

	go func() {
		defer conn.Close()
		for msg := range send {
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				break
			}
		}
	}()

	// Reader loop exists only to observe disconnects.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.mu.Lock()
				if send, ok := h.clients[conn]; ok {
					close(send)
					delete(h.clients, conn)
				}
				h.mu.Unlock()
				return
			}
		}
	}()
}
