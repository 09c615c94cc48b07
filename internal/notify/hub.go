package notify

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// Hub is the subscriber registry for the websocket channel.
type Hub struct {
	mu      sync.Mutex
	clients map[*Client]struct{}
	admins  map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		admins:  make(map[*Client]struct{}),
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// the storefront and dashboard are served from other origins
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWS upgrades the request and registers the connection as a subscriber.
func (h *Hub) HandleWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("ws upgrade failed")
		return
	}
	cl := &Client{
		id:   uuid.NewString(),
		hub:  h,
		conn: conn,
		send: make(chan []byte, sendQueueSize),
	}
	h.register(cl)
	go cl.writePump()
	go cl.readPump()
}

// Publish sends one event frame to every subscriber in the audience.
// A subscriber whose send queue is full is skipped.
func (h *Hub) Publish(a Audience, event string, data any) {
	frame, err := json.Marshal(Event{Event: event, Data: data})
	if err != nil {
		log.WithError(err).Error("ws marshal event")
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	targets := h.clients
	if a == AudienceAdmin {
		targets = h.admins
	}
	for c := range targets {
		select {
		case c.send <- frame:
		default:
			log.WithFields(log.Fields{"client": c.id, "event": event}).
				Warn("ws send queue full, dropping event")
		}
	}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	log.WithField("client", c.id).Debug("ws client connected")
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		delete(h.admins, c)
		close(c.send)
	}
	h.mu.Unlock()
	log.WithField("client", c.id).Debug("ws client disconnected")
}

// joinAdmin and leaveAdmin are idempotent; joining twice or leaving when not
// joined has no additional effect.
func (h *Hub) joinAdmin(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		h.admins[c] = struct{}{}
	}
	h.mu.Unlock()
	log.WithField("client", c.id).Debug("ws client joined admin room")
}

func (h *Hub) leaveAdmin(c *Client) {
	h.mu.Lock()
	delete(h.admins, c)
	h.mu.Unlock()
	log.WithField("client", c.id).Debug("ws client left admin room")
}
