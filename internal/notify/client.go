package notify

import (
	"encoding/json"

	"github.com/gorilla/websocket"
)

const (
	sendQueueSize = 32
	maxControlLen = 512
)

// Client is one websocket subscriber.
type Client struct {
	id   string
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

type controlMsg struct {
	Action string `json:"action"`
}

// readPump consumes control messages until the connection drops.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister(c)
		_ = c.conn.Close()
	}()
	c.conn.SetReadLimit(maxControlLen)
	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		var ctl controlMsg
		if err := json.Unmarshal(msg, &ctl); err != nil {
			continue
		}
		switch ctl.Action {
		case "join_admin":
			c.hub.joinAdmin(c)
		case "leave_admin":
			c.hub.leaveAdmin(c)
		}
	}
}

// writePump drains the send queue onto the connection.
func (c *Client) writePump() {
	defer func() { _ = c.conn.Close() }()
	for frame := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			return
		}
	}
	_ = c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
