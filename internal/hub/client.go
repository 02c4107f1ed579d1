package hub

import (
	"encoding/json"
	"log"
	"sync/atomic"

	"github.com/gorilla/websocket"
)

// PadCounter reports how many pads are currently connected. Implemented by
// the backend pump; safe to call from client goroutines.
type PadCounter interface {
	PadCount() int
}

// Client represents a connected WebSocket client.
type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	send     chan []byte
	padIndex atomic.Int32 // pad index this client is subscribed to
}

// NewClient creates a new Client attached to the hub, subscribed to pad 0.
func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, 256),
	}
}

// PadIndex returns the pad index this client is subscribed to.
func (c *Client) PadIndex() int {
	return int(c.padIndex.Load())
}

// SetPadIndex changes the pad subscription for this client.
func (c *Client) SetPadIndex(index int) {
	c.padIndex.Store(int32(index))
}

// WritePump sends messages from the send channel to the WebSocket
// connection.
func (c *Client) WritePump() {
	defer func() {
		c.conn.Close()
	}()

	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

// ReadPump reads messages from the WebSocket and handles client commands.
// pads validates requested pad indices; b replays the current state after a
// subscription change.
func (c *Client) ReadPump(pads PadCounter, b *Broadcaster) {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			break
		}

		var clientMsg ClientMessage
		if err := json.Unmarshal(message, &clientMsg); err != nil {
			log.Printf("Error parsing client message: %v", err)
			continue
		}

		switch clientMsg.Type {
		case "select_pad":
			if clientMsg.PadIndex >= 0 && clientMsg.PadIndex < pads.PadCount() {
				c.SetPadIndex(clientMsg.PadIndex)
				msg := NewPadSelectedMessage(clientMsg.PadIndex)
				if data, err := json.Marshal(msg); err == nil {
					c.send <- data
				}
				b.SendInitialState(c)
				log.Printf("Client switched to pad %d", clientMsg.PadIndex)
			} else {
				log.Printf("Failed to switch to pad %d: invalid index", clientMsg.PadIndex)
			}
		}
	}
}
