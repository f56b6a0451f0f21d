package transport

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8192
	sendBuffer     = 64
)

// Client is one WebSocket connection. playerID is empty until the first
// create, join, or reconnect message seats it.
type Client struct {
	log  *zap.Logger
	conn *websocket.Conn

	send chan []byte

	closeOnce sync.Once

	playerID string
}

func newClient(log *zap.Logger, conn *websocket.Conn) *Client {
	return &Client{
		log:  log,
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}
}

// enqueue hands a frame to the write pump. A client that cannot drain
// its buffer is closed rather than allowed to stall the room.
func (c *Client) enqueue(raw []byte) {
	select {
	case c.send <- raw:
	default:
		c.log.Warn("send buffer full, closing client", zap.String("player", c.playerID))
		c.close()
	}
}

func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.send)
	})
}

// readPump feeds inbound frames to handle until the connection drops.
// It runs on the connection's serving goroutine.
func (c *Client) readPump(handle func(*Client, []byte)) {
	defer c.conn.Close()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Debug("read error", zap.Error(err))
			}
			return
		}
		handle(c, raw)
	}
}

// writePump drains the send channel and keeps the connection alive with
// pings. Closing the send channel terminates it.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case raw, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, raw); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
