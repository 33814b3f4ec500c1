// Package websocket provides the live TV-display feed: connection handling,
// periodic clock and refresh frames, and sweep notifications.
// file: websocket/connection.go
package websocket

import (
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"go-skate-track/logger"
)

// WSConn is an interface for the WebSocket connection.
type WSConn interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	ReadMessage() (int, []byte, error)
	Close() error
	RemoteAddr() net.Addr
	SetReadLimit(limit int64)
	SetReadDeadline(t time.Time) error
	SetPongHandler(h func(string) error)
}

// Connection represents a single WebSocket connection for one display client.
type Connection struct {
	id         string // uuid, for log correlation
	conn       WSConn
	send       chan []byte
	screenName string
}

// Configuration constants.
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 2048
)

// ServeWs upgrades the HTTP request to a WebSocket connection and starts the
// read and write pumps.
func ServeWs(w http.ResponseWriter, r *http.Request) {
	screenName := r.URL.Query().Get("screen")
	if screenName == "" {
		screenName = "unnamed-screen"
	}

	logger.Info.Printf("[ServeWs] Upgrading to WS: remoteAddr=%v, screen=%q", r.RemoteAddr, screenName)
	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error.Printf("[ServeWs] WebSocket upgrade error: %v", err)
		http.Error(w, "Failed to upgrade WebSocket", http.StatusBadRequest)
		return
	}

	c := &Connection{
		id:         uuid.NewString(),
		conn:       wsConn,
		send:       make(chan []byte, 256),
		screenName: screenName,
	}

	registerConnection(c)

	go c.readPump()
	go c.writePump()
}

// readPump handles inbound messages from the client.
func (c *Connection) readPump() {
	defer func() {
		unregisterConnection(c)
		if err := c.conn.Close(); err != nil {
			return
		}
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		messageType, message, err := c.conn.ReadMessage()
		if err != nil {
			logger.Warn.Printf("[readPump] Read error from conn=%s: %v", c.id, err)
			break
		}
		if messageType != websocket.TextMessage {
			logger.Debug.Printf("[readPump] Ignoring non-text messageType=%d", messageType)
			continue
		}

		var dm DisplayMessage
		if err := json.Unmarshal(message, &dm); err != nil {
			logger.Warn.Printf("[readPump] Invalid JSON from conn=%s: %v", c.id, err)
			continue
		}
		handleIncoming(c, dm)
	}
}

// writePump handles outbound messages to the client, including periodic pings.
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.conn.Close(); err != nil {
			return
		}
	}()

	for {
		select {
		case message, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if !ok {
				logger.Debug.Printf("[writePump] Send channel closed for conn=%s", c.id)
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				logger.Warn.Printf("[writePump] Error writing to conn=%s: %v", c.id, err)
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Warn.Printf("[writePump] Ping error for conn=%s: %v", c.id, err)
				return
			}
		}
	}
}

// registerConnection adds the connection to the global registry.
func registerConnection(c *Connection) {
	connsMutex.Lock()
	connections[c] = true
	count := len(connections)
	connsMutex.Unlock()

	PublishDisplayConnections(count)
}

// unregisterConnection removes the connection from the global registry.
func unregisterConnection(c *Connection) {
	connsMutex.Lock()
	if _, ok := connections[c]; ok {
		delete(connections, c)
	}
	count := len(connections)
	connsMutex.Unlock()

	PublishDisplayConnections(count)
}

// ConnectionCount reports how many display clients are attached.
func ConnectionCount() int {
	connsMutex.Lock()
	defer connsMutex.Unlock()
	return len(connections)
}

// DisplayMessage represents the JSON structure of messages from display
// clients.
type DisplayMessage struct {
	Action     string `json:"action"`
	ScreenName string `json:"screenName"`
}

// handleIncoming processes an inbound JSON message.
func handleIncoming(c *Connection, dm DisplayMessage) {
	logger.Debug.Printf("[handleIncoming] Action=%s, Screen=%s, conn=%s", dm.Action, dm.ScreenName, c.id)
	switch dm.Action {
	case "registerScreen":
		c.screenName = dm.ScreenName
		logger.Info.Printf("Screen %q registered (conn=%s)", dm.ScreenName, c.id)
	case "requestRefresh":
		logger.Info.Printf("Refresh requested by screen %q (conn=%s)", c.screenName, c.id)
		requestRefresh()
	default:
		logger.Debug.Printf("Unhandled action: %s", dm.Action)
	}
}
