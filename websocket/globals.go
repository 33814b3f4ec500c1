// Package websocket - websocket/globals.go
package websocket

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// broadcast is the channel every outbound display frame flows through
var broadcast = make(chan []byte, 64)

// connections tracks all connected display clients
var (
	connections = make(map[*Connection]bool)
	connsMutex  sync.Mutex
)

// upgrader upgrades HTTP requests to WebSocket connections
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// The board runs on wall screens and tablets around the park, so
		// any origin may connect.
		return true
	},
}
