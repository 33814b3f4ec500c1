// Package websocket handles real-time communication with the TV-display
// screens. file: websocket/broadcast.go
package websocket

import (
	"encoding/json"

	"go-skate-track/logger"
)

// HandleMessages listens on the broadcast channel and fans each frame out to
// every attached display client.
func HandleMessages() {
	for {
		fanOut(<-broadcast)
	}
}

// fanOut delivers one frame to every connection. Slow clients drop frames
// rather than stall the loop.
func fanOut(msg []byte) {
	connsMutex.Lock()
	defer connsMutex.Unlock()

	for c := range connections {
		select {
		case c.send <- msg:
		default:
			logger.Warn.Printf("Dropping broadcast frame for conn=%s (screen=%q)", c.id, c.screenName)
		}
	}
}

// BroadcastMessage marshals a frame and queues it for every display client.
func BroadcastMessage(message map[string]interface{}) {
	msg, err := json.Marshal(message)
	if err != nil {
		logger.Error.Printf("Error marshalling broadcast frame: %v", err)
		return
	}
	broadcast <- msg
}
