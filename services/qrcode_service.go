// services/qrcode_service.go
package services

import (
	"os"

	"github.com/skip2/go-qrcode"
)

// GenerateDisplayQRCode encodes the TV-display URL so a wall screen can be
// pointed at the board by scanning it.
func GenerateDisplayQRCode(size int) ([]byte, error) {
	applicationURL := os.Getenv("APPLICATION_URL")
	if applicationURL == "" {
		applicationURL = "http://localhost:8080" // Default for local testing
	}

	png, err := qrcode.Encode(applicationURL+"/tv-display", qrcode.Medium, size)
	if err != nil {
		return nil, err
	}
	return png, nil
}
