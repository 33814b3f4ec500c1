// Package services: services/inventory_service.go
package services

import (
	"errors"
	"strings"
	"sync"

	"go-skate-track/logger"
	"go-skate-track/models"
)

// ErrSizeNotFound means no stock line exists for the requested shoe size.
var ErrSizeNotFound = errors.New("no inventory line for that size")

// InventoryService tracks rental-shoe stock lines in memory. Availability is
// not reconciled against the shoe sizes inside live sessions.
type InventoryService struct {
	mu    sync.Mutex
	items []models.InventoryItem
}

// NewInventoryService seeds the stock lines.
func NewInventoryService(seed []models.InventoryItem) *InventoryService {
	return &InventoryService{items: append([]models.InventoryItem(nil), seed...)}
}

// List returns a copy of every stock line.
func (s *InventoryService) List() []models.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.InventoryItem(nil), s.items...)
}

// Search filters stock lines by size substring.
func (s *InventoryService) Search(query string) []models.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	if query == "" {
		return append([]models.InventoryItem(nil), s.items...)
	}
	var out []models.InventoryItem
	for _, item := range s.items {
		if strings.Contains(item.Size, query) {
			out = append(out, item)
		}
	}
	return out
}

// Restock adds quantity pairs to a size's total and availability and
// re-derives the status classification.
func (s *InventoryService) Restock(size string, quantity int) (models.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.Size == size {
			item.Total += quantity
			item.Available += quantity
			item.Status = models.StockStatus(item.Available)
			s.items[i] = item
			logger.Info.Printf("Restocked size %s by %d (total=%d, available=%d)", size, quantity, item.Total, item.Available)
			return item, nil
		}
	}

	logger.Warn.Printf("Restock: size %s not found", size)
	return models.InventoryItem{}, ErrSizeNotFound
}

// InventorySummary is the headline card: overall totals plus the rounded
// availability percentage.
type InventorySummary struct {
	TotalShoes     int `json:"totalShoes"`
	AvailableShoes int `json:"availableShoes"`
	Percentage     int `json:"availabilityPercentage"`
}

// Summary folds the stock lines into the headline numbers.
func (s *InventoryService) Summary() InventorySummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sum InventorySummary
	for _, item := range s.items {
		sum.TotalShoes += item.Total
		sum.AvailableShoes += item.Available
	}
	if sum.TotalShoes > 0 {
		sum.Percentage = int(float64(sum.AvailableShoes)/float64(sum.TotalShoes)*100 + 0.5)
	}
	return sum
}
