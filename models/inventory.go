// File: models/inventory.go
package models

// ----------------------- inventory status -----------------------

// Display classification of a stock line, derived purely from availability.
const (
	StockAvailable = "available"
	StockLow       = "low"
	StockOut       = "out"
)

// ----------------------- inventory model -----------------------

// InventoryItem is one rental-shoe size line. Nothing ties Available to the
// shoe sizes inside live sessions; the two datasets are disjoint.
type InventoryItem struct {
	ID        int    `json:"id"`
	Size      string `json:"size"`
	Total     int    `json:"total"`
	Available int    `json:"available"`
	Status    string `json:"status"`
}

// InUse is the derived "In Use" column.
func (i InventoryItem) InUse() int {
	return i.Total - i.Available
}

// StockStatus classifies availability: 0 is out, 1 is low, anything else is
// available.
func StockStatus(available int) string {
	switch {
	case available == 0:
		return StockOut
	case available == 1:
		return StockLow
	default:
		return StockAvailable
	}
}
