// File: models/seed.go
package models

// Hardcoded demo datasets. The dashboard reseeds from these on every start;
// nothing here survives a restart except the branding file.

// Headline card figures with no backing dataset yet; the dashboard shows and
// exports them as-is.
const (
	SeedTodaysVisitors = "78"
	SeedTodaysRevenue  = "NPR 4,231"
)

// SeedSessions returns the mock session list the sessions page opens with.
func SeedSessions() []Session {
	return []Session{
		{
			ID:           1,
			Name:         "Alex Smith",
			Participants: []Participant{{Name: "Alex Smith", ShoeSize: "42"}},
			StartTime:    "10:30 AM",
			EndTime:      "11:30 AM",
			Duration:     "1h",
			Status:       StatusActive,
			CreatedBy:    "Admin User",
		},
		{
			ID:           2,
			Name:         "Maya Johnson",
			Participants: []Participant{{Name: "Maya Johnson", ShoeSize: "38"}},
			StartTime:    "11:15 AM",
			EndTime:      "12:15 PM",
			Duration:     "1h",
			Status:       StatusActive,
			CreatedBy:    "Admin User",
		},
		{
			ID:           3,
			Name:         "Raj Patel",
			Participants: []Participant{{Name: "Raj Patel", ShoeSize: "43"}},
			StartTime:    "09:55 AM",
			EndTime:      "11:55 AM",
			Duration:     "2h",
			Status:       StatusActive,
			CreatedBy:    "Admin User",
		},
		{
			ID:           4,
			Name:         "Sarah Lee",
			Participants: []Participant{{Name: "Sarah Lee", ShoeSize: "37"}},
			StartTime:    "12:30 PM",
			EndTime:      "01:30 PM",
			Duration:     "1h",
			Status:       StatusActive,
			CreatedBy:    "Admin User",
		},
		{
			ID:           5,
			Name:         "Tom Wilson",
			Participants: []Participant{{Name: "Tom Wilson", ShoeSize: "44"}},
			StartTime:    "10:00 AM",
			EndTime:      "12:00 PM",
			Duration:     "2h",
			Status:       StatusCompleted,
			CreatedBy:    "Admin User",
		},
		{
			ID:           6,
			Name:         "Emma Davis",
			Participants: []Participant{{Name: "Emma Davis", ShoeSize: "39"}},
			StartTime:    "11:45 AM",
			EndTime:      "01:00 PM",
			Duration:     "1h 15m",
			Status:       StatusCompleted,
			CreatedBy:    "Admin User",
		},
		{
			ID:      7,
			Name:    "Skate Club",
			IsGroup: true,
			Participants: []Participant{
				{Name: "Michael Brown", ShoeSize: "45"},
				{Name: "Jessica Taylor", ShoeSize: "38"},
				{Name: "David Wilson", ShoeSize: "43"},
			},
			StartTime: "01:30 PM",
			EndTime:   "02:30 PM",
			Duration:  "1h",
			Status:    StatusActive,
			Notes:     "Weekly club meeting",
			CreatedBy: "Admin User",
		},
		{
			ID:      8,
			Name:    "Garcia Family",
			IsGroup: true,
			Participants: []Participant{
				{Name: "Sophia Garcia", ShoeSize: "36"},
				{Name: "Carlos Garcia", ShoeSize: "44"},
				{Name: "Elena Garcia", ShoeSize: "38"},
			},
			StartTime: "02:15 PM",
			EndTime:   "03:15 PM",
			Duration:  "1h",
			Status:    StatusActive,
			Notes:     "Family session",
			CreatedBy: "Admin User",
		},
	}
}

// SeedSessionRecords returns the dated, revenue-bearing rows behind the
// analytics page.
func SeedSessionRecords() []SessionRecord {
	return []SessionRecord{
		{ID: 1, Date: "2023-06-14", Name: "Alex Smith", Type: "individual", Participants: 1, StartTime: "10:30 AM", EndTime: "11:30 AM", Duration: "1h", ShoeSizes: "42", Revenue: 500},
		{ID: 2, Date: "2023-06-14", Name: "Maya Johnson", Type: "individual", Participants: 1, StartTime: "11:15 AM", EndTime: "12:15 PM", Duration: "1h", ShoeSizes: "38", Revenue: 500},
		{ID: 3, Date: "2023-06-13", Name: "Raj Patel", Type: "individual", Participants: 1, StartTime: "09:55 AM", EndTime: "11:55 AM", Duration: "2h", ShoeSizes: "43", Revenue: 800},
		{ID: 4, Date: "2023-06-13", Name: "Sarah Lee", Type: "individual", Participants: 1, StartTime: "12:30 PM", EndTime: "01:30 PM", Duration: "1h", ShoeSizes: "37", Revenue: 500},
		{ID: 5, Date: "2023-06-12", Name: "Tom Wilson", Type: "individual", Participants: 1, StartTime: "10:00 AM", EndTime: "12:00 PM", Duration: "2h", ShoeSizes: "44", Revenue: 800},
		{ID: 6, Date: "2023-06-12", Name: "Emma Davis", Type: "individual", Participants: 1, StartTime: "11:45 AM", EndTime: "01:00 PM", Duration: "1h 15m", ShoeSizes: "39", Revenue: 600},
		{ID: 7, Date: "2023-06-11", Name: "Skate Club", Type: "group", Participants: 3, StartTime: "01:30 PM", EndTime: "02:30 PM", Duration: "1h", ShoeSizes: "45, 38, 43", Revenue: 1200},
		{ID: 8, Date: "2023-06-10", Name: "Garcia Family", Type: "group", Participants: 3, StartTime: "02:15 PM", EndTime: "03:15 PM", Duration: "1h", ShoeSizes: "36, 44, 38", Revenue: 1200},
		{ID: 9, Date: "2023-06-09", Name: "Beginners Class", Type: "group", Participants: 5, StartTime: "09:00 AM", EndTime: "10:30 AM", Duration: "1h 30m", ShoeSizes: "37, 38, 40, 42, 39", Revenue: 2000},
		{ID: 10, Date: "2023-06-08", Name: "Advanced Workshop", Type: "group", Participants: 4, StartTime: "04:00 PM", EndTime: "06:00 PM", Duration: "2h", ShoeSizes: "41, 43, 44, 42", Revenue: 2000},
		{ID: 11, Date: "2023-06-07", Name: "John Doe", Type: "individual", Participants: 1, StartTime: "10:00 AM", EndTime: "11:00 AM", Duration: "1h", ShoeSizes: "42", Revenue: 500},
		{ID: 12, Date: "2023-06-07", Name: "Jane Smith", Type: "individual", Participants: 1, StartTime: "11:30 AM", EndTime: "12:30 PM", Duration: "1h", ShoeSizes: "38", Revenue: 500},
		{ID: 13, Date: "2023-06-06", Name: "Youth Group", Type: "group", Participants: 6, StartTime: "02:00 PM", EndTime: "04:00 PM", Duration: "2h", ShoeSizes: "36, 37, 38, 39, 40, 41", Revenue: 2400},
		{ID: 14, Date: "2023-06-05", Name: "Mike Johnson", Type: "individual", Participants: 1, StartTime: "09:00 AM", EndTime: "10:00 AM", Duration: "1h", ShoeSizes: "44", Revenue: 500},
		{ID: 15, Date: "2023-06-05", Name: "Lisa Chen", Type: "individual", Participants: 1, StartTime: "10:30 AM", EndTime: "11:30 AM", Duration: "1h", ShoeSizes: "37", Revenue: 500},
	}
}

// SeedInventory returns the rental-shoe stock lines.
func SeedInventory() []InventoryItem {
	return []InventoryItem{
		{ID: 1, Size: "36", Total: 3, Available: 2, Status: StockAvailable},
		{ID: 2, Size: "37", Total: 4, Available: 3, Status: StockAvailable},
		{ID: 3, Size: "38", Total: 5, Available: 2, Status: StockAvailable},
		{ID: 4, Size: "39", Total: 5, Available: 4, Status: StockAvailable},
		{ID: 5, Size: "40", Total: 6, Available: 3, Status: StockAvailable},
		{ID: 6, Size: "41", Total: 6, Available: 5, Status: StockAvailable},
		{ID: 7, Size: "42", Total: 5, Available: 2, Status: StockAvailable},
		{ID: 8, Size: "43", Total: 5, Available: 3, Status: StockAvailable},
		{ID: 9, Size: "44", Total: 4, Available: 2, Status: StockAvailable},
		{ID: 10, Size: "45", Total: 3, Available: 1, Status: StockLow},
		{ID: 11, Size: "46", Total: 2, Available: 0, Status: StockOut},
		{ID: 12, Size: "47", Total: 2, Available: 1, Status: StockLow},
	}
}
