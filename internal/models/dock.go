package models

import "time"

// DockSize buckets a dock by the boat length it can take
type DockSize string

const (
	DockSmall      DockSize = "SMALL"
	DockMedium     DockSize = "MEDIUM"
	DockLarge      DockSize = "LARGE"
	DockExtraLarge DockSize = "EXTRA_LARGE"
)

// DockStatus is the operational state of a dock
type DockStatus string

const (
	DockAvailable    DockStatus = "AVAILABLE"
	DockOccupied     DockStatus = "OCCUPIED"
	DockMaintenance  DockStatus = "MAINTENANCE"
	DockOutOfService DockStatus = "OUT_OF_SERVICE"
)

// Dock is a physical dock facility. Amenities is a free-form map the
// backend stores as JSON (wifi/security/lighting booleans, cleats count).
type Dock struct {
	ID                  string         `json:"id"`
	DockNumber          string         `json:"dockNumber"`
	Name                string         `json:"name"`
	Size                DockSize       `json:"size"`
	Status              DockStatus     `json:"status"`
	Location            string         `json:"location,omitempty"`
	Description         string         `json:"description,omitempty"`
	MaxBoatLength       *float64       `json:"maxBoatLength,omitempty"`
	Depth               *float64       `json:"depth,omitempty"`
	PowerAmperage       *int           `json:"powerAmperage,omitempty"`
	HasWater            bool           `json:"hasWater"`
	HasSewage           bool           `json:"hasSewage"`
	HasFuel             bool           `json:"hasFuel"`
	Amenities           map[string]any `json:"amenities,omitempty"`
	BuiltDate           *time.Time     `json:"builtDate,omitempty"`
	MaintenanceInterval int            `json:"maintenanceInterval"`
	LastMaintenanceDate *time.Time     `json:"lastMaintenanceDate,omitempty"`
	NextMaintenanceDate *time.Time     `json:"nextMaintenanceDate,omitempty"`
	Notes               string         `json:"notes,omitempty"`
	CreatedAt           time.Time      `json:"createdAt"`
}
