package models

import "time"

// AssetType classifies managed equipment and infrastructure. This is the
// set the backend accepts on create/update.
type AssetType string

const (
	AssetDock         AssetType = "DOCK"
	AssetPowerStation AssetType = "POWER_STATION"
	AssetWaterSystem  AssetType = "WATER_SYSTEM"
	AssetFuelStation  AssetType = "FUEL_STATION"
	AssetEquipment    AssetType = "EQUIPMENT"
	AssetBuilding     AssetType = "BUILDING"
	AssetOther        AssetType = "OTHER"
)

// AssetStatus is the operational state of an asset
type AssetStatus string

const (
	AssetOperational         AssetStatus = "OPERATIONAL"
	AssetMaintenanceRequired AssetStatus = "MAINTENANCE_REQUIRED"
	AssetUnderMaintenance    AssetStatus = "UNDER_MAINTENANCE"
	AssetOutOfService        AssetStatus = "OUT_OF_SERVICE"
)

// Asset is a tracked piece of marina equipment or infrastructure
type Asset struct {
	ID                  string      `json:"id"`
	Name                string      `json:"name"`
	Type                AssetType   `json:"type"`
	Status              AssetStatus `json:"status"`
	Location            string      `json:"location,omitempty"`
	Description         string      `json:"description,omitempty"`
	PurchasePrice       float64     `json:"purchasePrice"`
	PurchaseDate        *time.Time  `json:"purchaseDate,omitempty"`
	WarrantyExpiry      *time.Time  `json:"warrantyExpiry,omitempty"`
	MaintenanceInterval int         `json:"maintenanceInterval"`
	LastMaintenanceDate *time.Time  `json:"lastMaintenanceDate,omitempty"`
	NextMaintenanceDate *time.Time  `json:"nextMaintenanceDate,omitempty"`
	CreatedAt           time.Time   `json:"createdAt"`
}
