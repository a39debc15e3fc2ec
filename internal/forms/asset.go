package forms

import (
	"github.com/harborview/marinadesk/internal/api"
	"github.com/harborview/marinadesk/internal/models"
)

// AssetForm is the flat state behind the asset modal
type AssetForm struct {
	Name                string
	Type                string
	Status              string
	Location            string
	Description         string
	PurchaseDate        string
	PurchasePrice       string
	WarrantyExpiry      string
	MaintenanceInterval string
	LastMaintenanceDate string
	NextMaintenanceDate string
}

// NewAssetForm returns the create-mode defaults
func NewAssetForm() AssetForm {
	return AssetForm{
		Status:              string(models.AssetOperational),
		MaintenanceInterval: "30",
	}
}

// AssetFormFrom seeds the form from an existing asset
func AssetFormFrom(a models.Asset) AssetForm {
	return AssetForm{
		Name:                a.Name,
		Type:                string(a.Type),
		Status:              string(a.Status),
		Location:            a.Location,
		Description:         a.Description,
		PurchaseDate:        FormatDate(a.PurchaseDate),
		PurchasePrice:       FormatFloat(a.PurchasePrice),
		WarrantyExpiry:      FormatDate(a.WarrantyExpiry),
		MaintenanceInterval: FormatIntPtr(&a.MaintenanceInterval),
		LastMaintenanceDate: FormatDate(a.LastMaintenanceDate),
		NextMaintenanceDate: FormatDate(a.NextMaintenanceDate),
	}
}

// Validate reports missing required fields
func (f AssetForm) Validate() Errors {
	errs := Errors{}
	errs.require("name", f.Name)
	errs.require("type", f.Type)
	return errs
}

// Payload shapes the request body; blank dates go out as null
func (f AssetForm) Payload() api.AssetPayload {
	return api.AssetPayload{
		Name:                f.Name,
		Type:                models.AssetType(f.Type),
		Status:              models.AssetStatus(f.Status),
		Location:            f.Location,
		Description:         f.Description,
		PurchaseDate:        ParseDate(f.PurchaseDate),
		PurchasePrice:       Float(f.PurchasePrice),
		WarrantyExpiry:      ParseDate(f.WarrantyExpiry),
		MaintenanceInterval: IntOr(f.MaintenanceInterval, 30),
		LastMaintenanceDate: ParseDate(f.LastMaintenanceDate),
		NextMaintenanceDate: ParseDate(f.NextMaintenanceDate),
	}
}
