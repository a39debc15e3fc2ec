package forms

import (
	"github.com/harborview/marinadesk/internal/api"
	"github.com/harborview/marinadesk/internal/models"
)

// DockForm is the flat state behind the dock modal; the amenities map is
// expanded into individual fields
type DockForm struct {
	DockNumber          string
	Name                string
	Size                string
	Status              string
	Location            string
	Description         string
	MaxBoatLength       string
	Depth               string
	PowerAmperage       string
	HasWater            bool
	HasSewage           bool
	HasFuel             bool
	BuiltDate           string
	MaintenanceInterval string
	LastMaintenanceDate string
	NextMaintenanceDate string
	AmenityWifi         bool
	AmenitySecurity     bool
	AmenityLighting     bool
	AmenityCleats       string
	Notes               string
}

// NewDockForm returns the create-mode defaults
func NewDockForm() DockForm {
	return DockForm{
		Size:                string(models.DockMedium),
		Status:              string(models.DockAvailable),
		HasWater:            true,
		MaintenanceInterval: "30",
	}
}

// DockFormFrom seeds the form from an existing dock, expanding the
// amenities map into flat fields
func DockFormFrom(d models.Dock) DockForm {
	f := DockForm{
		DockNumber:          d.DockNumber,
		Name:                d.Name,
		Size:                string(d.Size),
		Status:              string(d.Status),
		Location:            d.Location,
		Description:         d.Description,
		MaxBoatLength:       FormatFloatPtr(d.MaxBoatLength),
		Depth:               FormatFloatPtr(d.Depth),
		PowerAmperage:       FormatIntPtr(d.PowerAmperage),
		HasWater:            d.HasWater,
		HasSewage:           d.HasSewage,
		HasFuel:             d.HasFuel,
		BuiltDate:           FormatDate(d.BuiltDate),
		MaintenanceInterval: FormatIntPtr(&d.MaintenanceInterval),
		LastMaintenanceDate: FormatDate(d.LastMaintenanceDate),
		NextMaintenanceDate: FormatDate(d.NextMaintenanceDate),
		Notes:               d.Notes,
	}
	f.AmenityWifi = amenityBool(d.Amenities, "wifi")
	f.AmenitySecurity = amenityBool(d.Amenities, "security")
	f.AmenityLighting = amenityBool(d.Amenities, "lighting")
	if n := amenityInt(d.Amenities, "cleats"); n > 0 {
		f.AmenityCleats = FormatIntPtr(&n)
	}
	return f
}

// Validate reports missing required fields
func (f DockForm) Validate() Errors {
	errs := Errors{}
	errs.require("dockNumber", f.DockNumber)
	errs.require("name", f.Name)
	errs.require("size", f.Size)
	errs.require("status", f.Status)
	return errs
}

// Payload shapes the request body. The amenities map only carries the
// amenities actually present; maintenance dates are only sent for updates
// because the backend manages them on create.
func (f DockForm) Payload(isUpdate bool) api.DockPayload {
	p := api.DockPayload{
		DockNumber:          f.DockNumber,
		Name:                f.Name,
		Size:                models.DockSize(f.Size),
		Status:              models.DockStatus(f.Status),
		Location:            StrPtr(f.Location),
		Description:         StrPtr(f.Description),
		MaxBoatLength:       FloatPtr(f.MaxBoatLength),
		Depth:               FloatPtr(f.Depth),
		PowerAmperage:       IntPtr(f.PowerAmperage),
		HasWater:            f.HasWater,
		HasSewage:           f.HasSewage,
		HasFuel:             f.HasFuel,
		BuiltDate:           ParseDate(f.BuiltDate),
		MaintenanceInterval: IntOr(f.MaintenanceInterval, 30),
		Notes:               StrPtr(f.Notes),
	}

	amenities := map[string]any{}
	if f.AmenityWifi {
		amenities["wifi"] = true
	}
	if f.AmenitySecurity {
		amenities["security"] = true
	}
	if f.AmenityLighting {
		amenities["lighting"] = true
	}
	if n := Int(f.AmenityCleats); n > 0 {
		amenities["cleats"] = n
	}
	if len(amenities) > 0 {
		p.Amenities = amenities
	}

	if isUpdate {
		p.LastMaintenanceDate = ParseDate(f.LastMaintenanceDate)
		p.NextMaintenanceDate = ParseDate(f.NextMaintenanceDate)
	}
	return p
}

func amenityBool(m map[string]any, key string) bool {
	v, ok := m[key].(bool)
	return ok && v
}

func amenityInt(m map[string]any, key string) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}
