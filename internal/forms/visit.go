package forms

import (
	"time"

	"github.com/harborview/marinadesk/internal/api"
	"github.com/harborview/marinadesk/internal/models"
)

// VisitForm is the flat state behind the visit modal; servicesUsed is
// expanded into individual checkboxes
type VisitForm struct {
	CustomerID     string
	DockNumber     string
	BoatName       string
	BoatType       string
	CheckInTime    string
	CheckOutTime   string
	ServiceCharges string
	Power          bool
	Water          bool
	Waste          bool
	Fuel           bool
	Notes          string
}

// NewVisitForm returns the create-mode defaults
func NewVisitForm() VisitForm {
	return VisitForm{}
}

// VisitFormFrom seeds the form from an existing visit, converting
// timestamps to datetime-input format and flattening the services map
func VisitFormFrom(v models.Visit) VisitForm {
	checkIn := v.CheckInTime
	return VisitForm{
		CustomerID:     v.CustomerID,
		DockNumber:     v.DockNumber,
		BoatName:       v.BoatName,
		BoatType:       v.BoatType,
		CheckInTime:    FormatDateTime(&checkIn),
		CheckOutTime:   FormatDateTime(v.CheckOutTime),
		ServiceCharges: FormatFloat(v.ServiceCharges),
		Power:          v.ServicesUsed.Power,
		Water:          v.ServicesUsed.Water,
		Waste:          v.ServicesUsed.Waste,
		Fuel:           v.ServicesUsed.Fuel,
		Notes:          v.Notes,
	}
}

// Validate reports missing required fields
func (f VisitForm) Validate() Errors {
	errs := Errors{}
	errs.require("customerId", f.CustomerID)
	errs.require("dockNumber", f.DockNumber)
	errs.require("checkInTime", f.CheckInTime)
	return errs
}

// Payload rebuilds the services map from the flat checkboxes. A blank
// check-in falls back to now; a blank check-out stays null.
func (f VisitForm) Payload(now time.Time) api.VisitPayload {
	checkIn := now
	if t := ParseDateTime(f.CheckInTime); t != nil {
		checkIn = *t
	}
	return api.VisitPayload{
		CustomerID:     f.CustomerID,
		DockNumber:     f.DockNumber,
		BoatName:       f.BoatName,
		BoatType:       f.BoatType,
		CheckInTime:    checkIn,
		CheckOutTime:   ParseDateTime(f.CheckOutTime),
		ServiceCharges: Float(f.ServiceCharges),
		ServicesUsed: models.ServicesUsed{
			Power: f.Power,
			Water: f.Water,
			Waste: f.Waste,
			Fuel:  f.Fuel,
		},
		Notes: f.Notes,
	}
}
