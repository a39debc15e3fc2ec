package forms

import (
	"github.com/harborview/marinadesk/internal/api"
	"github.com/harborview/marinadesk/internal/models"
)

// MaintenanceForm is the flat state behind the maintenance modal
type MaintenanceForm struct {
	AssetID       string
	Type          string
	Title         string
	Description   string
	ScheduledDate string
	CompletedDate string
	Status        string
	EstimatedCost string
	ActualCost    string
	AssignedTo    string
	Notes         string
}

// NewMaintenanceForm returns the create-mode defaults
func NewMaintenanceForm() MaintenanceForm {
	return MaintenanceForm{Status: string(models.MaintenanceScheduled)}
}

// MaintenanceFormFrom seeds the form from an existing record
func MaintenanceFormFrom(r models.MaintenanceRecord) MaintenanceForm {
	return MaintenanceForm{
		AssetID:       r.AssetID,
		Type:          string(r.Type),
		Title:         r.Title,
		Description:   r.Description,
		ScheduledDate: FormatDateTime(r.ScheduledDate),
		CompletedDate: FormatDateTime(r.CompletedDate),
		Status:        string(r.Status),
		EstimatedCost: FormatFloatPtr(r.EstimatedCost),
		ActualCost:    FormatFloatPtr(r.ActualCost),
		AssignedTo:    r.AssignedTo,
		Notes:         r.Notes,
	}
}

// Validate reports missing required fields
func (f MaintenanceForm) Validate() Errors {
	errs := Errors{}
	errs.require("assetId", f.AssetID)
	errs.require("title", f.Title)
	errs.require("type", f.Type)
	errs.require("description", f.Description)
	errs.require("scheduledDate", f.ScheduledDate)
	return errs
}

// Payload shapes the request body. The create DTO does not accept
// completion fields, so completedDate and actualCost only go out on
// update.
func (f MaintenanceForm) Payload(isUpdate bool) api.MaintenancePayload {
	p := api.MaintenancePayload{
		AssetID:       f.AssetID,
		Type:          models.MaintenanceType(f.Type),
		Title:         f.Title,
		Description:   f.Description,
		ScheduledDate: ParseDateTime(f.ScheduledDate),
		Status:        models.MaintenanceStatus(f.Status),
		EstimatedCost: FloatPtr(f.EstimatedCost),
		AssignedTo:    f.AssignedTo,
		Notes:         f.Notes,
	}
	if isUpdate {
		p.CompletedDate = ParseDateTime(f.CompletedDate)
		p.ActualCost = FloatPtr(f.ActualCost)
	}
	return p
}
