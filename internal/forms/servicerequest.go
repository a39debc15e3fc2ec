package forms

import (
	"strings"
	"time"

	"github.com/harborview/marinadesk/internal/api"
	"github.com/harborview/marinadesk/internal/models"
)

// ServiceRequestForm is the flat state behind the service request modal
type ServiceRequestForm struct {
	CustomerID    string
	ServiceType   string
	Title         string
	Description   string
	Priority      string
	Status        string
	RequestedDate string
	EstimatedCost string
}

// NewServiceRequestForm returns the create-mode defaults
func NewServiceRequestForm() ServiceRequestForm {
	return ServiceRequestForm{
		Priority: string(models.PriorityMedium),
		Status:   string(models.RequestPending),
	}
}

// ServiceRequestFormFrom seeds the form from an existing request
func ServiceRequestFormFrom(r models.ServiceRequest) ServiceRequestForm {
	requested := r.RequestedDate
	return ServiceRequestForm{
		CustomerID:    r.CustomerID,
		ServiceType:   r.ServiceType,
		Title:         r.Title,
		Description:   r.Description,
		Priority:      string(r.Priority),
		Status:        string(r.Status),
		RequestedDate: FormatDateTime(&requested),
		EstimatedCost: FormatFloat(r.EstimatedCost),
	}
}

// Validate reports missing required fields
func (f ServiceRequestForm) Validate() Errors {
	errs := Errors{}
	errs.require("customerId", f.CustomerID)
	errs.require("serviceType", f.ServiceType)
	errs.require("title", f.Title)
	errs.require("description", f.Description)
	return errs
}

// Payload shapes the request body; a blank requested date falls back to
// now
func (f ServiceRequestForm) Payload(now time.Time) api.ServiceRequestPayload {
	requested := now
	if t := ParseDateTime(f.RequestedDate); t != nil {
		requested = *t
	}
	return api.ServiceRequestPayload{
		CustomerID:    f.CustomerID,
		ServiceType:   strings.TrimSpace(f.ServiceType),
		Title:         f.Title,
		Description:   f.Description,
		Priority:      models.RequestPriority(f.Priority),
		Status:        models.RequestStatus(f.Status),
		RequestedDate: requested,
		EstimatedCost: Float(f.EstimatedCost),
	}
}
