package forms

import (
	"testing"
	"time"

	"github.com/harborview/marinadesk/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestServiceRequestForm_Validate(t *testing.T) {
	errs := ServiceRequestForm{}.Validate()
	for _, field := range []string{"customerId", "serviceType", "title", "description"} {
		assert.Equal(t, "Required", errs[field], field)
	}

	f := NewServiceRequestForm()
	f.CustomerID = "c1"
	f.ServiceType = "Dock Repair"
	f.Title = "Loose cleat"
	f.Description = "Port-side cleat wobbles"
	assert.Empty(t, f.Validate())
}

func TestServiceRequestForm_PayloadTrimsServiceType(t *testing.T) {
	f := NewServiceRequestForm()
	f.CustomerID = "c1"
	f.ServiceType = "  Fueling  "
	f.Title = "Top off"
	f.Description = "Full tank before the weekend"

	assert.Equal(t, "Fueling", f.Payload(time.Now()).ServiceType)
}

func TestServiceRequestForm_RequestedDateFallback(t *testing.T) {
	now := time.Date(2031, 7, 4, 12, 0, 0, 0, time.Local)

	f := NewServiceRequestForm()
	f.CustomerID = "c1"
	p := f.Payload(now)
	assert.True(t, now.Equal(p.RequestedDate))

	f.RequestedDate = "2031-07-10T09:00"
	p = f.Payload(now)
	assert.Equal(t, time.Date(2031, 7, 10, 9, 0, 0, 0, time.Local), p.RequestedDate)
}

func TestNewServiceRequestForm_Defaults(t *testing.T) {
	f := NewServiceRequestForm()
	assert.Equal(t, string(models.PriorityMedium), f.Priority)
	assert.Equal(t, string(models.RequestPending), f.Status)
}
