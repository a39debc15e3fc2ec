package forms

import (
	"testing"
	"time"

	"github.com/harborview/marinadesk/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitForm_Validate(t *testing.T) {
	errs := VisitForm{}.Validate()
	assert.Equal(t, "Required", errs["customerId"])
	assert.Equal(t, "Required", errs["dockNumber"])
	assert.Equal(t, "Required", errs["checkInTime"])

	f := VisitForm{CustomerID: "c1", DockNumber: "A-12", CheckInTime: "2031-07-04T10:00"}
	assert.Empty(t, f.Validate())
}

func TestVisitForm_PayloadServicesMap(t *testing.T) {
	f := VisitForm{
		CustomerID:  "c1",
		DockNumber:  "A-12",
		CheckInTime: "2031-07-04T10:00",
		Power:       true,
		Fuel:        true,
	}

	p := f.Payload(time.Now())
	assert.Equal(t, models.ServicesUsed{Power: true, Fuel: true}, p.ServicesUsed)
}

func TestVisitForm_PayloadCharges(t *testing.T) {
	f := VisitForm{CustomerID: "c1", DockNumber: "A-12", ServiceCharges: "125.50"}
	assert.Equal(t, 125.5, f.Payload(time.Now()).ServiceCharges)

	f.ServiceCharges = ""
	assert.Equal(t, 0.0, f.Payload(time.Now()).ServiceCharges)

	f.ServiceCharges = "not a number"
	assert.Equal(t, 0.0, f.Payload(time.Now()).ServiceCharges)
}

func TestVisitForm_PayloadTimes(t *testing.T) {
	now := time.Date(2031, 7, 4, 12, 0, 0, 0, time.Local)

	// blank check-in falls back to now; blank check-out stays null
	p := VisitForm{CustomerID: "c1", DockNumber: "A-12"}.Payload(now)
	assert.True(t, now.Equal(p.CheckInTime))
	assert.Nil(t, p.CheckOutTime)

	f := VisitForm{
		CustomerID:   "c1",
		DockNumber:   "A-12",
		CheckInTime:  "2031-07-04T10:00",
		CheckOutTime: "2031-07-04T16:30",
	}
	p = f.Payload(now)
	assert.Equal(t, time.Date(2031, 7, 4, 10, 0, 0, 0, time.Local), p.CheckInTime)
	require.NotNil(t, p.CheckOutTime)
	assert.Equal(t, time.Date(2031, 7, 4, 16, 30, 0, 0, time.Local), *p.CheckOutTime)
}

func TestVisitFormFrom_SeedsEditState(t *testing.T) {
	out := time.Date(2031, 7, 4, 16, 30, 0, 0, time.Local)
	v := models.Visit{
		CustomerID:     "c1",
		DockNumber:     "A-12",
		BoatName:       "Seabird",
		CheckInTime:    time.Date(2031, 7, 4, 10, 0, 0, 0, time.Local),
		CheckOutTime:   &out,
		ServiceCharges: 125.5,
		ServicesUsed:   models.ServicesUsed{Water: true},
	}

	f := VisitFormFrom(v)
	assert.Equal(t, "2031-07-04T10:00", f.CheckInTime)
	assert.Equal(t, "2031-07-04T16:30", f.CheckOutTime)
	assert.Equal(t, "125.5", f.ServiceCharges)
	assert.True(t, f.Water)
	assert.False(t, f.Power)
}
