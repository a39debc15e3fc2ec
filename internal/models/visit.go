package models

import "time"

// ServicesUsed records which dockside services a visit consumed
type ServicesUsed struct {
	Power bool `json:"power"`
	Water bool `json:"water"`
	Waste bool `json:"waste"`
	Fuel  bool `json:"fuel"`
}

// Visit links a customer to a dock for a time window. CheckOutTime is nil
// while the boat is still docked.
type Visit struct {
	ID             string       `json:"id"`
	CustomerID     string       `json:"customerId"`
	Customer       *Customer    `json:"customer,omitempty"`
	DockNumber     string       `json:"dockNumber"`
	BoatName       string       `json:"boatName,omitempty"`
	BoatType       string       `json:"boatType,omitempty"`
	CheckInTime    time.Time    `json:"checkInTime"`
	CheckOutTime   *time.Time   `json:"checkOutTime,omitempty"`
	ServiceCharges float64      `json:"serviceCharges"`
	ServicesUsed   ServicesUsed `json:"servicesUsed"`
	Notes          string       `json:"notes,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
}

// Completed reports whether the visit has checked out
func (v Visit) Completed() bool {
	return v.CheckOutTime != nil
}

// DisplayStatus is the derived status shown in list views; it is never
// stored on the backend.
func (v Visit) DisplayStatus() string {
	if v.Completed() {
		return "Completed"
	}
	return "Active"
}
