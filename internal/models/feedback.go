package models

import "time"

// Feedback is a customer review with a 1-5 star rating
type Feedback struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customerId"`
	Customer      *Customer `json:"customer,omitempty"`
	Rating        int       `json:"rating"`
	Category      string    `json:"category,omitempty"`
	Comments      string    `json:"comments,omitempty"`
	Reviewed      bool      `json:"reviewed"`
	StaffResponse string    `json:"staffResponse,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
