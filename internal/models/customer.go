package models

import "time"

// MembershipTier is a customer's loyalty tier
type MembershipTier string

const (
	TierBasic    MembershipTier = "BASIC"
	TierSilver   MembershipTier = "SILVER"
	TierGold     MembershipTier = "GOLD"
	TierPlatinum MembershipTier = "PLATINUM"
)

// Customer represents a marina customer record owned by the backend
type Customer struct {
	ID             string         `json:"id"`
	FirstName      string         `json:"firstName"`
	LastName       string         `json:"lastName"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone,omitempty"`
	Address        string         `json:"address,omitempty"`
	MembershipTier MembershipTier `json:"membershipTier"`
	LoyaltyPoints  int            `json:"loyaltyPoints"`
	Notes          string         `json:"notes,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt,omitempty"`
}

// FullName returns the customer's display name
func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
