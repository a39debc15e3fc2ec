package forms

import (
	"github.com/harborview/marinadesk/internal/api"
	"github.com/harborview/marinadesk/internal/models"
)

// CustomerForm is the flat state behind the customer modal
type CustomerForm struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Address        string
	MembershipTier string
	Notes          string
}

// NewCustomerForm returns the create-mode defaults
func NewCustomerForm() CustomerForm {
	return CustomerForm{MembershipTier: string(models.TierBasic)}
}

// CustomerFormFrom seeds the form from an existing customer for editing
func CustomerFormFrom(c models.Customer) CustomerForm {
	return CustomerForm{
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Email:          c.Email,
		Phone:          c.Phone,
		Address:        c.Address,
		MembershipTier: string(c.MembershipTier),
		Notes:          c.Notes,
	}
}

// Validate reports missing required fields
func (f CustomerForm) Validate() Errors {
	errs := Errors{}
	errs.require("firstName", f.FirstName)
	errs.require("lastName", f.LastName)
	errs.require("email", f.Email)
	return errs
}

// Payload whitelists the updatable fields; blank optionals are omitted
// rather than sent as empty strings
func (f CustomerForm) Payload() api.CustomerPayload {
	return api.CustomerPayload{
		FirstName:      f.FirstName,
		LastName:       f.LastName,
		Email:          f.Email,
		Phone:          f.Phone,
		Address:        f.Address,
		MembershipTier: models.MembershipTier(f.MembershipTier),
		Notes:          f.Notes,
	}
}
