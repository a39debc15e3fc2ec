package forms

import (
	"strconv"

	"github.com/harborview/marinadesk/internal/api"
	"github.com/harborview/marinadesk/internal/models"
)

// FeedbackForm is the flat state behind the feedback modal
type FeedbackForm struct {
	CustomerID    string
	Rating        string
	Category      string
	Comments      string
	Reviewed      bool
	StaffResponse string
}

// NewFeedbackForm returns the create-mode defaults
func NewFeedbackForm() FeedbackForm {
	return FeedbackForm{Rating: "5"}
}

// FeedbackFormFrom seeds the form from an existing entry
func FeedbackFormFrom(fb models.Feedback) FeedbackForm {
	return FeedbackForm{
		CustomerID:    fb.CustomerID,
		Rating:        strconv.Itoa(fb.Rating),
		Category:      fb.Category,
		Comments:      fb.Comments,
		Reviewed:      fb.Reviewed,
		StaffResponse: fb.StaffResponse,
	}
}

// Validate reports missing required fields and an out-of-range rating
func (f FeedbackForm) Validate() Errors {
	errs := Errors{}
	errs.require("customerId", f.CustomerID)
	errs.require("rating", f.Rating)
	if _, ok := errs["rating"]; !ok {
		if r := Int(f.Rating); r < 1 || r > 5 {
			errs["rating"] = "Must be 1-5"
		}
	}
	return errs
}

// Payload shapes the request body
func (f FeedbackForm) Payload() api.FeedbackPayload {
	return api.FeedbackPayload{
		CustomerID:    f.CustomerID,
		Rating:        Int(f.Rating),
		Category:      f.Category,
		Comments:      f.Comments,
		Reviewed:      f.Reviewed,
		StaffResponse: f.StaffResponse,
	}
}
