package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeedbackForm_Validate(t *testing.T) {
	tests := []struct {
		name   string
		form   FeedbackForm
		errKey string
		errMsg string
	}{
		{"missing customer", FeedbackForm{Rating: "5"}, "customerId", "Required"},
		{"missing rating", FeedbackForm{CustomerID: "c1"}, "rating", "Required"},
		{"rating too high", FeedbackForm{CustomerID: "c1", Rating: "6"}, "rating", "Must be 1-5"},
		{"rating too low", FeedbackForm{CustomerID: "c1", Rating: "0"}, "rating", "Must be 1-5"},
		{"rating not a number", FeedbackForm{CustomerID: "c1", Rating: "five"}, "rating", "Must be 1-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.form.Validate()
			assert.Equal(t, tt.errMsg, errs[tt.errKey])
		})
	}

	ok := FeedbackForm{CustomerID: "c1", Rating: "4"}
	assert.Empty(t, ok.Validate())
}

func TestFeedbackForm_Payload(t *testing.T) {
	f := FeedbackForm{CustomerID: "c1", Rating: "4", Reviewed: true, StaffResponse: "Thanks!"}

	p := f.Payload()
	assert.Equal(t, 4, p.Rating)
	assert.True(t, p.Reviewed)
	assert.Equal(t, "Thanks!", p.StaffResponse)
}

func TestNewFeedbackForm_Defaults(t *testing.T) {
	assert.Equal(t, "5", NewFeedbackForm().Rating)
}
