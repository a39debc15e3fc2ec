// Package forms maps flat modal-form state (strings and booleans, the way
// text inputs hold them) to the typed request payloads the API client
// sends. Everything here is pure so payload shaping is testable without
// rendering anything.
package forms

import (
	"strconv"
	"strings"
	"time"
)

// Input formats used by date and datetime form fields
const (
	DateInput     = "2006-01-02"
	DateTimeInput = "2006-01-02T15:04"
)

// Errors maps field name to an inline validation message
type Errors map[string]string

func (e Errors) require(field, value string) {
	if strings.TrimSpace(value) == "" {
		e[field] = "Required"
	}
}

// Float parses a numeric field, returning 0 for blank or invalid input
func Float(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// Int parses an integer field, returning 0 for blank or invalid input
func Int(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return int(Float(s))
	}
	return v
}

// IntOr parses an integer field with a non-zero default for blank or
// invalid input
func IntOr(s string, def int) int {
	if v := Int(s); v != 0 {
		return v
	}
	return def
}

// FloatPtr parses an optional numeric field; blank or invalid means the
// field is left out of the payload entirely
func FloatPtr(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// IntPtr parses an optional integer field, nil when blank or invalid
func IntPtr(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

// StrPtr nulls out a blank optional text field
func StrPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// ParseDate reads a date input (local midnight), nil when blank or invalid
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.ParseInLocation(DateInput, s, time.Local)
	if err != nil {
		return nil
	}
	return &t
}

// ParseDateTime reads a datetime input in local time, nil when blank or
// invalid
func ParseDateTime(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.ParseInLocation(DateTimeInput, s, time.Local)
	if err != nil {
		return nil
	}
	return &t
}

// FormatDate renders a timestamp back into date-input form for edit
// seeding, "" when absent
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Local().Format(DateInput)
}

// FormatDateTime renders a timestamp back into datetime-input form, ""
// when absent
func FormatDateTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Local().Format(DateTimeInput)
}

// FormatFloat renders a numeric field for edit seeding, "" for zero so an
// unset optional stays blank
func FormatFloat(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatFloatPtr renders an optional numeric field for edit seeding
func FormatFloatPtr(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// FormatIntPtr renders an optional integer field for edit seeding
func FormatIntPtr(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
