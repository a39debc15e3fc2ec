package models

import (
	"bytes"
	"strconv"
)

// The backend computes aggregates in SQL and several drivers serialize
// COUNT/SUM results as JSON strings. FlexInt and FlexFloat accept either a
// JSON number or a numeric string, and decode to zero when the value is
// absent, null, or unparseable.

// FlexInt is an int that tolerates string-encoded JSON numbers
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := unquote(data)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// match parseInt: take the leading float and truncate, else 0
		v, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			*f = 0
			return nil
		}
		*f = FlexInt(int(v))
		return nil
	}
	*f = FlexInt(n)
	return nil
}

// Int returns the plain int value
func (f FlexInt) Int() int { return int(f) }

// FlexFloat is a float64 that tolerates string-encoded JSON numbers
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	s := unquote(data)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(v)
	return nil
}

// Float returns the plain float64 value
func (f FlexFloat) Float() float64 { return float64(f) }

func unquote(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	return string(bytes.TrimSpace(data))
}
