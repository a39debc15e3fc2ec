package forms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat(t *testing.T) {
	assert.Equal(t, 125.5, Float("125.50"))
	assert.Equal(t, 0.0, Float(""))
	assert.Equal(t, 0.0, Float("abc"))
	assert.Equal(t, 10.0, Float("10"))
}

func TestInt(t *testing.T) {
	assert.Equal(t, 42, Int("42"))
	assert.Equal(t, 0, Int(""))
	assert.Equal(t, 0, Int("abc"))
}

func TestIntOr(t *testing.T) {
	assert.Equal(t, 15, IntOr("15", 30))
	assert.Equal(t, 30, IntOr("", 30))
	assert.Equal(t, 30, IntOr("abc", 30))
}

func TestPtrHelpers(t *testing.T) {
	assert.Nil(t, FloatPtr(""))
	require.NotNil(t, FloatPtr("9.5"))
	assert.Equal(t, 9.5, *FloatPtr("9.5"))

	assert.Nil(t, IntPtr(""))
	require.NotNil(t, IntPtr("30"))
	assert.Equal(t, 30, *IntPtr("30"))

	assert.Nil(t, StrPtr(""))
	require.NotNil(t, StrPtr("slip A"))
	assert.Equal(t, "slip A", *StrPtr("slip A"))
}

func TestParseDate(t *testing.T) {
	got := ParseDate("2031-07-04")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2031, 7, 4, 0, 0, 0, 0, time.Local), *got)

	assert.Nil(t, ParseDate(""))
	assert.Nil(t, ParseDate("not-a-date"))
}

func TestParseDateTime(t *testing.T) {
	got := ParseDateTime("2031-07-04T15:30")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2031, 7, 4, 15, 30, 0, 0, time.Local), *got)

	assert.Nil(t, ParseDateTime(""))
	assert.Nil(t, ParseDateTime("2031-07-04")) // missing time part
}

func TestFormatRoundTrip(t *testing.T) {
	ts := time.Date(2031, 7, 4, 15, 30, 0, 0, time.Local)

	assert.Equal(t, "2031-07-04", FormatDate(&ts))
	assert.Equal(t, "2031-07-04T15:30", FormatDateTime(&ts))
	assert.Equal(t, "", FormatDate(nil))
	assert.Equal(t, "", FormatDateTime(nil))

	// an edit seed survives the parse half of the trip
	back := ParseDateTime(FormatDateTime(&ts))
	require.NotNil(t, back)
	assert.True(t, ts.Equal(*back))
}

func TestErrorsRequire(t *testing.T) {
	errs := Errors{}
	errs.require("name", "")
	errs.require("email", "x@y.z")
	errs.require("title", "   ")

	assert.Equal(t, "Required", errs["name"])
	assert.Equal(t, "Required", errs["title"])
	assert.NotContains(t, errs, "email")
}
