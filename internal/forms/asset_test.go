package forms

import (
	"testing"
	"time"

	"github.com/harborview/marinadesk/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetForm_Validate(t *testing.T) {
	errs := AssetForm{}.Validate()
	assert.Equal(t, "Required", errs["name"])
	assert.Equal(t, "Required", errs["type"])
	assert.Len(t, errs, 2)

	f := NewAssetForm()
	f.Name = "Fuel pump 2"
	f.Type = string(models.AssetFuelStation)
	assert.Empty(t, f.Validate())
}

func TestAssetForm_PayloadDates(t *testing.T) {
	f := NewAssetForm()
	f.Name = "Fuel pump 2"
	f.Type = string(models.AssetFuelStation)
	f.PurchaseDate = "2029-03-15"
	f.WarrantyExpiry = ""

	p := f.Payload()
	require.NotNil(t, p.PurchaseDate)
	assert.Equal(t, time.Date(2029, 3, 15, 0, 0, 0, 0, time.Local), *p.PurchaseDate)
	assert.Nil(t, p.WarrantyExpiry)
	assert.Equal(t, 30, p.MaintenanceInterval)
}

func TestNewAssetForm_Defaults(t *testing.T) {
	f := NewAssetForm()
	assert.Equal(t, string(models.AssetOperational), f.Status)
	assert.Equal(t, "30", f.MaintenanceInterval)
}
