package models

import (
	"encoding/json"
	"testing"
)

func TestFlexInt_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		json string
		want int
	}{
		{"plain number", `42`, 42},
		{"string number", `"42"`, 42},
		{"string float truncates", `"42.9"`, 42},
		{"null", `null`, 0},
		{"empty string", `""`, 0},
		{"garbage string", `"lots"`, 0},
		{"negative", `-3`, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexInt
			if err := json.Unmarshal([]byte(tt.json), &f); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.json, err)
			}
			if f.Int() != tt.want {
				t.Errorf("Unmarshal(%s) = %d, want %d", tt.json, f.Int(), tt.want)
			}
		})
	}
}

func TestFlexFloat_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		json string
		want float64
	}{
		{"plain number", `125.5`, 125.5},
		{"string number", `"125.50"`, 125.5},
		{"integer", `10`, 10},
		{"null", `null`, 0},
		{"garbage string", `"n/a"`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexFloat
			if err := json.Unmarshal([]byte(tt.json), &f); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.json, err)
			}
			if f.Float() != tt.want {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.json, f.Float(), tt.want)
			}
		})
	}
}

func TestOccupancy_DecodesStringCounts(t *testing.T) {
	body := `{"totalDocks": "24", "occupiedDocks": 10, "availableDocks": "12", "maintenanceDocks": "1", "outOfServiceDocks": 1, "occupancyRate": "41.67"}`

	var occ Occupancy
	if err := json.Unmarshal([]byte(body), &occ); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if occ.TotalDocks.Int() != 24 {
		t.Errorf("TotalDocks = %d, want 24", occ.TotalDocks.Int())
	}
	if occ.OccupancyRate.Float() != 41.67 {
		t.Errorf("OccupancyRate = %v, want 41.67", occ.OccupancyRate.Float())
	}
}
