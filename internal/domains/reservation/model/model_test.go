package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"condovia/internal/domains/reservation/model"
)

func TestSlotID(t *testing.T) {
	tests := []struct {
		name      string
		amenityID string
		date      string
		clock     string
		want      string
	}{
		{
			name:      "colon replaced with dash",
			amenityID: "gym",
			date:      "2026-01-07",
			clock:     "14:30",
			want:      "gym_2026-01-07_14-30",
		},
		{
			name:      "midnight slot",
			amenityID: "pool",
			date:      "2026-12-31",
			clock:     "00:00",
			want:      "pool_2026-12-31_00-00",
		},
		{
			name:      "amenity with dash",
			amenityID: "party-room",
			date:      "2026-06-15",
			clock:     "19:00",
			want:      "party-room_2026-06-15_19-00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.SlotID(tt.amenityID, tt.date, tt.clock)
			assert.Equal(t, tt.want, got)

			// Same inputs must always derive the same identifier
			assert.Equal(t, got, model.SlotID(tt.amenityID, tt.date, tt.clock))
		})
	}
}

func TestValidDate(t *testing.T) {
	tests := []struct {
		name string
		date string
		want bool
	}{
		{"valid date", "2026-01-07", true},
		{"leap day on leap year", "2024-02-29", true},
		{"leap day on non-leap year", "2026-02-29", false},
		{"nonexistent day", "2026-02-30", false},
		{"month out of range", "2026-13-01", false},
		{"wrong shape", "2026/01/07", false},
		{"missing zero padding", "2026-1-7", false},
		{"trailing garbage", "2026-01-07x", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.ValidDate(tt.date))
		})
	}
}

func TestValidTime(t *testing.T) {
	tests := []struct {
		name  string
		clock string
		want  bool
	}{
		{"valid time", "14:30", true},
		{"midnight", "00:00", true},
		{"last minute of day", "23:59", true},
		{"hour out of range", "25:00", false},
		{"hour 24", "24:00", false},
		{"minute out of range", "12:61", false},
		{"minute 60", "12:60", false},
		{"wrong shape", "9:30", false},
		{"no colon", "0930", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.ValidTime(tt.clock))
		})
	}
}
