package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"condovia/internal/domains/reservation/model/dto"
)

func TestCreateReservationRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateReservationRequest
		wantErr string
	}{
		{
			name: "valid request",
			req: dto.CreateReservationRequest{
				AmenityID:       "gym",
				DisplayName:     "Alex Souza",
				ReservationDate: "2026-01-07",
				ReservationTime: "14:30",
			},
		},
		{
			name: "invalid date checked first",
			req: dto.CreateReservationRequest{
				AmenityID:       "gym",
				DisplayName:     "   ",
				ReservationDate: "2026-02-30",
				ReservationTime: "99:99",
			},
			wantErr: "reservation_date must be a valid calendar date in YYYY-MM-DD format",
		},
		{
			name: "invalid time checked before display name",
			req: dto.CreateReservationRequest{
				AmenityID:       "gym",
				DisplayName:     "   ",
				ReservationDate: "2026-01-07",
				ReservationTime: "25:00",
			},
			wantErr: "reservation_time must be a valid time in HH:MM format",
		},
		{
			name: "blank display name",
			req: dto.CreateReservationRequest{
				AmenityID:       "gym",
				DisplayName:     "   ",
				ReservationDate: "2026-01-07",
				ReservationTime: "14:30",
			},
			wantErr: "display_name must not be blank",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestCreateReservationRequest_ToModel(t *testing.T) {
	req := dto.CreateReservationRequest{
		AmenityID:       "gym",
		DisplayName:     "  Alex Souza  ",
		ReservationDate: "2026-01-07",
		ReservationTime: "14:30",
	}

	reservation := req.ToModel("user-1")

	assert.Equal(t, "gym_2026-01-07_14-30", reservation.SlotID)
	assert.Equal(t, "gym", reservation.AmenityID)
	assert.Equal(t, "user-1", reservation.RequesterID)
	assert.Equal(t, "Alex Souza", reservation.DisplayName)
	assert.Equal(t, "2026-01-07", reservation.ReservationDate)
	assert.Equal(t, "14:30", reservation.ReservationTime)
	assert.Positive(t, reservation.CreatedAtUnix)
	assert.Equal(t, "user-1", reservation.CreatedBy)
}
