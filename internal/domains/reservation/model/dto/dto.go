package dto

import (
	"strings"

	"condovia/internal/domains/reservation/model"
	"condovia/shared/failure"
	gModel "condovia/shared/model"
	"condovia/shared/timezone"
)

type CreateReservationRequest struct {
	AmenityID       string `json:"amenity_id"       validate:"required,max=50"`
	DisplayName     string `json:"display_name"     validate:"required,max=100"`
	ReservationDate string `json:"reservation_date" validate:"required"`
	ReservationTime string `json:"reservation_time" validate:"required"`
}

// Validate applies the slot-level rules that go beyond struct tags. It is
// called before any store access so invalid requests never reach the
// repository.
func (c *CreateReservationRequest) Validate() error {
	if !model.ValidDate(c.ReservationDate) {
		return failure.BadRequestFromString("reservation_date must be a valid calendar date in YYYY-MM-DD format") // nolint:wrapcheck
	}

	if !model.ValidTime(c.ReservationTime) {
		return failure.BadRequestFromString("reservation_time must be a valid time in HH:MM format") // nolint:wrapcheck
	}

	if strings.TrimSpace(c.DisplayName) == "" {
		return failure.BadRequestFromString("display_name must not be blank") // nolint:wrapcheck
	}

	return nil
}

func (c *CreateReservationRequest) ToModel(requesterID string) model.Reservation {
	now := timezone.Now()

	return model.Reservation{
		SlotID:          model.SlotID(c.AmenityID, c.ReservationDate, c.ReservationTime),
		AmenityID:       c.AmenityID,
		RequesterID:     requesterID,
		DisplayName:     strings.TrimSpace(c.DisplayName),
		ReservationDate: c.ReservationDate,
		ReservationTime: c.ReservationTime,
		CreatedAtUnix:   now.UnixMilli(),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  requesterID,
			ModifiedBy: requesterID,
		},
	}
}

type ReservationResponse struct {
	SlotID          string `json:"slot_id"`
	AmenityID       string `json:"amenity_id"`
	RequesterID     string `json:"requester_id"`
	DisplayName     string `json:"display_name"`
	ReservationDate string `json:"reservation_date"`
	ReservationTime string `json:"reservation_time"`
	CreatedAtUnix   int64  `json:"created_at_unix"`
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.SlotID = model.SlotID
	r.AmenityID = model.AmenityID
	r.RequesterID = model.RequesterID
	r.DisplayName = model.DisplayName
	r.ReservationDate = model.ReservationDate
	r.ReservationTime = model.ReservationTime
	r.CreatedAtUnix = model.CreatedAtUnix
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation) {
	r.TotalData = len(models)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}
