package model

import (
	"regexp"
	"strings"
	"time"

	"condovia/shared/constant"
	"condovia/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldSlotID          = "slot_id"
	FieldAmenityID       = "amenity_id"
	FieldRequesterID     = "requester_id"
	FieldDisplayName     = "display_name"
	FieldReservationDate = "reservation_date"
	FieldReservationTime = "reservation_time"
	FieldCreatedAtUnix   = "created_at_unix"
)

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// Reservation holds a single booked slot. A row is created once and never
// mutated; the slot_id primary key is the sole uniqueness guard.
type Reservation struct {
	SlotID          string `db:"slot_id"`
	AmenityID       string `db:"amenity_id"`
	RequesterID     string `db:"requester_id"`
	DisplayName     string `db:"display_name"`
	ReservationDate string `db:"reservation_date"`
	ReservationTime string `db:"reservation_time"`
	CreatedAtUnix   int64  `db:"created_at_unix"`
	model.Metadata
}

// SlotID derives the deterministic slot identifier for an amenity, date and
// wall-clock time. The time's colon is replaced so the identifier stays safe
// for use as a key: SlotID("gym", "2026-01-07", "14:30") == "gym_2026-01-07_14-30".
func SlotID(amenityID, date, clock string) string {
	return amenityID + "_" + date + "_" + strings.ReplaceAll(clock, ":", "-")
}

// ValidDate reports whether the value is an ISO date (YYYY-MM-DD) that exists
// on the calendar. "2026-02-30" matches the shape but is rejected here.
func ValidDate(date string) bool {
	if !dateRe.MatchString(date) {
		return false
	}

	_, err := time.Parse(constant.CalendarFormat, date)

	return err == nil
}

// ValidTime reports whether the value is a wall-clock time (HH:MM) with
// hour 00-23 and minute 00-59.
func ValidTime(clock string) bool {
	if !timeRe.MatchString(clock) {
		return false
	}

	hour := (int(clock[0]-'0') * 10) + int(clock[1]-'0')
	minute := (int(clock[3]-'0') * 10) + int(clock[4]-'0')

	return hour <= 23 && minute <= 59
}
