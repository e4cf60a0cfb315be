package model

import (
	"condovia/shared/model"
)

const (
	TableName  = "visitors"
	EntityName = "visitor"

	FieldID              = "id"
	FieldVisitorName     = "visitor_name"
	FieldVisitorDocument = "visitor_document"
	FieldVisitorPhone    = "visitor_phone"
	FieldResidentName    = "resident_name"
	FieldApartment       = "apartment"
	FieldBlock           = "block"
	FieldPhotoURL        = "photo_url"
	FieldCreatedBy       = "created_by"

	PhotoDirectory = "visitors"
)

type Visitor struct {
	ID              string  `db:"id"`
	VisitorName     string  `db:"visitor_name"`
	VisitorDocument string  `db:"visitor_document"`
	VisitorPhone    *string `db:"visitor_phone"`
	ResidentName    string  `db:"resident_name"`
	Apartment       string  `db:"apartment"`
	Block           string  `db:"block"`
	PhotoURL        *string `db:"photo_url"`
	model.Metadata
}
