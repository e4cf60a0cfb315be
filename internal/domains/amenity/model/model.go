package model

import (
	"condovia/shared/model"
)

const (
	TableName  = "amenities"
	EntityName = "amenity"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldOpenTime    = "open_time"
	FieldCloseTime   = "close_time"
	FieldActive      = "active"
)

type Amenity struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
	OpenTime    string  `db:"open_time"`
	CloseTime   string  `db:"close_time"`
	Active      bool    `db:"active"`
	model.Metadata
}
