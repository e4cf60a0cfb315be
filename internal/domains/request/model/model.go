package model

import (
	"condovia/shared/model"
)

const (
	TableName  = "maintenance_requests"
	EntityName = "request"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldStatus      = "status"
	FieldCreatedBy   = "created_by"

	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
)

type Request struct {
	ID          string `db:"id"`
	Title       string `db:"title"`
	Description string `db:"description"`
	Status      string `db:"status"`
	model.Metadata
}
