package model

import (
	"condovia/shared/model"
)

const (
	TableName  = "announcements"
	EntityName = "announcement"

	FieldID       = "id"
	FieldTitle    = "title"
	FieldBody     = "body"
	FieldCategory = "category"

	CategoryGeneral  = "general"
	CategoryAssembly = "assembly"
)

type Announcement struct {
	ID       string `db:"id"`
	Title    string `db:"title"`
	Body     string `db:"body"`
	Category string `db:"category"`
	model.Metadata
}
