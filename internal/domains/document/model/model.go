package model

import (
	"condovia/shared/model"
)

const (
	TableName  = "documents"
	EntityName = "document"

	FieldID   = "id"
	FieldName = "name"
	FieldKind = "kind"
	FieldURL  = "url"

	KindDocument = "document"
	KindInvoice  = "invoice"

	FileDirectory = "documents"
)

type Document struct {
	ID   string `db:"id"`
	Name string `db:"name"`
	Kind string `db:"kind"`
	URL  string `db:"url"`
	model.Metadata
}
