package model

import (
	"time"

	"condovia/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldFullName  = "full_name"
	FieldRole      = "role"
	FieldApartment = "apartment"
	FieldBlock     = "block"
	FieldPhone     = "phone"
	FieldActive    = "active"
	FieldLastLogin = "last_login"
)

type User struct {
	ID        string     `db:"id"`
	Email     string     `db:"email"`
	Password  string     `db:"password"`
	FullName  *string    `db:"full_name"`
	Role      string     `db:"role"`
	Apartment *string    `db:"apartment"`
	Block     *string    `db:"block"`
	Phone     *string    `db:"phone"`
	Active    bool       `db:"active"`
	LastLogin *time.Time `db:"last_login"`
	model.Metadata
}
