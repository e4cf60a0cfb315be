package dto

import (
	"condovia/internal/domains/user/model"
	"condovia/shared"
	gDto "condovia/shared/dto"
)

type UpdateUserRequest struct {
	FullName  string `db:"full_name" json:"full_name" validate:"omitempty,max=100"`
	Apartment string `db:"apartment" json:"apartment" validate:"omitempty,max=10"`
	Block     string `db:"block"     json:"block"     validate:"omitempty,max=10"`
	Phone     string `db:"phone"     json:"phone"     validate:"omitempty,max=20"`
}

type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	FullName  *string `json:"full_name,omitempty"`
	Role      string  `json:"role"`
	Apartment *string `json:"apartment,omitempty"`
	Block     *string `json:"block,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Active    bool    `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.FullName = model.FullName
	r.Role = model.Role
	r.Apartment = model.Apartment
	r.Block = model.Block
	r.Phone = model.Phone
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
