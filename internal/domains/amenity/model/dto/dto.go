package dto

import (
	"condovia/internal/domains/amenity/model"
	"condovia/shared"
	gDto "condovia/shared/dto"
	gModel "condovia/shared/model"
	"condovia/shared/timezone"
)

type CreateAmenityRequest struct {
	ID          string  `json:"id"                    validate:"required,max=50,lowercase,excludesall= _"`
	Name        string  `json:"name"                  validate:"required,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	OpenTime    string  `json:"open_time"             validate:"omitempty,datetime=15:04"`
	CloseTime   string  `json:"close_time"            validate:"omitempty,datetime=15:04"`
}

func (c *CreateAmenityRequest) ToModel(user string) model.Amenity {
	return model.Amenity{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		OpenTime:    c.OpenTime,
		CloseTime:   c.CloseTime,
		Active:      true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateAmenityRequest struct {
	Name        string `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description string `db:"description" json:"description" validate:"omitempty,max=500"`
	OpenTime    string `db:"open_time"   json:"open_time"   validate:"omitempty,datetime=15:04"`
	CloseTime   string `db:"close_time"  json:"close_time"  validate:"omitempty,datetime=15:04"`
}

type AmenityResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	OpenTime    string  `json:"open_time,omitempty"`
	CloseTime   string  `json:"close_time,omitempty"`
	Active      bool    `json:"active"`
	gDto.Metadata
}

func (r *AmenityResponse) FromModel(model model.Amenity) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.OpenTime = model.OpenTime
	r.CloseTime = model.CloseTime
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetAmenitiesResponse struct {
	Amenities []AmenityResponse `json:"amenities"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetAmenitiesResponse) FromModels(models []model.Amenity, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Amenities = make([]AmenityResponse, len(models))
	for i, mod := range models {
		r.Amenities[i].FromModel(mod)
	}
}
