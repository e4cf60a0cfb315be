package dto

import (
	"condovia/internal/domains/visitor/model"
	"condovia/shared"
	gDto "condovia/shared/dto"
	gModel "condovia/shared/model"
	"condovia/shared/timezone"

	"github.com/google/uuid"
)

type CreateVisitorRequest struct {
	VisitorName     string  `json:"visitor_name"            validate:"required,max=100"`
	VisitorDocument string  `json:"visitor_document"        validate:"required,max=50"`
	VisitorPhone    *string `json:"visitor_phone,omitempty" validate:"omitempty,max=20"`
	ResidentName    string  `json:"resident_name"           validate:"required,max=100"`
	Apartment       string  `json:"apartment"               validate:"required,max=10"`
	Block           string  `json:"block"                   validate:"required,max=10"`
	Photo           string  `json:"photo,omitempty"         validate:"omitempty,mimetypes=image/jpeg image/png,maxfilesize=5"`
}

func (c *CreateVisitorRequest) ToModel(id, user string, photoURL *string) model.Visitor {
	return model.Visitor{
		ID:              id,
		VisitorName:     c.VisitorName,
		VisitorDocument: c.VisitorDocument,
		VisitorPhone:    c.VisitorPhone,
		ResidentName:    c.ResidentName,
		Apartment:       c.Apartment,
		Block:           c.Block,
		PhotoURL:        photoURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

func NewVisitorID() string {
	return uuid.NewString()
}

type VisitorResponse struct {
	ID              string  `json:"id"`
	VisitorName     string  `json:"visitor_name"`
	VisitorDocument string  `json:"visitor_document"`
	VisitorPhone    *string `json:"visitor_phone,omitempty"`
	ResidentName    string  `json:"resident_name"`
	Apartment       string  `json:"apartment"`
	Block           string  `json:"block"`
	PhotoURL        *string `json:"photo_url,omitempty"`
	gDto.Metadata
}

func (r *VisitorResponse) FromModel(model model.Visitor) {
	r.ID = model.ID
	r.VisitorName = model.VisitorName
	r.VisitorDocument = model.VisitorDocument
	r.VisitorPhone = model.VisitorPhone
	r.ResidentName = model.ResidentName
	r.Apartment = model.Apartment
	r.Block = model.Block
	r.PhotoURL = model.PhotoURL
	r.Metadata.FromModel(model.Metadata)
}

type GetVisitorsResponse struct {
	Visitors  []VisitorResponse `json:"visitors"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetVisitorsResponse) FromModels(models []model.Visitor, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Visitors = make([]VisitorResponse, len(models))
	for i, mod := range models {
		r.Visitors[i].FromModel(mod)
	}
}
