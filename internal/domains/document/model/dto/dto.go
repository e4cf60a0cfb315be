package dto

import (
	"condovia/internal/domains/document/model"
	"condovia/shared"
	gDto "condovia/shared/dto"
	gModel "condovia/shared/model"
	"condovia/shared/timezone"

	"github.com/google/uuid"
)

type CreateDocumentRequest struct {
	Name string `json:"name"           validate:"required,max=200"`
	Kind string `json:"kind"           validate:"required,oneof=document invoice"`
	URL  string `json:"url,omitempty"  validate:"omitempty,url"`
	File string `json:"file,omitempty" validate:"omitempty,mimetypes=application/pdf image/jpeg image/png,maxfilesize=10"`
}

func (c *CreateDocumentRequest) ToModel(id, user, url string) model.Document {
	return model.Document{
		ID:   id,
		Name: c.Name,
		Kind: c.Kind,
		URL:  url,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

func NewDocumentID() string {
	return uuid.NewString()
}

type DocumentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
	URL  string `json:"url"`
	gDto.Metadata
}

func (r *DocumentResponse) FromModel(model model.Document) {
	r.ID = model.ID
	r.Name = model.Name
	r.Kind = model.Kind
	r.URL = model.URL
	r.Metadata.FromModel(model.Metadata)
}

type GetDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetDocumentsResponse) FromModels(models []model.Document, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Documents = make([]DocumentResponse, len(models))
	for i, mod := range models {
		r.Documents[i].FromModel(mod)
	}
}
