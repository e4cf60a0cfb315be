package dto

import (
	"condovia/internal/domains/request/model"
	"condovia/shared"
	gDto "condovia/shared/dto"
	gModel "condovia/shared/model"
	"condovia/shared/timezone"

	"github.com/google/uuid"
)

type CreateRequestRequest struct {
	Title       string `json:"title"       validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
}

func (c *CreateRequestRequest) ToModel(user string) model.Request {
	return model.Request{
		ID:          uuid.NewString(),
		Title:       c.Title,
		Description: c.Description,
		Status:      model.StatusOpen,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRequestStatusRequest struct {
	Status string `db:"status" json:"status" validate:"required,oneof=open in_progress done"`
}

type RequestResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	gDto.Metadata
}

func (r *RequestResponse) FromModel(model model.Request) {
	r.ID = model.ID
	r.Title = model.Title
	r.Description = model.Description
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetRequestsResponse struct {
	Requests  []RequestResponse `json:"requests"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetRequestsResponse) FromModels(models []model.Request, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Requests = make([]RequestResponse, len(models))
	for i, mod := range models {
		r.Requests[i].FromModel(mod)
	}
}
