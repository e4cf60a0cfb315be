package dto

import (
	"condovia/internal/domains/announcement/model"
	"condovia/shared"
	gDto "condovia/shared/dto"
	gModel "condovia/shared/model"
	"condovia/shared/timezone"

	"github.com/google/uuid"
)

type CreateAnnouncementRequest struct {
	Title    string `json:"title"    validate:"required,max=200"`
	Body     string `json:"body"     validate:"required"`
	Category string `json:"category" validate:"omitempty,oneof=general assembly"`
}

func (c *CreateAnnouncementRequest) ToModel(user string) model.Announcement {
	category := model.CategoryGeneral
	if c.Category != "" {
		category = c.Category
	}

	return model.Announcement{
		ID:       uuid.NewString(),
		Title:    c.Title,
		Body:     c.Body,
		Category: category,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateAnnouncementRequest struct {
	Title    string `db:"title"    json:"title"    validate:"omitempty,max=200"`
	Body     string `db:"body"     json:"body"     validate:"omitempty"`
	Category string `db:"category" json:"category" validate:"omitempty,oneof=general assembly"`
}

type AnnouncementResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Category string `json:"category"`
	gDto.Metadata
}

func (r *AnnouncementResponse) FromModel(model model.Announcement) {
	r.ID = model.ID
	r.Title = model.Title
	r.Body = model.Body
	r.Category = model.Category
	r.Metadata.FromModel(model.Metadata)
}

type GetAnnouncementsResponse struct {
	Announcements []AnnouncementResponse `json:"announcements"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetAnnouncementsResponse) FromModels(models []model.Announcement, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Announcements = make([]AnnouncementResponse, len(models))
	for i, mod := range models {
		r.Announcements[i].FromModel(mod)
	}
}
