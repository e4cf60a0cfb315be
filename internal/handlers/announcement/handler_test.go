package announcement_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"condovia/infras/otel/mocks"
	"condovia/internal/domains/announcement/model"
	"condovia/internal/domains/announcement/model/dto"
	serviceMocks "condovia/internal/domains/announcement/service/mocks"
	"condovia/internal/handlers/announcement"
	"condovia/shared/constant"
	gDto "condovia/shared/dto"
)

func TestGetAnnouncements(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		assertCall func(t *testing.T, params gDto.QueryParams, filter gDto.FilterGroup)
	}{
		{
			name: "no query params lists all newest first",
			url:  "/v1/announcements",
			assertCall: func(t *testing.T, params gDto.QueryParams, filter gDto.FilterGroup) {
				assert.Empty(t, filter.Filters)
				assert.Equal(t, constant.FieldCreatedAt, params.SortBy)
				assert.Equal(t, gDto.SortDirDesc, params.SortDir)
			},
		},
		{
			name: "category param adds a filter",
			url:  "/v1/announcements?category=maintenance",
			assertCall: func(t *testing.T, params gDto.QueryParams, filter gDto.FilterGroup) {
				if assert.Len(t, filter.Filters, 1) {
					f, ok := filter.Filters[0].(gDto.Filter)
					assert.True(t, ok)
					assert.Equal(t, model.FieldCategory, f.Field)
					assert.Equal(t, "maintenance", f.Value)
				}
			},
		},
		{
			name: "explicit sort is kept",
			url:  "/v1/announcements?sort_by=title&sort_dir=asc",
			assertCall: func(t *testing.T, params gDto.QueryParams, filter gDto.FilterGroup) {
				assert.Equal(t, "title", params.SortBy)
				assert.Equal(t, gDto.SortDirAsc, params.SortDir)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := serviceMocks.NewMockAnnouncement(ctrl)
			handler := announcement.New(mockService, mocks.NewOtel())

			mockService.EXPECT().
				GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAnnouncementsResponse, error) {
					tt.assertCall(t, params, filter)

					return dto.GetAnnouncementsResponse{}, nil
				})

			request := httptest.NewRequest(http.MethodGet, tt.url, nil)
			recorder := httptest.NewRecorder()

			handler.GetAnnouncements(recorder, request)

			assert.Equal(t, http.StatusOK, recorder.Code)
		})
	}
}
