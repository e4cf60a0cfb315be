package amenity_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"condovia/infras/otel/mocks"
	"condovia/internal/domains/amenity/model"
	"condovia/internal/domains/amenity/model/dto"
	serviceMocks "condovia/internal/domains/amenity/service/mocks"
	"condovia/internal/handlers/amenity"
	gDto "condovia/shared/dto"
)

func TestGetAmenities(t *testing.T) {
	tests := []struct {
		name         string
		url          string
		assertFilter func(t *testing.T, filter gDto.FilterGroup)
	}{
		{
			name: "no query params yields no filters",
			url:  "/v1/amenities",
			assertFilter: func(t *testing.T, filter gDto.FilterGroup) {
				assert.Empty(t, filter.Filters)
			},
		},
		{
			name: "active param filters on a boolean value",
			url:  "/v1/amenities?active=true",
			assertFilter: func(t *testing.T, filter gDto.FilterGroup) {
				if assert.Len(t, filter.Filters, 1) {
					f, ok := filter.Filters[0].(gDto.Filter)
					assert.True(t, ok)
					assert.Equal(t, model.FieldActive, f.Field)
					assert.Equal(t, true, f.Value)
				}
			},
		},
		{
			name: "unparseable active param is ignored",
			url:  "/v1/amenities?active=maybe",
			assertFilter: func(t *testing.T, filter gDto.FilterGroup) {
				assert.Empty(t, filter.Filters)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := serviceMocks.NewMockAmenity(ctrl)
			handler := amenity.New(mockService, mocks.NewOtel())

			mockService.EXPECT().
				GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAmenitiesResponse, error) {
					tt.assertFilter(t, filter)

					return dto.GetAmenitiesResponse{}, nil
				})

			request := httptest.NewRequest(http.MethodGet, tt.url, nil)
			recorder := httptest.NewRecorder()

			handler.GetAmenities(recorder, request)

			assert.Equal(t, http.StatusOK, recorder.Code)
		})
	}
}
