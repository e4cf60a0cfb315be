package user_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"condovia/infras/otel/mocks"
	"condovia/internal/domains/user/model"
	"condovia/internal/domains/user/model/dto"
	serviceMocks "condovia/internal/domains/user/service/mocks"
	"condovia/internal/handlers/user"
	gDto "condovia/shared/dto"
)

func TestGetUsers(t *testing.T) {
	tests := []struct {
		name         string
		url          string
		assertFilter func(t *testing.T, filter gDto.FilterGroup)
	}{
		{
			name: "no query params yields no filters",
			url:  "/v1/users",
			assertFilter: func(t *testing.T, filter gDto.FilterGroup) {
				assert.Empty(t, filter.Filters)
			},
		},
		{
			name: "only provided params become filters",
			url:  "/v1/users?role=resident&block=A",
			assertFilter: func(t *testing.T, filter gDto.FilterGroup) {
				assert.Len(t, filter.Filters, 2)

				fields := map[string]any{}
				for _, f := range filter.Filters {
					if typed, ok := f.(gDto.Filter); ok {
						fields[typed.Field] = typed.Value
					}
				}

				assert.Equal(t, "resident", fields[model.FieldRole])
				assert.Equal(t, "A", fields[model.FieldBlock])
				assert.NotContains(t, fields, model.FieldEmail)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := serviceMocks.NewMockUser(ctrl)
			handler := user.New(mockService, mocks.NewOtel())

			mockService.EXPECT().
				GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetUsersResponse, error) {
					tt.assertFilter(t, filter)

					return dto.GetUsersResponse{}, nil
				})

			request := httptest.NewRequest(http.MethodGet, tt.url, nil)
			recorder := httptest.NewRecorder()

			handler.GetUsers(recorder, request)

			assert.Equal(t, http.StatusOK, recorder.Code)
		})
	}
}
