package request_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"condovia/infras/otel/mocks"
	"condovia/internal/domains/request/model"
	"condovia/internal/domains/request/model/dto"
	serviceMocks "condovia/internal/domains/request/service/mocks"
	"condovia/internal/handlers/request"
	"condovia/shared/constant"
	gDto "condovia/shared/dto"
)

func requestCtx(userID, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func filtersByField(filter gDto.FilterGroup) map[string]gDto.Filter {
	byField := map[string]gDto.Filter{}

	for _, f := range filter.Filters {
		if typed, ok := f.(gDto.Filter); ok {
			byField[typed.Field] = typed
		}
	}

	return byField
}

func TestGetRequests(t *testing.T) {
	tests := []struct {
		name         string
		url          string
		ctx          context.Context
		assertFilter func(t *testing.T, filter gDto.FilterGroup)
	}{
		{
			name: "manager lists all requests unfiltered",
			url:  "/v1/requests",
			ctx:  requestCtx("manager-1", constant.RoleManager),
			assertFilter: func(t *testing.T, filter gDto.FilterGroup) {
				assert.Empty(t, filter.Filters)
			},
		},
		{
			name: "resident listing is scoped to own requests",
			url:  "/v1/requests",
			ctx:  requestCtx("resident-1", constant.RoleResident),
			assertFilter: func(t *testing.T, filter gDto.FilterGroup) {
				byField := filtersByField(filter)

				if assert.Contains(t, byField, model.FieldCreatedBy) {
					assert.Equal(t, "resident-1", byField[model.FieldCreatedBy].Value)
				}
			},
		},
		{
			name: "status param adds a filter alongside the resident scope",
			url:  "/v1/requests?status=open",
			ctx:  requestCtx("resident-1", constant.RoleResident),
			assertFilter: func(t *testing.T, filter gDto.FilterGroup) {
				byField := filtersByField(filter)

				assert.Len(t, filter.Filters, 2)
				assert.Equal(t, "open", byField[model.FieldStatus].Value)
				assert.Equal(t, "resident-1", byField[model.FieldCreatedBy].Value)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := serviceMocks.NewMockRequest(ctrl)
			handler := request.New(mockService, mocks.NewOtel())

			mockService.EXPECT().
				GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRequestsResponse, error) {
					tt.assertFilter(t, filter)

					return dto.GetRequestsResponse{}, nil
				})

			req := httptest.NewRequest(http.MethodGet, tt.url, nil).WithContext(tt.ctx)
			recorder := httptest.NewRecorder()

			handler.GetRequests(recorder, req)

			assert.Equal(t, http.StatusOK, recorder.Code)
		})
	}
}

func TestGetRequestsMissingUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := serviceMocks.NewMockRequest(ctrl)
	handler := request.New(mockService, mocks.NewOtel())

	req := httptest.NewRequest(http.MethodGet, "/v1/requests", nil)
	recorder := httptest.NewRecorder()

	handler.GetRequests(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
