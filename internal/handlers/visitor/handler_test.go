package visitor_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"condovia/infras/otel/mocks"
	"condovia/internal/domains/visitor/model"
	"condovia/internal/domains/visitor/model/dto"
	serviceMocks "condovia/internal/domains/visitor/service/mocks"
	"condovia/internal/handlers/visitor"
	"condovia/shared/constant"
	gDto "condovia/shared/dto"
)

func visitorCtx(userID, role string) context.Context {
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

func TestGetVisitors(t *testing.T) {
	tests := []struct {
		name         string
		url          string
		ctx          context.Context
		assertFilter func(t *testing.T, filter gDto.FilterGroup)
	}{
		{
			name: "manager lists all visitors unfiltered",
			url:  "/v1/visitors",
			ctx:  visitorCtx("manager-1", constant.RoleManager),
			assertFilter: func(t *testing.T, filter gDto.FilterGroup) {
				assert.Empty(t, filter.Filters)
			},
		},
		{
			name: "resident listing is scoped to own registrations",
			url:  "/v1/visitors",
			ctx:  visitorCtx("resident-1", constant.RoleResident),
			assertFilter: func(t *testing.T, filter gDto.FilterGroup) {
				byField := filtersByField(filter)

				if assert.Contains(t, byField, model.FieldCreatedBy) {
					assert.Equal(t, "resident-1", byField[model.FieldCreatedBy].Value)
				}
			},
		},
		{
			name: "apartment and block params add filters",
			url:  "/v1/visitors?apartment=101&block=B",
			ctx:  visitorCtx("manager-1", constant.RoleManager),
			assertFilter: func(t *testing.T, filter gDto.FilterGroup) {
				byField := filtersByField(filter)

				assert.Len(t, filter.Filters, 2)
				assert.Equal(t, "101", byField[model.FieldApartment].Value)
				assert.Equal(t, "B", byField[model.FieldBlock].Value)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := serviceMocks.NewMockVisitor(ctrl)
			handler := visitor.New(mockService, mocks.NewOtel())

			mockService.EXPECT().
				GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetVisitorsResponse, error) {
					tt.assertFilter(t, filter)

					return dto.GetVisitorsResponse{}, nil
				})

			req := httptest.NewRequest(http.MethodGet, tt.url, nil).WithContext(tt.ctx)
			recorder := httptest.NewRecorder()

			handler.GetVisitors(recorder, req)

			assert.Equal(t, http.StatusOK, recorder.Code)
		})
	}
}
