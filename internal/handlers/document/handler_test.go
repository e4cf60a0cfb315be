package document_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"condovia/infras/otel/mocks"
	"condovia/internal/domains/document/model"
	"condovia/internal/domains/document/model/dto"
	serviceMocks "condovia/internal/domains/document/service/mocks"
	"condovia/internal/handlers/document"
	"condovia/shared/constant"
	gDto "condovia/shared/dto"
)

func TestGetDocuments(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		assertCall func(t *testing.T, params gDto.QueryParams, filter gDto.FilterGroup)
	}{
		{
			name: "no query params lists all newest first",
			url:  "/v1/documents",
			assertCall: func(t *testing.T, params gDto.QueryParams, filter gDto.FilterGroup) {
				assert.Empty(t, filter.Filters)
				assert.Equal(t, constant.FieldCreatedAt, params.SortBy)
				assert.Equal(t, gDto.SortDirDesc, params.SortDir)
			},
		},
		{
			name: "kind param adds a filter",
			url:  "/v1/documents?kind=invoice",
			assertCall: func(t *testing.T, params gDto.QueryParams, filter gDto.FilterGroup) {
				if assert.Len(t, filter.Filters, 1) {
					f, ok := filter.Filters[0].(gDto.Filter)
					assert.True(t, ok)
					assert.Equal(t, model.FieldKind, f.Field)
					assert.Equal(t, "invoice", f.Value)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := serviceMocks.NewMockDocument(ctrl)
			handler := document.New(mockService, mocks.NewOtel())

			mockService.EXPECT().
				GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetDocumentsResponse, error) {
					tt.assertCall(t, params, filter)

					return dto.GetDocumentsResponse{}, nil
				})

			request := httptest.NewRequest(http.MethodGet, tt.url, nil)
			recorder := httptest.NewRecorder()

			handler.GetDocuments(recorder, request)

			assert.Equal(t, http.StatusOK, recorder.Code)
		})
	}
}
