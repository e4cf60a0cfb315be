package dto_test

import (
	"net/http/httptest"
	"testing"

	"condovia/shared/constant"
	"condovia/shared/dto"
)

func TestQueryParamsFromRequest(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		defaultRequest bool
		want           dto.QueryParams
	}{
		{
			name:           "defaults applied when missing",
			url:            "/v1/users",
			defaultRequest: true,
			want: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name:           "explicit values kept",
			url:            "/v1/users?page=3&limit=25&sort_by=email&sort_dir=asc",
			defaultRequest: true,
			want: dto.QueryParams{
				Page:    3,
				Limit:   25,
				SortBy:  "email",
				SortDir: dto.SortDirAsc,
			},
		},
		{
			name:           "no defaults when not requested",
			url:            "/v1/users",
			defaultRequest: false,
			want:           dto.QueryParams{},
		},
		{
			name:           "invalid values ignored",
			url:            "/v1/users?page=-1&limit=abc&sort_dir=sideways",
			defaultRequest: true,
			want: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", tt.url, nil)

			params := dto.QueryParams{}
			params.FromRequest(request, tt.defaultRequest)

			if params != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, params)
			}
		})
	}
}
