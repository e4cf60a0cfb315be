package shared_test

import (
	"testing"

	"condovia/shared"
	gDto "condovia/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *bool
	}{
		{"true string", "true", boolPtr(true)},
		{"false string", "false", boolPtr(false)},
		{"numeric true", "1", boolPtr(true)},
		{"empty string", "", nil},
		{"garbage", "not-a-bool", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shared.ConvertStringToBool(tt.input)

			if tt.want == nil {
				if got != nil {
					t.Errorf("expected nil, got %v", *got)
				}

				return
			}

			if got == nil || *got != *tt.want {
				t.Errorf("expected %v, got %v", *tt.want, got)
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{"empty result", 0, 10, 1},
		{"exact pages", 20, 10, 2},
		{"partial last page", 21, 10, 3},
		{"zero limit", 50, 0, 1},
		{"single page", 5, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.CalculateTotalPage(tt.total, tt.limit); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	if got := shared.BuildCacheKey("reservation", "gets"); got != "reservation:gets" {
		t.Errorf("expected reservation:gets, got %s", got)
	}

	if got := shared.BuildCacheKey("user", "get", "user-1"); got != "user:get:user-1" {
		t.Errorf("expected user:get:user-1, got %s", got)
	}
}

func TestBuildCacheKeyWithQueryDistinguishesFilters(t *testing.T) {
	params := gDto.QueryParams{Page: 1, Limit: 10}

	filterA := shared.FilterByID("a", "id", "users")
	filterB := shared.FilterByID("b", "id", "users")

	keyA := shared.BuildCacheKeyWithQuery("user:gets", params, filterA)
	keyB := shared.BuildCacheKeyWithQuery("user:gets", params, filterB)

	if keyA == keyB {
		t.Errorf("expected distinct keys for distinct filters, both were %s", keyA)
	}

	// Same inputs must derive the same key
	if keyA != shared.BuildCacheKeyWithQuery("user:gets", params, filterA) {
		t.Error("expected stable key for identical inputs")
	}
}

func TestTransformFields(t *testing.T) {
	type update struct {
		Name  string `db:"name"`
		Email string `db:"email"`
		Skip  string
	}

	fields := shared.TransformFields(update{Name: "Alex"}, "user-1")

	if fields["name"] != "Alex" {
		t.Errorf("expected name field, got %v", fields["name"])
	}

	if _, ok := fields["email"]; ok {
		t.Error("expected zero-valued email to be omitted")
	}

	if fields["modified_by"] != "user-1" {
		t.Errorf("expected modified_by user-1, got %v", fields["modified_by"])
	}

	if _, ok := fields["modified_at"]; !ok {
		t.Error("expected modified_at to be set")
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("user-1", "id", "users")

	if len(group.Filters) != 1 {
		t.Fatalf("expected one filter, got %d", len(group.Filters))
	}

	filter, ok := group.Filters[0].(gDto.Filter)
	if !ok {
		t.Fatal("expected filter entry to be a gDto.Filter")
	}

	if filter.Field != "id" || filter.Value != "user-1" || filter.Table != "users" {
		t.Errorf("unexpected filter: %+v", filter)
	}
}

func boolPtr(value bool) *bool {
	return &value
}
