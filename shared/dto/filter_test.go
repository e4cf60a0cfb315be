package dto_test

import (
	"testing"

	"condovia/shared/dto"
)

func TestFilterGetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name: "equality with table prefix",
			filter: dto.Filter{
				Field:    "requester_id",
				Operator: dto.FilterOperatorEq,
				Value:    "user-1",
				Table:    "reservations",
			},
			wantWhere: "reservations.requester_id = :requester_id",
			wantArgs:  map[string]any{"requester_id": "user-1"},
		},
		{
			name: "not equal",
			filter: dto.Filter{
				Field:    "status",
				Operator: dto.FilterOperatorNotEq,
				Value:    "done",
			},
			wantWhere: "status != :status",
			wantArgs:  map[string]any{"status": "done"},
		},
		{
			name: "unknown operator yields empty clause",
			filter: dto.Filter{
				Field:    "status",
				Operator: "bogus",
				Value:    "open",
			},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			if where != tt.wantWhere {
				t.Errorf("expected where %q, got %q", tt.wantWhere, where)
			}

			if len(args) != len(tt.wantArgs) {
				t.Fatalf("expected %d args, got %d", len(tt.wantArgs), len(args))
			}

			for key, want := range tt.wantArgs {
				if args[key] != want {
					t.Errorf("expected arg %s=%v, got %v", key, want, args[key])
				}
			}
		})
	}
}

func TestFilterGroupGetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "open"},
			dto.Filter{Field: "created_by", Operator: dto.FilterOperatorEq, Value: "user-1"},
		},
	}

	where, args := group.GetWhereClause()

	if where != "(status = :status AND created_by = :created_by)" {
		t.Errorf("unexpected where clause: %q", where)
	}

	if args["status"] != "open" || args["created_by"] != "user-1" {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestEmptyFilterGroup(t *testing.T) {
	group := dto.FilterGroup{}

	where, args := group.GetWhereClause()

	if where != "" {
		t.Errorf("expected empty where clause, got %q", where)
	}

	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}
