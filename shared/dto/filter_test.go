package dto_test

import (
	"testing"

	"elysian/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name       string
		filter     dto.Filter
		wantClause string
		wantArgs   map[string]any
	}{
		{
			name:       "eq with table prefix",
			filter:     dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorEq, Table: "bookings"},
			wantClause: "bookings.status = :status",
			wantArgs:   map[string]any{"status": "pending"},
		},
		{
			name:       "not_eq with custom arg name",
			filter:     dto.Filter{Field: "lifecycle", Value: "deleted", Operator: dto.FilterOperatorNotEq, Table: "rooms", ArgName: "lifecycle_not"},
			wantClause: "rooms.lifecycle != :lifecycle_not",
			wantArgs:   map[string]any{"lifecycle_not": "deleted"},
		},
		{
			name:       "less for stay overlap lower bound",
			filter:     dto.Filter{Field: "check_in_date", Value: "2025-06-12", Operator: dto.FilterOperatorLess, Table: "bookings", ArgName: "check_out"},
			wantClause: "bookings.check_in_date < :check_out",
			wantArgs:   map[string]any{"check_out": "2025-06-12"},
		},
		{
			name:       "greater for stay overlap upper bound",
			filter:     dto.Filter{Field: "check_out_date", Value: "2025-06-10", Operator: dto.FilterOperatorGreater, Table: "bookings", ArgName: "check_in"},
			wantClause: "bookings.check_out_date > :check_in",
			wantArgs:   map[string]any{"check_in": "2025-06-10"},
		},
		{
			name:       "is null without table",
			filter:     dto.Filter{Field: "deleted_at", Operator: dto.FilterIsNull},
			wantClause: "deleted_at IS NULL",
			wantArgs:   map[string]any{},
		},
		{
			name:       "unknown operator yields empty clause",
			filter:     dto.Filter{Field: "status", Value: "x", Operator: "between"},
			wantClause: "",
			wantArgs:   map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := tt.filter.GetWhereClause()

			if clause != tt.wantClause {
				t.Errorf("GetWhereClause() clause = %q, want %q", clause, tt.wantClause)
			}

			if len(args) != len(tt.wantArgs) {
				t.Errorf("GetWhereClause() args = %v, want %v", args, tt.wantArgs)
			}

			for k, v := range tt.wantArgs {
				if args[k] != v {
					t.Errorf("GetWhereClause() args[%q] = %v, want %v", k, args[k], v)
				}
			}
		})
	}
}

func TestFilter_GetWhereClauseIn(t *testing.T) {
	filter := dto.Filter{
		Field:    "status",
		Value:    []string{"pending", "approved", "checked_in"},
		Operator: dto.FilterOperatorIn,
		Table:    "bookings",
	}

	clause, args := filter.GetWhereClause()

	want := "bookings.status IN (:status_0, :status_1, :status_2) "
	if clause != want {
		t.Errorf("GetWhereClause() clause = %q, want %q", clause, want)
	}

	if args["status_0"] != "pending" || args["status_1"] != "approved" || args["status_2"] != "checked_in" {
		t.Errorf("GetWhereClause() args = %v", args)
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("empty group", func(t *testing.T) {
		group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

		clause, args := group.GetWhereClause()

		if clause != "" {
			t.Errorf("GetWhereClause() clause = %q, want empty", clause)
		}

		if len(args) != 0 {
			t.Errorf("GetWhereClause() args = %v, want empty", args)
		}
	})

	t.Run("overlap group joins with AND", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{Field: "room_id", Value: "room-1", Operator: dto.FilterOperatorEq, Table: "bookings"},
				dto.Filter{Field: "check_in_date", Value: "2025-06-12", Operator: dto.FilterOperatorLess, Table: "bookings", ArgName: "check_out"},
				dto.Filter{Field: "check_out_date", Value: "2025-06-10", Operator: dto.FilterOperatorGreater, Table: "bookings", ArgName: "check_in"},
			},
		}

		clause, args := group.GetWhereClause()

		want := "(bookings.room_id = :room_id AND bookings.check_in_date < :check_out AND bookings.check_out_date > :check_in)"
		if clause != want {
			t.Errorf("GetWhereClause() clause = %q, want %q", clause, want)
		}

		if len(args) != 3 {
			t.Errorf("GetWhereClause() args = %v, want 3 entries", args)
		}
	})

	t.Run("nested group", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{Field: "lifecycle", Value: "active", Operator: dto.FilterOperatorEq, Table: "rooms"},
				dto.FilterGroup{
					Operator: dto.FilterGroupOperatorOr,
					Filters: []any{
						dto.Filter{Field: "status", Value: "dirty", Operator: dto.FilterOperatorEq, Table: "rooms"},
						dto.Filter{Field: "status", Value: "maintenance", Operator: dto.FilterOperatorEq, Table: "rooms", ArgName: "status_alt"},
					},
				},
			},
		}

		clause, _ := group.GetWhereClause()

		want := "(rooms.lifecycle = :lifecycle AND (rooms.status = :status OR rooms.status = :status_alt))"
		if clause != want {
			t.Errorf("GetWhereClause() clause = %q, want %q", clause, want)
		}
	})
}
