package shared_test

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"time"

	"cleanmatch/shared"
	"cleanmatch/shared/constant"
	"cleanmatch/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "valid false string",
			input:    "false",
			expected: boolPtr(false),
		},
		{
			name:     "valid 1 string",
			input:    "1",
			expected: boolPtr(true),
		},
		{
			name:     "valid 0 string",
			input:    "0",
			expected: boolPtr(false),
		},
		{
			name:     "valid T string",
			input:    "T",
			expected: boolPtr(true),
		},
		{
			name:     "valid FALSE string",
			input:    "FALSE",
			expected: boolPtr(false),
		},
		{
			name:     "invalid string returns nil",
			input:    "invalid",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}
			} else {
				if result == nil {
					t.Errorf("expected %v, got nil", *tt.expected)
				} else if *result != *tt.expected {
					t.Errorf("expected %v, got %v", *tt.expected, *result)
				}
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns 1",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns 1",
			total:    100,
			limit:    0,
			expected: 1,
		},
		{
			name:     "negative limit returns 1",
			total:    100,
			limit:    -5,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "division with remainder",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "limit greater than total",
			total:    5,
			limit:    10,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type TestStruct struct {
		ID         int    `db:"id"`
		Name       string `db:"name"`
		Email      string `db:"email"`
		EmptyField string `db:"empty_field"`
		NoDBTag    string
	}

	tests := []struct {
		name     string
		data     interface{}
		username string
		expected map[string]any
	}{
		{
			name: "struct with populated fields",
			data: TestStruct{
				ID:         1,
				Name:       "John Doe",
				Email:      "john@example.com",
				EmptyField: "",
				NoDBTag:    "ignored",
			},
			username: "testuser",
			expected: map[string]any{
				"id":    1,
				"name":  "John Doe",
				"email": "john@example.com",
			},
		},
		{
			name:     "struct with all zero values",
			data:     TestStruct{},
			username: "testuser",
			expected: map[string]any{},
		},
		{
			name: "struct with partial fields",
			data: TestStruct{
				Name: "Jane Doe",
			},
			username: "admin",
			expected: map[string]any{
				"name": "Jane Doe",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.TransformFields(tt.data, tt.username)

			if result[constant.FieldModifiedBy] != tt.username {
				t.Errorf("expected modified_by to be %s, got %v", tt.username, result[constant.FieldModifiedBy])
			}

			if _, ok := result[constant.FieldModifiedAt].(time.Time); !ok {
				t.Error("expected modified_at to be a time.Time")
			}

			for key, expectedValue := range tt.expected {
				if actualValue, exists := result[key]; !exists {
					t.Errorf("expected field %s to exist", key)
				} else if !reflect.DeepEqual(actualValue, expectedValue) {
					t.Errorf("expected field %s to be %v, got %v", key, expectedValue, actualValue)
				}
			}

			for key := range result {
				if key == constant.FieldModifiedAt || key == constant.FieldModifiedBy {
					continue
				}
				if _, expected := tt.expected[key]; !expected {
					t.Errorf("unexpected field %s in result", key)
				}
			}
		})
	}
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID("123", "user_id", "users")

	if len(result.Filters) != 1 {
		t.Fatalf("expected 1 filter, got %d", len(result.Filters))
	}

	filter, ok := result.Filters[0].(dto.Filter)
	if !ok {
		t.Fatal("expected filter to be of type dto.Filter")
	}

	if filter.Field != "user_id" {
		t.Errorf("expected field to be user_id, got %s", filter.Field)
	}

	if filter.Value != "123" {
		t.Errorf("expected value to be 123, got %v", filter.Value)
	}

	if filter.Operator != dto.FilterOperatorEq {
		t.Errorf("expected operator to be %s, got %s", dto.FilterOperatorEq, filter.Operator)
	}

	if filter.Table != "users" {
		t.Errorf("expected table to be users, got %s", filter.Table)
	}
}

func TestBuildCacheKey(t *testing.T) {
	key := shared.BuildCacheKey("booking", "get", "booking-1")

	if key != "booking:get:booking-1" {
		t.Errorf("expected booking:get:booking-1, got %s", key)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 10, SortBy: "created_at", SortDir: "DESC"}

	keyNoFilter := shared.BuildCacheKeyWithQuery("booking:gets", params, dto.FilterGroup{})
	keyWithFilter := shared.BuildCacheKeyWithQuery("booking:gets", params, shared.FilterByID("123", "id", "bookings"))

	if !strings.HasPrefix(keyNoFilter, "booking:gets:2:10:created_at:DESC:") {
		t.Errorf("unexpected key format: %s", keyNoFilter)
	}

	if keyNoFilter == keyWithFilter {
		t.Error("expected distinct filters to produce distinct cache keys")
	}
}

func TestUsernameFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")
	if got := shared.UsernameFromContext(ctx); got != "user-1" {
		t.Errorf("expected user-1, got %s", got)
	}

	if got := shared.UsernameFromContext(context.Background()); got != constant.ContextSystem {
		t.Errorf("expected %s, got %s", constant.ContextSystem, got)
	}
}

func boolPtr(b bool) *bool {
	return &b
}
