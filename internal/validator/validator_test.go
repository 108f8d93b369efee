package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestCustomTags(t *testing.T) {
	v := validator.New()
	registerAll(v)

	tests := []struct {
		tag   string
		value string
		valid bool
	}{
		{"hex_color", "#fff", true},
		{"hex_color", "#22c55e", true},
		{"hex_color", "22c55e", false},
		{"hex_color", "#22c55", false},
		{"goal_type", "annual", true},
		{"goal_type", "weekly", true},
		{"goal_type", "daily", false},
		{"goal_priority", "high", true},
		{"goal_priority", "urgent", false},
		{"habit_frequency", "daily", true},
		{"habit_frequency", "hourly", false},
		{"reflection_kind", "evening", true},
		{"reflection_kind", "noon", false},
		{"iso_date", "2024-02-29", true},
		{"iso_date", "2025-02-29", false},
		{"iso_date", "2025-3-1", false},
	}

	for _, tt := range tests {
		t.Run(tt.tag+"/"+tt.value, func(t *testing.T) {
			err := v.Var(tt.value, tt.tag)
			if tt.valid && err != nil {
				t.Errorf("expected %q to pass %s, got %v", tt.value, tt.tag, err)
			}
			if !tt.valid && err == nil {
				t.Errorf("expected %q to fail %s", tt.value, tt.tag)
			}
		})
	}
}

func TestOmitEmpty(t *testing.T) {
	v := validator.New()
	registerAll(v)

	if err := v.Var("", "omitempty,goal_priority"); err != nil {
		t.Errorf("expected empty value to be skipped, got %v", err)
	}
}
