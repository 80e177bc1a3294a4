package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ValidationError
		expected string
	}{
		{
			name: "with field and value",
			err: &ValidationError{
				Field:   "vlan_id",
				Value:   "5000",
				Message: "must be between 1 and 4094",
			},
			expected: "validation failed for vlan_id=\"5000\": must be between 1 and 4094",
		},
		{
			name: "with field only",
			err: &ValidationError{
				Field:   "name",
				Message: "is required",
			},
			expected: "validation failed for name: is required",
		},
		{
			name: "message only",
			err: &ValidationError{
				Message: "invalid input",
			},
			expected: "validation failed: invalid input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("ValidationError.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("entry_id", "abc", "must be a RouterOS row id such as *1A")

	if err.Field != "entry_id" {
		t.Errorf("Field = %q, want %q", err.Field, "entry_id")
	}
	if err.Value != "abc" {
		t.Errorf("Value = %q, want %q", err.Value, "abc")
	}
	if err.Message != "must be a RouterOS row id such as *1A" {
		t.Errorf("Message = %q, want %q", err.Message, "must be a RouterOS row id such as *1A")
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{"required", Required("servers"), "validation failed for servers: is required"},
		{"out of range", OutOfRange("vlan_id", 0, 1, 4094), `validation failed for vlan_id="0": must be between 1 and 4094`},
		{"not one of", NotOneOf("arp", "bogus", []string{"enabled", "disabled"}), `validation failed for arp="bogus": must be one of: enabled, disabled`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsValidation(t *testing.T) {
	validationErr := &ValidationError{Message: "test"}
	wrapped := fmt.Errorf("create_vlan_interface failed: %w", validationErr)
	plainErr := errors.New("plain error")

	if !IsValidation(validationErr) {
		t.Error("IsValidation should return true for ValidationError")
	}
	if !IsValidation(wrapped) {
		t.Error("IsValidation should return true for a wrapped ValidationError")
	}
	if IsValidation(plainErr) {
		t.Error("IsValidation should return false for plain error")
	}
	if IsValidation(nil) {
		t.Error("IsValidation should return false for nil")
	}
}
