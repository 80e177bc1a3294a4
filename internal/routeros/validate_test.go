package routeros

import (
	"testing"

	apierrors "github.com/olgasafonova/mikrotik-mcp-server/internal/errors"
)

func TestValidateID(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{"*1", false},
		{"*1A2b", false},
		{"12", false},
		{"", true},
		{"*", true},
		{"*5 ; /system reboot", true},
		{"[find]", true},
		{"*G", true},
	}

	for _, tt := range tests {
		err := ValidateID("entry_id", tt.id)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
		}
		if err != nil && !apierrors.IsValidation(err) {
			t.Errorf("ValidateID(%q) returned %T, want ValidationError", tt.id, err)
		}
	}
}

func TestValidateRequired(t *testing.T) {
	if err := ValidateRequired("name", "  "); err == nil {
		t.Error("blank value should fail")
	}
	if err := ValidateRequired("name", "wg0"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateOneOf(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"", false},
		{"detail", false},
		{"terse", false},
		{"json", true},
	}
	for _, tt := range tests {
		err := ValidateOneOf("print_as", tt.value, "value", "detail", "terse")
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateOneOf(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
		}
	}
}

func TestValidateRange(t *testing.T) {
	n := func(v int) *int { return &v }
	tests := []struct {
		n       *int
		wantErr bool
	}{
		{nil, false},
		{n(1), false},
		{n(4094), false},
		{n(0), true},
		{n(4095), true},
	}
	for _, tt := range tests {
		err := ValidateRange("vlan_id", tt.n, 1, 4094)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateRange(%v) error = %v, wantErr %v", tt.n, err, tt.wantErr)
		}
	}
}
