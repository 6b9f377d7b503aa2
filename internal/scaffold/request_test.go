package scaffold

import (
	"errors"
	"testing"
)

func TestNewRequest(t *testing.T) {
	r := NewRequest("hello")
	if r.Name != "hello" {
		t.Errorf("Name = %q, want %q", r.Name, "hello")
	}
	if r.Version != DefaultVersion {
		t.Errorf("Version = %q, want %q", r.Version, DefaultVersion)
	}
	if r.BugAddress != DefaultBugAddress {
		t.Errorf("BugAddress = %q, want %q", r.BugAddress, DefaultBugAddress)
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr error
	}{
		{"hello", nil},
		{"exec_snoop", nil},
		{"_private", nil},
		{"Tcp4Connect", nil},
		{"", ErrMissingArgument},
		{"my-tool", ErrInvalidName},
		{"9lives", ErrInvalidName},
		{"a/b", ErrInvalidName},
		{"..", ErrInvalidName},
		{"with space", ErrInvalidName},
		{"naïve", ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.name)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateName(%q) = %v, want %v", tt.name, err, tt.wantErr)
			}
		})
	}
}

func TestValidateVersion(t *testing.T) {
	tests := []struct {
		version string
		wantErr bool
	}{
		{"0.1", false},
		{"1.0.0", false},
		{"v2.3.4", false},
		{"1.0.0-rc.1", false},
		{"", true},
		{"dev", true},
		{"1.0.0\"", true},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			err := ValidateVersion(tt.version)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateVersion(%q) = %v, wantErr %v", tt.version, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidVersion) {
				t.Errorf("error should wrap ErrInvalidVersion, got %v", err)
			}
		})
	}
}

func TestValidateBugAddress(t *testing.T) {
	tests := []struct {
		addr    string
		wantErr bool
	}{
		{"DeltaMail@qq.com", false},
		{"Tracing Team <tracing@example.com>", false},
		{"", false},
		{`evil"; system("x`, true},
		{`back\slash`, true},
		{"new\nline", true},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			err := ValidateBugAddress(tt.addr)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBugAddress(%q) = %v, wantErr %v", tt.addr, err, tt.wantErr)
			}
		})
	}
}

func TestRequestValidateUnchecked(t *testing.T) {
	r := NewRequest("not-an-identifier")
	if err := r.Validate(false); !errors.Is(err, ErrInvalidName) {
		t.Errorf("Validate(false) = %v, want ErrInvalidName", err)
	}
	if err := r.Validate(true); err != nil {
		t.Errorf("Validate(true) = %v, want nil", err)
	}
}
