package main

import (
	"errors"
	"path/filepath"
	"runtime"
	"testing"
)

// registryPath returns the checked-in registry relative to this test file.
func registryPath(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "pkg", "statuscode", "statuscodes.yaml")
}

func TestParseRegistry(t *testing.T) {
	yaml := `
codes:
  - name: Good
    value: 0x00000000
  - name: BadTimeout
    value: 0x800A0000
  - name: UncertainInitialValue
    value: 0x40920000
`
	reg, err := ParseRegistry([]byte(yaml))
	if err != nil {
		t.Fatalf("ParseRegistry failed: %v", err)
	}
	if len(reg.Codes) != 3 {
		t.Fatalf("len(codes) = %d, want 3", len(reg.Codes))
	}
	if reg.Codes[1].Name != "BadTimeout" || reg.Codes[1].Value != 0x800A0000 {
		t.Errorf("codes[1] = %+v", reg.Codes[1])
	}
	if err := ValidateRegistry(reg); err != nil {
		t.Errorf("ValidateRegistry failed: %v", err)
	}
}

func TestValidateRegistryErrors(t *testing.T) {
	tests := []struct {
		name    string
		codes   []RawCode
		wantErr error
	}{
		{"empty", nil, ErrEmptyRegistry},
		{"bad identifier", []RawCode{{Name: "Bad-Thing", Value: 0x80000000}}, ErrInvalidName},
		{"duplicate name", []RawCode{{Name: "Good", Value: 0}, {Name: "Good", Value: 1}}, ErrDuplicate},
		{"duplicate value", []RawCode{{Name: "Good", Value: 0}, {Name: "GoodToo", Value: 0}}, ErrDuplicate},
		{"severity mismatch", []RawCode{{Name: "GoodButBad", Value: 0x80010000}}, ErrSeverity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegistry(&RawRegistry{Codes: tt.codes})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateRegistry() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCheckedInRegistryIsValid(t *testing.T) {
	reg, err := LoadRegistry(registryPath(t))
	if err != nil {
		t.Fatalf("LoadRegistry failed: %v", err)
	}
	if err := ValidateRegistry(reg); err != nil {
		t.Fatalf("ValidateRegistry failed: %v", err)
	}
	if reg.Codes[0].Name != "Good" {
		t.Errorf("first code = %s, want Good", reg.Codes[0].Name)
	}
	if last := reg.Codes[len(reg.Codes)-1]; last.Name != "BadMaxConnectionsReached" {
		t.Errorf("last code = %s, want BadMaxConnectionsReached", last.Name)
	}
}
