package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Registry validation errors.
var (
	ErrEmptyRegistry = errors.New("registry has no codes")
	ErrInvalidName   = errors.New("invalid status code name")
	ErrDuplicate     = errors.New("duplicate status code")
	ErrSeverity      = errors.New("name prefix does not match severity bits")
)

// RawRegistry is the status code registry loaded from YAML.
type RawRegistry struct {
	Codes []RawCode `yaml:"codes"`
}

// RawCode is one registry entry.
type RawCode struct {
	Name  string `yaml:"name"`
	Value uint32 `yaml:"value"`
}

// ParseRegistry parses a registry from YAML bytes.
func ParseRegistry(data []byte) (*RawRegistry, error) {
	var reg RawRegistry
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parsing registry: %w", err)
	}
	return &reg, nil
}

// LoadRegistry loads and parses a registry from a file.
func LoadRegistry(path string) (*RawRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseRegistry(data)
}

// ValidateRegistry checks that names are Go identifiers with a severity
// prefix matching the top two bits, and that names and values are unique.
func ValidateRegistry(reg *RawRegistry) error {
	if len(reg.Codes) == 0 {
		return ErrEmptyRegistry
	}

	names := make(map[string]bool, len(reg.Codes))
	values := make(map[uint32]string, len(reg.Codes))

	for _, c := range reg.Codes {
		if !isIdentifier(c.Name) {
			return fmt.Errorf("%w: %q", ErrInvalidName, c.Name)
		}
		if names[c.Name] {
			return fmt.Errorf("%w: name %s", ErrDuplicate, c.Name)
		}
		if other, ok := values[c.Value]; ok {
			return fmt.Errorf("%w: 0x%08X used by %s and %s", ErrDuplicate, c.Value, other, c.Name)
		}
		if want := severityPrefix(c.Value); !strings.HasPrefix(c.Name, want) {
			return fmt.Errorf("%w: %s = 0x%08X, want prefix %s", ErrSeverity, c.Name, c.Value, want)
		}
		names[c.Name] = true
		values[c.Value] = c.Name
	}
	return nil
}

// severityPrefix returns the name prefix implied by the severity bits.
func severityPrefix(v uint32) string {
	switch v >> 30 {
	case 0:
		return "Good"
	case 1:
		return "Uncertain"
	default:
		return "Bad"
	}
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r == '_':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
