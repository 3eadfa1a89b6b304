package statuscode

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// UnknownName is returned by Table.Name for codes that are not registered.
const UnknownName = "Unknown StatusCode"

// Table errors.
var (
	ErrDuplicateCode = errors.New("duplicate status code")
	ErrDuplicateName = errors.New("duplicate status code name")
	ErrEmptyName     = errors.New("empty status code name")
)

// Entry maps one status code to its canonical name.
type Entry struct {
	Code StatusCode `yaml:"code" json:"code"`
	Name string     `yaml:"name" json:"name"`
}

// Namer resolves status codes to names.
type Namer interface {
	// Name returns the canonical name of code, or UnknownName.
	Name(code StatusCode) string
}

// Table is an immutable status code lookup sorted by code.
// It is safe for concurrent use.
type Table struct {
	entries []Entry
	byName  map[string]StatusCode
}

// NewTable builds a Table from entries in any order.
// Codes and names must each be unique.
func NewTable(entries []Entry) (*Table, error) {
	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, func(a, b Entry) int {
		return cmp.Compare(a.Code, b.Code)
	})

	byName := make(map[string]StatusCode, len(sorted))
	for i, e := range sorted {
		if e.Name == "" {
			return nil, fmt.Errorf("%w: code 0x%08X", ErrEmptyName, uint32(e.Code))
		}
		if i > 0 && sorted[i-1].Code == e.Code {
			return nil, fmt.Errorf("%w: 0x%08X (%s, %s)", ErrDuplicateCode, uint32(e.Code), sorted[i-1].Name, e.Name)
		}
		if _, exists := byName[e.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, e.Name)
		}
		byName[e.Name] = e.Code
	}

	return &Table{entries: sorted, byName: byName}, nil
}

// Lookup returns the name of code and whether it is registered.
func (t *Table) Lookup(code StatusCode) (string, bool) {
	i, found := slices.BinarySearchFunc(t.entries, code, func(e Entry, c StatusCode) int {
		return cmp.Compare(e.Code, c)
	})
	if !found {
		return "", false
	}
	return t.entries[i].Name, true
}

// Name returns the canonical name of code, or UnknownName if unregistered.
func (t *Table) Name(code StatusCode) string {
	if name, ok := t.Lookup(code); ok {
		return name
	}
	return UnknownName
}

// Code returns the status code registered under name (case-sensitive).
func (t *Table) Code(name string) (StatusCode, bool) {
	c, ok := t.byName[name]
	return c, ok
}

// Len returns the number of registered codes.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the entries sorted by code.
func (t *Table) Entries() []Entry {
	return slices.Clone(t.entries)
}

// Compile-time interface satisfaction check.
var _ Namer = (*Table)(nil)
