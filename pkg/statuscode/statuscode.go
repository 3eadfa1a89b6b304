package statuscode

import "fmt"

// StatusCode is a 32-bit result code from the OPC UA registry.
type StatusCode uint32

// Severity is the severity band encoded in the top two bits of a StatusCode.
type Severity uint8

const (
	// SeverityGood indicates the operation succeeded.
	SeverityGood Severity = 0

	// SeverityUncertain indicates the result may not be usable.
	SeverityUncertain Severity = 1

	// SeverityBad indicates the operation failed.
	SeverityBad Severity = 2
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityGood:
		return "Good"
	case SeverityUncertain:
		return "Uncertain"
	case SeverityBad:
		return "Bad"
	default:
		return "Unknown"
	}
}

// Severity returns the severity band of the code.
// Both 10 and 11 in the top bits are reported as SeverityBad.
func (c StatusCode) Severity() Severity {
	switch c >> 30 {
	case 0:
		return SeverityGood
	case 1:
		return SeverityUncertain
	default:
		return SeverityBad
	}
}

// IsGood returns true if the code is in the Good band.
func (c StatusCode) IsGood() bool {
	return c.Severity() == SeverityGood
}

// IsUncertain returns true if the code is in the Uncertain band.
func (c StatusCode) IsUncertain() bool {
	return c.Severity() == SeverityUncertain
}

// IsBad returns true if the code is in the Bad band.
func (c StatusCode) IsBad() bool {
	return c.Severity() == SeverityBad
}

// String returns the registry name when descriptions are available and the
// code is registered, otherwise the hex form "0x%08X".
func (c StatusCode) String() string {
	if table, ok := Descriptions(); ok {
		if name, found := table.Lookup(c); found {
			return name
		}
	}
	return fmt.Sprintf("0x%08X", uint32(c))
}
