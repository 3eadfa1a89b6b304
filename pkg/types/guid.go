package types

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

// Guid is a 128-bit identifier with the OPC UA field layout.
type Guid struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// NullGuid is the all-zero Guid.
var NullGuid Guid

// GuidFromUUID converts an RFC 4122 UUID into a Guid.
// The first three fields are read big-endian so that both values share
// the same text form.
func GuidFromUUID(u uuid.UUID) Guid {
	var g Guid
	g.Data1 = binary.BigEndian.Uint32(u[0:4])
	g.Data2 = binary.BigEndian.Uint16(u[4:6])
	g.Data3 = binary.BigEndian.Uint16(u[6:8])
	copy(g.Data4[:], u[8:16])
	return g
}

// ParseGuid parses the hyphenated text form of a Guid.
// Any form accepted by uuid.Parse is accepted (braces, "urn:uuid:" prefix).
func ParseGuid(s string) (Guid, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return Guid{}, fmt.Errorf("invalid guid %q: %w", s, err)
	}
	return GuidFromUUID(u), nil
}

// UUID returns the Guid as an RFC 4122 UUID.
func (g Guid) UUID() uuid.UUID {
	var u uuid.UUID
	binary.BigEndian.PutUint32(u[0:4], g.Data1)
	binary.BigEndian.PutUint16(u[4:6], g.Data2)
	binary.BigEndian.PutUint16(u[6:8], g.Data3)
	copy(u[8:16], g.Data4[:])
	return u
}

// IsNull returns true if every field is zero.
func (g Guid) IsNull() bool {
	return g == NullGuid
}

// String renders the Guid as lowercase hex in 8-4-4-4-12 groups:
// Data1, Data2, Data3, Data4[0:2], Data4[2:8].
func (g Guid) String() string {
	return g.UUID().String()
}

// MarshalText implements encoding.TextMarshaler.
func (g Guid) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *Guid) UnmarshalText(text []byte) error {
	parsed, err := ParseGuid(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
