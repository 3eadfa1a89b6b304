package types

import (
	"encoding/hex"
	"strconv"
	"strings"
)

// IdentifierType selects which identifier arm of a NodeID is populated.
// Values match the binary encoding of the identifier type.
type IdentifierType uint8

const (
	// IdentifierNumeric is a 32-bit numeric identifier.
	IdentifierNumeric IdentifierType = 0

	// IdentifierString is a string identifier.
	IdentifierString IdentifierType = 3

	// IdentifierGuid is a Guid identifier.
	IdentifierGuid IdentifierType = 4

	// IdentifierByteString is an opaque byte string identifier.
	IdentifierByteString IdentifierType = 5
)

// String returns the identifier type name.
func (t IdentifierType) String() string {
	switch t {
	case IdentifierNumeric:
		return "numeric"
	case IdentifierString:
		return "string"
	case IdentifierGuid:
		return "guid"
	case IdentifierByteString:
		return "bytestring"
	default:
		return "unknown"
	}
}

// NodeID addresses one node in the information model.
//
// The identifier arms are private; the constructors set the tag together
// with its arm, so the tag always selects the populated arm.
// The zero value is the numeric NodeID ns=0;i=0.
type NodeID struct {
	// Namespace is the namespace index.
	Namespace uint16

	typ     IdentifierType
	numeric uint32
	bytes   ByteString // string and bytestring arms
	guid    Guid
}

// NewNumericNodeID returns a NodeID with a numeric identifier.
func NewNumericNodeID(ns uint16, id uint32) NodeID {
	return NodeID{Namespace: ns, typ: IdentifierNumeric, numeric: id}
}

// NewStringNodeID returns a NodeID with a string identifier.
// The identifier is kept as a view over s.
func NewStringNodeID(ns uint16, s ByteString) NodeID {
	return NodeID{Namespace: ns, typ: IdentifierString, bytes: s}
}

// NewGuidNodeID returns a NodeID with a Guid identifier.
func NewGuidNodeID(ns uint16, g Guid) NodeID {
	return NodeID{Namespace: ns, typ: IdentifierGuid, guid: g}
}

// NewByteStringNodeID returns a NodeID with an opaque identifier.
// The identifier is kept as a view over b.
func NewByteStringNodeID(ns uint16, b ByteString) NodeID {
	return NodeID{Namespace: ns, typ: IdentifierByteString, bytes: b}
}

// Type returns the identifier type.
func (n NodeID) Type() IdentifierType {
	return n.typ
}

// Numeric returns the numeric identifier and whether the NodeID is numeric.
func (n NodeID) Numeric() (uint32, bool) {
	if n.typ != IdentifierNumeric {
		return 0, false
	}
	return n.numeric, true
}

// StringID returns the string identifier and whether the NodeID is a string NodeID.
func (n NodeID) StringID() (ByteString, bool) {
	if n.typ != IdentifierString {
		return nil, false
	}
	return n.bytes, true
}

// GuidID returns the Guid identifier and whether the NodeID is a Guid NodeID.
func (n NodeID) GuidID() (Guid, bool) {
	if n.typ != IdentifierGuid {
		return Guid{}, false
	}
	return n.guid, true
}

// ByteStringID returns the opaque identifier and whether the NodeID is opaque.
func (n NodeID) ByteStringID() (ByteString, bool) {
	if n.typ != IdentifierByteString {
		return nil, false
	}
	return n.bytes, true
}

// Equal returns true if both NodeIDs share namespace, type and identifier.
func (n NodeID) Equal(other NodeID) bool {
	if n.Namespace != other.Namespace || n.typ != other.typ {
		return false
	}
	switch n.typ {
	case IdentifierNumeric:
		return n.numeric == other.numeric
	case IdentifierString, IdentifierByteString:
		return n.bytes.Equal(other.bytes)
	case IdentifierGuid:
		return n.guid == other.guid
	default:
		return false
	}
}

// String renders the NodeID as "ns=<namespace>;i=<identifier>".
// Each call returns a freshly built string.
func (n NodeID) String() string {
	var sb strings.Builder
	sb.WriteString("ns=")
	sb.WriteString(strconv.FormatUint(uint64(n.Namespace), 10))
	sb.WriteString(";i=")

	switch n.typ {
	case IdentifierNumeric:
		sb.WriteString(strconv.FormatUint(uint64(n.numeric), 10))
	case IdentifierString:
		sb.Write(n.bytes)
	case IdentifierGuid:
		sb.WriteString(n.guid.String())
	case IdentifierByteString:
		sb.WriteString(hex.EncodeToString(n.bytes))
	}

	return sb.String()
}

// MarshalText implements encoding.TextMarshaler using the canonical text form.
func (n NodeID) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}
