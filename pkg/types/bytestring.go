package types

import "bytes"

// ByteString is a view over a run of bytes. A nil ByteString is null.
type ByteString []byte

// NullString is the null ByteString.
var NullString ByteString

// NewString returns a non-null ByteString holding s.
// The empty string yields an empty, non-null span.
func NewString(s string) ByteString {
	if s == "" {
		return ByteString{}
	}
	return ByteString(s)
}

// IsNull returns true if the span has no backing data.
func (b ByteString) IsNull() bool {
	return b == nil
}

// IsEmpty returns true if the span has zero length (null or empty).
func (b ByteString) IsEmpty() bool {
	return len(b) == 0
}

// Equal compares two spans by content.
func (b ByteString) Equal(other ByteString) bool {
	return bytes.Equal(b, other)
}

// String returns the span content as a Go string.
func (b ByteString) String() string {
	return string(b)
}
