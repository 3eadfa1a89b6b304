// Package types defines the built-in value types shared by the ua-go
// text primitives.
//
// # Null vs Empty
//
// ByteString distinguishes a null span (no data) from an empty span
// (present, zero length):
//   - nil: the value is absent (null)
//   - ByteString{}: the value is present and empty
//
// Equality is by content, so a null and an empty span compare equal.
// Spans returned by parsers are views into the caller's buffer; they are
// never copied.
//
// # NodeID Text Form
//
// NodeID.String renders the canonical "ns=<namespace>;i=<identifier>" form.
// The identifier encoding depends on the identifier type:
//   - Numeric: decimal digits
//   - String: raw bytes, no escaping
//   - Guid: lowercase hyphenated 8-4-4-4-12 hex
//   - ByteString: lowercase hex, two digits per byte
package types
