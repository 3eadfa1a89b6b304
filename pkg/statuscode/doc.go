// Package statuscode defines OPC UA status codes and maps them to their
// canonical registry names.
//
// # Severity
//
// The two most significant bits of a StatusCode select its severity band:
//   - 00: Good
//   - 01: Uncertain
//   - 10, 11: Bad
//
// # Name Lookup
//
// Names are resolved through an immutable Table. The registry table is
// generated from statuscodes.yaml by ua-statusgen and is available through
// Descriptions. Building with the ua_nostatusdescriptions tag removes the
// registry table; Descriptions then reports it as unavailable and callers
// fall back to the numeric form.
package statuscode

//go:generate go run ../../cmd/ua-statusgen -registry statuscodes.yaml -output codes_gen.go -package statuscode
