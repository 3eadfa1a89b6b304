package log

import (
	"time"

	"github.com/uastack/ua-go/pkg/statuscode"
	"github.com/uastack/ua-go/pkg/types"
)

// Event represents one traced primitive call.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID groups the events of one process or tool run (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Kind classifies the event payload.
	Kind Kind `cbor:"3,keyasint"`

	// Type-specific payload (one of these will be set).
	Endpoint *EndpointParseEvent `cbor:"10,keyasint,omitempty"`
	NodeID   *NodeIDRenderEvent  `cbor:"11,keyasint,omitempty"`
	Status   *StatusLookupEvent  `cbor:"12,keyasint,omitempty"`
}

// Kind classifies a trace event.
type Kind uint8

const (
	// KindEndpointParse indicates an endpoint URL parse.
	KindEndpointParse Kind = 0
	// KindNodeIDRender indicates a NodeID text render.
	KindNodeIDRender Kind = 1
	// KindStatusLookup indicates a status code name lookup.
	KindStatusLookup Kind = 2
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindEndpointParse:
		return "ENDPOINT"
	case KindNodeIDRender:
		return "NODEID"
	case KindStatusLookup:
		return "STATUS"
	default:
		return "UNKNOWN"
	}
}

// EndpointParseEvent captures one endpoint URL parse.
type EndpointParseEvent struct {
	// URL is the input as given.
	URL string `cbor:"1,keyasint"`

	// Status is Good or BadTcpEndpointUrlInvalid.
	Status statuscode.StatusCode `cbor:"2,keyasint"`

	// Recognized structure (also recorded for failed parses).
	Hostname string `cbor:"3,keyasint,omitempty"`
	Port     uint16 `cbor:"4,keyasint,omitempty"`
	Path     string `cbor:"5,keyasint,omitempty"`

	// Error is the failure reason for invalid URLs.
	Error string `cbor:"6,keyasint,omitempty"`
}

// NodeIDRenderEvent captures one NodeID rendered to text.
type NodeIDRenderEvent struct {
	// Namespace is the namespace index.
	Namespace uint16 `cbor:"1,keyasint"`

	// IdentifierType is the identifier tag.
	IdentifierType types.IdentifierType `cbor:"2,keyasint"`

	// Text is the rendered form.
	Text string `cbor:"3,keyasint"`
}

// StatusLookupEvent captures one status code name lookup.
type StatusLookupEvent struct {
	// Code is the looked up status code.
	Code statuscode.StatusCode `cbor:"1,keyasint"`

	// Name is the resolved name (UnknownName if not registered, empty if
	// descriptions are unavailable).
	Name string `cbor:"2,keyasint"`

	// Found is true if the code is registered.
	Found bool `cbor:"3,keyasint,omitempty"`

	// Unavailable is true if descriptions were compiled out.
	Unavailable bool `cbor:"4,keyasint,omitempty"`
}

// IsFailure returns true if the event records a failed or unresolved call.
// Lookups made without compiled-in descriptions are not failures.
func (e Event) IsFailure() bool {
	switch {
	case e.Endpoint != nil:
		return e.Endpoint.Status != statuscode.Good
	case e.Status != nil:
		return !e.Status.Found && !e.Status.Unavailable
	default:
		return false
	}
}
