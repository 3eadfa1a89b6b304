package commands

import (
	"fmt"
	"strings"

	"github.com/uastack/ua-go/pkg/endpoint"
)

// URLReport is the printable result of an endpoint URL parse.
// Null spans are reported as nil pointers.
type URLReport struct {
	URL      string  `json:"url" yaml:"url"`
	Status   string  `json:"status" yaml:"status"`
	Hostname *string `json:"hostname" yaml:"hostname"`
	Port     uint16  `json:"port,omitempty" yaml:"port,omitempty"`
	Path     *string `json:"path" yaml:"path"`
	Addr     string  `json:"addr,omitempty" yaml:"addr,omitempty"`
	Error    string  `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewURLReport builds a report from a parse result.
func NewURLReport(url string, r endpoint.Result) URLReport {
	rep := URLReport{
		URL:    url,
		Status: r.Status.String(),
	}
	if !r.Hostname.IsNull() {
		s := r.Hostname.String()
		rep.Hostname = &s
	}
	rep.Port = r.Port
	if !r.Path.IsNull() {
		s := r.Path.String()
		rep.Path = &s
	}
	if err := r.Err(); err != nil {
		rep.Error = err.Error()
	} else {
		rep.Addr = r.Addr()
	}
	return rep
}

// Text implements texter.
func (r URLReport) Text() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n  status:   %s\n", r.URL, r.Status)
	fmt.Fprintf(&sb, "  hostname: %s\n", optional(r.Hostname))
	if r.Port == 0 {
		sb.WriteString("  port:     (none)\n")
	} else {
		fmt.Fprintf(&sb, "  port:     %d\n", r.Port)
	}
	fmt.Fprintf(&sb, "  path:     %s", optional(r.Path))
	if r.Addr != "" {
		fmt.Fprintf(&sb, "\n  addr:     %s", r.Addr)
	}
	if r.Error != "" {
		fmt.Fprintf(&sb, "\n  error:    %s", r.Error)
	}
	return sb.String()
}

// StatusReport is the printable result of a status code lookup.
// Unavailable is set when status descriptions are compiled out; Name is
// then empty and Known is false.
type StatusReport struct {
	Code        string `json:"code" yaml:"code"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Severity    string `json:"severity" yaml:"severity"`
	Known       bool   `json:"known" yaml:"known"`
	Unavailable bool   `json:"unavailable,omitempty" yaml:"unavailable,omitempty"`
}

// Text implements texter.
func (r StatusReport) Text() string {
	name := r.Name
	if r.Unavailable {
		name = "(descriptions unavailable)"
	}
	return fmt.Sprintf("%s  %-9s  %s", r.Code, r.Severity, name)
}

// NumberReport is the printable result of the decimal reader.
type NumberReport struct {
	Input    string `json:"input" yaml:"input"`
	Consumed int    `json:"consumed" yaml:"consumed"`
	Value    uint32 `json:"value" yaml:"value"`
}

// Text implements texter.
func (r NumberReport) Text() string {
	if r.Consumed == 0 {
		return fmt.Sprintf("%q: no digits", r.Input)
	}
	return fmt.Sprintf("%q: consumed %d, value %d", r.Input, r.Consumed, r.Value)
}

// NodeIDReport is the printable result of a NodeID render.
type NodeIDReport struct {
	Namespace      uint16 `json:"namespace" yaml:"namespace"`
	IdentifierType string `json:"identifier_type" yaml:"identifier_type"`
	Rendered       string `json:"text" yaml:"text"`
}

// Text implements texter.
func (r NodeIDReport) Text() string {
	return r.Rendered
}

func optional(s *string) string {
	if s == nil {
		return "(null)"
	}
	return fmt.Sprintf("%q", *s)
}
