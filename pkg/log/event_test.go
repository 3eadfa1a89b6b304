package log

import (
	"testing"

	"github.com/uastack/ua-go/pkg/statuscode"
)

func TestEventIsFailure(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  bool
	}{
		{"good url", Event{Endpoint: &EndpointParseEvent{Status: statuscode.Good}}, false},
		{"invalid url", Event{Endpoint: &EndpointParseEvent{Status: statuscode.BadTcpEndpointUrlInvalid}}, true},
		{"known status", Event{Status: &StatusLookupEvent{Found: true}}, false},
		{"unknown status", Event{Status: &StatusLookupEvent{Name: statuscode.UnknownName}}, true},
		{"descriptions unavailable", Event{Status: &StatusLookupEvent{Unavailable: true}}, false},
		{"nodeid render", Event{NodeID: &NodeIDRenderEvent{Text: "ns=0;i=0"}}, false},
		{"empty", Event{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.IsFailure(); got != tt.want {
				t.Errorf("IsFailure() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFailuresOnlySkipsUnavailableLookups(t *testing.T) {
	unavailable := statusEvent("s", false)
	unavailable.Status.Name = ""
	unavailable.Status.Unavailable = true

	path := writeTrace(t, unavailable, statusEvent("s", false), statusEvent("s", true))

	got := readAll(t, path, Filter{FailuresOnly: true})
	if len(got) != 1 || got[0].Status.Unavailable {
		t.Errorf("FailuresOnly returned %d events, want only the unknown code", len(got))
	}
}
