package log

import (
	"time"

	"github.com/uastack/ua-go/pkg/statuscode"
	"github.com/uastack/ua-go/pkg/types"
)

func endpointEvent(session, url string, status statuscode.StatusCode) Event {
	return Event{
		Timestamp: time.Now(),
		SessionID: session,
		Kind:      KindEndpointParse,
		Endpoint: &EndpointParseEvent{
			URL:      url,
			Status:   status,
			Hostname: "host",
			Port:     4840,
		},
	}
}

func nodeIDEvent(session string) Event {
	return Event{
		Timestamp: time.Now(),
		SessionID: session,
		Kind:      KindNodeIDRender,
		NodeID: &NodeIDRenderEvent{
			Namespace:      123,
			IdentifierType: types.IdentifierByteString,
			Text:           "ns=123;i=2c",
		},
	}
}

func statusEvent(session string, found bool) Event {
	name := statuscode.UnknownName
	if found {
		name = "BadTimeout"
	}
	return Event{
		Timestamp: time.Now(),
		SessionID: session,
		Kind:      KindStatusLookup,
		Status: &StatusLookupEvent{
			Code:  statuscode.BadTimeout,
			Name:  name,
			Found: found,
		},
	}
}
