package endpoint

import (
	"time"

	"github.com/uastack/ua-go/pkg/log"
	"github.com/uastack/ua-go/pkg/types"
)

// Parser wraps ParseURL and records every parse as a trace event.
// It is safe for concurrent use if its Logger is.
type Parser struct {
	logger    log.Logger
	sessionID string
	now       func() time.Time
}

// NewParser returns a Parser that traces to logger (nil disables tracing).
// Events are stamped with a fresh session ID.
func NewParser(logger log.Logger) *Parser {
	return &Parser{
		logger:    log.OrNoop(logger),
		sessionID: log.NewSessionID(),
		now:       time.Now,
	}
}

// WithSession returns a copy of p that stamps events with sessionID.
func (p *Parser) WithSession(sessionID string) *Parser {
	cp := *p
	cp.sessionID = sessionID
	return &cp
}

// SessionID returns the session ID stamped on trace events.
func (p *Parser) SessionID() string {
	return p.sessionID
}

// Parse parses url and traces the result.
func (p *Parser) Parse(url string) Result {
	r := ParseURL(types.ByteString(url))

	ev := &log.EndpointParseEvent{
		URL:      url,
		Status:   r.Status,
		Hostname: r.Hostname.String(),
		Port:     r.Port,
		Path:     r.Path.String(),
	}
	if err := r.Err(); err != nil {
		ev.Error = err.Error()
	}

	p.logger.Log(log.Event{
		Timestamp: p.now(),
		SessionID: p.sessionID,
		Kind:      log.KindEndpointParse,
		Endpoint:  ev,
	})
	return r
}
