package commands

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/uastack/ua-go/pkg/endpoint"
	"github.com/uastack/ua-go/pkg/log"
	"github.com/uastack/ua-go/pkg/statuscode"
	"github.com/uastack/ua-go/pkg/types"
)

// App bundles the primitives behind every ua-text command so that the
// one-shot commands and the shell share one trace session.
type App struct {
	parser   *endpoint.Parser
	statuses *statuscode.Table // nil when descriptions are compiled out
	tracer   log.Logger
	logger   *slog.Logger
	now      func() time.Time
}

// NewApp creates an App. Trace events go to tracer (nil disables) and
// operational messages to logger (nil uses slog.Default).
func NewApp(tracer log.Logger, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	tracer = log.OrNoop(tracer)
	statuses, _ := statuscode.Descriptions()
	return &App{
		parser:   endpoint.NewParser(tracer),
		statuses: statuses,
		tracer:   tracer,
		logger:   logger,
		now:      time.Now,
	}
}

// SessionID returns the trace session of this App.
func (a *App) SessionID() string {
	return a.parser.SessionID()
}

// ParseURL parses one endpoint URL.
func (a *App) ParseURL(url string) URLReport {
	r := a.parser.Parse(url)
	if err := r.Err(); err != nil {
		a.logger.Debug("endpoint url rejected", "url", url, "error", err)
	}
	return NewURLReport(url, r)
}

// ReadNumber runs the decimal reader over s.
func (a *App) ReadNumber(s string) NumberReport {
	n, v := endpoint.ReadNumber([]byte(s))
	return NumberReport{Input: s, Consumed: n, Value: v}
}

// ParseStatusCode accepts hex with a 0x prefix or decimal.
func ParseStatusCode(s string) (statuscode.StatusCode, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid status code %q: %w", s, err)
	}
	return statuscode.StatusCode(v), nil
}

// LookupStatus resolves the name of code.
func (a *App) LookupStatus(code statuscode.StatusCode) StatusReport {
	rep := StatusReport{
		Code:     fmt.Sprintf("0x%08X", uint32(code)),
		Severity: code.Severity().String(),
	}

	ev := &log.StatusLookupEvent{Code: code}
	if a.statuses != nil {
		_, rep.Known = a.statuses.Lookup(code)
		rep.Name = a.statuses.Name(code)
		ev.Name, ev.Found = rep.Name, rep.Known
	} else {
		rep.Unavailable = true
		ev.Unavailable = true
	}
	a.trace(log.KindStatusLookup, func(e *log.Event) { e.Status = ev })
	return rep
}

// LookupStatusName resolves a registry name back to its code.
func (a *App) LookupStatusName(name string) (StatusReport, error) {
	if a.statuses == nil {
		return StatusReport{}, fmt.Errorf("status descriptions are not compiled in")
	}
	code, ok := a.statuses.Code(name)
	if !ok {
		return StatusReport{}, fmt.Errorf("unknown status code name: %s", name)
	}
	return a.LookupStatus(code), nil
}

// NodeIDSpec selects the identifier of a NodeID to render. Exactly one
// identifier field must be set.
type NodeIDSpec struct {
	Namespace uint16
	Numeric   *uint32
	String    *string
	Guid      *string
	Bytes     *string
}

// Build converts the spec into a NodeID.
func (s NodeIDSpec) Build() (types.NodeID, error) {
	set := 0
	if s.Numeric != nil {
		set++
	}
	if s.String != nil {
		set++
	}
	if s.Guid != nil {
		set++
	}
	if s.Bytes != nil {
		set++
	}
	if set != 1 {
		return types.NodeID{}, fmt.Errorf("exactly one identifier is required, got %d", set)
	}

	switch {
	case s.Numeric != nil:
		return types.NewNumericNodeID(s.Namespace, *s.Numeric), nil
	case s.String != nil:
		return types.NewStringNodeID(s.Namespace, types.NewString(*s.String)), nil
	case s.Guid != nil:
		g, err := types.ParseGuid(*s.Guid)
		if err != nil {
			return types.NodeID{}, err
		}
		return types.NewGuidNodeID(s.Namespace, g), nil
	default:
		raw, err := hex.DecodeString(*s.Bytes)
		if err != nil {
			return types.NodeID{}, fmt.Errorf("invalid hex bytes: %w", err)
		}
		if raw == nil {
			raw = []byte{}
		}
		return types.NewByteStringNodeID(s.Namespace, raw), nil
	}
}

// RenderNodeID renders id to text.
func (a *App) RenderNodeID(id types.NodeID) NodeIDReport {
	text := id.String()
	a.trace(log.KindNodeIDRender, func(e *log.Event) {
		e.NodeID = &log.NodeIDRenderEvent{
			Namespace:      id.Namespace,
			IdentifierType: id.Type(),
			Text:           text,
		}
	})
	return NodeIDReport{
		Namespace:      id.Namespace,
		IdentifierType: id.Type().String(),
		Rendered:       text,
	}
}

func (a *App) trace(kind log.Kind, fill func(*log.Event)) {
	e := log.Event{
		Timestamp: a.now(),
		SessionID: a.SessionID(),
		Kind:      kind,
	}
	fill(&e)
	a.tracer.Log(e)
}
