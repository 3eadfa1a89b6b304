package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/uastack/ua-go/pkg/log"
)

// ParseKind converts a kind name (endpoint, nodeid, status) to a log.Kind.
func ParseKind(s string) (log.Kind, error) {
	switch strings.ToLower(s) {
	case "endpoint":
		return log.KindEndpointParse, nil
	case "nodeid":
		return log.KindNodeIDRender, nil
	case "status":
		return log.KindStatusLookup, nil
	default:
		return 0, fmt.Errorf("unknown kind: %s (use: endpoint, nodeid, status)", s)
	}
}

// ViewOptions controls trace file output.
type ViewOptions struct {
	Filter log.Filter
	Limit  int
}

// ViewLog writes one line per matching event in path to w and returns the
// number of events written.
func ViewLog(w io.Writer, path string, opts ViewOptions) (int, error) {
	r, err := log.NewFilteredReader(path, opts.Filter)
	if err != nil {
		return 0, fmt.Errorf("opening trace file: %w", err)
	}
	defer r.Close()

	count := 0
	for event, err := range r.All() {
		if err != nil {
			return count, fmt.Errorf("reading event %d: %w", count+1, err)
		}
		if _, err := fmt.Fprintln(w, FormatEvent(event)); err != nil {
			return count, err
		}
		count++
		if opts.Limit > 0 && count == opts.Limit {
			break
		}
	}
	return count, nil
}

// FormatEvent renders a trace event as a single line.
func FormatEvent(e log.Event) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [%s] %-8s ", e.Timestamp.Format(time.RFC3339Nano), shortSession(e.SessionID), e.Kind)

	switch {
	case e.Endpoint != nil:
		ep := e.Endpoint
		fmt.Fprintf(&sb, "%q %s", ep.URL, ep.Status)
		if ep.Error != "" {
			fmt.Fprintf(&sb, " error=%q", ep.Error)
		} else {
			fmt.Fprintf(&sb, " host=%q port=%d path=%q", ep.Hostname, ep.Port, ep.Path)
		}
	case e.NodeID != nil:
		fmt.Fprintf(&sb, "ns=%d type=%s %s", e.NodeID.Namespace, e.NodeID.IdentifierType, e.NodeID.Text)
	case e.Status != nil:
		fmt.Fprintf(&sb, "0x%08X ", uint32(e.Status.Code))
		if e.Status.Unavailable {
			sb.WriteString("(descriptions disabled)")
		} else {
			sb.WriteString(e.Status.Name)
		}
	default:
		sb.WriteString("(empty)")
	}
	return sb.String()
}

func shortSession(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
