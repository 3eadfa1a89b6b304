// Package log records what the ua-go primitives were asked to do.
//
// A trace is a sequence of Events, one per endpoint URL parse, NodeID
// render or status code lookup. Every event carries a timestamp, the
// session ID of the process that produced it and exactly one payload.
// Tracing is independent of operational logging: slog messages are for
// people reading a terminal, traces are for tools.
//
// Producers take a Logger. NoopLogger (or nil, see OrNoop) disables
// tracing, SlogAdapter forwards events to a *slog.Logger, and
// StreamLogger writes them to a file:
//
//	fl, err := log.NewFileLogger("run.ulog")
//	if err != nil {
//		return err
//	}
//	defer fl.Close()
//	parser := endpoint.NewParser(log.NewMultiLogger(fl, log.NewSlogAdapter(slog.Default())))
//
// Trace files (.ulog) are CBOR sequences with integer map keys. Reader
// decodes them back, optionally through a Filter.
package log
