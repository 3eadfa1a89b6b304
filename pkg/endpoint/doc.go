// Package endpoint splits opc.tcp endpoint URLs into hostname, port and path.
//
// # Grammar
//
//	opc.tcp://HOST[:PORT][/PATH[/]]
//
// HOST is either a bracketed literal ("[...]", brackets kept) or a run of
// bytes without ':' or '/'. PORT is 1 to 5 ASCII digits. PATH is the rest of
// the URL with at most one trailing '/' removed.
//
// # Partial Results
//
// ParseURL never panics and never discards what it recognized. A failed
// parse still exposes the fields captured before the failing token, e.g.
// the hostname of "opc.tcp://host:x".
package endpoint
