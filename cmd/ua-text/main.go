// Command ua-text exposes the OPC UA text primitives on the command line:
// endpoint URL parsing, the decimal reader, status code naming and NodeID
// rendering. It can also dump trace files and run an interactive shell.
//
// Usage:
//
//	ua-text url opc.tcp://plc.local:4840/ua
//	ua-text status 0x80310000
//	ua-text nodeid --ns 1 --string Temperature
//	ua-text log view session.ulog --kind endpoint
//	ua-text shell
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if !errors.Is(err, errInvalidInput) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
