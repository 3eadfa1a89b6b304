// Package interactive provides the ua-text interactive shell.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/chzyer/readline"

	"github.com/uastack/ua-go/cmd/ua-text/commands"
)

// Shell runs ua-text commands read from a line editor.
type Shell struct {
	app    *commands.App
	out    io.Writer
	format string
}

// New creates a shell that renders results in format.
func New(app *commands.App, out io.Writer, format string) *Shell {
	return &Shell{app: app, out: out, format: format}
}

var completer = readline.NewPrefixCompleter(
	readline.PcItem("url"),
	readline.PcItem("number"),
	readline.PcItem("status"),
	readline.PcItem("name"),
	readline.PcItem("nodeid",
		readline.PcItem("numeric"),
		readline.PcItem("string"),
		readline.PcItem("guid"),
		readline.PcItem("bytes"),
	),
	readline.PcItem("format",
		readline.PcItem(commands.FormatText),
		readline.PcItem(commands.FormatJSON),
		readline.PcItem(commands.FormatYAML),
	),
	readline.PcItem("session"),
	readline.PcItem("help"),
	readline.PcItem("quit"),
)

// Run starts the interactive loop and returns when the input ends, the
// user quits or ctx is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "ua> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer,
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	s.out = rl.Stdout()
	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			return nil
		}
		if s.Exec(line) {
			return nil
		}
	}
}

// Exec runs one input line. It returns true when the shell should exit.
func (s *Shell) Exec(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()

	case "url", "u":
		s.cmdURL(args)

	case "number", "n":
		s.cmdNumber(input, args)

	case "status", "s":
		s.cmdStatus(args)

	case "name":
		s.cmdName(args)

	case "nodeid", "id":
		s.cmdNodeID(args)

	case "format", "f":
		s.cmdFormat(args)

	case "session":
		fmt.Fprintln(s.out, s.app.SessionID())

	case "quit", "exit", "q":
		fmt.Fprintln(s.out, "Exiting...")
		return true

	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return false
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `Commands:
  url <url>...                 Parse opc.tcp:// endpoint URLs
  number <text>                Read a leading decimal number
  status <code>...             Name status codes (hex 0x... or decimal)
  name <StatusName>            Find the code of a status name
  nodeid <ns> numeric <value>  Render a numeric NodeID
  nodeid <ns> string <text>    Render a string NodeID
  nodeid <ns> guid <guid>      Render a GUID NodeID
  nodeid <ns> bytes <hex>      Render a ByteString NodeID
  format <text|json|yaml>      Change the output format
  session                      Show the trace session ID
  help                         Show this help
  quit                         Exit`)
}

func (s *Shell) render(v any) {
	if err := commands.Render(s.out, s.format, v); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}

func (s *Shell) cmdURL(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "Usage: url <url>...")
		return
	}
	reports := make([]commands.URLReport, 0, len(args))
	for _, a := range args {
		reports = append(reports, s.app.ParseURL(a))
	}
	s.render(reports)
}

// cmdNumber reads from the raw text after the command and its separating
// whitespace, so embedded spaces and trailing text reach the reader.
func (s *Shell) cmdNumber(input string, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "Usage: number <text>")
		return
	}
	rest := strings.TrimLeftFunc(strings.TrimLeftFunc(input, func(r rune) bool {
		return !unicode.IsSpace(r)
	}), unicode.IsSpace)
	s.render(s.app.ReadNumber(rest))
}

func (s *Shell) cmdStatus(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "Usage: status <code>...")
		return
	}
	reports := make([]commands.StatusReport, 0, len(args))
	for _, a := range args {
		code, err := commands.ParseStatusCode(a)
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			return
		}
		reports = append(reports, s.app.LookupStatus(code))
	}
	s.render(reports)
}

func (s *Shell) cmdName(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: name <StatusName>")
		return
	}
	rep, err := s.app.LookupStatusName(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	s.render(rep)
}

func (s *Shell) cmdNodeID(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(s.out, "Usage: nodeid <ns> <numeric|string|guid|bytes> [value]")
		return
	}

	ns, err := strconv.ParseUint(args[0], 10, 16)
	if err != nil {
		fmt.Fprintf(s.out, "Error: invalid namespace %q\n", args[0])
		return
	}

	// A missing value is the empty string or empty byte string.
	value := strings.Join(args[2:], " ")
	spec := commands.NodeIDSpec{Namespace: uint16(ns)}
	switch strings.ToLower(args[1]) {
	case "numeric", "i":
		v, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			fmt.Fprintf(s.out, "Error: invalid numeric identifier %q\n", value)
			return
		}
		n := uint32(v)
		spec.Numeric = &n
	case "string", "s":
		spec.String = &value
	case "guid", "g":
		spec.Guid = &value
	case "bytes", "b":
		spec.Bytes = &value
	default:
		fmt.Fprintf(s.out, "Error: unknown identifier type %q\n", args[1])
		return
	}

	id, err := spec.Build()
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	s.render(s.app.RenderNodeID(id))
}

func (s *Shell) cmdFormat(args []string) {
	if len(args) != 1 {
		fmt.Fprintf(s.out, "Current format: %s\n", s.format)
		return
	}
	switch args[0] {
	case commands.FormatText, commands.FormatJSON, commands.FormatYAML:
		s.format = args[0]
		fmt.Fprintf(s.out, "Output format set to %s\n", s.format)
	default:
		fmt.Fprintf(s.out, "Error: unsupported shell format %q (use: text, json, yaml)\n", args[0])
	}
}
