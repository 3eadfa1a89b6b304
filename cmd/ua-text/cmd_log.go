package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/uastack/ua-go/cmd/ua-text/commands"
)

func (c *cli) logCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Inspect trace files",
	}
	cmd.AddCommand(c.logViewCmd())
	return cmd
}

func (c *cli) logViewCmd() *cobra.Command {
	var (
		kind     string
		session  string
		failures bool
		since    time.Duration
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "view <file.ulog>",
		Short: "Print the events of a trace file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := commands.ViewOptions{Limit: limit}
			opts.Filter.SessionID = session
			opts.Filter.FailuresOnly = failures
			if kind != "" {
				k, err := commands.ParseKind(kind)
				if err != nil {
					return err
				}
				opts.Filter.Kind = &k
			}
			if since > 0 {
				start := time.Now().Add(-since)
				opts.Filter.TimeStart = &start
			}

			n, err := commands.ViewLog(c.out, args[0], opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%d events\n", n)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&kind, "kind", "", "Only events of this kind: endpoint, nodeid, status")
	f.StringVar(&session, "session", "", "Only events of this session ID")
	f.BoolVar(&failures, "failures", false, "Only invalid URLs and unknown status codes")
	f.DurationVar(&since, "since", 0, "Only events newer than this duration")
	f.IntVar(&limit, "limit", 0, "Stop after this many events (0 for all)")
	return cmd
}
