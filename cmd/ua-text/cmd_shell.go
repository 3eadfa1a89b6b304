package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uastack/ua-go/cmd/ua-text/commands"
	"github.com/uastack/ua-go/cmd/ua-text/interactive"
)

func (c *cli) shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format := c.cfg.Output
			if format == commands.FormatCBOR {
				return fmt.Errorf("the shell does not support %s output", format)
			}
			return interactive.New(c.app, c.out, format).Run(cmd.Context())
		},
	}
}
