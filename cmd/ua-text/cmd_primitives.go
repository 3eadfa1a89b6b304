package main

import (
	"github.com/spf13/cobra"

	"github.com/uastack/ua-go/cmd/ua-text/commands"
)

func (c *cli) urlCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "url <url>...",
		Short: "Parse opc.tcp:// endpoint URLs",
		Long: `Parse opc.tcp:// endpoint URLs into hostname, port and path.

The exit status is 1 if any URL is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			reports := make([]commands.URLReport, 0, len(args))
			invalid := false
			for _, a := range args {
				rep := c.app.ParseURL(a)
				invalid = invalid || rep.Error != ""
				reports = append(reports, rep)
			}
			if err := c.render(reports); err != nil {
				return err
			}
			if invalid {
				return errInvalidInput
			}
			return nil
		},
	}
}

func (c *cli) numberCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "number <text>",
		Short: "Read the leading decimal digits of text",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return c.render(c.app.ReadNumber(args[0]))
		},
	}
}

func (c *cli) statusCmd() *cobra.Command {
	var byName bool

	cmd := &cobra.Command{
		Use:   "status <code>...",
		Short: "Name status codes (hex 0x... or decimal)",
		Example: `  ua-text status 0x80310000
  ua-text status --name BadNoCommunication`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			reports := make([]commands.StatusReport, 0, len(args))
			for _, a := range args {
				if byName {
					rep, err := c.app.LookupStatusName(a)
					if err != nil {
						return err
					}
					reports = append(reports, rep)
					continue
				}
				code, err := commands.ParseStatusCode(a)
				if err != nil {
					return err
				}
				reports = append(reports, c.app.LookupStatus(code))
			}
			return c.render(reports)
		},
	}
	cmd.Flags().BoolVar(&byName, "name", false, "Arguments are status names; print their codes")
	return cmd
}

func (c *cli) nodeIDCmd() *cobra.Command {
	var (
		ns      uint16
		numeric uint32
		str     string
		guid    string
		bytes   string
	)

	cmd := &cobra.Command{
		Use:   "nodeid",
		Short: "Render a NodeID to text",
		Example: `  ua-text nodeid --ns 1 --numeric 1234
  ua-text nodeid --ns 2 --guid a123456c-0abc-1a2b-815f-687212aaee1b
  ua-text nodeid --bytes 2183e05478`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec := commands.NodeIDSpec{Namespace: ns}
			f := cmd.Flags()
			if f.Changed("numeric") {
				spec.Numeric = &numeric
			}
			if f.Changed("string") {
				spec.String = &str
			}
			if f.Changed("guid") {
				spec.Guid = &guid
			}
			if f.Changed("bytes") {
				spec.Bytes = &bytes
			}

			id, err := spec.Build()
			if err != nil {
				return err
			}
			return c.render(c.app.RenderNodeID(id))
		},
	}

	f := cmd.Flags()
	f.Uint16Var(&ns, "ns", 0, "Namespace index")
	f.Uint32Var(&numeric, "numeric", 0, "Numeric identifier")
	f.StringVar(&str, "string", "", "String identifier")
	f.StringVar(&guid, "guid", "", "GUID identifier")
	f.StringVar(&bytes, "bytes", "", "ByteString identifier as hex")
	cmd.MarkFlagsMutuallyExclusive("numeric", "string", "guid", "bytes")
	cmd.MarkFlagsOneRequired("numeric", "string", "guid", "bytes")
	return cmd
}
