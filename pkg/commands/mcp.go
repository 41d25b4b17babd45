package commands

import (
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/config"
	"tableflip.dev/planner/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	v := config.New()
	mo := &options.MCPOptions{}

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve planner page lookups and generation over the Model Context Protocol.",
		Example: `
planner mcp
planner mcp --transport http --addr 127.0.0.1:9090
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			c, err := config.Load(v)
			if err != nil {
				return err
			}
			r := mcp.Runner{
				Config:           c,
				Name:             "planner",
				Version:          version,
				Transport:        mcp.Transport(strings.ToLower(strings.TrimSpace(mo.Transport))),
				HTTPListenAddr:   mo.Addr,
				HTTPEndpointPath: mo.Path,
				HTTPServerCert:   mo.TLSCert,
				HTTPServerKey:    mo.TLSKey,
				OnHTTPListening: func(addr net.Addr) {
					scheme := "http"
					if mo.TLSCert != "" {
						scheme = "https"
					}
					_, _ = fmt.Fprintf(os.Stderr, "MCP server listening on %s://%s%s\n", scheme, addr, mo.Path)
				},
			}
			return r.Do(cmd.Context())
		},
	}

	options.AddYearArgs(cmd, v)
	options.AddMCPArgs(cmd, mo)

	topLevel.AddCommand(cmd)
}
