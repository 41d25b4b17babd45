package options

import (
	"github.com/spf13/cobra"
)

// MCPOptions
type MCPOptions struct {
	Transport string
	Addr      string
	Path      string
	TLSCert   string
	TLSKey    string
}

func AddMCPArgs(cmd *cobra.Command, o *MCPOptions) {
	cmd.Flags().StringVar(&o.Transport, "transport", "stdio",
		"Transport to serve on. One of 'stdio' or 'http'.")
	cmd.Flags().StringVar(&o.Addr, "addr", "127.0.0.1:8080",
		"Listen address for the http transport.")
	cmd.Flags().StringVar(&o.Path, "path", "/mcp",
		"Endpoint path for the http transport.")
	cmd.Flags().StringVar(&o.TLSCert, "tls-cert", "",
		"TLS certificate for the http transport.")
	cmd.Flags().StringVar(&o.TLSKey, "tls-key", "",
		"TLS key for the http transport.")
}
