package options

import (
	"github.com/spf13/cobra"
)

// CopyOptions
type CopyOptions struct {
	Width int
}

func AddCopyArgs(cmd *cobra.Command, o *CopyOptions) {
	cmd.Flags().IntVarP(&o.Width, "width", "w", 80,
		"Wrap copy at this many columns.")
}
