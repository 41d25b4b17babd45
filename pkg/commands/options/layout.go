package options

import (
	"github.com/spf13/cobra"
)

// LayoutOptions
type LayoutOptions struct {
	Calendar bool
}

func AddLayoutArgs(cmd *cobra.Command, o *LayoutOptions) {
	cmd.Flags().BoolVarP(&o.Calendar, "calendar", "c", false,
		"Show each month with the pages of its daily logs.")
}
