package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/config"
	"tableflip.dev/planner/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show where settings are read from and what they resolve to.",
		Example: `
planner info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			c, err := config.Load(nil)
			if err != nil {
				return oo.HandleError(err)
			}
			s := info.Info{
				Config: c,
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
