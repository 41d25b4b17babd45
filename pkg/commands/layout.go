package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/config"
	"tableflip.dev/planner/pkg/runner/layout"
)

func addLayout(topLevel *cobra.Command) {
	v := config.New()
	lo := &options.LayoutOptions{}
	jo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the first and last page of every section.",
		Example: `
planner layout
planner layout --year 2028 --calendar
planner layout --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			c, err := config.Load(v)
			if err != nil {
				return jo.HandleError(err)
			}
			l := layout.Layout{
				Structure: c.Structure(),
				Year:      c.Year,
				JSON:      jo.JSON,
				Calendar:  lo.Calendar,
			}
			err = l.Do(cmd.Context())
			return jo.HandleError(err)
		},
	}

	options.AddYearArgs(cmd, v)
	options.AddLayoutArgs(cmd, lo)
	options.AddOutputArg(cmd, jo)

	topLevel.AddCommand(cmd)
}
