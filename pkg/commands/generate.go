package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/config"
	"tableflip.dev/planner/pkg/progress"
	"tableflip.dev/planner/pkg/runner/generate"
)

func addGenerate(topLevel *cobra.Command) {
	v := config.New()
	o := &options.GenerateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the planner PDF.",
		Long: base.Wrap80("Write the planner PDF. Settings come from flags, then PLANNER_* " +
			"environment variables, then .planner.yaml in $PLANNER_CONFIG_PATH or the current directory."),
		Example: `
planner generate
planner generate --year 2027 --output ~/planners/2027.pdf
planner generate --pages-per-day 2
planner generate --watch
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			run := func(ctx context.Context, c *config.Config) error {
				g := generate.Generate{
					Config:   c,
					Reporter: progress.NewReporter(os.Stderr),
				}
				if o.Quiet {
					g.Reporter = progress.Discard{}
				}
				return g.Do(ctx)
			}

			if o.Watch {
				w := generate.Watch{
					Load: func() (*config.Config, error) { return config.Load(v) },
					Run:  run,
				}
				return oo.HandleError(w.Do(cmd.Context()))
			}

			c, err := config.Load(v)
			if err != nil {
				return oo.HandleError(err)
			}
			err = run(cmd.Context(), c)
			return oo.HandleError(err)
		},
	}

	options.AddGenerateArgs(cmd, v, o)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
