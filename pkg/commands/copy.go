package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/runner/footer"
)

func addCopy(topLevel *cobra.Command) {
	co := &options.CopyOptions{}

	validArgs := make([]string, 0, len(planner.FooterKinds()))
	for _, k := range planner.FooterKinds() {
		validArgs = append(validArgs, k.String())
	}

	long := strings.Builder{}
	long.WriteString("Print the copy at the bottom of each page, emphasis in italics.\n\n")
	long.WriteString("Kinds:\n")
	for _, a := range validArgs {
		long.WriteString("  " + a + "\n")
	}

	var kinds []planner.FooterKind
	cmd := &cobra.Command{
		Use:   "copy [kind...]",
		Short: "Print page footer copy",
		Long:  long.String(),
		Example: `
planner copy
planner copy daily-log weekly-reflection --width 60
`,
		ValidArgs: validArgs,
		Args: func(cmd *cobra.Command, args []string) error {
			kinds = kinds[:0]
			for _, a := range args {
				k, ok := planner.ParseFooterKind(a)
				if !ok {
					return fmt.Errorf("unknown kind %q, one of: %s", a, strings.Join(validArgs, ", "))
				}
				kinds = append(kinds, k)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := footer.Copy{
				Kinds: kinds,
				Width: co.Width,
			}
			err := c.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddCopyArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
