package options

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tableflip.dev/planner/pkg/config"
)

// GenerateOptions holds flags that are not settings.
type GenerateOptions struct {
	Quiet bool
	Watch bool
}

// AddYearArgs registers the flags that shape the page structure and binds
// them to v, so a set flag overrides the config file and environment.
func AddYearArgs(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().Int("year", 0,
		"Calendar year to lay out.")
	cmd.Flags().Int("pages-per-day", 0,
		"Pages per daily log, 1 or 2.")
	cmd.Flags().Bool("leap-year", false,
		"Lay out February 29 when the year has one.")
	_ = v.BindPFlag(config.KeyYear, cmd.Flags().Lookup("year"))
	_ = v.BindPFlag(config.KeyPagesPerDay, cmd.Flags().Lookup("pages-per-day"))
	_ = v.BindPFlag(config.KeyLeapYear, cmd.Flags().Lookup("leap-year"))
}

func AddGenerateArgs(cmd *cobra.Command, v *viper.Viper, o *GenerateOptions) {
	AddYearArgs(cmd, v)
	cmd.Flags().StringP("output", "o", "",
		"Path of the PDF to write.")
	cmd.Flags().String("title", "",
		"Title set on the cover, one word per line.")
	cmd.Flags().BoolVarP(&o.Quiet, "quiet", "q", false,
		"Do not report progress.")
	cmd.Flags().BoolVarP(&o.Watch, "watch", "w", false,
		"Regenerate whenever the config file or a font file changes.")
	_ = v.BindPFlag(config.KeyOutput, cmd.Flags().Lookup("output"))
	_ = v.BindPFlag(config.KeyTitle, cmd.Flags().Lookup("title"))
}
