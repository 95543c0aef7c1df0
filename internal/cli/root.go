package cli

import (
	"github.com/spf13/cobra"

	"github.com/smartsdlc/blogimages/pkg/buildinfo"
)

// newRoot builds a root command with the flags and behavior both tools share:
// version output, quiet usage on errors and a --verbose switch that lowers
// the log level to debug before the command runs.
func (c *CLI) newRoot(use, short, long string) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           use,
		Short:         short,
		Long:          long,
		Version:       buildinfo.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	return root
}
