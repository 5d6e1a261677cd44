package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oshokin/initgen/internal/config"
)

// newConfigCommand returns the `config` command group.
func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the project settings file.",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write the default project settings to " + config.DefaultConfigFilename + " or the given path.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultConfigFilename
			if len(args) > 0 {
				path = args[0]
			}

			if err := config.Save(path, config.Default()); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)

			return nil
		},
	})

	return configCmd
}
