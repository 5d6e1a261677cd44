package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/initgen/internal/service/inspector"
)

// inspectCmd prints the metadata of an already generated init file.
var inspectCmd = &cobra.Command{
	Use:   "inspect [init-file]",
	Short: "Show version, revision and platform recorded in a generated init file.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
		defer stop()

		options := &inspector.Options{
			ConfigPath: configPath,
			Out:        cmd.OutOrStdout(),
		}

		if len(args) > 0 {
			options.Path = args[0]
		}

		return inspector.Run(ctx, options)
	},
}
