package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/initgen/internal/config"
	"github.com/oshokin/initgen/internal/domain/buildinfo"
	"github.com/oshokin/initgen/internal/logger"
	"github.com/oshokin/initgen/internal/service/generator"
	"github.com/oshokin/initgen/internal/version"
)

// generateFlags are the inputs shared by the root command and `generate`.
type generateFlags struct {
	dist        string
	version     string
	revision    string
	versionFile string
	outputFile  string
	print       bool
}

var (
	// configPath to the project settings YAML file.
	configPath string
	// logLevel is the minimum level of log messages.
	logLevel string
	// generation holds the flag values of the generate commands.
	generation generateFlags

	errUnknownLogLevel = errors.New("unknown log level")

	// rootCmd writes the init file with mode "none" unless flags say otherwise.
	rootCmd = &cobra.Command{
		Use:   "initgen",
		Short: "Write the package init file with version, git revision and build platform.",
		Long: `Writes the package init module during a build.

The version is read from the version file (or --set-version). With --dist sdist
the short git revision is looked up; with --dist bdist the build platform is
detected as well. Anything not resolved is written as 'n/a'.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: applyLogLevel,
		RunE:              runGenerate,
	}

	// generateCmd is the explicit spelling of the root action.
	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Write the package init file (same as running initgen without a subcommand).",
		Args:  cobra.NoArgs,
		RunE:  runGenerate,
	}
)

// Execute runs the initgen CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"path to project settings (default "+config.DefaultConfigFilename+" if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	bindGenerateFlags(rootCmd)
	bindGenerateFlags(generateCmd)

	rootCmd.AddCommand(generateCmd, inspectCmd, newConfigCommand())
}

// bindGenerateFlags registers the generation flags on command.
func bindGenerateFlags(command *cobra.Command) {
	flags := command.Flags()
	flags.StringVarP(&generation.dist, "dist", "d", "none", "distribution mode: none, sdist or bdist")
	flags.StringVar(&generation.version, "set-version", "", "version to write instead of reading the version file")
	flags.StringVar(&generation.revision, "sha", "", "revision to write instead of asking git")
	flags.StringVar(&generation.versionFile, "version-file", "", "override the configured version file")
	flags.StringVarP(&generation.outputFile, "output", "o", "", "override the configured init file")
	flags.BoolVar(&generation.print, "print", false, "print the generated file to stdout")
}

// applyLogLevel sets the global log level from --log-level.
func applyLogLevel(_ *cobra.Command, _ []string) error {
	level, ok := logger.ParseLogLevel(logLevel)
	if !ok {
		return fmt.Errorf("%q: %w", logLevel, errUnknownLogLevel)
	}

	logger.SetLevel(level)

	return nil
}

// runGenerate is the action of the root and generate commands.
func runGenerate(cmd *cobra.Command, _ []string) error {
	// Setup graceful shutdown handling.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	mode, err := buildinfo.ParseMode(generation.dist)
	if err != nil {
		return err
	}

	options := &generator.Options{
		ConfigPath:  configPath,
		Mode:        mode,
		Version:     generation.version,
		Revision:    generation.revision,
		VersionFile: generation.versionFile,
		OutputFile:  generation.outputFile,
	}

	text, err := generator.Run(ctx, options)
	if err != nil {
		return err
	}

	if generation.print {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), text)
	}

	return nil
}
