package inspector

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/oshokin/initgen/internal/config"
	"github.com/oshokin/initgen/internal/domain/buildinfo"
	"github.com/oshokin/initgen/internal/logger"
	"github.com/oshokin/initgen/internal/repository/initfile"
)

// Options contains inputs for the inspector entry point.
type Options struct {
	// ConfigPath is an optional path to the project settings.
	ConfigPath string
	// Path overrides the configured init file location.
	Path string
	// Out receives the table; defaults to stdout.
	Out io.Writer
}

// Run loads the init file and writes its metadata table to opts.Out.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "initgen-inspect")

	path := opts.Path
	if path == "" {
		cfg, err := config.Load(opts.ConfigPath)
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}

		path = cfg.OutputFile
	}

	repo := initfile.NewFileRepository(path)

	info, err := repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("inspect %s: %w", repo.Path(), err)
	}

	logger.DebugKV(ctx, "Loaded init file", "path", repo.Path())

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	Render(out, repo.Path(), info)

	return nil
}

// Render writes info as a two-column table.
func Render(w io.Writer, path string, info *buildinfo.Info) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("%s", path)
	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRow(table.Row{"__version__", info.Version})
	t.AppendRow(table.Row{"__git_sha__", info.RevisionID})
	t.AppendRow(table.Row{"__build_platform__", info.PlatformID})
	t.SetStyle(table.StyleRounded)
	t.Render()
}
