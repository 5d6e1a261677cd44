package generator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/oshokin/initgen/internal/config"
	"github.com/oshokin/initgen/internal/domain/buildinfo"
	"github.com/oshokin/initgen/internal/logger"
	"github.com/oshokin/initgen/internal/repository/initfile"
	"github.com/oshokin/initgen/internal/service/platform"
	"github.com/oshokin/initgen/internal/service/revision"
)

// Options contains inputs for the generator entry point.
type Options struct {
	// ConfigPath is an optional path to the project settings (defaults to initgen.yaml).
	ConfigPath string
	// Mode selects which metadata is resolved.
	Mode buildinfo.Mode
	// Version overrides the version file when non-empty.
	Version string
	// Revision overrides the git lookup when non-empty, regardless of Mode.
	Revision string
	// VersionFile overrides the configured version file.
	VersionFile string
	// OutputFile overrides the configured init file location.
	OutputFile string
}

// Request is a single generation call.
type Request struct {
	// Mode selects which metadata is resolved.
	Mode buildinfo.Mode
	// Version is used instead of the version file when non-empty.
	Version string
	// Revision is used instead of the git lookup when non-empty.
	Revision string
}

// Resolver returns a metadata value or buildinfo.NotAvailable; it never fails.
type Resolver interface {
	Resolve(ctx context.Context) string
}

// Generator renders and writes the init file.
type Generator struct {
	// versionFile is the plain-text file holding the version.
	versionFile string
	// project is the static metadata of the template.
	project config.Project
	// repo persists the rendered file.
	repo initfile.Repository
	// revisions resolves the short source-control revision.
	revisions Resolver
	// platforms resolves the build platform identifier.
	platforms Resolver
}

// Option configures a Generator.
type Option func(*Generator)

// WithRepository replaces the init file repository.
func WithRepository(repo initfile.Repository) Option {
	return func(g *Generator) {
		if repo != nil {
			g.repo = repo
		}
	}
}

// WithRevisionResolver replaces the git revision lookup.
func WithRevisionResolver(r Resolver) Option {
	return func(g *Generator) {
		if r != nil {
			g.revisions = r
		}
	}
}

// WithPlatformResolver replaces the host platform detection.
func WithPlatformResolver(r Resolver) Option {
	return func(g *Generator) {
		if r != nil {
			g.platforms = r
		}
	}
}

// lineBreaks removes line breaks from version strings.
//
//nolint:gochecknoglobals // Stateless and safe for concurrent use.
var lineBreaks = strings.NewReplacer("\r", "", "\n", "")

var (
	// ErrVersionRequired is returned when neither an explicit version nor a non-blank version file is available.
	ErrVersionRequired = errors.New("version is required")
	// errConfigRequired is returned when New is called without settings.
	errConfigRequired = errors.New("configuration must be provided")
)

// Run loads the settings, applies the overrides and generates the init file.
// It returns the rendered text.
func Run(ctx context.Context, opts *Options) (string, error) {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "initgen")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return "", fmt.Errorf("load settings: %w", err)
	}

	if opts.VersionFile != "" {
		cfg.VersionFile = opts.VersionFile
	}

	if opts.OutputFile != "" {
		cfg.OutputFile = opts.OutputFile
	}

	gen, err := New(cfg)
	if err != nil {
		return "", fmt.Errorf("initialize generator: %w", err)
	}

	request := &Request{
		Mode:     opts.Mode,
		Version:  opts.Version,
		Revision: opts.Revision,
	}

	text, err := gen.Generate(ctx, request)
	if err != nil {
		return "", fmt.Errorf("generator failed: %w", err)
	}

	return text, nil
}

// New creates a Generator for cfg. Without options it queries git in
// cfg.WorkDir, detects the running host and writes to cfg.OutputFile.
func New(cfg *config.Config, opts ...Option) (*Generator, error) {
	if cfg == nil {
		return nil, errConfigRequired
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	g := &Generator{
		versionFile: cfg.VersionFile,
		project:     cfg.Project,
		repo:        initfile.NewFileRepository(cfg.OutputFile),
		revisions:   revision.NewResolver(cfg.WorkDir),
		platforms:   platform.NewResolver(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Generate resolves the metadata, renders the template and overwrites the init file.
// Nothing is written if the version cannot be resolved.
func (g *Generator) Generate(ctx context.Context, req *Request) (string, error) {
	ctx = logger.WithKV(ctx, "mode", req.Mode.String())

	info, err := g.Resolve(ctx, req)
	if err != nil {
		return "", err
	}

	text, err := render(info, g.project)
	if err != nil {
		return "", fmt.Errorf("render init file: %w", err)
	}

	if err = g.repo.Save(ctx, text); err != nil {
		return "", err
	}

	logger.InfoKV(ctx, "Wrote init file",
		"path", g.repo.Path(),
		"version", info.Version,
		"revision", info.RevisionID,
		"platform", info.PlatformID,
	)

	return text, nil
}

// Resolve computes the metadata triple for req without writing anything.
func (g *Generator) Resolve(ctx context.Context, req *Request) (*buildinfo.Info, error) {
	version := lineBreaks.Replace(req.Version)
	if strings.TrimSpace(version) == "" {
		var err error

		if version, err = readVersion(g.versionFile); err != nil {
			return nil, err
		}
	}

	rev := req.Revision
	if strings.TrimSpace(rev) == "" && req.Mode.ResolvesRevision() {
		rev = g.revisions.Resolve(ctx)
	}

	var platformID string
	if req.Mode.ResolvesPlatform() {
		platformID = g.platforms.Resolve(ctx)
	}

	info := buildinfo.NewInfo(version, rev, platformID)

	if req.Mode.ResolvesRevision() && !info.HasRevision() {
		logger.DebugKV(ctx, "Revision unavailable, the init file will ask git at import time")
	}

	if req.Mode.ResolvesPlatform() && !info.HasPlatform() {
		logger.DebugKV(ctx, "Platform unavailable")
	}

	return info, nil
}

// readVersion returns the contents of the version file with line breaks removed.
func readVersion(path string) (string, error) {
	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("read version file: %w", err)
	}

	version := lineBreaks.Replace(string(contents))
	if strings.TrimSpace(version) == "" {
		return "", fmt.Errorf("%s is blank: %w", path, ErrVersionRequired)
	}

	return version, nil
}
