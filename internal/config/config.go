package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the paths and project metadata used to render the init file.
type Config struct {
	// VersionFile is the plain-text file holding the version string.
	VersionFile string `yaml:"version_file"`
	// OutputFile is the generated init file, overwritten on every run.
	OutputFile string `yaml:"output_file"`
	// WorkDir is the directory where source control is queried for the revision.
	WorkDir string `yaml:"work_dir"`
	// Project is the static metadata written next to the resolved fields.
	Project Project `yaml:"project"`
}

// Project is the static part of the generated file.
type Project struct {
	// Name is used in the header comment.
	Name string `yaml:"name"`
	// Package is the import root used by the trailing import lines.
	Package string `yaml:"package"`
	// Copyright is the copyright line of the header comment.
	Copyright string `yaml:"copyright"`
	// LicenseNotice is the distribution line of the header comment.
	LicenseNotice string `yaml:"license_notice"`
	// License is written to __license__.
	License string `yaml:"license"`
	// Author is written to __author__.
	Author string `yaml:"author"`
	// AuthorEmail is written to __author_email__.
	AuthorEmail string `yaml:"author_email"`
	// MaintainerEmail is written to __maintainer_email__.
	MaintainerEmail string `yaml:"maintainer_email"`
	// UsersEmail is written to __users_email__.
	UsersEmail string `yaml:"users_email"`
	// URL is the project home page.
	URL string `yaml:"url"`
	// DownloadURL is the release download page.
	DownloadURL string `yaml:"download_url"`
	// Components is the list exported through __all__.
	Components []string `yaml:"components"`
}

const (
	// DefaultConfigFilename is the default filename for project settings.
	DefaultConfigFilename = "initgen.yaml"

	// DefaultVersionFilename is the default plain-text version file.
	DefaultVersionFilename = "version"

	// DefaultOutputFilename is the default generated init file.
	DefaultOutputFilename = "psychopy/__init__.py"

	// DefaultWorkDir is the default directory for source-control queries.
	DefaultWorkDir = "."

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errEmptyComponent is returned when the component list holds a blank name.
	errEmptyComponent = errors.New("component name must not be empty")
)

// Default returns the settings for the PsychoPy package layout.
func Default() *Config {
	return &Config{
		VersionFile: DefaultVersionFilename,
		OutputFile:  DefaultOutputFilename,
		WorkDir:     DefaultWorkDir,
		Project:     defaultProject(),
	}
}

func defaultProject() Project {
	return Project{
		Name:            "PsychoPy",
		Package:         "psychopy",
		Copyright:       "Copyright (C) 2015 Jonathan Peirce",
		LicenseNotice:   "Distributed under the terms of the GNU General Public License (GPL).",
		License:         "GNU GPLv3 (or more recent equivalent)",
		Author:          "Jonathan Peirce",
		AuthorEmail:     "jon@peirce.org.uk",
		MaintainerEmail: "psychopy-dev@googlegroups.com",
		UsersEmail:      "psychopy-users@googlegroups.com",
		URL:             "http://www.psychopy.org",
		DownloadURL:     "https://github.com/psychopy/psychopy/releases/",
		Components: []string{
			"gui", "misc", "visual", "core",
			"event", "data", "sound", "microphone",
		},
	}
}

// Load reads configuration from the provided path and validates it.
// When path is empty the default filename is tried; if that file does not
// exist the defaults are returned. An explicitly named file must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes Config to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate fills empty paths with defaults and checks the project metadata.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.VersionFile == "" {
		cfg.VersionFile = DefaultVersionFilename
	}

	if cfg.OutputFile == "" {
		cfg.OutputFile = DefaultOutputFilename
	}

	if cfg.WorkDir == "" {
		cfg.WorkDir = DefaultWorkDir
	}

	for i, name := range cfg.Project.Components {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("component #%d: %w", i, errEmptyComponent)
		}
	}

	for field, value := range map[string]string{
		"url":          cfg.Project.URL,
		"download_url": cfg.Project.DownloadURL,
	} {
		if value == "" {
			continue
		}

		if _, err := url.ParseRequestURI(value); err != nil {
			return fmt.Errorf("invalid %s: %w", field, err)
		}
	}

	return nil
}
