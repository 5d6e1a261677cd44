// Package config describes the project whose init file is generated and
// provides helpers to load, validate and save that description in YAML format.
//
// A missing configuration file is not an error: the defaults describe the
// PsychoPy package layout, so a bare `initgen` run works from the repository root.
package config
