package platform

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// osReleasePaths are tried in order, as described in os-release(5).
//
//nolint:gochecknoglobals // Read-only list of well-known paths.
var osReleasePaths = []string{"/etc/os-release", "/usr/lib/os-release"}

// ParseOSRelease reads KEY=value lines in os-release(5) format.
// Blank lines and comments are skipped; values may be single or double quoted.
func ParseOSRelease(r io.Reader) (map[string]string, error) {
	fields := make(map[string]string)
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		fields[strings.TrimSpace(key)] = unquote(strings.TrimSpace(value))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan os-release: %w", err)
	}

	return fields, nil
}

// DistributionFromOSRelease maps os-release fields to a Distribution.
func DistributionFromOSRelease(fields map[string]string) Distribution {
	name := fields["NAME"]
	if name == "" {
		name = fields["ID"]
	}

	return Distribution{
		Name:     name,
		Version:  fields["VERSION_ID"],
		Codename: fields["VERSION_CODENAME"],
	}
}

// readDistribution loads the first available os-release file.
// A host without one yields an empty Distribution and no error.
func readDistribution(paths []string) (Distribution, error) {
	for _, path := range paths {
		file, err := os.Open(path) //nolint:gosec // Paths are fixed well-known locations.
		if errors.Is(err, os.ErrNotExist) {
			continue
		}

		if err != nil {
			return Distribution{}, fmt.Errorf("open %s: %w", path, err)
		}

		fields, err := ParseOSRelease(file)
		_ = file.Close()

		if err != nil {
			return Distribution{}, err
		}

		return DistributionFromOSRelease(fields), nil
	}

	return Distribution{}, nil
}

func unquote(value string) string {
	if len(value) < 2 {
		return value
	}

	switch value[0] {
	case '"':
		if unquoted, err := strconv.Unquote(value); err == nil {
			return unquoted
		}
	case '\'':
		if value[len(value)-1] == '\'' {
			return value[1 : len(value)-1]
		}
	}

	return value
}
