package initfile

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/oshokin/initgen/internal/domain/buildinfo"
)

// Repository defines persistence operations for the generated init file.
type Repository interface {
	Path() string
	Load(ctx context.Context) (*buildinfo.Info, error)
	Save(ctx context.Context, contents string) error
}

// FileRepository keeps the init file on disk.
type FileRepository struct {
	// path is the filesystem location of the init file.
	path string
}

const (
	// DefaultFileMode is the permission of a newly created init file.
	DefaultFileMode os.FileMode = 0o644

	versionVariable  = "__version__"
	revisionVariable = "__git_sha__"
	platformVariable = "__build_platform__"
)

var (
	// ErrNotFound is returned when the init file does not exist yet.
	ErrNotFound = errors.New("init file not found")
	// ErrMissingField is returned when a metadata assignment is absent from the file.
	ErrMissingField = errors.New("metadata field missing")

	// unescaper reverses the escapes written into single-quoted literals.
	unescaper = strings.NewReplacer(`\\`, `\`, `\'`, `'`, `\n`, "\n", `\r`, "\r")

	// assignmentPattern matches a top-level single-quoted string assignment.
	assignmentPattern = regexp.MustCompile(`^(__[a-z_]+__) = '(.*)'\s*$`)
)

// NewFileRepository creates a repository that reads/writes the init file at the provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Path returns the location of the init file.
func (r *FileRepository) Path() string {
	return r.path
}

// Save overwrites the init file with contents. The parent directory must exist.
func (r *FileRepository) Save(_ context.Context, contents string) error {
	if err := os.WriteFile(r.path, []byte(contents), DefaultFileMode); err != nil {
		return fmt.Errorf("write init file: %w", err)
	}

	return nil
}

// Load reads the metadata fields back from the init file.
func (r *FileRepository) Load(_ context.Context) (*buildinfo.Info, error) {
	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read init file: %w", err)
	}

	return Parse(contents)
}

// Parse extracts the metadata fields from init file contents.
// Only the first assignment of each variable counts.
func Parse(contents []byte) (*buildinfo.Info, error) {
	values := make(map[string]string, 3)
	scanner := bufio.NewScanner(bytes.NewReader(contents))

	for scanner.Scan() {
		match := assignmentPattern.FindStringSubmatch(scanner.Text())
		if match == nil {
			continue
		}

		if _, seen := values[match[1]]; !seen {
			values[match[1]] = unescaper.Replace(match[2])
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan init file: %w", err)
	}

	for _, name := range []string{versionVariable, revisionVariable, platformVariable} {
		if _, ok := values[name]; !ok {
			return nil, fmt.Errorf("%s: %w", name, ErrMissingField)
		}
	}

	return &buildinfo.Info{
		Version:    values[versionVariable],
		RevisionID: values[revisionVariable],
		PlatformID: values[platformVariable],
	}, nil
}
