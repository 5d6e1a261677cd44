package generator

import (
	"strings"
	"text/template"

	"github.com/oshokin/initgen/internal/config"
	"github.com/oshokin/initgen/internal/domain/buildinfo"
)

// componentsPerLine is how many names of __all__ are written on one line.
const componentsPerLine = 4

// initTemplate is the generated init module. The block guarded by
// `if __git_sha__ == 'n/a'` is emitted verbatim and only runs inside the
// consuming package.
const initTemplate = `# Part of the {{.Project.Name}} library
# {{.Project.Copyright}}
# {{.Project.LicenseNotice}}

# --------------------------------------------------------------------------
# This file is automatically generated during build (do not edit directly).
# --------------------------------------------------------------------------

import os
import sys

# version info for {{.Project.Name}}
__version__ = {{pystr .Info.Version}}
__license__ = {{pystr .Project.License}}
__author__ = {{pystr .Project.Author}}
__author_email__ = {{pystr .Project.AuthorEmail}}
__maintainer_email__ = {{pystr .Project.MaintainerEmail}}
__users_email__ = {{pystr .Project.UsersEmail}}
__url__ = {{pystr .Project.URL}}
__downloadUrl__ = {{pystr .Project.DownloadURL}}
__git_sha__ = {{pystr .Info.RevisionID}}
__build_platform__ = {{pystr .Info.PlatformID}}

__all__ = {{pylist .Project.Components}}

# for developers the following allows access to the current git sha from
# their repository
if __git_sha__ == 'n/a':
    import subprocess
    # see if we're in a git repo and fetch from there
    try:
        thisFileLoc = os.path.split(__file__)[0]
        output = subprocess.check_output(['git', 'rev-parse', '--short', 'HEAD'],
                                         cwd=thisFileLoc, stderr=subprocess.PIPE)
    except Exception:
        output = False
    if output:
        __git_sha__ = output.strip()  # remove final linefeed

# update preferences and the user paths
from {{.Project.Package}}.preferences import prefs
for pathName in prefs.general['paths']:
    sys.path.append(pathName)

from {{.Project.Package}}.tools.versionchooser import useVersion, ensureMinimal
`

// templateData is the value the init template is executed with.
type templateData struct {
	Info    *buildinfo.Info
	Project config.Project
}

//nolint:gochecknoglobals // Parsed once; the template text is a constant.
var initFile = template.Must(template.New("init").Funcs(template.FuncMap{
	"pystr":  pyString,
	"pylist": pyList,
}).Parse(initTemplate))

// pyEscaper escapes what cannot appear raw inside a single-quoted Python literal.
//
//nolint:gochecknoglobals // Stateless and safe for concurrent use.
var pyEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)

// pyString renders s as a single-quoted Python string literal.
func pyString(s string) string {
	return "'" + pyEscaper.Replace(s) + "'"
}

// pyList renders names as a double-quoted Python list, wrapping every
// componentsPerLine names and aligning continuation lines after the bracket.
func pyList(names []string) string {
	const indent = "           " // len(`__all__ = [`)

	var builder strings.Builder

	builder.WriteString("[")

	for i, name := range names {
		if i > 0 {
			builder.WriteString(",")

			if i%componentsPerLine == 0 {
				builder.WriteString("\n" + indent)
			} else {
				builder.WriteString(" ")
			}
		}

		builder.WriteString(`"` + strings.ReplaceAll(name, `"`, `\"`) + `"`)
	}

	builder.WriteString("]")

	return builder.String()
}

// render executes the init template.
func render(info *buildinfo.Info, project config.Project) (string, error) {
	var builder strings.Builder

	if err := initFile.Execute(&builder, templateData{Info: info, Project: project}); err != nil {
		return "", err
	}

	return builder.String(), nil
}
