package generator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/initgen/internal/config"
	"github.com/oshokin/initgen/internal/domain/buildinfo"
)

// TestPyString escapes quotes and backslashes.
func TestPyString(t *testing.T) {
	t.Parallel()

	require.Equal(t, `'1.90.0'`, pyString("1.90.0"))
	require.Equal(t, `'O\'Brien'`, pyString("O'Brien"))
	require.Equal(t, `'C:\\build'`, pyString(`C:\build`))
	require.Equal(t, `'line\none\r'`, pyString("line\none\r"))
}

// TestPyList wraps names four per line.
func TestPyList(t *testing.T) {
	t.Parallel()

	require.Equal(t, "[]", pyList(nil))
	require.Equal(t, `["core"]`, pyList([]string{"core"}))
	require.Equal(t,
		"[\"a\", \"b\", \"c\", \"d\",\n           \"e\"]",
		pyList([]string{"a", "b", "c", "d", "e"}))
}

// TestRender_UsesProjectMetadata substitutes the configured project fields.
func TestRender_UsesProjectMetadata(t *testing.T) {
	t.Parallel()

	project := config.Default().Project
	project.Name = "Stimuli"
	project.Package = "stimuli"
	project.Author = "Ada Lovelace"
	project.Components = []string{"core"}

	text, err := render(buildinfo.NewInfo("0.1.0", "", ""), project)
	require.NoError(t, err)
	require.Contains(t, text, "# Part of the Stimuli library\n")
	require.Contains(t, text, "__author__ = 'Ada Lovelace'\n")
	require.Contains(t, text, "__all__ = [\"core\"]\n")
	require.Contains(t, text, "from stimuli.preferences import prefs\n")
	require.Contains(t, text, "if __git_sha__ == 'n/a':\n")
}
