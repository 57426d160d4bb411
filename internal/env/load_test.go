package env

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	src := `
# viewer settings
VIEWER_SCENE=display
export VIEWER_ASSETS="../assets"
VIEWER_TITLE='My Viewer'
=nokey
garbage
`
	vars, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"VIEWER_SCENE":  "display",
		"VIEWER_ASSETS": "../assets",
		"VIEWER_TITLE":  "My Viewer",
	}, vars)
}

func TestLoadKeepsExistingVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("VIEWER_TEST_A=file\nVIEWER_TEST_B=file\n"), 0o644))
	t.Setenv("VIEWER_TEST_A", "shell")
	t.Setenv("VIEWER_TEST_B", "")
	os.Unsetenv("VIEWER_TEST_B")

	require.NoError(t, Load(path))

	assert.Equal(t, "shell", os.Getenv("VIEWER_TEST_A"))
	assert.Equal(t, "file", os.Getenv("VIEWER_TEST_B"))
}

func TestLoadMissingFile(t *testing.T) {
	assert.NoError(t, Load(filepath.Join(t.TempDir(), ".env")))
}
