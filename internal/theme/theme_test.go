package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_MergesOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "theme.json"), []byte(`{"errorColor":"9"}`), 0o644))

	th := Load(dir, "light")
	require.Equal(t, "9", th.ErrorColor)
	require.Equal(t, lightTheme().SuccessColor, th.SuccessColor)
}

func TestLoad_FallsBackOnBadFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "theme.json"), []byte(`nope`), 0o644))
	require.Equal(t, DefaultTheme(), Load(dir, "dark"))
	require.Equal(t, DefaultTheme(), Load("", "unknown"))
}
