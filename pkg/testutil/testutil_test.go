package testutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/appkit/pkg/layout"
	"github.com/arthur-debert/appkit/pkg/testutil"
)

func TestTempDirResolved(t *testing.T) {
	dir := testutil.TempDir(t)

	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, resolved)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewProjectEnv(t *testing.T) {
	env := testutil.NewProjectEnv(t, "envproj")

	assert.Equal(t, "envproj", env.Name)
	assert.Equal(t, filepath.Join(env.Root, "data"), env.DataDir)

	assert.Equal(t, env.DataDir, os.Getenv("ENVPROJ_DATA_DIR"))
	assert.Equal(t, env.LogDir, os.Getenv("ENVPROJ_LOG_DIR"))
	assert.Equal(t, env.CacheDir, os.Getenv("ENVPROJ_CACHE_DIR"))
	assert.Equal(t, env.ConfigDir, os.Getenv("ENVPROJ_CONFIG_DIR"))

	// The overrides flow through to path resolution
	paths := layout.UserPathsFor("envproj")
	assert.Equal(t, env.DataDir, paths.DataDir)
	assert.Equal(t, env.ConfigDir, paths.ConfigDir)
}

func TestWriteAndReadFile(t *testing.T) {
	path := filepath.Join(testutil.TempDir(t), "nested", "file.txt")

	testutil.WriteFile(t, path, "hello\n")
	assert.Equal(t, "hello\n", testutil.ReadFile(t, path))
}
