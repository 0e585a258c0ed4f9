// Package testutil provides shared helpers for the kit's own tests:
// symlink-free temp directories, per-project environment isolation and
// small file helpers.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/appkit/pkg/layout"
)

// TempDir returns a fresh temp directory with symlinks resolved, so
// path equality assertions hold on systems where the temp root itself
// is a symlink.
func TempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

// ProjectEnv is an isolated set of per-project directories wired in
// through the project's environment override variables.
type ProjectEnv struct {
	Name      string
	Root      string
	DataDir   string
	LogDir    string
	CacheDir  string
	ConfigDir string
}

// NewProjectEnv points every directory override variable of the named
// project into a fresh temp root for the duration of the test. The
// directories are not created; the code under test owns that.
func NewProjectEnv(t *testing.T, name string) *ProjectEnv {
	t.Helper()

	root := TempDir(t)
	env := &ProjectEnv{
		Name:      name,
		Root:      root,
		DataDir:   filepath.Join(root, "data"),
		LogDir:    filepath.Join(root, "log"),
		CacheDir:  filepath.Join(root, "cache"),
		ConfigDir: filepath.Join(root, "config"),
	}

	prefix := layout.EnvPrefix(name)
	t.Setenv(prefix+layout.EnvSuffixDataDir, env.DataDir)
	t.Setenv(prefix+layout.EnvSuffixLogDir, env.LogDir)
	t.Setenv(prefix+layout.EnvSuffixCacheDir, env.CacheDir)
	t.Setenv(prefix+layout.EnvSuffixConfigDir, env.ConfigDir)

	return env
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// ReadFile returns the file's content as a string.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
