package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/appkit/pkg/testutil"
)

func TestConfigPathWritesNothing(t *testing.T) {
	env := testutil.NewProjectEnv(t, "pathproj")

	out, err := executeCommand(t, "config", "path", "--project", "pathproj")
	require.NoError(t, err)

	expected := filepath.Join(env.ConfigDir, "pathproj_config.yml")
	assert.Equal(t, expected+"\n", out)

	_, statErr := os.Stat(env.ConfigDir)
	assert.True(t, os.IsNotExist(statErr), "config path must not create anything")
}

func TestConfigShowPrintsStoredFile(t *testing.T) {
	env := testutil.NewProjectEnv(t, "showproj")

	out, err := executeCommand(t, "config", "show", "--project", "showproj")
	require.NoError(t, err)

	assert.Contains(t, out, "__version__:")
	assert.Contains(t, out, "data_path: "+env.DataDir)
	assert.Contains(t, out, "log_path: "+env.LogDir)
	assert.Contains(t, out, "cache_path: "+env.CacheDir)
}

func TestConfigShowKeepsExistingValues(t *testing.T) {
	env := testutil.NewProjectEnv(t, "keepproj")

	configFile := filepath.Join(env.ConfigDir, "keepproj_config.yml")
	testutil.WriteFile(t, configFile,
		"__version__: \"0.1\"\ndata_path: /srv/keepproj\n")

	out, err := executeCommand(t, "config", "show", "--project", "keepproj")
	require.NoError(t, err)
	assert.Contains(t, out, "data_path: /srv/keepproj")
}

func TestConfigResetRecreatesDefaults(t *testing.T) {
	env := testutil.NewProjectEnv(t, "resetproj")

	_, err := executeCommand(t, "dirs", "--project", "resetproj", "--create")
	require.NoError(t, err)

	configFile := filepath.Join(env.ConfigDir, "resetproj_config.yml")
	testutil.WriteFile(t, configFile,
		"__version__: \"0.1\"\ndata_path: /moved/elsewhere\n")

	out, err := executeCommand(t, "config", "reset", "--project", "resetproj")
	require.NoError(t, err)

	assert.Contains(t, out, "Config for project 'resetproj' reset to "+configFile)
	assert.NotContains(t, out, "corrupted")

	content := testutil.ReadFile(t, configFile)
	assert.NotContains(t, content, "/moved/elsewhere")
	assert.Contains(t, content, "data_path: "+env.DataDir)
}

func TestConfigResetWithoutExistingFile(t *testing.T) {
	env := testutil.NewProjectEnv(t, "freshreset")

	out, err := executeCommand(t, "config", "reset", "--project", "freshreset")
	require.NoError(t, err)

	assert.Contains(t, out, "Config for project 'freshreset' reset to")
	assert.FileExists(t, filepath.Join(env.ConfigDir, "freshreset_config.yml"))
}
