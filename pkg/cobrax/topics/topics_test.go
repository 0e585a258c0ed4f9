package topics_test

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/appkit/pkg/cobrax/topics"
)

func topicFS() fstest.MapFS {
	return fstest.MapFS{
		"dry-run.txt":      &fstest.MapFile{Data: []byte("Information about dry-run mode")},
		"architecture.md":  &fstest.MapFile{Data: []byte("# Architecture\n\nSystem architecture details")},
		"config.txxt":      &fstest.MapFile{Data: []byte("Configuration Guide\n==================")},
		"ignore.json":      &fstest.MapFile{Data: []byte("This should be ignored")},
		"option-force.txt": &fstest.MapFile{Data: []byte("Force mode help")},
	}
}

func TestNewManagerDefaultExtensions(t *testing.T) {
	m, err := topics.NewManager(topicFS())
	require.NoError(t, err)

	tests := []struct {
		name    string
		exists  bool
		content string
	}{
		{"dry-run", true, "Information about dry-run mode"},
		{"architecture", true, "# Architecture\n\nSystem architecture details"},
		{"config", false, ""},
		{"ignore", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topic, exists := m.Get(tt.name)
			assert.Equal(t, tt.exists, exists)
			if exists {
				assert.Equal(t, tt.content, topic.Content)
			}
		})
	}
}

func TestNewManagerCustomExtensions(t *testing.T) {
	m, err := topics.NewManagerWithOptions(topicFS(), topics.Options{
		Extensions: []string{".txt", ".md", ".txxt"},
	})
	require.NoError(t, err)

	topic, exists := m.Get("config")
	require.True(t, exists)
	assert.Equal(t, "Configuration Guide\n==================", topic.Content)

	_, exists = m.Get("ignore")
	assert.False(t, exists)
}

func TestGetFlagStyleLookups(t *testing.T) {
	m, err := topics.NewManager(fstest.MapFS{
		"option-dry-run.txt": &fstest.MapFile{Data: []byte("Dry run help")},
		"option-verbose.txt": &fstest.MapFile{Data: []byte("Verbose help")},
		"architecture.txt":   &fstest.MapFile{Data: []byte("Architecture help")},
	})
	require.NoError(t, err)

	tests := []struct {
		input    string
		expected string
		exists   bool
	}{
		{"architecture", "architecture", true},
		{"option-dry-run", "option-dry-run", true},
		{"dry-run", "option-dry-run", true},
		{"--dry-run", "option-dry-run", true},
		{"-dry-run", "option-dry-run", true},
		{"verbose", "option-verbose", true},
		{"--verbose", "option-verbose", true},
		{"-v", "", false},
		{"nonexistent", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			topic, exists := m.Get(tt.input)
			assert.Equal(t, tt.exists, exists)
			if exists {
				assert.Equal(t, tt.expected, topic.Name)
			}
		})
	}
}

func TestTopicsSorted(t *testing.T) {
	m, err := topics.NewManager(fstest.MapFS{
		"zebra.txt": &fstest.MapFile{Data: []byte("z")},
		"alpha.txt": &fstest.MapFile{Data: []byte("a")},
		"mango.txt": &fstest.MapFile{Data: []byte("m")},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "mango", "zebra"}, m.Topics())
}

func TestNilFilesystem(t *testing.T) {
	m, err := topics.NewManager(nil)
	require.NoError(t, err)
	assert.Empty(t, m.Topics())
}

func TestSubdirectoryTopics(t *testing.T) {
	m, err := topics.NewManager(fstest.MapFS{
		"advanced/plugins.txt": &fstest.MapFile{Data: []byte("Plugin help")},
	})
	require.NoError(t, err)

	topic, exists := m.Get("plugins")
	require.True(t, exists)
	assert.Equal(t, "Plugin help", topic.Content)
	assert.Equal(t, "advanced/plugins.txt", topic.Path)
}

func newTestRoot() *cobra.Command {
	root := &cobra.Command{
		Use:   "testapp",
		Short: "Test application",
	}
	root.AddCommand(&cobra.Command{
		Use:   "deploy",
		Short: "Deploy something",
		Run:   func(cmd *cobra.Command, args []string) {},
	})
	return root
}

func execute(t *testing.T, root *cobra.Command, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return buf.String()
}

func TestInitializeRegistersCommands(t *testing.T) {
	root := newTestRoot()
	require.NoError(t, topics.Initialize(root, topicFS()))

	helpCmd, _, err := root.Find([]string{"help"})
	require.NoError(t, err)
	assert.Equal(t, "help", helpCmd.Name())
	assert.Equal(t, "help [command or topic]", helpCmd.Use)

	topicsCmd, _, err := root.Find([]string{"topics"})
	require.NoError(t, err)
	assert.Equal(t, "topics", topicsCmd.Name())
}

func TestHelpCommandRendersTopic(t *testing.T) {
	root := newTestRoot()
	require.NoError(t, topics.Initialize(root, topicFS()))

	out := execute(t, root, "help", "dry-run")
	assert.Contains(t, out, "Information about dry-run mode")
}

func TestHelpCommandPrefersCommands(t *testing.T) {
	root := newTestRoot()
	fsys := topicFS()
	fsys["deploy.txt"] = &fstest.MapFile{Data: []byte("topic that shadows a command")}
	require.NoError(t, topics.Initialize(root, fsys))

	out := execute(t, root, "help", "deploy")
	assert.Contains(t, out, "Deploy something")
	assert.NotContains(t, out, "topic that shadows a command")
}

func TestHelpCommandFlagLookup(t *testing.T) {
	root := newTestRoot()
	require.NoError(t, topics.Initialize(root, topicFS()))

	out := execute(t, root, "help", "--force")
	assert.Contains(t, out, "Force mode help")
}

func TestTopicsCommandLists(t *testing.T) {
	root := newTestRoot()
	require.NoError(t, topics.Initialize(root, topicFS()))

	out := execute(t, root, "topics")
	assert.Contains(t, out, "Available help topics:")
	assert.Contains(t, out, "dry-run")
	assert.Contains(t, out, "architecture")
	assert.Contains(t, out, "--force", "option topics list in flag form")
	assert.Contains(t, out, "Use 'testapp help <topic>'")
}

func TestTopicsCommandShowsTopic(t *testing.T) {
	root := newTestRoot()
	require.NoError(t, topics.Initialize(root, topicFS()))

	out := execute(t, root, "topics", "dry-run")
	assert.Contains(t, out, "Information about dry-run mode")
}

func TestTopicsCommandUnknown(t *testing.T) {
	root := newTestRoot()
	require.NoError(t, topics.Initialize(root, topicFS()))

	out := execute(t, root, "topics", "nope")
	assert.Contains(t, out, `Unknown help topic "nope"`)
	assert.Contains(t, out, "Available help topics:")
}

func TestTopicsCommandEmpty(t *testing.T) {
	root := newTestRoot()
	require.NoError(t, topics.Initialize(root, nil))

	out := execute(t, root, "topics")
	assert.Contains(t, out, "No help topics available.")
}

func TestPlainRenderer(t *testing.T) {
	r := &topics.PlainRenderer{}
	assert.Equal(t, "raw content", r.Render("raw content", ".md"))
	assert.Equal(t, "raw content", r.Render("raw content", ".txt"))
}

func TestGlamourRendererPassesThroughNonMarkdown(t *testing.T) {
	r := topics.NewGlamourRenderer()
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
}

func TestGlamourRendererRendersMarkdown(t *testing.T) {
	r := topics.NewGlamourRenderer()
	r.Width = 80

	out := r.Render("# Title\n\nBody text here.", ".md")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "Body text here.")
}

func TestManagerWithGlamourRenderer(t *testing.T) {
	m, err := topics.NewManagerWithOptions(topicFS(), topics.Options{
		Renderer: topics.NewGlamourRenderer(),
	})
	require.NoError(t, err)

	root := newTestRoot()
	m.Initialize(root)

	out := execute(t, root, "help", "architecture")
	assert.Contains(t, out, "Architecture")
	// The txt topic bypasses markdown rendering entirely
	out = execute(t, root, "help", "dry-run")
	assert.True(t, strings.Contains(out, "Information about dry-run mode"))
}
