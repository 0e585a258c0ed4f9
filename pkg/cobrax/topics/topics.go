// Package topics adds a topic-based help system to cobra applications.
// Topics are text or markdown files in an fs.FS (usually an embed.FS),
// surfaced through a `topics` command and through `help <topic>`, so a
// CLI documents itself from files shipped inside the binary.
package topics

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/appkit/pkg/errors"
)

// Topic is one help entry loaded from the topic filesystem.
type Topic struct {
	// Name is the file name without its extension.
	Name string

	// Path is the file's location inside the source filesystem.
	Path string

	// Content is the raw file content.
	Content string
}

// Options configures a Manager.
type Options struct {
	// Extensions lists the file extensions treated as topics.
	// Empty means ".txt" and ".md".
	Extensions []string

	// Renderer formats topic content. Nil means PlainRenderer.
	Renderer Renderer
}

// Manager holds the scanned topics and wires them into a cobra tree.
type Manager struct {
	fsys         fs.FS
	topics       map[string]*Topic
	extensions   []string
	renderer     Renderer
	originalHelp func(*cobra.Command, []string)
}

// NewManager scans fsys for topic files with the default extensions.
// A nil filesystem yields a manager without topics.
func NewManager(fsys fs.FS) (*Manager, error) {
	return NewManagerWithOptions(fsys, Options{})
}

// NewManagerWithOptions scans fsys for topic files.
func NewManagerWithOptions(fsys fs.FS, opts Options) (*Manager, error) {
	m := &Manager{
		fsys:       fsys,
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(m.extensions) == 0 {
		m.extensions = []string{".txt", ".md"}
	}
	if m.renderer == nil {
		m.renderer = &PlainRenderer{}
	}

	if err := m.scan(); err != nil {
		return nil, err
	}
	return m, nil
}

// scan walks the filesystem and loads every file with a supported
// extension. Subdirectories flatten into the topic namespace.
func (m *Manager) scan() error {
	if m.fsys == nil {
		return nil
	}

	err := fs.WalkDir(m.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := path.Ext(p)
		supported := false
		for _, validExt := range m.extensions {
			if ext == validExt {
				supported = true
				break
			}
		}
		if !supported {
			return nil
		}

		content, err := fs.ReadFile(m.fsys, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(path.Base(p), ext)
		m.topics[name] = &Topic{
			Name:    name,
			Path:    p,
			Content: string(content),
		}
		return nil
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrFileRead, "failed to scan help topics")
	}
	return nil
}

// Get retrieves a topic by name. Flag-style lookups work too: a leading
// dash prefix is stripped and an "option-" prefixed topic matches, so
// `help --dry-run` finds option-dry-run.
func (m *Manager) Get(name string) (*Topic, bool) {
	name = strings.TrimPrefix(name, "--")
	name = strings.TrimPrefix(name, "-")

	if topic, ok := m.topics[name]; ok {
		return topic, true
	}
	topic, ok := m.topics["option-"+name]
	return topic, ok
}

// Topics returns all topic names, sorted.
func (m *Manager) Topics() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// render formats a topic through the configured renderer.
func (m *Manager) render(topic *Topic) string {
	return m.renderer.Render(topic.Content, path.Ext(topic.Path))
}

// Initialize wires the topic system into the command tree: a `topics`
// command listing and showing topics, a replacement `help` command that
// resolves topics before falling back to command help, and a help
// function override so `--help` behaves the same way.
func (m *Manager) Initialize(root *cobra.Command) {
	m.originalHelp = root.HelpFunc()

	topicsCmd := &cobra.Command{
		Use:   "topics [topic]",
		Short: "List help topics or show one",
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return m.Topics(), cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				m.printTopicList(out, root.Name())
				return
			}
			if topic, ok := m.Get(args[0]); ok {
				fmt.Fprint(out, m.render(topic))
				return
			}
			fmt.Fprintf(out, "Unknown help topic %q\n", args[0])
			m.printTopicList(out, root.Name())
		},
	}

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Simply type ` + root.Name() + ` help [path to command or topic] for full details.

To see all available help topics:
  ` + root.Name() + ` topics`,
		// Flag-style topic lookups (help --dry-run) must reach Run
		DisableFlagParsing: true,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range root.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, m.Topics()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				m.originalHelp(root, []string{})
				return
			}
			// Commands win over topics, matching cobra's own help
			if target, _, err := root.Find(args); err == nil && target != nil && target != root {
				m.originalHelp(target, args)
				return
			}
			if topic, ok := m.Get(args[0]); ok {
				fmt.Fprint(cmd.OutOrStdout(), m.render(topic))
				return
			}
			m.originalHelp(root, args)
		},
	}

	for _, cmd := range root.Commands() {
		if cmd.Name() == "help" {
			root.RemoveCommand(cmd)
			break
		}
	}
	root.AddCommand(topicsCmd)
	root.AddCommand(helpCmd)

	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			if topic, ok := m.Get(args[0]); ok {
				fmt.Fprint(cmd.OutOrStdout(), m.render(topic))
				return
			}
		}
		m.originalHelp(cmd, args)
	})
}

// printTopicList writes the available topics, option topics shown in
// flag form.
func (m *Manager) printTopicList(out io.Writer, rootName string) {
	names := m.Topics()
	if len(names) == 0 {
		fmt.Fprintln(out, "No help topics available.")
		return
	}

	var options []string
	var general []string
	for _, name := range names {
		if strings.HasPrefix(name, "option-") {
			options = append(options, strings.TrimPrefix(name, "option-"))
		} else {
			general = append(general, name)
		}
	}

	fmt.Fprintln(out, "Available help topics:")
	if len(general) > 0 {
		fmt.Fprintln(out, "\nGeneral topics:")
		for _, name := range general {
			fmt.Fprintf(out, "  %s\n", name)
		}
	}
	if len(options) > 0 {
		fmt.Fprintln(out, "\nOption topics:")
		for _, name := range options {
			fmt.Fprintf(out, "  --%s\n", name)
		}
	}
	fmt.Fprintf(out, "\nUse '%s help <topic>' to read about a specific topic.\n", rootName)
}

// Initialize is the one-call setup: scan fsys and wire the topic help
// system into root.
func Initialize(root *cobra.Command, fsys fs.FS) error {
	m, err := NewManager(fsys)
	if err != nil {
		return err
	}
	m.Initialize(root)
	return nil
}
