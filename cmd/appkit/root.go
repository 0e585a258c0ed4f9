package main

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/appkit/internal/version"
	"github.com/arthur-debert/appkit/pkg/cobrax/topics"
	"github.com/arthur-debert/appkit/pkg/logging"
)

const appName = "appkit"

//go:embed topics
var topicsFS embed.FS

// registry is installed by the root command's PersistentPreRun so a
// panic anywhere below reaches the log file before the process dies.
var registry *logging.Registry

// NewRootCmd builds the appkit command tree.
func NewRootCmd() *cobra.Command {
	var verbosity int

	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     appName,
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			registry = logging.Setup(appName, verbosity)
			registry.Register("cmd." + cmd.Name())
			logging.LogCommand(cmd.Name(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.AddGroup(
		&cobra.Group{ID: "core", Title: "COMMANDS:"},
		&cobra.Group{ID: "misc", Title: "MISC:"},
	)
	rootCmd.SetUsageTemplate(MsgUsageTemplate + "\n")

	rootCmd.AddCommand(
		newDirsCmd(),
		newConfigCmd(),
		newVersionCmd(),
		newCompletionCmd(),
	)

	initTopics(rootCmd)

	return rootCmd
}

// initTopics wires the embedded help topics into the command tree.
// Best effort: a broken topic tree should not take the CLI down.
func initTopics(rootCmd *cobra.Command) {
	sub, err := fs.Sub(topicsFS, "topics")
	if err != nil {
		return
	}
	m, err := topics.NewManagerWithOptions(sub, topics.Options{
		Renderer: topics.NewGlamourRenderer(),
	})
	if err != nil {
		return
	}
	m.Initialize(rootCmd)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf(MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     MsgCompletionShort,
		Long:      MsgCompletionLong,
		GroupID:   "misc",
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Run: func(cmd *cobra.Command, args []string) {
			var err error
			switch args[0] {
			case "bash":
				err = cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				err = cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				err = cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				err = cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			if err != nil {
				log.Error().Err(err).Str("shell", args[0]).Msg("failed to generate completion script")
			}
		},
	}
}
