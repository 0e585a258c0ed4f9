package main

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/appkit/pkg/layout"
)

func newDirsCmd() *cobra.Command {
	var create bool

	cmd := &cobra.Command{
		Use:     "dirs",
		Short:   MsgDirsShort,
		Long:    MsgDirsLong,
		Example: MsgDirsExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			project, _ := cmd.Flags().GetString("project")

			if create {
				store, err := openStore(cmd, project)
				if err != nil {
					return err
				}
				printDirs(cmd, project, store.UserPaths())
				return nil
			}

			printDirs(cmd, project, layout.UserPathsFor(project))
			return nil
		},
	}

	cmd.Flags().String("project", appName, MsgFlagProject)
	cmd.Flags().BoolVar(&create, "create", false, MsgFlagCreate)
	return cmd
}

func printDirs(cmd *cobra.Command, project string, paths layout.UserPaths) {
	cmd.Printf(MsgDirsHeader, project)
	cmd.Printf(MsgDirsItem, "data", paths.DataDir)
	cmd.Printf(MsgDirsItem, "log", paths.LogDir)
	cmd.Printf(MsgDirsItem, "cache", paths.CacheDir)
	cmd.Printf(MsgDirsItem, "config", paths.ConfigDir)
	cmd.Printf(MsgDirsItem, "file", paths.ConfigFile)
}
