package main

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort        = "Project layout, user directories and config plumbing"
	MsgDirsShort        = "Show the per-user directories for a project"
	MsgConfigShort      = "Inspect a project's config file"
	MsgConfigShowShort  = "Print the config file as stored on disk"
	MsgConfigPathShort  = "Print the config file location without writing anything"
	MsgConfigResetShort = "Delete the config file and recreate it at defaults"
	MsgVersionShort     = "Print version information"
	MsgCompletionShort  = "Generate shell completion script"

	// Output formats
	MsgDirsHeader      = "Directories for project '%s':\n"
	MsgDirsItem        = "  %-7s %s\n"
	MsgConfigResetDone = "Config for project '%s' reset to %s\n"
	MsgVersionFormat   = "appkit version %s\n  commit: %s\n  built:  %s\n"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagProject = "Project name to resolve directories and config for"
	MsgFlagCreate  = "Create the directories and seed the config file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/dirs-long.txt
	msgDirsLongRaw string
	MsgDirsLong    = strings.TrimSpace(msgDirsLongRaw)

	//go:embed msgs/dirs-example.txt
	msgDirsExampleRaw string
	MsgDirsExample    = strings.TrimSpace(msgDirsExampleRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/config-example.txt
	msgConfigExampleRaw string
	MsgConfigExample    = strings.TrimSpace(msgConfigExampleRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
