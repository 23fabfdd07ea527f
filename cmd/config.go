package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/worklog/internal/cli/handlers"
	"github.com/xolan/worklog/internal/service"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the current effective configuration settings for worklog.

Shows the configuration file location, whether it exists, and all current settings.
Keys missing from the file keep their defaults:
  - workday: 8h                 total above this is flagged
  - gap_threshold: 30m          gap below this is flagged
  - overlap_threshold: 0s       overlap above this is flagged
  - color_by_activity: true
  - timezone: Local
  - default_log: (none)         read when no file is given
  - input_format: auto          auto, text or jsonl
  - timeline_width: 60
  - poll_interval: 2s           how often watch re-reads the log
  - theme: dracula

Configuration file location:
  ~/.config/worklog/config.toml      Linux
  %APPDATA%\worklog\config.toml      Windows

Examples:
  worklog config                       Show all current settings
  worklog config init                  Write a commented sample file
  worklog config set workday 7h30m     Change one setting`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if d, ok := loadCLIDeps(readGlobalOptions(cmd)); ok {
			handlers.ShowConfig(d)
		}
	},
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample config file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if d, ok := loadCLIDeps(readGlobalOptions(cmd)); ok {
			handlers.InitConfig(d)
		}
	},
}

// configSetCmd represents the config set command
var configSetCmd = &cobra.Command{
	Use:       "set <key> <value>",
	Short:     "Change one setting and save the config file",
	ValidArgs: service.ConfigKeys,
	Args:      cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if d, ok := loadCLIDeps(readGlobalOptions(cmd)); ok {
			handlers.SetConfig(d, args[0], args[1])
		}
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
