package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/worklog/internal/cli/handlers"
)

var rootCmd = &cobra.Command{
	Use:   "worklog [file]",
	Short: "Measure time logged as (HH:MM - HH:MM) intervals",
	Long: `worklog reads a log of time intervals grouped under header rows, and
reports per-group totals, idle gaps and overlaps on a shared timeline.

Log format:
  # Monday                          a header row starts a new group
  (09:00 - 12:30) design review     intervals; several may share a line
  (13:15 - 18:00)(22:00 - 00:30)    an end before the start ends the next day
  (08:00 - 09:00) @ops              @word marks the activity

Usage:
  worklog [file]                    Report each group (same as: worklog report)
  worklog timeline [file]           Draw groups as bars on a shared scale
  worklog stats [file]              Totals and per-activity breakdown
  worklog export json [file]        Write the analysis as json, csv or yaml
  worklog validate [file]           Check that every line parses
  worklog convert [file]            Rewrite the log as JSONL rows
  worklog watch [file]              Live view that follows the file
  worklog config                    Show settings

Use - as the file to read standard input. Without a file, default_log from
the config is read.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runReport(readGlobalOptions(cmd), args)
	},
}

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report [file]",
	Short: "Show intervals, totals, gaps and overlaps per group",
	Long: `Show every group with its intervals and metrics.

A metric is flagged with "!" when it crosses its threshold:
  total above workday, gap below gap_threshold, overlap above overlap_threshold.

Examples:
  worklog report week.log
  worklog report --date 2024-03-04 week.log
  cat week.log | worklog report -`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runReport(readGlobalOptions(cmd), args)
	},
}

// timelineCmd represents the timeline command
var timelineCmd = &cobra.Command{
	Use:   "timeline [file]",
	Short: "Draw each group as a bar on a shared scale",
	Long: `Draw each group's intervals as a bar. Every bar uses the same scale:
the longest extent of any group, so bars are comparable across groups.

Overlapping cells are drawn darker. With color_by_activity enabled,
cells take the color of their activity.

Examples:
  worklog timeline week.log
  worklog timeline --width 100 week.log`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		width, _ := cmd.Flags().GetInt("width")
		runTimeline(readGlobalOptions(cmd), args, width)
	},
}

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Show aggregate statistics and the activity breakdown",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runStats(readGlobalOptions(cmd), args)
	},
}

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check log file health",
	Long: `Validate the log and report unreadable lines, intervals before the
first header row, and content that holds no interval.

Exits with status 1 when issues are found.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runValidate(readGlobalOptions(cmd), args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringP("date", "d", "", "Date intervals are anchored to (YYYY-MM-DD, DD/MM/YYYY, today, yesterday)")
	rootCmd.PersistentFlags().String("input-format", "", "Log format: auto, text or jsonl (default from config)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log pipeline diagnostics to stderr")
	rootCmd.PersistentFlags().Bool("no-colors", false, "Disable per-activity colors")
	_ = rootCmd.RegisterFlagCompletionFunc("input-format", completeInputFormat)

	timelineCmd.Flags().IntP("width", "w", 0, "Bar width in cells (default from config)")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(timelineCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(validateCmd)
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"worklog version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// sourceArg returns the optional file argument
func sourceArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func runReport(o globalOptions, args []string) {
	d, ok := loadCLIDeps(o)
	if !ok {
		return
	}
	a, ok := handlers.Analyze(d, sourceArg(args), o.Date)
	if !ok {
		return
	}
	handlers.ShowReport(d, a)
}

func runTimeline(o globalOptions, args []string, width int) {
	d, ok := loadCLIDeps(o)
	if !ok {
		return
	}
	a, ok := handlers.Analyze(d, sourceArg(args), o.Date)
	if !ok {
		return
	}
	handlers.ShowTimeline(d, a, width)
}

func runStats(o globalOptions, args []string) {
	d, ok := loadCLIDeps(o)
	if !ok {
		return
	}
	a, ok := handlers.Analyze(d, sourceArg(args), o.Date)
	if !ok {
		return
	}
	handlers.ShowStats(d, a)
}

func runValidate(o globalOptions, args []string) {
	d, ok := loadCLIDeps(o)
	if !ok {
		return
	}
	handlers.Validate(d, sourceArg(args))
}
