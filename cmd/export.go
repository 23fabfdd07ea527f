package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xolan/worklog/internal/cli/handlers"
	"github.com/xolan/worklog/internal/report"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <json|csv|yaml> [file]",
	Short: "Export the analysis as JSON, CSV or YAML",
	Long: `Export groups, intervals, metrics, flags and timeline positions for
programmatic use.

Formats:
  json    One document with summary, groups and activity breakdown
  csv     One row per interval; empty groups get a single row
  yaml    The same document as json

Output goes to stdout unless --output is given. When the output file already
exists it is kept as <file>.bak.1 (up to 3 backups) unless --no-backup is set.

Examples:
  worklog export json week.log
  worklog export csv -o week.csv week.log
  worklog export yaml --date 2024-03-04 week.log > week.yaml`,
	ValidArgs: formatNames(),
	Args:      cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")
		noBackup, _ := cmd.Flags().GetBool("no-backup")
		runExport(readGlobalOptions(cmd), args, output, noBackup)
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")
	exportCmd.Flags().Bool("no-backup", false, "Overwrite --output without keeping a backup")
	rootCmd.AddCommand(exportCmd)
}

// formatNames lists the export formats for completion and error messages
func formatNames() []string {
	names := make([]string, len(report.Formats))
	for i, f := range report.Formats {
		names[i] = string(f)
	}
	return names
}

func runExport(o globalOptions, args []string, output string, noBackup bool) {
	format, err := report.ParseFormat(args[0])
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Unsupported export format '%s'\n", args[0])
		_, _ = fmt.Fprintf(deps.Stderr, "Supported formats: %s\n", strings.Join(formatNames(), ", "))
		deps.Exit(1)
		return
	}

	d, ok := loadCLIDeps(o)
	if !ok {
		return
	}
	a, ok := handlers.Analyze(d, sourceArg(args[1:]), o.Date)
	if !ok {
		return
	}
	handlers.Export(d, a, format, output, noBackup)
}
