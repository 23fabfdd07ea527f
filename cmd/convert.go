package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/worklog/internal/cli/handlers"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Rewrite a log as JSONL rows",
	Long: `Read a log in any supported format and write its rows as JSON Lines,
one boundary or content record per line. Unreadable lines are reported on
stderr and left out, so the result always reads back cleanly.

Examples:
  worklog convert week.log > week.jsonl
  worklog convert -o week.jsonl week.log`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")
		noBackup, _ := cmd.Flags().GetBool("no-backup")
		runConvert(readGlobalOptions(cmd), args, output, noBackup)
	},
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")
	convertCmd.Flags().Bool("no-backup", false, "Overwrite --output without keeping a backup")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(o globalOptions, args []string, output string, noBackup bool) {
	d, ok := loadCLIDeps(o)
	if !ok {
		return
	}
	handlers.Convert(d, sourceArg(args), output, noBackup)
}
