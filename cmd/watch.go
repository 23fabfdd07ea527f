package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/xolan/worklog/internal/service"
	"github.com/xolan/worklog/internal/tui"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Live terminal view that follows the log",
	Long: `Open an interactive view of the log that re-reads the file every
poll_interval and redraws when its content changes.

Views:
  - Groups: intervals and flagged metrics of the selected group
  - Timeline: every group as a bar on the shared scale
  - Stats: totals and the activity breakdown
  - Config: settings and theme selection

Keyboard shortcuts:
  - Tab/Shift+Tab or 1-4: switch views
  - h/l or arrows: previous/next day, t: today
  - r: reload now, c: toggle activity colors
  - [ and ]: cycle themes
  - ?: help, q: quit`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runWatch(readGlobalOptions(cmd), args, tui.Run)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

// watchRunner starts the live view; tests substitute it
type watchRunner func(services *service.Services, source string, day time.Time) error

func runWatch(o globalOptions, args []string, run watchRunner) {
	d, ok := loadCLIDeps(o)
	if !ok {
		return
	}
	svc := d.Services.Analysis

	day, err := svc.ResolveDay(o.Date)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid date '%s'\n", o.Date)
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	source, err := svc.ResolveSource(sourceArg(args))
	switch {
	case errors.Is(err, service.ErrNoLog):
		_, _ = fmt.Fprintln(deps.Stderr, "Error: No log file given")
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Pass a file or run: worklog config set default_log <path>")
		deps.Exit(1)
		return
	case err != nil:
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to resolve log path")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	case source == service.StdinSource:
		_, _ = fmt.Fprintln(deps.Stderr, "Error: watch needs a file; standard input cannot be re-read")
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use 'worklog report -' for piped input")
		deps.Exit(1)
		return
	}

	if err := run(d.Services, source, day); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error running watch: %v\n", err)
		deps.Exit(1)
	}
}
