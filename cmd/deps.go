package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/xolan/worklog/internal/cli"
	"github.com/xolan/worklog/internal/feed"
	"github.com/xolan/worklog/internal/service"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout       io.Writer
	Stderr       io.Writer
	Stdin        io.Reader
	Exit         func(code int)
	LoadServices func(opts ...service.Option) (*service.Services, error)
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		Stdin:        os.Stdin,
		Exit:         os.Exit,
		LoadServices: service.NewServices,
	}
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	Date        string
	InputFormat string
	Verbose     bool
	NoColors    bool
}

// readGlobalOptions collects the persistent flags of cmd
func readGlobalOptions(cmd *cobra.Command) globalOptions {
	flags := cmd.Root().PersistentFlags()
	date, _ := flags.GetString("date")
	format, _ := flags.GetString("input-format")
	verbose, _ := flags.GetBool("verbose")
	noColors, _ := flags.GetBool("no-colors")
	return globalOptions{Date: date, InputFormat: format, Verbose: verbose, NoColors: noColors}
}

// serviceOptions turns flags into analysis options. An invalid --input-format is an error.
func (o globalOptions) serviceOptions() ([]service.Option, error) {
	var opts []service.Option
	if o.Verbose {
		opts = append(opts, service.WithLogger(log.New(deps.Stderr, "worklog: ", 0)))
	}
	if o.NoColors {
		opts = append(opts, service.WithActivityColors(false))
	}
	if o.InputFormat != "" {
		format, err := feed.ParseFormat(o.InputFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, service.WithInputFormat(format))
	}
	return opts, nil
}

// loadCLIDeps builds the handler dependencies for one command run.
// On failure it reports the error and returns false.
func loadCLIDeps(o globalOptions) (*cli.Deps, bool) {
	opts, err := o.serviceOptions()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid input format '%s'\n", o.InputFormat)
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use auto, text or jsonl")
		deps.Exit(1)
		return nil, false
	}

	services, err := deps.LoadServices(opts...)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check your config file, or run: worklog config init")
		deps.Exit(1)
		return nil, false
	}

	d := cli.NewDeps(services, services.Config.Get())
	return d.WithStreams(deps.Stdout, deps.Stderr, deps.Stdin, deps.Exit), true
}
