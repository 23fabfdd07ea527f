package handlers

import (
	"fmt"
	"strings"

	"github.com/xolan/worklog/internal/cli"
)

// ShowConfig displays the current configuration
func ShowConfig(deps *cli.Deps) {
	cfg := deps.Services.Config.Get()
	path := deps.Services.Config.GetPath()

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Config file: %s\n", path)
	if deps.Services.Config.Exists() {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: File exists")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: Using defaults (no config file)")
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "workday:           %s\n", cfg.Workday)
	_, _ = fmt.Fprintf(deps.Stdout, "gap_threshold:     %s\n", cfg.GapThreshold)
	_, _ = fmt.Fprintf(deps.Stdout, "overlap_threshold: %s\n", cfg.OverlapThreshold)
	_, _ = fmt.Fprintf(deps.Stdout, "color_by_activity: %t\n", cfg.ColorByActivity)
	_, _ = fmt.Fprintf(deps.Stdout, "timezone:          %s\n", cfg.Timezone)
	_, _ = fmt.Fprintf(deps.Stdout, "default_log:       %s\n", valueOrNone(cfg.DefaultLog))
	_, _ = fmt.Fprintf(deps.Stdout, "input_format:      %s\n", cfg.InputFormat)
	_, _ = fmt.Fprintf(deps.Stdout, "timeline_width:    %d\n", cfg.TimelineWidth)
	_, _ = fmt.Fprintf(deps.Stdout, "poll_interval:     %s\n", cfg.PollInterval)
	_, _ = fmt.Fprintf(deps.Stdout, "theme:             %s\n", cfg.Theme)
}

func valueOrNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

// InitConfig creates a sample config file
func InitConfig(deps *cli.Deps) {
	err := deps.Services.Config.Init()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	path := deps.Services.Config.GetPath()
	_, _ = fmt.Fprintf(deps.Stdout, "Created config file: %s\n", path)
	_, _ = fmt.Fprintln(deps.Stdout, "Edit this file to customize your settings.")
}

// SetConfig changes one key and saves the file
func SetConfig(deps *cli.Deps, key, value string) {
	if err := deps.Services.Config.Set(key, value); err != nil {
		fail(deps, fmt.Sprintf("Failed to set %s", key), err, "Run 'worklog config' to list the available keys")
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Set %s = %s\n", key, value)
}
