package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata" // timezone names resolve without a system zoneinfo

	"github.com/BurntSushi/toml"

	"github.com/xolan/worklog/internal/app"
	"github.com/xolan/worklog/internal/feed"
	"github.com/xolan/worklog/internal/osutil"
	"github.com/xolan/worklog/internal/stats"
)

const (
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"

	// MinPollInterval is the shortest poll interval the watcher accepts
	MinPollInterval = 100 * time.Millisecond
)

// Config represents the application configuration
type Config struct {
	// Workday is the total-time threshold per group (Go duration, e.g. "8h")
	Workday string `toml:"workday"`
	// GapThreshold flags a group whose idle time falls below it
	GapThreshold string `toml:"gap_threshold"`
	// OverlapThreshold flags a group whose overlap exceeds it
	OverlapThreshold string `toml:"overlap_threshold"`
	// ColorByActivity enables the per-activity palette
	ColorByActivity bool `toml:"color_by_activity"`
	// Timezone is used to resolve "today" (IANA timezone name, e.g., "America/New_York")
	Timezone string `toml:"timezone"`
	// DefaultLog is read when no file argument is given
	DefaultLog string `toml:"default_log"`
	// InputFormat is auto, text or jsonl
	InputFormat string `toml:"input_format"`
	// TimelineWidth is the bar width of the timeline command in terminal cells
	TimelineWidth int `toml:"timeline_width"`
	// PollInterval is how often the watcher re-reads the log
	PollInterval string `toml:"poll_interval"`
	// Theme is the bubbletint theme id used by the watcher
	Theme string `toml:"theme"`
}

// DefaultConfig returns a Config with the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Workday:          "8h",
		GapThreshold:     "30m",
		OverlapThreshold: "0s",
		ColorByActivity:  true,
		Timezone:         "Local",
		DefaultLog:       "",
		InputFormat:      string(feed.FormatAuto),
		TimelineWidth:    60,
		PollInterval:     "2s",
		Theme:            "dracula",
	}
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	appDir, err := osutil.AppDir(app.Name)
	if err != nil {
		return "", err
	}
	return filepath.Join(appDir, ConfigFile), nil
}

// Load reads the config file at path. Keys missing from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("unknown config key(s) in %s: %s", path, strings.Join(keys, ", "))
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// LoadOrDefault loads the config file at path, or returns DefaultConfig when the file does not exist.
// Any other error (permissions, invalid content) is returned.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, err
	}
	return Load(path)
}

// Normalize trims and lowercases enumerated values and fills empty fields with defaults.
func (c *Config) Normalize() {
	defaults := DefaultConfig()

	c.Workday = orDefault(strings.TrimSpace(c.Workday), defaults.Workday)
	c.GapThreshold = orDefault(strings.TrimSpace(c.GapThreshold), defaults.GapThreshold)
	c.OverlapThreshold = orDefault(strings.TrimSpace(c.OverlapThreshold), defaults.OverlapThreshold)
	c.PollInterval = orDefault(strings.TrimSpace(c.PollInterval), defaults.PollInterval)
	c.Timezone = orDefault(strings.TrimSpace(c.Timezone), defaults.Timezone)
	c.InputFormat = orDefault(strings.ToLower(strings.TrimSpace(c.InputFormat)), defaults.InputFormat)
	c.Theme = orDefault(strings.ToLower(strings.TrimSpace(c.Theme)), defaults.Theme)
	c.DefaultLog = strings.TrimSpace(c.DefaultLog)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// Validate checks every field and returns the first problem found
func (c Config) Validate() error {
	for _, d := range []struct {
		key   string
		value string
	}{
		{"workday", c.Workday},
		{"gap_threshold", c.GapThreshold},
		{"overlap_threshold", c.OverlapThreshold},
	} {
		parsed, err := time.ParseDuration(d.value)
		if err != nil {
			return fmt.Errorf("invalid %s %q: use a duration such as 8h, 30m or 1h30m", d.key, d.value)
		}
		if parsed < 0 {
			return fmt.Errorf("invalid %s %q: must not be negative", d.key, d.value)
		}
	}

	poll, err := time.ParseDuration(c.PollInterval)
	if err != nil {
		return fmt.Errorf("invalid poll_interval %q: use a duration such as 2s or 500ms", c.PollInterval)
	}
	if poll < MinPollInterval {
		return fmt.Errorf("invalid poll_interval %q: must be at least %s", c.PollInterval, MinPollInterval)
	}

	if _, err := feed.ParseFormat(c.InputFormat); err != nil {
		return fmt.Errorf("invalid input_format: %w", err)
	}

	if _, err := loadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}

	if c.TimelineWidth <= 0 {
		return fmt.Errorf("invalid timeline_width %d: must be positive", c.TimelineWidth)
	}

	return nil
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}

// Thresholds returns the classification thresholds. Values that fail to parse count as zero;
// call Validate first.
func (c Config) Thresholds() stats.Thresholds {
	return stats.Thresholds{
		Workday: mustDuration(c.Workday),
		Gap:     mustDuration(c.GapThreshold),
		Overlap: mustDuration(c.OverlapThreshold),
	}
}

// Poll returns the watcher poll interval, never below MinPollInterval
func (c Config) Poll() time.Duration {
	d := mustDuration(c.PollInterval)
	if d < MinPollInterval {
		return MinPollInterval
	}
	return d
}

// Location returns the configured timezone, falling back to time.Local
func (c Config) Location() *time.Location {
	loc, err := loadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Format returns the configured input format, falling back to auto
func (c Config) Format() feed.Format {
	f, err := feed.ParseFormat(c.InputFormat)
	if err != nil {
		return feed.FormatAuto
	}
	return f
}

func mustDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0
	}
	return d
}

// GenerateSampleConfig returns a commented sample config file
func GenerateSampleConfig() string {
	return `# worklog configuration file
# Location: ~/.config/worklog/config.toml (or the platform equivalent)
# Every setting is optional; the values shown are the defaults.

# Total time per day above which a day is flagged (Go duration)
# workday = "8h"

# A day is flagged when its idle time between intervals is below this
# gap_threshold = "30m"

# A day is flagged when overlapping intervals exceed this
# overlap_threshold = "0s"

# Give every activity (@name) its own color
# color_by_activity = true

# Timezone used to decide what "today" is
# Examples: "Local", "America/New_York", "Europe/London", "Asia/Tokyo"
# timezone = "Local"

# Log read when no file argument is given
# default_log = "~/worklog.txt"

# Input format: "auto", "text" or "jsonl"
# input_format = "auto"

# Width of timeline bars in terminal cells
# timeline_width = 60

# How often "worklog watch" re-reads the log (minimum 100ms)
# poll_interval = "2s"

# Color theme for "worklog watch" (any bubbletint theme id)
# theme = "dracula"
`
}
