package service

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/xolan/worklog/internal/config"
)

// ConfigService provides operations for managing configuration
type ConfigService struct {
	configPath string
	config     config.Config
}

// NewConfigService creates a new ConfigService
func NewConfigService(configPath string, cfg config.Config) *ConfigService {
	return &ConfigService{
		configPath: configPath,
		config:     cfg,
	}
}

// Get returns the current configuration
func (s *ConfigService) Get() config.Config {
	return s.config
}

// GetPath returns the path to the config file
func (s *ConfigService) GetPath() string {
	return s.configPath
}

// Exists checks if the config file exists
func (s *ConfigService) Exists() bool {
	_, err := os.Stat(s.configPath)
	return err == nil
}

// Update updates the configuration with new values
func (s *ConfigService) Update(cfg config.Config) error {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := s.writeConfig(cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	s.config = cfg

	return nil
}

// ConfigKeys lists the keys accepted by Set, in file order
var ConfigKeys = []string{
	"workday", "gap_threshold", "overlap_threshold", "color_by_activity", "timezone",
	"default_log", "input_format", "timeline_width", "poll_interval", "theme",
}

// Set changes a single key and writes the file
func (s *ConfigService) Set(key, value string) error {
	cfg := s.config

	switch strings.ToLower(strings.TrimSpace(key)) {
	case "workday":
		cfg.Workday = value
	case "gap_threshold":
		cfg.GapThreshold = value
	case "overlap_threshold":
		cfg.OverlapThreshold = value
	case "color_by_activity":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid color_by_activity %q: use true or false", value)
		}
		cfg.ColorByActivity = enabled
	case "timezone":
		cfg.Timezone = value
	case "default_log":
		cfg.DefaultLog = value
	case "input_format":
		cfg.InputFormat = value
	case "timeline_width":
		width, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid timeline_width %q: use a whole number", value)
		}
		cfg.TimelineWidth = width
	case "poll_interval":
		cfg.PollInterval = value
	case "theme":
		cfg.Theme = value
	default:
		return fmt.Errorf("unknown config key %q", key)
	}

	return s.Update(cfg)
}

// Init creates a sample config file
func (s *ConfigService) Init() error {
	if s.Exists() {
		return fmt.Errorf("config file already exists at %s", s.configPath)
	}

	sample := config.GenerateSampleConfig()
	if err := os.WriteFile(s.configPath, []byte(sample), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Reload reloads the configuration from disk
func (s *ConfigService) Reload() error {
	cfg, err := config.LoadOrDefault(s.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	s.config = cfg
	return nil
}

// writeConfig writes the config to the config file in TOML format
func (s *ConfigService) writeConfig(cfg config.Config) error {
	var buf bytes.Buffer
	buf.WriteString("# worklog configuration file\n\n")
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return err
	}
	return os.WriteFile(s.configPath, buf.Bytes(), 0644)
}
