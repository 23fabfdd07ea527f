package service

import (
	"github.com/xolan/worklog/internal/config"
)

// Services holds all service instances used by the application
type Services struct {
	Analysis *AnalysisService
	Stats    *StatsService
	Config   *ConfigService
}

// NewServices creates a new Services instance using the default config path
func NewServices(opts ...Option) (*Services, error) {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	return NewServicesWithPaths(configPath, cfg, opts...), nil
}

// NewServicesWithPaths creates a new Services instance with a custom config path (useful for testing)
func NewServicesWithPaths(configPath string, cfg config.Config, opts ...Option) *Services {
	return &Services{
		Analysis: NewAnalysisService(cfg, opts...),
		Stats:    NewStatsService(),
		Config:   NewConfigService(configPath, cfg),
	}
}
