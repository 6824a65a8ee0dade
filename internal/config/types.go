package config

import (
	"github.com/pulmocare/appointments/backend/internal/cache"
	"github.com/pulmocare/appointments/backend/internal/logger"
	"github.com/pulmocare/appointments/backend/internal/metrics"
)

// Config holds all configuration values from config.yaml
type Config struct {
	App     AppConfig      `mapstructure:"app"`
	Logging logger.Config  `mapstructure:"logging"`
	Cache   cache.Config   `mapstructure:"cache"`
	Metrics metrics.Config `mapstructure:"metrics"`
}

// AppConfig contains service identity settings
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}
