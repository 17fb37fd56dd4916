package config

import (
	"errors"
	"fmt"
	"sync"

	"cpu-scheduler/internal/core"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	MaxIterations         int // 0 derives the bound from the input
	LogLevel              string
	LogFormat             string
}

func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		Port:                  9095,
		RoundRobinTimeQuantum: 2,
		LogLevel:              "info",
		LogFormat:             "text",
	}
}

var envBindings = map[string]string{
	"port":                               "SCHEDULER_PORT",
	"scheduler.round_robin.time_quantum": "SCHEDULER_TIME_QUANTUM",
	"scheduler.max_iterations":           "SCHEDULER_MAX_ITERATIONS",
	"log.level":                          "SCHEDULER_LOG_LEVEL",
	"log.format":                         "SCHEDULER_LOG_FORMAT",
}

var once sync.Once
var config *SchedulerConfig
var configErr error

// GetSchedulerConfig loads ./config.yaml once. A missing file leaves the
// defaults in place.
func GetSchedulerConfig() (*SchedulerConfig, error) {
	once.Do(func() {
		config, configErr = Load("")
	})
	return config, configErr
}

// Load reads the given file, or config.yaml from the working directory when
// path is empty. The SCHEDULER_* variables in envBindings override file values.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	defaults := DefaultSchedulerConfig()
	v.SetDefault("port", defaults.Port)
	v.SetDefault("scheduler.round_robin.time_quantum", defaults.RoundRobinTimeQuantum)
	v.SetDefault("scheduler.max_iterations", defaults.MaxIterations)
	v.SetDefault("log.level", defaults.LogLevel)
	v.SetDefault("log.format", defaults.LogFormat)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		MaxIterations:         v.GetInt("scheduler.max_iterations"),
		LogLevel:              v.GetString("log.level"),
		LogFormat:             v.GetString("log.format"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *SchedulerConfig) Validate() error {
	var details []core.FieldError
	if c.RoundRobinTimeQuantum <= 0 {
		details = append(details, core.FieldError{Field: "scheduler.round_robin.time_quantum", Message: "must be positive"})
	}
	if c.Port <= 0 || c.Port > 65535 {
		details = append(details, core.FieldError{Field: "port", Message: "must be a valid TCP port"})
	}
	if c.MaxIterations < 0 {
		details = append(details, core.FieldError{Field: "scheduler.max_iterations", Message: "must not be negative"})
	}
	if len(details) > 0 {
		return core.NewConfigurationError("rejected scheduler configuration", details...)
	}
	return nil
}
