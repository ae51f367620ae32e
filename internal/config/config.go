package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kapu/appsflyer-remote-command-go/internal/constants"
)

type Config struct {
	Command   CommandConfig
	AppsFlyer AppsFlyerConfig
	Redis     RedisConfig
	Bridge    BridgeConfig
	Worker    WorkerConfig
	Logging   LoggingConfig
}

type CommandConfig struct {
	ID          string
	Description string
}

type AppsFlyerConfig struct {
	DevKey string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type BridgeConfig struct {
	OperationsQueue     string
	CallbacksQueue      string
	HostEventsQueue     string
	CommandsQueue       string
	PublishTimeout      time.Duration
	PollTimeout         time.Duration
	BreakerThreshold    int
	BreakerResetTimeout time.Duration
}

type WorkerConfig struct {
	Concurrency int
	// Listen keeps consuming the command and callback queues after the
	// input sources are drained.
	Listen bool
}

type LoggingConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	defaults := constants.BridgeConfig
	cfg := &Config{
		Command: CommandConfig{
			ID:          getEnv("COMMAND_ID", constants.Defaults.CommandID),
			Description: getEnv("COMMAND_DESCRIPTION", constants.Defaults.CommandDescription),
		},
		AppsFlyer: AppsFlyerConfig{
			DevKey: getEnv("APPSFLYER_DEV_KEY", ""),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Bridge: BridgeConfig{
			OperationsQueue:     getEnv("BRIDGE_OPERATIONS_QUEUE", defaults.OperationsQueue),
			CallbacksQueue:      getEnv("BRIDGE_CALLBACKS_QUEUE", defaults.CallbacksQueue),
			HostEventsQueue:     getEnv("BRIDGE_HOST_EVENTS_QUEUE", defaults.HostEventsQueue),
			CommandsQueue:       getEnv("BRIDGE_COMMANDS_QUEUE", defaults.CommandsQueue),
			PublishTimeout:      time.Duration(getEnvInt("BRIDGE_PUBLISH_TIMEOUT_MS", int(defaults.PublishTimeout/time.Millisecond))) * time.Millisecond,
			PollTimeout:         time.Duration(getEnvInt("BRIDGE_POLL_TIMEOUT_SECONDS", int(defaults.PollTimeout/time.Second))) * time.Second,
			BreakerThreshold:    getEnvInt("BRIDGE_BREAKER_THRESHOLD", defaults.BreakerThreshold),
			BreakerResetTimeout: time.Duration(getEnvInt("BRIDGE_BREAKER_RESET_SECONDS", int(defaults.BreakerResetTimeout/time.Second))) * time.Second,
		},
		Worker: WorkerConfig{
			Concurrency: getEnvInt("WORKER_CONCURRENCY", defaults.WorkerConcurrency),
			Listen:      getEnvBool("LISTEN", false),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Command.ID == "" {
		return fmt.Errorf("COMMAND_ID is required")
	}
	if c.Redis.Host == "" {
		return fmt.Errorf("REDIS_HOST is required")
	}
	if c.Redis.Port <= 0 || c.Redis.Port > 65535 {
		return fmt.Errorf("REDIS_PORT must be between 1 and 65535, got %d", c.Redis.Port)
	}
	for name, queue := range map[string]string{
		"BRIDGE_OPERATIONS_QUEUE":  c.Bridge.OperationsQueue,
		"BRIDGE_CALLBACKS_QUEUE":   c.Bridge.CallbacksQueue,
		"BRIDGE_HOST_EVENTS_QUEUE": c.Bridge.HostEventsQueue,
		"BRIDGE_COMMANDS_QUEUE":    c.Bridge.CommandsQueue,
	} {
		if strings.TrimSpace(queue) == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
	}
	if c.Bridge.PublishTimeout <= 0 {
		return fmt.Errorf("BRIDGE_PUBLISH_TIMEOUT_MS must be positive")
	}
	if c.Bridge.PollTimeout < time.Second {
		return fmt.Errorf("BRIDGE_POLL_TIMEOUT_SECONDS must be at least 1")
	}
	if c.Worker.Concurrency < 1 {
		return fmt.Errorf("WORKER_CONCURRENCY must be at least 1")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
