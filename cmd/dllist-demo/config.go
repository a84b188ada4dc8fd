package main

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Invicton-Labs/go-circularlist/genjson"
	"github.com/Invicton-Labs/go-circularlist/log"
	"github.com/Invicton-Labs/go-stackerr"
	"go.uber.org/zap/zapcore"
)

// Config holds the demo configuration
type Config struct {
	// Log is used to build the default logger
	Log log.NewInput

	// Values are inserted at the front of the list, in order
	Values []int

	// RemoveStart and RemoveEnd bound the range removed between the two prints
	RemoveStart int
	RemoveEnd   int

	// MonitorMemory enables sampling of peak memory usage while the demo runs
	MonitorMemory   bool
	MonitorInterval time.Duration
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, stackerr.Error) {
	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(getEnvOrDefault("DLLIST_LOG_LEVEL", "info"))); err != nil {
		return nil, stackerr.Wrap(err)
	}

	isDevelopment, err := getEnvAsBoolOrDefault("DLLIST_DEVELOPMENT", false)
	if err != nil {
		return nil, err
	}

	values, err := genjson.UnmarshalString[[]int](getEnvOrDefault("DLLIST_VALUES", "[3, 7, 2, 1]"))
	if err != nil {
		return nil, err
	}

	removeStart, err := getEnvAsIntOrDefault("DLLIST_REMOVE_START", 1)
	if err != nil {
		return nil, err
	}
	removeEnd, err := getEnvAsIntOrDefault("DLLIST_REMOVE_END", 2)
	if err != nil {
		return nil, err
	}

	monitorMemory, err := getEnvAsBoolOrDefault("DLLIST_MONITOR_MEMORY", false)
	if err != nil {
		return nil, err
	}
	monitorInterval, cerr := time.ParseDuration(getEnvOrDefault("DLLIST_MONITOR_INTERVAL", "10ms"))
	if cerr != nil {
		return nil, stackerr.Wrap(cerr)
	}
	if monitorInterval <= 0 {
		return nil, stackerr.Errorf("DLLIST_MONITOR_INTERVAL must be positive, got %s", monitorInterval)
	}

	return &Config{
		Log: log.NewInput{
			Name:          "dllist-demo",
			Level:         level,
			IsDevelopment: isDevelopment,
			// Keep stdout for the list output
			Output: os.Stderr,
		},
		Values:          values,
		RemoveStart:     removeStart,
		RemoveEnd:       removeEnd,
		MonitorMemory:   monitorMemory,
		MonitorInterval: monitorInterval,
	}, nil
}

func getEnvOrDefault(key string, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) (int, stackerr.Error) {
	value := getEnvOrDefault(key, "")
	if value == "" {
		return defaultValue, nil
	}
	i, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, stackerr.Errorf("%s must be an integer: %v", key, err)
	}
	return i, nil
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) (bool, stackerr.Error) {
	value := getEnvOrDefault(key, "")
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, stackerr.Errorf("%s must be a boolean: %v", key, err)
	}
	return b, nil
}
