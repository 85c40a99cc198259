package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration. Priority, highest to
// lowest: CLI flags > environment variables > last config file > ... >
// first config file > defaults.
type Config struct {
	Environment string        `toml:"environment"` // "development" or "production"
	Server      ServerConfig  `toml:"server"`
	Storage     StorageConfig `toml:"storage"`
	Logging     LoggingConfig `toml:"logging"`
	Fetcher     FetcherConfig `toml:"fetcher"`
	Probe       ProbeConfig   `toml:"probe"`
	Collector   CollectorConfig `toml:"collector"`
	Scheduler   SchedulerConfig `toml:"scheduler"`
	Seeds       SeedsConfig   `toml:"seeds"`
}

type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

type StorageConfig struct {
	Badger BadgerConfig `toml:"badger"`
}

// BadgerConfig configures the storage/badger layer.
type BadgerConfig struct {
	Path           string `toml:"path"`
	ResetOnStartup bool   `toml:"reset_on_startup"`
}

type LoggingConfig struct {
	Level      string   `toml:"level"`
	Output     []string `toml:"output"` // "stdout", "file"
	TimeFormat string   `toml:"time_format"`
}

// FetcherConfig governs the polite-HTTP policies of the Fetcher.
type FetcherConfig struct {
	UserAgents         []string                 `toml:"user_agents"`
	UserAgentRotation  bool                     `toml:"user_agent_rotation"`
	DefaultRatePerSec  float64                  `toml:"default_rate_per_sec"`
	ProviderRates      map[string]float64       `toml:"provider_rates"` // overrides DefaultRatePerSec per ATS name
	RobotsCacheTTL     time.Duration            `toml:"robots_cache_ttl"`
	FollowRobotsTxt    bool                     `toml:"follow_robots_txt"`
	RequestTimeout     time.Duration            `toml:"request_timeout"`
	MaxRetries         int                      `toml:"max_retries"`
	InitialBackoff     time.Duration            `toml:"initial_backoff"`
	MaxBackoff         time.Duration            `toml:"max_backoff"`
	BackoffMultiplier  float64                  `toml:"backoff_multiplier"`
	MaxBodySize        int64                    `toml:"max_body_size"`
	EnableJavaScript   bool                     `toml:"enable_javascript"`
	JavaScriptWaitTime time.Duration            `toml:"javascript_wait_time"`
}

// ProbeConfig governs the probe engine's candidate search.
type ProbeConfig struct {
	MaxCandidateVariants int           `toml:"max_candidate_variants"`
	MaxConcurrentProbes  int           `toml:"max_concurrent_probes"`
	CacheTTL             time.Duration `toml:"cache_ttl"`
}

// CollectorConfig governs the Collector.
type CollectorConfig struct {
	BatchSize        int `toml:"batch_size"`
	ParallelWorkers  int `toml:"parallel_workers"`
	MaxPagesPerBoard int `toml:"max_pages_per_board"`
}

// SchedulerConfig governs the scheduler's three recurring activities.
type SchedulerConfig struct {
	DiscoveryCron           string `toml:"discovery_cron"`
	DiscoveryBatchSize      int    `toml:"discovery_batch_size"`
	RefreshCron             string `toml:"refresh_cron"`
	RefreshIntervalHours    int    `toml:"refresh_interval_hours"`
	MaintenanceCron         string `toml:"maintenance_cron"`
	SnapshotRetentionDays   int    `toml:"snapshot_retention_days"`
	JobArchiveRetentionDays int    `toml:"job_archive_retention_days"`
}

// SeedsConfig governs the seed expander.
type SeedsConfig struct {
	MinLength int `toml:"min_length"`
	MaxLength int `toml:"max_length"`
}

// NewDefaultConfig returns the configuration a fresh install starts with.
// Technical defaults live here; only user-facing settings need to appear in
// hireradar.toml.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port: 8080,
			Host: "localhost",
		},
		Storage: StorageConfig{
			Badger: BadgerConfig{
				Path: "./data",
			},
		},
		Logging: LoggingConfig{
			Level:      "info",
			Output:     []string{"stdout", "file"},
			TimeFormat: "15:04:05.000",
		},
		Fetcher: FetcherConfig{
			UserAgents: []string{
				"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
				"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Safari/605.1.15",
				"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
			},
			UserAgentRotation: true,
			DefaultRatePerSec: 1.5,
			ProviderRates: map[string]float64{
				"greenhouse": 2.0,
				"lever":      2.0,
				"workday":    1.0,
			},
			RobotsCacheTTL:     24 * time.Hour,
			FollowRobotsTxt:    true,
			RequestTimeout:     30 * time.Second,
			MaxRetries:         3,
			InitialBackoff:     1 * time.Second,
			MaxBackoff:         30 * time.Second,
			BackoffMultiplier:  2.0,
			MaxBodySize:        10 * 1024 * 1024,
			EnableJavaScript:   true,
			JavaScriptWaitTime: 3 * time.Second,
		},
		Probe: ProbeConfig{
			MaxCandidateVariants: 50,
			MaxConcurrentProbes:  8,
			CacheTTL:             1 * time.Hour,
		},
		Collector: CollectorConfig{
			BatchSize:        50,
			ParallelWorkers:  5,
			MaxPagesPerBoard: 20,
		},
		Scheduler: SchedulerConfig{
			DiscoveryCron:           "0 */2 * * *",
			DiscoveryBatchSize:      200,
			RefreshCron:             "15 */6 * * *",
			RefreshIntervalHours:    6,
			MaintenanceCron:         "30 2 * * *",
			SnapshotRetentionDays:   90,
			JobArchiveRetentionDays: 90,
		},
		Seeds: SeedsConfig{
			MinLength: 2,
			MaxLength: 200,
		},
	}
}

// LoadFromFiles loads configuration from multiple files, later files
// overriding earlier ones, then applies environment variable overrides.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)
	return config, nil
}

// applyEnvOverrides applies HIRERADAR_* environment variable overrides.
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("HIRERADAR_ENV"); env != "" {
		config.Environment = env
	}
	if port := os.Getenv("HIRERADAR_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("HIRERADAR_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if path := os.Getenv("HIRERADAR_BADGER_PATH"); path != "" {
		config.Storage.Badger.Path = path
	}
	if level := os.Getenv("HIRERADAR_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if output := os.Getenv("HIRERADAR_LOG_OUTPUT"); output != "" {
		var outputs []string
		for _, o := range strings.Split(output, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				outputs = append(outputs, trimmed)
			}
		}
		if len(outputs) > 0 {
			config.Logging.Output = outputs
		}
	}
	if rate := os.Getenv("HIRERADAR_FETCHER_DEFAULT_RATE"); rate != "" {
		if r, err := strconv.ParseFloat(rate, 64); err == nil {
			config.Fetcher.DefaultRatePerSec = r
		}
	}
	if timeout := os.Getenv("HIRERADAR_FETCHER_REQUEST_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			config.Fetcher.RequestTimeout = d
		}
	}
	if retries := os.Getenv("HIRERADAR_FETCHER_MAX_RETRIES"); retries != "" {
		if n, err := strconv.Atoi(retries); err == nil {
			config.Fetcher.MaxRetries = n
		}
	}
	if followRobots := os.Getenv("HIRERADAR_FETCHER_FOLLOW_ROBOTS_TXT"); followRobots != "" {
		if b, err := strconv.ParseBool(followRobots); err == nil {
			config.Fetcher.FollowRobotsTxt = b
		}
	}
	if hours := os.Getenv("HIRERADAR_REFRESH_INTERVAL_HOURS"); hours != "" {
		if h, err := strconv.Atoi(hours); err == nil {
			config.Scheduler.RefreshIntervalHours = h
		}
	}
	if minLen := os.Getenv("HIRERADAR_SEED_MIN_LENGTH"); minLen != "" {
		if n, err := strconv.Atoi(minLen); err == nil {
			config.Seeds.MinLength = n
		}
	}
	if maxLen := os.Getenv("HIRERADAR_SEED_MAX_LENGTH"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			config.Seeds.MaxLength = n
		}
	}
	if ttl := os.Getenv("HIRERADAR_CACHE_TTL_SECONDS"); ttl != "" {
		if secs, err := strconv.Atoi(ttl); err == nil {
			config.Probe.CacheTTL = time.Duration(secs) * time.Second
		}
	}
}

// ApplyFlagOverrides applies the highest-priority CLI flag overrides.
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port != 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// IsProduction reports whether the resolved environment is "production".
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}
